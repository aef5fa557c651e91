// Package catalog holds the static content catalogs: learning tracks with
// their lesson slugs, coding drills, and quiz drills. Content is embedded at
// build time and validated against a JSON schema on load; the rest of the
// system treats the loaded catalog as read-only.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// Difficulty is the difficulty tier of a drill or quiz item. It is also the
// scale used for track mastery: a learner's mastery tier caps the difficulty
// of new material they are offered.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Rank returns the ordinal position of the tier (beginner = 0).
func (d Difficulty) Rank() int {
	switch d {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 0
	}
}

// Next returns the tier one step up. Advanced caps at advanced.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Beginner:
		return Intermediate
	default:
		return Advanced
	}
}

// Meta is the selection-relevant slice of a catalog item.
type Meta struct {
	ID         string
	TrackID    string
	Difficulty Difficulty
}

// Item is implemented by every catalog entry the daily selector can pick.
type Item interface {
	Meta() Meta
}

// Track is a content track: an ordered sequence of lessons plus the drills
// and quizzes tagged with its ID.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Default bool     `json:"default,omitempty"`
	Lessons []string `json:"lessons"`
}

// Drill is a single coding exercise.
type Drill struct {
	ID         string     `json:"id"`
	TrackID    string     `json:"track_id"`
	Difficulty Difficulty `json:"difficulty"`
	Title      string     `json:"title"`
	Prompt     string     `json:"prompt"`
	Hints      []string   `json:"hints,omitempty"`
}

// Meta implements Item.
func (d Drill) Meta() Meta {
	return Meta{ID: d.ID, TrackID: d.TrackID, Difficulty: d.Difficulty}
}

// QuizDrill is a single multiple-choice quiz question.
type QuizDrill struct {
	ID          string     `json:"id"`
	TrackID     string     `json:"track_id"`
	Difficulty  Difficulty `json:"difficulty"`
	Question    string     `json:"question"`
	Choices     []string   `json:"choices"`
	Answer      int        `json:"answer"`
	Explanation string     `json:"explanation,omitempty"`
}

// Meta implements Item.
func (q QuizDrill) Meta() Meta {
	return Meta{ID: q.ID, TrackID: q.TrackID, Difficulty: q.Difficulty}
}

// Catalog is the loaded, indexed content set.
type Catalog struct {
	Tracks  []Track
	Drills  []Drill
	Quizzes []QuizDrill

	trackByID map[string]Track
	drillByID map[string]Drill
	quizByID  map[string]QuizDrill
}

// Load parses and validates the embedded catalogs. It fails loudly on
// malformed content: a broken catalog is a build defect, not a runtime
// condition to degrade around.
func Load() (*Catalog, error) {
	var tracks []Track
	var drills []Drill
	var quizzes []QuizDrill
	if err := loadFile("data/tracks.json", tracksSchema, &tracks); err != nil {
		return nil, err
	}
	if err := loadFile("data/drills.json", drillsSchema, &drills); err != nil {
		return nil, err
	}
	if err := loadFile("data/quizzes.json", quizzesSchema, &quizzes); err != nil {
		return nil, err
	}
	return New(tracks, drills, quizzes)
}

// New builds an indexed catalog from already-decoded content. Load uses it
// for the embedded data; tests use it for synthetic catalogs.
func New(tracks []Track, drills []Drill, quizzes []QuizDrill) (*Catalog, error) {
	c := Catalog{Tracks: tracks, Drills: drills, Quizzes: quizzes}

	c.trackByID = make(map[string]Track, len(c.Tracks))
	for _, t := range c.Tracks {
		c.trackByID[t.ID] = t
	}
	c.drillByID = make(map[string]Drill, len(c.Drills))
	for _, d := range c.Drills {
		if _, dup := c.drillByID[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate drill id %q", d.ID)
		}
		c.drillByID[d.ID] = d
	}
	c.quizByID = make(map[string]QuizDrill, len(c.Quizzes))
	for _, q := range c.Quizzes {
		if _, dup := c.quizByID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate quiz id %q", q.ID)
		}
		c.quizByID[q.ID] = q
	}
	return &c, nil
}

func loadFile(name, schema string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validate(name, schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Track returns the track with the given ID.
func (c *Catalog) Track(id string) (Track, bool) {
	t, ok := c.trackByID[id]
	return t, ok
}

// DrillByID returns the drill with the given ID.
func (c *Catalog) DrillByID(id string) (Drill, bool) {
	d, ok := c.drillByID[id]
	return d, ok
}

// QuizByID returns the quiz with the given ID.
func (c *Catalog) QuizByID(id string) (QuizDrill, bool) {
	q, ok := c.quizByID[id]
	return q, ok
}

// DefaultTrackIDs returns the tracks shown to a learner with no activity yet,
// in catalog order.
func (c *Catalog) DefaultTrackIDs() []string {
	var ids []string
	for _, t := range c.Tracks {
		if t.Default {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
