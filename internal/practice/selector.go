// Package practice assembles the learner's daily exercise sets. The selector
// is pure and fully deterministic: all randomness comes from a generator
// seeded by the caller-supplied date string, so the same inputs on the same
// day always produce the same set, and the set changes day to day.
package practice

import (
	"github.com/samber/lo"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/catalog"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/mastery"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/randutil"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
)

// Type labels why an exercise made it into the daily set.
type Type string

const (
	TypeReview  Type = "review"
	TypeNew     Type = "new"
	TypeStretch Type = "stretch"
)

// Config holds the per-variant composition knobs. The coding-drill and
// quiz-drill selectors differ only in seed suffix and target sizing.
type Config struct {
	// SeedSuffix is appended to the date when seeding the generator, so the
	// two variants draw independent streams on the same day. Empty means the
	// bare date seeds the stream.
	SeedSuffix string

	// TargetCount is the full size of the daily set.
	TargetCount int

	// ReviewCap limits how many due review items lead the set. Fallback
	// phases may add further review-typed repeats past this cap.
	ReviewCap int

	// NewBudget is the running total (reviews included) at which the new
	// phase stops and the stretch phase takes over.
	NewBudget int
}

// DefaultDrillConfig returns the coding-drill selector configuration.
// The drill target is a default, not a law: callers size it to available
// content via Params.TargetCount.
func DefaultDrillConfig() Config {
	return Config{SeedSuffix: "", TargetCount: 10, ReviewCap: 3, NewBudget: 8}
}

// DefaultQuizConfig returns the quiz-drill selector configuration.
func DefaultQuizConfig() Config {
	return Config{SeedSuffix: "quiz-drills", TargetCount: 10, ReviewCap: 3, NewBudget: 8}
}

// Params is the learner-state snapshot a selection runs against. The
// selector only reads it; nothing is mutated or persisted here.
type Params struct {
	// ActiveTrackIDs are the tracks with learner activity. Empty falls back
	// to the catalog's default tracks so a brand-new learner still sees
	// content.
	ActiveTrackIDs []string

	// CompletedItemIDs are challenge IDs the learner has finished before.
	CompletedItemIDs []string

	// ReviewPool is the learner's spaced-repetition pool for this variant.
	ReviewPool []review.Item

	// CompletedLessonSlugs drive per-track mastery classification.
	CompletedLessonSlugs []string

	// Today is the reference day as an ISO YYYY-MM-DD string. It seeds the
	// generator and anchors due-date comparisons; the selector never reads
	// the system clock.
	Today string

	// TargetCount overrides Config.TargetCount when positive.
	TargetCount int
}

// Exercise is one entry of the daily coding-drill set.
type Exercise struct {
	Drill catalog.Drill
	Type  Type
}

// QuizExercise is one entry of the daily quiz set.
type QuizExercise struct {
	Quiz catalog.QuizDrill
	Type Type
}

// SelectDailyDrills assembles the daily coding-drill set.
func SelectDailyDrills(cat *catalog.Catalog, p Params, cfg Config) ([]Exercise, error) {
	picks, err := selectDaily(cat.Drills, cat.DrillByID, cat, p, cfg)
	if err != nil {
		return nil, err
	}
	return lo.Map(picks, func(pk pick[catalog.Drill], _ int) Exercise {
		return Exercise{Drill: pk.item, Type: pk.typ}
	}), nil
}

// SelectDailyQuizzes assembles the daily quiz set.
func SelectDailyQuizzes(cat *catalog.Catalog, p Params, cfg Config) ([]QuizExercise, error) {
	picks, err := selectDaily(cat.Quizzes, cat.QuizByID, cat, p, cfg)
	if err != nil {
		return nil, err
	}
	return lo.Map(picks, func(pk pick[catalog.QuizDrill], _ int) QuizExercise {
		return QuizExercise{Quiz: pk.item, Type: pk.typ}
	}), nil
}

type pick[T catalog.Item] struct {
	item T
	typ  Type
}

// selectDaily runs the phase pipeline shared by both variants. The shuffle
// call order (review, new, stretch, final) is part of the determinism
// contract: all four consume the one generator in sequence.
func selectDaily[T catalog.Item](items []T, byID func(string) (T, bool), cat *catalog.Catalog, p Params, cfg Config) ([]pick[T], error) {
	today, err := review.ParseDay(p.Today)
	if err != nil {
		return nil, err
	}

	target := cfg.TargetCount
	if p.TargetCount > 0 {
		target = p.TargetCount
	}
	if target <= 0 {
		return nil, nil
	}

	seed := p.Today
	if cfg.SeedSuffix != "" {
		seed = p.Today + "-" + cfg.SeedSuffix
	}
	rng := randutil.New(randutil.SeedFromString(seed))

	active := p.ActiveTrackIDs
	if len(active) == 0 {
		active = cat.DefaultTrackIDs()
	}
	activeSet := lo.SliceToMap(active, func(id string) (string, bool) { return id, true })
	completedSet := lo.SliceToMap(p.CompletedItemIDs, func(id string) (string, bool) { return id, true })
	levels := mastery.ClassifyTracks(cat, active, p.CompletedLessonSlugs)

	consumed := make(map[string]bool, target)
	var picks []pick[T]
	take := func(it T, typ Type) {
		picks = append(picks, pick[T]{item: it, typ: typ})
		consumed[it.Meta().ID] = true
	}

	// Review phase: due items in active tracks whose content still resolves.
	// Stale challenge IDs are skipped silently; content evolves.
	var dueItems []T
	for _, it := range review.Due(p.ReviewPool, today) {
		if !activeSet[it.TrackID] {
			continue
		}
		full, ok := byID(it.ChallengeID)
		if !ok {
			continue
		}
		dueItems = append(dueItems, full)
	}
	for _, it := range randutil.Shuffle(dueItems, rng) {
		if len(picks) >= cfg.ReviewCap || len(picks) >= target {
			break
		}
		take(it, TypeReview)
	}

	// New phase: unseen items at or below the track's mastery tier, until
	// the running total reaches the new budget.
	newBudget := min(cfg.NewBudget, target)
	var newCands []T
	for _, it := range items {
		m := it.Meta()
		if consumed[m.ID] || completedSet[m.ID] || !activeSet[m.TrackID] {
			continue
		}
		if m.Difficulty.Rank() > levels[m.TrackID].Rank() {
			continue
		}
		newCands = append(newCands, it)
	}
	for _, it := range randutil.Shuffle(newCands, rng) {
		if len(picks) >= newBudget {
			break
		}
		take(it, TypeNew)
	}

	// Stretch phase: items exactly one tier above the track's mastery.
	var stretchCands []T
	for _, it := range items {
		m := it.Meta()
		if consumed[m.ID] || !activeSet[m.TrackID] {
			continue
		}
		if m.Difficulty != levels[m.TrackID].Next() {
			continue
		}
		stretchCands = append(stretchCands, it)
	}
	for _, it := range randutil.Shuffle(stretchCands, rng) {
		if len(picks) >= target {
			break
		}
		take(it, TypeStretch)
	}

	// Fallback A: review-worthy repeats of previously-completed items.
	for _, it := range items {
		if len(picks) >= target {
			break
		}
		m := it.Meta()
		if consumed[m.ID] || !activeSet[m.TrackID] || !completedSet[m.ID] {
			continue
		}
		take(it, TypeReview)
	}

	// Fallback B: anything left in active tracks, difficulty ignored.
	for _, it := range items {
		if len(picks) >= target {
			break
		}
		m := it.Meta()
		if consumed[m.ID] || !activeSet[m.TrackID] {
			continue
		}
		take(it, TypeNew)
	}

	// Final shuffle so the set isn't a predictable review/new/stretch block.
	return randutil.Shuffle(picks, rng), nil
}
