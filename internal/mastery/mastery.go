// Package mastery derives a coarse per-track mastery tier from the learner's
// completed lessons. The tier caps the difficulty of new material the daily
// selector offers and defines what counts as a stretch exercise (one tier up).
package mastery

import (
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/catalog"
)

const (
	// AdvancedThreshold is the completed-lesson ratio at which a track
	// classifies as advanced.
	AdvancedThreshold = 0.67

	// IntermediateThreshold is the completed-lesson ratio at which a track
	// classifies as intermediate.
	IntermediateThreshold = 0.34
)

// Classify returns the mastery tier for a track given the learner's
// completed lesson slugs. A track with no lessons, or no completions yet,
// classifies as beginner: the easiest tier is the UX default, not an error.
func Classify(track catalog.Track, completedLessonSlugs []string) catalog.Difficulty {
	if len(track.Lessons) == 0 {
		return catalog.Beginner
	}

	completed := make(map[string]bool, len(completedLessonSlugs))
	for _, slug := range completedLessonSlugs {
		completed[slug] = true
	}

	done := 0
	for _, slug := range track.Lessons {
		if completed[slug] {
			done++
		}
	}

	pct := float64(done) / float64(len(track.Lessons))
	switch {
	case pct >= AdvancedThreshold:
		return catalog.Advanced
	case pct >= IntermediateThreshold:
		return catalog.Intermediate
	default:
		return catalog.Beginner
	}
}

// ClassifyTracks computes the mastery tier for each track ID. Unknown track
// IDs classify as beginner.
func ClassifyTracks(c *catalog.Catalog, trackIDs []string, completedLessonSlugs []string) map[string]catalog.Difficulty {
	levels := make(map[string]catalog.Difficulty, len(trackIDs))
	for _, id := range trackIDs {
		track, ok := c.Track(id)
		if !ok {
			levels[id] = catalog.Beginner
			continue
		}
		levels[id] = Classify(track, completedLessonSlugs)
	}
	return levels
}
