package mastery

import (
	"testing"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/catalog"
)

func sixLessonTrack() catalog.Track {
	return catalog.Track{
		ID:      "trackA",
		Name:    "Track A",
		Lessons: []string{"l1", "l2", "l3", "l4", "l5", "l6"},
	}
}

func TestClassify_Thresholds(t *testing.T) {
	track := sixLessonTrack()
	cases := []struct {
		name      string
		completed []string
		want      catalog.Difficulty
	}{
		{"none", nil, catalog.Beginner},
		{"one of six", []string{"l1"}, catalog.Beginner},
		{"two of six is 33pct", []string{"l1", "l2"}, catalog.Beginner},
		{"three of six is 50pct", []string{"l1", "l2", "l3"}, catalog.Intermediate},
		{"four of six is 67pct", []string{"l1", "l2", "l3", "l4"}, catalog.Advanced},
		{"all six", track.Lessons, catalog.Advanced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(track, tc.completed); got != tc.want {
				t.Errorf("Classify = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestClassify_IgnoresForeignSlugs(t *testing.T) {
	track := sixLessonTrack()
	completed := []string{"other-track-lesson-1", "other-track-lesson-2", "l1"}
	if got := Classify(track, completed); got != catalog.Beginner {
		t.Errorf("Classify = %s, want beginner", got)
	}
}

func TestClassify_EmptyTrackIsBeginner(t *testing.T) {
	track := catalog.Track{ID: "empty", Name: "Empty"}
	if got := Classify(track, []string{"l1"}); got != catalog.Beginner {
		t.Errorf("Classify = %s, want beginner", got)
	}
}

func TestClassifyTracks_UnknownTrackFailsOpen(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	levels := ClassifyTracks(c, []string{"javascript", "no-such-track"}, nil)
	if levels["javascript"] != catalog.Beginner {
		t.Errorf("javascript = %s, want beginner with no lessons complete", levels["javascript"])
	}
	if levels["no-such-track"] != catalog.Beginner {
		t.Errorf("unknown track = %s, want beginner", levels["no-such-track"])
	}
}
