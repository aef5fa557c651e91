package catalog

import "testing"

func TestLoad_EmbeddedCatalogsAreValid(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Tracks) == 0 {
		t.Error("no tracks loaded")
	}
	if len(c.Drills) == 0 {
		t.Error("no drills loaded")
	}
	if len(c.Quizzes) == 0 {
		t.Error("no quizzes loaded")
	}
}

func TestLoad_EveryItemReferencesAKnownTrack(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, d := range c.Drills {
		if _, ok := c.Track(d.TrackID); !ok {
			t.Errorf("drill %q references unknown track %q", d.ID, d.TrackID)
		}
	}
	for _, q := range c.Quizzes {
		if _, ok := c.Track(q.TrackID); !ok {
			t.Errorf("quiz %q references unknown track %q", q.ID, q.TrackID)
		}
	}
}

func TestLoad_QuizAnswersInRange(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, q := range c.Quizzes {
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			t.Errorf("quiz %q answer index %d out of range (%d choices)", q.ID, q.Answer, len(q.Choices))
		}
	}
}

func TestLookupsByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	d, ok := c.DrillByID("js-drill-sum-array")
	if !ok {
		t.Fatal("expected js-drill-sum-array in drill catalog")
	}
	if d.TrackID != "javascript" || d.Difficulty != Beginner {
		t.Errorf("unexpected drill metadata: %+v", d.Meta())
	}

	if _, ok := c.DrillByID("no-such-drill"); ok {
		t.Error("lookup of unknown drill id succeeded")
	}
}

func TestDefaultTrackIDs(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	ids := c.DefaultTrackIDs()
	if len(ids) == 0 {
		t.Fatal("no default tracks configured")
	}
	for _, id := range ids {
		tr, ok := c.Track(id)
		if !ok {
			t.Errorf("default track %q not in catalog", id)
			continue
		}
		if !tr.Default {
			t.Errorf("track %q returned as default but not flagged", id)
		}
	}
}

func TestDifficultyNext(t *testing.T) {
	cases := []struct {
		in, want Difficulty
	}{
		{Beginner, Intermediate},
		{Intermediate, Advanced},
		{Advanced, Advanced},
	}
	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Errorf("%s.Next() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyRankOrdering(t *testing.T) {
	if !(Beginner.Rank() < Intermediate.Rank() && Intermediate.Rank() < Advanced.Rank()) {
		t.Error("difficulty ranks are not strictly increasing")
	}
}
