package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func day(s string) time.Time {
	d, err := review.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLessonCompletion_RoundTrip(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	if err := repo.MarkLessonCompleted(ctx, "js-functions", "javascript", day("2025-01-15")); err != nil {
		t.Fatal(err)
	}
	// Marking the same lesson twice is a no-op, not an error.
	if err := repo.MarkLessonCompleted(ctx, "js-functions", "javascript", day("2025-01-16")); err != nil {
		t.Fatal(err)
	}

	slugs, err := repo.CompletedLessonSlugs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(slugs) != 1 || slugs[0] != "js-functions" {
		t.Errorf("slugs = %v, want [js-functions]", slugs)
	}
}

func TestCompletedItems_ScopedByKind(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	if err := repo.MarkItemCompleted(ctx, KindDrill, "shared-id", "javascript", day("2025-01-15")); err != nil {
		t.Fatal(err)
	}

	drills, err := repo.CompletedItemIDs(ctx, KindDrill)
	if err != nil {
		t.Fatal(err)
	}
	quizzes, err := repo.CompletedItemIDs(ctx, KindQuiz)
	if err != nil {
		t.Fatal(err)
	}
	if len(drills) != 1 {
		t.Errorf("drill completions = %v, want one entry", drills)
	}
	if len(quizzes) != 0 {
		t.Errorf("quiz completions = %v, want none", quizzes)
	}
}

func TestReviewPool_RoundTrip(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	item := review.Item{
		ChallengeID:    "js-drill-sum-array",
		TrackID:        "javascript",
		EasinessFactor: 2.6,
		Repetitions:    2,
		Interval:       6,
		DueDate:        day("2025-01-21"),
		LastReviewed:   day("2025-01-15"),
	}
	if err := repo.SaveReviewItem(ctx, KindDrill, item); err != nil {
		t.Fatal(err)
	}

	pool, err := repo.ReviewPool(ctx, KindDrill)
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 1 {
		t.Fatalf("pool size = %d, want 1", len(pool))
	}
	if pool[0] != item {
		t.Errorf("round trip = %+v, want %+v", pool[0], item)
	}
}

func TestSaveReviewItem_UpdatesExisting(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	item := review.Item{
		ChallengeID: "x", TrackID: "javascript", EasinessFactor: 2.5,
		Repetitions: 1, Interval: 1,
		DueDate: day("2025-01-16"), LastReviewed: day("2025-01-15"),
	}
	if err := repo.SaveReviewItem(ctx, KindDrill, item); err != nil {
		t.Fatal(err)
	}

	item.Repetitions = 2
	item.Interval = 6
	item.DueDate = day("2025-01-22")
	if err := repo.SaveReviewItem(ctx, KindDrill, item); err != nil {
		t.Fatal(err)
	}

	pool, err := repo.ReviewPool(ctx, KindDrill)
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 1 {
		t.Fatalf("pool size = %d, want 1 after upsert", len(pool))
	}
	if pool[0].Interval != 6 || pool[0].Repetitions != 2 {
		t.Errorf("updated item = %+v", pool[0])
	}
}

func TestActiveTrackIDs(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	if err := repo.MarkLessonCompleted(ctx, "l1", "javascript", day("2025-01-10")); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkItemCompleted(ctx, KindQuiz, "q1", "react", day("2025-01-12")); err != nil {
		t.Fatal(err)
	}

	ids, err := repo.ActiveTrackIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "javascript" || ids[1] != "react" {
		t.Errorf("active tracks = %v, want [javascript react]", ids)
	}
}

func TestStatsAndReset(t *testing.T) {
	repo := openTestStore(t).Progress()
	ctx := context.Background()

	for i, q := range []int{5, 3} {
		err := repo.RecordAttempt(ctx, Attempt{
			ID:          "attempt-" + string(rune('a'+i)),
			ChallengeID: "x",
			Kind:        KindDrill,
			Quality:     q,
			Interval:    1,
			Easiness:    2.5,
			AttemptedAt: day("2025-01-15"),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	item := review.Item{
		ChallengeID: "x", TrackID: "javascript", EasinessFactor: 2.5,
		Repetitions: 1, Interval: 1,
		DueDate: day("2025-01-16"), LastReviewed: day("2025-01-15"),
	}
	if err := repo.SaveReviewItem(ctx, KindDrill, item); err != nil {
		t.Fatal(err)
	}

	st, err := repo.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d, want 2", st.TotalAttempts)
	}
	if st.AverageQuality != 4 {
		t.Errorf("AverageQuality = %v, want 4", st.AverageQuality)
	}
	if st.TrackedItems != 1 {
		t.Errorf("TrackedItems = %d, want 1", st.TrackedItems)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	st, err = repo.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalAttempts != 0 || st.TrackedItems != 0 {
		t.Errorf("stats after reset = %+v, want zeros", st)
	}
}
