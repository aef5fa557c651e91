package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
)

// Kind distinguishes the two catalog variants sharing the progress tables.
type Kind string

const (
	KindDrill Kind = "drill"
	KindQuiz  Kind = "quiz"
)

// Attempt is one recorded completion with the schedule state it produced.
type Attempt struct {
	ID          string
	ChallengeID string
	Kind        Kind
	Quality     int
	Interval    int
	Easiness    float64
	AttemptedAt time.Time
}

// Stats summarizes the learner's attempt history.
type Stats struct {
	TotalAttempts  int
	AverageQuality float64
	TrackedItems   int
}

// ProgressRepo is the persistence surface the practice service works
// against. Implementations must be safe for the service's serialized
// read-modify-write per completion event.
type ProgressRepo interface {
	CompletedLessonSlugs(ctx context.Context) ([]string, error)
	MarkLessonCompleted(ctx context.Context, slug, trackID string, day time.Time) error

	CompletedItemIDs(ctx context.Context, kind Kind) ([]string, error)
	MarkItemCompleted(ctx context.Context, kind Kind, challengeID, trackID string, day time.Time) error

	ReviewPool(ctx context.Context, kind Kind) ([]review.Item, error)
	SaveReviewItem(ctx context.Context, kind Kind, item review.Item) error

	RecordAttempt(ctx context.Context, a Attempt) error

	// ActiveTrackIDs returns the tracks the learner has touched, via
	// completed lessons or completed items, in first-touched order.
	ActiveTrackIDs(ctx context.Context) ([]string, error)

	Stats(ctx context.Context) (Stats, error)

	// Reset wipes all learner progress. This is the only deletion path for
	// review items.
	Reset(ctx context.Context) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) CompletedLessonSlugs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slug FROM completed_lessons ORDER BY completed_at, slug`)
	if err != nil {
		return nil, fmt.Errorf("query completed lessons: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan completed lesson: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func (r *progressRepo) MarkLessonCompleted(ctx context.Context, slug, trackID string, day time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completed_lessons (slug, track_id, completed_at) VALUES (?, ?, ?)
		 ON CONFLICT(slug) DO NOTHING`,
		slug, trackID, review.FormatDay(day))
	if err != nil {
		return fmt.Errorf("mark lesson completed: %w", err)
	}
	return nil
}

func (r *progressRepo) CompletedItemIDs(ctx context.Context, kind Kind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT challenge_id FROM completed_items WHERE kind = ? ORDER BY completed_at, challenge_id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query completed items: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completed item: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *progressRepo) MarkItemCompleted(ctx context.Context, kind Kind, challengeID, trackID string, day time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completed_items (challenge_id, kind, track_id, completed_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(challenge_id, kind) DO NOTHING`,
		challengeID, string(kind), trackID, review.FormatDay(day))
	if err != nil {
		return fmt.Errorf("mark item completed: %w", err)
	}
	return nil
}

func (r *progressRepo) ReviewPool(ctx context.Context, kind Kind) ([]review.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT challenge_id, track_id, easiness_factor, repetitions, interval, due_date, last_reviewed
		 FROM review_items WHERE kind = ? ORDER BY challenge_id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query review pool: %w", err)
	}
	defer rows.Close()

	var pool []review.Item
	for rows.Next() {
		var it review.Item
		var due, last string
		if err := rows.Scan(&it.ChallengeID, &it.TrackID, &it.EasinessFactor, &it.Repetitions, &it.Interval, &due, &last); err != nil {
			return nil, fmt.Errorf("scan review item: %w", err)
		}
		if it.DueDate, err = review.ParseDay(due); err != nil {
			return nil, fmt.Errorf("review item %s: %w", it.ChallengeID, err)
		}
		if it.LastReviewed, err = review.ParseDay(last); err != nil {
			return nil, fmt.Errorf("review item %s: %w", it.ChallengeID, err)
		}
		pool = append(pool, it)
	}
	return pool, rows.Err()
}

func (r *progressRepo) SaveReviewItem(ctx context.Context, kind Kind, item review.Item) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_items
			(challenge_id, kind, track_id, easiness_factor, repetitions, interval, due_date, last_reviewed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(challenge_id, kind) DO UPDATE SET
			track_id = excluded.track_id,
			easiness_factor = excluded.easiness_factor,
			repetitions = excluded.repetitions,
			interval = excluded.interval,
			due_date = excluded.due_date,
			last_reviewed = excluded.last_reviewed`,
		item.ChallengeID, string(kind), item.TrackID, item.EasinessFactor, item.Repetitions,
		item.Interval, review.FormatDay(item.DueDate), review.FormatDay(item.LastReviewed))
	if err != nil {
		return fmt.Errorf("save review item: %w", err)
	}
	return nil
}

func (r *progressRepo) RecordAttempt(ctx context.Context, a Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, challenge_id, kind, quality, interval_snapshot, easiness_snapshot, attempted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ChallengeID, string(a.Kind), a.Quality, a.Interval, a.Easiness,
		a.AttemptedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (r *progressRepo) ActiveTrackIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT track_id, MIN(first_at) FROM (
			SELECT track_id, completed_at AS first_at FROM completed_lessons
			UNION ALL
			SELECT track_id, completed_at AS first_at FROM completed_items
		) GROUP BY track_id ORDER BY MIN(first_at), track_id`)
	if err != nil {
		return nil, fmt.Errorf("query active tracks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id, first string
		if err := rows.Scan(&id, &first); err != nil {
			return nil, fmt.Errorf("scan active track: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *progressRepo) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(quality), 0) FROM attempts`).
		Scan(&st.TotalAttempts, &st.AverageQuality)
	if err != nil {
		return Stats{}, fmt.Errorf("query attempt stats: %w", err)
	}
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_items`).Scan(&st.TrackedItems)
	if err != nil {
		return Stats{}, fmt.Errorf("query tracked items: %w", err)
	}
	return st, nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	for _, table := range []string{"completed_lessons", "completed_items", "review_items", "attempts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			tx.Rollback()
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
