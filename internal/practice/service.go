package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/catalog"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/store"
)

// ErrUnknownChallenge is returned when a completion names an ID that is not
// in the catalog. Unlike stale review-pool references (skipped silently
// during selection), completing a nonexistent challenge is a caller bug.
var ErrUnknownChallenge = errors.New("unknown challenge id")

// ErrUnknownLesson is returned when a lesson slug matches no track.
var ErrUnknownLesson = errors.New("unknown lesson slug")

// Service wires the persisted learner state, the static catalogs, and the
// pure scheduling core together for the CLI layer. It owns the serialized
// read-modify-write of the review pool per completion event.
type Service struct {
	repo     store.ProgressRepo
	cat      *catalog.Catalog
	log      *logrus.Logger
	drillCfg Config
	quizCfg  Config
}

// NewService creates a practice service.
func NewService(repo store.ProgressRepo, cat *catalog.Catalog, log *logrus.Logger, drillCfg, quizCfg Config) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{repo: repo, cat: cat, log: log, drillCfg: drillCfg, quizCfg: quizCfg}
}

// TodayDrills assembles the daily coding-drill set for the given day.
func (s *Service) TodayDrills(ctx context.Context, today string) ([]Exercise, error) {
	p, err := s.loadParams(ctx, store.KindDrill, today)
	if err != nil {
		return nil, err
	}
	exs, err := SelectDailyDrills(s.cat, p, s.drillCfg)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"today": today,
		"count": len(exs),
	}).Debug("selected daily drills")
	return exs, nil
}

// TodayQuizzes assembles the daily quiz set for the given day.
func (s *Service) TodayQuizzes(ctx context.Context, today string) ([]QuizExercise, error) {
	p, err := s.loadParams(ctx, store.KindQuiz, today)
	if err != nil {
		return nil, err
	}
	exs, err := SelectDailyQuizzes(s.cat, p, s.quizCfg)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"today": today,
		"count": len(exs),
	}).Debug("selected daily quizzes")
	return exs, nil
}

// CompletionResult reports the schedule produced by a completion.
type CompletionResult struct {
	Item        review.Item
	FirstReview bool
}

// CompleteDrill records a coding-drill completion with a quality score and
// returns the item's updated schedule.
func (s *Service) CompleteDrill(ctx context.Context, challengeID string, quality int, today string) (CompletionResult, error) {
	d, ok := s.cat.DrillByID(challengeID)
	if !ok {
		return CompletionResult{}, fmt.Errorf("%w: %q", ErrUnknownChallenge, challengeID)
	}
	return s.complete(ctx, store.KindDrill, d.Meta(), quality, today)
}

// CompleteQuiz records a quiz completion with a quality score and returns
// the item's updated schedule.
func (s *Service) CompleteQuiz(ctx context.Context, challengeID string, quality int, today string) (CompletionResult, error) {
	q, ok := s.cat.QuizByID(challengeID)
	if !ok {
		return CompletionResult{}, fmt.Errorf("%w: %q", ErrUnknownChallenge, challengeID)
	}
	return s.complete(ctx, store.KindQuiz, q.Meta(), quality, today)
}

func (s *Service) complete(ctx context.Context, kind store.Kind, meta catalog.Meta, quality int, today string) (CompletionResult, error) {
	day, err := review.ParseDay(today)
	if err != nil {
		return CompletionResult{}, err
	}

	pool, err := s.repo.ReviewPool(ctx, kind)
	if err != nil {
		return CompletionResult{}, err
	}

	var result CompletionResult
	if existing, ok := review.Find(pool, meta.ID); ok {
		next, err := review.ComputeNext(existing, quality, day)
		if err != nil {
			return CompletionResult{}, err
		}
		result = CompletionResult{Item: next}
	} else {
		created, err := review.NewItem(meta.ID, meta.TrackID, quality, day)
		if err != nil {
			return CompletionResult{}, err
		}
		result = CompletionResult{Item: created, FirstReview: true}
	}

	if err := s.repo.SaveReviewItem(ctx, kind, result.Item); err != nil {
		return CompletionResult{}, err
	}
	if err := s.repo.MarkItemCompleted(ctx, kind, meta.ID, meta.TrackID, day); err != nil {
		return CompletionResult{}, err
	}
	if err := s.repo.RecordAttempt(ctx, store.Attempt{
		ID:          uuid.NewString(),
		ChallengeID: meta.ID,
		Kind:        kind,
		Quality:     quality,
		Interval:    result.Item.Interval,
		Easiness:    result.Item.EasinessFactor,
		AttemptedAt: day,
	}); err != nil {
		return CompletionResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"challenge": meta.ID,
		"kind":      kind,
		"quality":   quality,
		"interval":  result.Item.Interval,
		"due":       review.FormatDay(result.Item.DueDate),
	}).Info("recorded completion")
	return result, nil
}

// CompleteLesson records a lesson completion, which feeds mastery
// classification. The slug must belong to a catalog track.
func (s *Service) CompleteLesson(ctx context.Context, slug, today string) error {
	day, err := review.ParseDay(today)
	if err != nil {
		return err
	}
	for _, track := range s.cat.Tracks {
		for _, l := range track.Lessons {
			if l == slug {
				return s.repo.MarkLessonCompleted(ctx, slug, track.ID, day)
			}
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLesson, slug)
}

// DueReviews returns the review items due on or before today for a variant.
func (s *Service) DueReviews(ctx context.Context, kind store.Kind, today string) ([]review.Item, error) {
	day, err := review.ParseDay(today)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.ReviewPool(ctx, kind)
	if err != nil {
		return nil, err
	}
	return review.Due(pool, day), nil
}

// Stats returns the learner's attempt statistics.
func (s *Service) Stats(ctx context.Context) (store.Stats, error) {
	return s.repo.Stats(ctx)
}

// Reset wipes all learner progress.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}

func (s *Service) loadParams(ctx context.Context, kind store.Kind, today string) (Params, error) {
	active, err := s.repo.ActiveTrackIDs(ctx)
	if err != nil {
		return Params{}, err
	}
	completed, err := s.repo.CompletedItemIDs(ctx, kind)
	if err != nil {
		return Params{}, err
	}
	pool, err := s.repo.ReviewPool(ctx, kind)
	if err != nil {
		return Params{}, err
	}
	lessons, err := s.repo.CompletedLessonSlugs(ctx)
	if err != nil {
		return Params{}, err
	}
	return Params{
		ActiveTrackIDs:       active,
		CompletedItemIDs:     completed,
		ReviewPool:           pool,
		CompletedLessonSlugs: lessons,
		Today:                today,
	}, nil
}
