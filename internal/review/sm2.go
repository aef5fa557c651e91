package review

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// InitialEasiness is the easiness factor assigned to brand-new items.
	InitialEasiness = 2.5

	// MinEasiness is the floor for the easiness factor. An item never grows
	// harder than this; it just stays at the minimum growth rate.
	MinEasiness = 1.3

	// PassingQuality is the lowest quality score counted as a successful
	// recall. Anything below resets the repetition streak.
	PassingQuality = 3
)

// ErrInvalidQuality is returned when a quality score is outside 0..5.
// Callers control this value, so an out-of-range score is a caller bug and
// is rejected rather than clamped.
var ErrInvalidQuality = errors.New("quality score must be between 0 and 5")

// ComputeNext applies the SM-2 update to an item for a review performed
// today with the given quality score (0-5). The input item is not modified.
//
// Failures (quality < 3) reset the repetition streak and schedule the item
// for tomorrow. The easiness factor is adjusted on every review, pass or
// fail, and clamped to MinEasiness.
func ComputeNext(item Item, quality int, today time.Time) (Item, error) {
	if quality < 0 || quality > 5 {
		return Item{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	q := float64(quality)
	ef := item.EasinessFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEasiness {
		ef = MinEasiness
	}

	next := item
	next.EasinessFactor = ef

	if quality < PassingQuality {
		next.Repetitions = 0
		next.Interval = 1
	} else {
		next.Repetitions = item.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			next.Interval = int(math.Round(float64(item.Interval) * ef))
		}
	}

	next.LastReviewed = today
	next.DueDate = today.AddDate(0, 0, next.Interval)
	return next, nil
}

// NewItem creates the review record for a challenge's first completion.
// Creation and first review are one operation: the fresh record is run
// through ComputeNext immediately, so the result already carries its first
// real schedule.
func NewItem(challengeID, trackID string, quality int, today time.Time) (Item, error) {
	item := Item{
		ChallengeID:    challengeID,
		TrackID:        trackID,
		EasinessFactor: InitialEasiness,
		Repetitions:    0,
		Interval:       0,
		LastReviewed:   today,
	}
	return ComputeNext(item, quality, today)
}
