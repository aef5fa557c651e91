// Package review implements the spaced-repetition record keeping: the SM-2
// schedule computation and the helpers for working with a learner's review
// pool. Everything here is pure; callers supply "today" and persist the
// returned values themselves.
package review

import "time"

// Item is one learner's spaced-repetition record for one drill or quiz.
// An item is created the first time a challenge is completed and mutated by
// every subsequent completion; it is never deleted outside a full reset.
type Item struct {
	ChallengeID    string    `json:"challenge_id"`
	TrackID        string    `json:"track_id"`
	EasinessFactor float64   `json:"easiness_factor"`
	Repetitions    int       `json:"repetitions"`
	Interval       int       `json:"interval"`
	DueDate        time.Time `json:"due_date"`
	LastReviewed   time.Time `json:"last_reviewed"`
}

// IsDue reports whether the item is due on or before the given day.
func (it Item) IsDue(today time.Time) bool {
	return !it.DueDate.After(today)
}

// Find returns the pool entry for challengeID. "No review history yet" is the
// common case, so absence is reported through the bool, never an error.
func Find(pool []Item, challengeID string) (Item, bool) {
	for _, it := range pool {
		if it.ChallengeID == challengeID {
			return it, true
		}
	}
	return Item{}, false
}

// Upsert returns a copy of pool with item replacing the entry of the same
// ChallengeID, or appended if none exists. The input pool is not modified.
func Upsert(pool []Item, item Item) []Item {
	out := make([]Item, len(pool), len(pool)+1)
	copy(out, pool)
	for i, it := range out {
		if it.ChallengeID == item.ChallengeID {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// Due returns every pool item due on or before today, in pool order.
// The daily selector shuffles downstream, so ordering here carries no meaning.
func Due(pool []Item, today time.Time) []Item {
	var due []Item
	for _, it := range pool {
		if it.IsDue(today) {
			due = append(due, it)
		}
	}
	return due
}
