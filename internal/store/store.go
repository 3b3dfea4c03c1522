package store

import (
	"cmp"
	"context"
	"slices"
)

// MaxEntries caps every high-score list.
const MaxEntries = 10

// Entry is one finished session handed to a store.
type Entry struct {
	SessionID string
	Car       string
	Score     int
}

// HighScoreStore persists the top-N score list. Implementations never surface
// read or write failures to the caller: a failed Load yields an empty list and
// a failed write still returns the updated in-memory list.
type HighScoreStore interface {
	// Load returns the stored scores, highest first.
	Load(ctx context.Context) []int
	// AddAndPersist inserts e.Score into existing, persists the result and returns it.
	AddAndPersist(ctx context.Context, e Entry, existing []int) []int
	// Close releases store resources.
	Close() error
}

// Insert returns a new list holding existing plus score, sorted descending and
// capped at MaxEntries. existing is not modified.
func Insert(existing []int, score int) []int {
	out := make([]int, 0, len(existing)+1)
	out = append(out, existing...)
	out = append(out, score)
	return normalize(out)
}

func normalize(scores []int) []int {
	slices.SortFunc(scores, func(a, b int) int { return cmp.Compare(b, a) })
	if len(scores) > MaxEntries {
		scores = scores[:MaxEntries]
	}
	return scores
}
