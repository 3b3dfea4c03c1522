package store

import (
	"context"
	"sync"
)

// MemoryStore keeps scores for the lifetime of the process.
type MemoryStore struct {
	scores []int
	mu     sync.Mutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: []int{}}
}

func (s *MemoryStore) Load(_ context.Context) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int{}, s.scores...)
}

func (s *MemoryStore) AddAndPersist(_ context.Context, e Entry, existing []int) []int {
	scores := Insert(existing, e.Score)
	s.mu.Lock()
	s.scores = append([]int{}, scores...)
	s.mu.Unlock()
	return scores
}

func (s *MemoryStore) Close() error {
	return nil
}
