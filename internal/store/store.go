package store

import (
	"context"
	"math/rand/v2"

	"slowka/internal/domain"
)

// WordStore picks words for the learn page
type WordStore interface {
	Random(ctx context.Context) (domain.WordPair, error)
}

// MemoryStore keeps a fixed set of words in memory.
// It is read-only after construction and safe for concurrent use.
type MemoryStore struct {
	words []domain.WordPair
	intn  func(n int) int
}

// NewMemoryStore creates a store holding a copy of words
func NewMemoryStore(words []domain.WordPair) *MemoryStore {
	owned := make([]domain.WordPair, len(words))
	copy(owned, words)

	return &MemoryStore{
		words: owned,
		intn:  rand.IntN,
	}
}

// Random returns a uniformly chosen word
func (s *MemoryStore) Random(ctx context.Context) (domain.WordPair, error) {
	if err := ctx.Err(); err != nil {
		return domain.WordPair{}, err
	}
	if len(s.words) == 0 {
		return domain.WordPair{}, domain.ErrEmptyStore
	}
	return s.words[s.intn(len(s.words))], nil
}

// Len returns the number of stored words
func (s *MemoryStore) Len() int {
	return len(s.words)
}

// Words returns a copy of all stored words in their original order
func (s *MemoryStore) Words() []domain.WordPair {
	out := make([]domain.WordPair, len(s.words))
	copy(out, s.words)
	return out
}
