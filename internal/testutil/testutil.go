package testutil

import (
	"context"

	"slowka/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(polish, english string) domain.WordPair {
	return domain.MustWordPair(polish, english)
}

// FixedWordStore always returns the same word and counts calls
type FixedWordStore struct {
	Word  domain.WordPair
	Err   error
	Calls int
}

// NewFixedWordStore creates a store that always returns word
func NewFixedWordStore(word domain.WordPair) *FixedWordStore {
	return &FixedWordStore{Word: word}
}

func (s *FixedWordStore) Random(ctx context.Context) (domain.WordPair, error) {
	s.Calls++
	if s.Err != nil {
		return domain.WordPair{}, s.Err
	}
	return s.Word, nil
}
