package repository

import (
	"context"

	"slowka/internal/domain"
)

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(ctx context.Context, word domain.WordPair) error
	CountWords(ctx context.Context) (int, error)
	RandomWord(ctx context.Context) (*domain.WordPair, error)
}
