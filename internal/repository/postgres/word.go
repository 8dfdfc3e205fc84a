package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"slowka/internal/domain"
)

// WordRepo implements repository.WordRepository and store.WordStore
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves a Polish-English pair
func (r *WordRepo) SaveWord(ctx context.Context, word domain.WordPair) error {
	query := `
		INSERT INTO words (polish, english)
		VALUES ($1, $2)
	`
	_, err := r.db.ExecContext(ctx, query, word.Polish(), word.English())
	return err
}

// CountWords returns the number of stored words
func (r *WordRepo) CountWords(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	return count, err
}

// RandomWord returns a random word, nil if the table is empty
func (r *WordRepo) RandomWord(ctx context.Context) (*domain.WordPair, error) {
	var polish, english string
	query := `
		SELECT polish, english
		FROM words
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRowContext(ctx, query).Scan(&polish, &english)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w, err := domain.NewWordPair(polish, english)
	if err != nil {
		return nil, fmt.Errorf("stored word is invalid: %w", err)
	}
	return &w, nil
}

// Random implements store.WordStore on top of RandomWord
func (r *WordRepo) Random(ctx context.Context) (domain.WordPair, error) {
	w, err := r.RandomWord(ctx)
	if err != nil {
		return domain.WordPair{}, fmt.Errorf("failed to get random word: %w", err)
	}
	if w == nil {
		return domain.WordPair{}, domain.ErrEmptyStore
	}
	return *w, nil
}

// Ping checks the database connection
func (r *WordRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
