package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"slowka/internal/domain"
	"slowka/internal/repository"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

//go:embed words.yml
var defaultWords []byte

// ErrNoWords is returned when a fixture set contains no rows
var ErrNoWords = errors.New("fixture set has no words")

// row is a single fixture entry as written in YAML
type row struct {
	Polish  string `yaml:"pl"`
	English string `yaml:"eng"`
}

// Default returns the embedded word set
func Default() ([]domain.WordPair, error) {
	return Parse(defaultWords)
}

// Load reads a fixture file from disk
func Load(path string) ([]domain.WordPair, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading fixture file: %w", err)
	}

	words, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing fixture file %s: %w", path, err)
	}
	return words, nil
}

// Parse decodes a YAML list of {pl, eng} rows
func Parse(content []byte) ([]domain.WordPair, error) {
	var rows []row
	if err := yaml.UnmarshalStrict(content, &rows); err != nil {
		return nil, fmt.Errorf("error decoding fixtures: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoWords
	}

	words := make([]domain.WordPair, 0, len(rows))
	for i, r := range rows {
		w, err := domain.NewWordPair(r.Polish, r.English)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		words = append(words, w)
	}

	return words, nil
}

// Seed inserts words into an empty repository.
// A repository that already holds words is left untouched.
func Seed(ctx context.Context, repo repository.WordRepository, words []domain.WordPair, logger *zap.Logger) error {
	count, err := repo.CountWords(ctx)
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}

	if count > 0 {
		logger.Info("Words already present, skipping seed", zap.Int("count", count))
		return nil
	}

	for _, w := range words {
		if err := repo.SaveWord(ctx, w); err != nil {
			return fmt.Errorf("failed to seed word %q: %w", w.String(), err)
		}
	}

	logger.Info("Seeded words", zap.Int("count", len(words)))
	return nil
}
