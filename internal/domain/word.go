package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyStore is returned when a random word is requested from a store with no words
	ErrEmptyStore = errors.New("word store is empty")

	// ErrInvalidWord is returned when a word pair is missing one of its texts
	ErrInvalidWord = errors.New("invalid word pair")
)

// WordPair is a Polish word together with its English translation
type WordPair struct {
	polish  string
	english string
}

// NewWordPair creates a word pair, both texts are required
func NewWordPair(polish, english string) (WordPair, error) {
	if strings.TrimSpace(polish) == "" {
		return WordPair{}, fmt.Errorf("%w: polish text is empty", ErrInvalidWord)
	}
	if strings.TrimSpace(english) == "" {
		return WordPair{}, fmt.Errorf("%w: english text is empty", ErrInvalidWord)
	}
	return WordPair{polish: polish, english: english}, nil
}

// MustWordPair is like NewWordPair but panics on invalid input.
// Intended for tests and static tables.
func MustWordPair(polish, english string) WordPair {
	w, err := NewWordPair(polish, english)
	if err != nil {
		panic(err)
	}
	return w
}

// Polish returns the Polish text
func (w WordPair) Polish() string {
	return w.polish
}

// English returns the English text
func (w WordPair) English() string {
	return w.english
}

// IsZero reports whether w was never constructed
func (w WordPair) IsZero() bool {
	return w.polish == "" && w.english == ""
}

// String returns "polish - english"
func (w WordPair) String() string {
	return w.polish + " - " + w.english
}
