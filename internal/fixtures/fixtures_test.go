package fixtures

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"slowka/internal/domain"
	"slowka/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	words, err := Default()

	require.NoError(t, err)
	assert.Len(t, words, 6)
	assert.Equal(t, domain.MustWordPair("czesc", "hello"), words[0])
	assert.Contains(t, words, domain.MustWordPair("tak", "yes"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expected      []domain.WordPair
		expectedError error
	}{
		{
			name:    "two rows",
			content: "- pl: czesc\n  eng: hello\n- pl: nigdy\n  eng: never\n",
			expected: []domain.WordPair{
				domain.MustWordPair("czesc", "hello"),
				domain.MustWordPair("nigdy", "never"),
			},
		},
		{
			name:          "empty document",
			content:       "",
			expectedError: ErrNoWords,
		},
		{
			name:          "empty list",
			content:       "[]",
			expectedError: ErrNoWords,
		},
		{
			name:          "missing english",
			content:       "- pl: czesc\n",
			expectedError: domain.ErrInvalidWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Parse([]byte(tt.content))

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, words)
			}
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("- pl: czesc\n  eng: hello\n  de: hallo\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.yml")
	require.NoError(t, os.WriteFile(path, []byte("- pl: tak\n  eng: \"yes\"\n"), 0o644))

	words, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{domain.MustWordPair("tak", "yes")}, words)
}

func TestLoad_MissingFile(t *testing.T) {
	words, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSeed(t *testing.T) {
	words := []domain.WordPair{
		domain.MustWordPair("czesc", "hello"),
		domain.MustWordPair("nigdy", "never"),
	}

	tests := []struct {
		name          string
		count         int
		countError    error
		saveError     error
		expectSaves   bool
		expectedError bool
	}{
		{
			name:          "empty repository is seeded",
			count:         0,
			expectSaves:   true,
			expectedError: false,
		},
		{
			name:          "non-empty repository is skipped",
			count:         3,
			expectSaves:   false,
			expectedError: false,
		},
		{
			name:          "count error",
			countError:    fmt.Errorf("db error"),
			expectSaves:   false,
			expectedError: true,
		},
		{
			name:          "save error",
			count:         0,
			saveError:     fmt.Errorf("db error"),
			expectSaves:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("CountWords", mock.Anything).Return(tt.count, tt.countError)

			if tt.expectSaves {
				if tt.saveError != nil {
					mockRepo.On("SaveWord", mock.Anything, words[0]).Return(tt.saveError).Once()
				} else {
					for _, w := range words {
						mockRepo.On("SaveWord", mock.Anything, w).Return(nil).Once()
					}
				}
			}

			err := Seed(context.Background(), mockRepo, words, testutil.NewTestLogger())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if !tt.expectSaves {
				mockRepo.AssertNotCalled(t, "SaveWord", mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
