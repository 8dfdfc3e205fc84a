package testutil

import (
	"context"

	"slowka/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(ctx context.Context, word domain.WordPair) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) CountWords(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) RandomWord(ctx context.Context) (*domain.WordPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordPair), args.Error(1)
}

// MockWordStore is a mock for store.WordStore
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) Random(ctx context.Context) (domain.WordPair, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.WordPair), args.Error(1)
}
