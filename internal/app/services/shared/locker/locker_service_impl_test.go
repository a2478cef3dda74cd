package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) Increment(ctx context.Context, key string, exp time.Duration) (int64, error) {
	args := m.Called(ctx, key, exp)
	return args.Get(0).(int64), args.Error(1)
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("TrySetNX", ctx, "patient-import:abc", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "patient-import:abc", time.Minute)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("held elsewhere", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("TrySetNX", ctx, "patient-import:abc", mock.Anything, time.Minute).Return(false, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "patient-import:abc", time.Minute)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "k").Return(`"token-1"`, nil)
		repo.On("Delete", ctx, "k").Return(nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "token-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("foreign token is rejected", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "k").Return(`"token-2"`, nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "token-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", ctx, "k")
	})

	t.Run("expired lock is a no-op", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, "k").Return("", nil)

		assert.NoError(t, NewLockService(repo, zap.NewNop()).Unlock(ctx, "k", "token-1"))
	})
}
