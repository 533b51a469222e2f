package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

var house = models.Identity{
	Profile: models.Profile{ID: "5", Username: "house", Name: "Gregory House"},
	Role:    models.RoleDoctor,
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := NewFileStore(dir, "currentUser", zap.NewNop())
	ctx := context.Background()

	identity, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)

	require.NoError(t, store.Save(ctx, house))

	identity, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, house, *identity)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	identity, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestFileStore_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "currentUser.json"), []byte("{not json"), 0o600))

	_, err := NewFileStore(dir, "currentUser", zap.NewNop()).Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, exceptions.KindStorage, exceptions.KindOf(err))
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "medicare:session:abc").Return("", nil)

		identity, err := NewRedisStore(repo, "medicare:session:abc", zap.NewNop()).Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, identity)
		repo.AssertExpectations(t)
	})

	t.Run("stored identity", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "k").Return(`{"id": 5, "username": "house", "name": "Gregory House", "user_type": "doctor"}`, nil)

		identity, err := NewRedisStore(repo, "k", zap.NewNop()).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, house, *identity)
	})

	t.Run("save without expiry", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Set", ctx, "k", house, time.Duration(0)).Return(nil)

		require.NoError(t, NewRedisStore(repo, "k", zap.NewNop()).Save(ctx, house))
		repo.AssertExpectations(t)
	})

	t.Run("clear failure surfaces", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Delete", ctx, "k").Return(exceptions.ErrRedisDelete(errors.New("conn refused")))

		err := NewRedisStore(repo, "k", zap.NewNop()).Clear(ctx)
		assert.Equal(t, exceptions.KindStorage, exceptions.KindOf(err))
	})
}

func TestNewProvider(t *testing.T) {
	dir := t.TempDir()

	provider, err := NewProvider(config.Session{Driver: config.SessionDriverFile, FileDir: dir, Key: "currentUser"}, nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, provider.ForSession("cookie-1").Save(context.Background(), house))
	assert.FileExists(t, filepath.Join(dir, "currentUser-cookie-1.json"))

	_, err = NewProvider(config.Session{Driver: config.SessionDriverRedis}, nil, zap.NewNop())
	assert.Error(t, err)

	repo := new(MockRedisRepository)
	repo.On("Get", mock.Anything, "medicare:session:cookie-2").Return("", nil)
	provider, err = NewProvider(config.Session{Driver: config.SessionDriverRedis, Key: "currentUser"}, repo, zap.NewNop())
	require.NoError(t, err)
	_, err = provider.ForSession("cookie-2").Load(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = NewProvider(config.Session{Driver: "memcached"}, nil, zap.NewNop())
	assert.Error(t, err)
}
