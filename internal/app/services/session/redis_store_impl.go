package session

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisStore struct {
	RedisRepository contracts.RedisRepository
	key             string
	Log             *zap.Logger
}

func NewRedisStore(redisRepository contracts.RedisRepository, key string, logger *zap.Logger) contracts.SessionStore {
	return &redisStore{
		RedisRepository: redisRepository,
		key:             key,
		Log:             logger,
	}
}

func (s *redisStore) Load(ctx context.Context) (*models.Identity, error) {
	data, err := s.RedisRepository.Get(ctx, s.key)
	if err != nil {
		s.Log.Error("redisStore.Load error getting session",
			zap.String(constvars.LoggingSessionKey, s.key),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	identity := new(models.Identity)
	err = json.Unmarshal([]byte(data), identity)
	if err != nil {
		s.Log.Error("redisStore.Load error parsing session",
			zap.String(constvars.LoggingSessionKey, s.key),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return identity, nil
}

// Save never sets an expiry; the slot lives until Clear.
func (s *redisStore) Save(ctx context.Context, identity models.Identity) error {
	err := s.RedisRepository.Set(ctx, s.key, identity, 0)
	if err != nil {
		s.Log.Error("redisStore.Save error setting session",
			zap.String(constvars.LoggingSessionKey, s.key),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("redisStore.Save succeeded",
		zap.String(constvars.LoggingSessionKey, s.key),
		zap.String(constvars.LoggingUsernameKey, identity.Username),
	)
	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	err := s.RedisRepository.Delete(ctx, s.key)
	if err != nil {
		s.Log.Error("redisStore.Clear error deleting session",
			zap.String(constvars.LoggingSessionKey, s.key),
			zap.Error(err),
		)
		return err
	}
	return nil
}
