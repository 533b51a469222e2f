package session

import (
	"fmt"
	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Provider hands out the durable slot for one session. The console has a
// single session and passes an empty id; the browser front-end passes its
// cookie id.
type Provider interface {
	ForSession(sessionID string) contracts.SessionStore
}

type ProviderFunc func(sessionID string) contracts.SessionStore

func (f ProviderFunc) ForSession(sessionID string) contracts.SessionStore {
	return f(sessionID)
}

// NewProvider selects the slot backend configured by SESSION_DRIVER. redis
// may be nil when the file driver is selected.
func NewProvider(sessionConfig config.Session, redis contracts.RedisRepository, log *zap.Logger) (Provider, error) {
	switch sessionConfig.Driver {
	case config.SessionDriverFile:
		return ProviderFunc(func(sessionID string) contracts.SessionStore {
			name := sessionConfig.Key
			if sessionID != "" {
				name = sessionConfig.Key + "-" + sessionID
			}
			return NewFileStore(sessionConfig.FileDir, name, log)
		}), nil
	case config.SessionDriverRedis:
		if redis == nil {
			return nil, fmt.Errorf("session driver %q requires a redis connection", sessionConfig.Driver)
		}
		return ProviderFunc(func(sessionID string) contracts.SessionStore {
			slot := sessionConfig.Key
			if sessionID != "" {
				slot = sessionID
			}
			return NewRedisStore(redis, constvars.SessionRedisPrefix+":"+slot, log)
		}), nil
	}
	return nil, fmt.Errorf("unknown session driver %q", sessionConfig.Driver)
}
