package session

import (
	"context"
	"errors"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fileStore struct {
	path string
	Log  *zap.Logger
}

// NewFileStore keeps the identity as <dir>/<key>.json.
func NewFileStore(dir, key string, logger *zap.Logger) contracts.SessionStore {
	return &fileStore{
		path: filepath.Join(dir, key+".json"),
		Log:  logger,
	}
}

func (s *fileStore) Load(ctx context.Context) (*models.Identity, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		s.Log.Error("fileStore.Load error reading session file",
			zap.String(constvars.LoggingSessionKey, s.path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionFileRead(err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	identity := new(models.Identity)
	err = json.Unmarshal(data, identity)
	if err != nil {
		s.Log.Error("fileStore.Load error parsing session file",
			zap.String(constvars.LoggingSessionKey, s.path),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return identity, nil
}

func (s *fileStore) Save(ctx context.Context, identity models.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return exceptions.ErrSessionFileWrite(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return exceptions.ErrSessionFileWrite(err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return exceptions.ErrSessionFileWrite(err)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		s.Log.Error("fileStore.Save error replacing session file",
			zap.String(constvars.LoggingSessionKey, s.path),
			zap.Error(err),
		)
		return exceptions.ErrSessionFileWrite(err)
	}

	s.Log.Info("fileStore.Save succeeded",
		zap.String(constvars.LoggingSessionKey, s.path),
		zap.String(constvars.LoggingUsernameKey, identity.Username),
	)
	return nil
}

func (s *fileStore) Clear(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.Log.Error("fileStore.Clear error removing session file",
			zap.String(constvars.LoggingSessionKey, s.path),
			zap.Error(err),
		)
		return exceptions.ErrSessionFileRemove(err)
	}
	return nil
}
