package contracts

import (
	"context"
	"medicare-frontend/internal/app/models"
)

// SessionStore persists the authenticated identity in one durable slot.
// Load returns nil without error when the slot is empty.
type SessionStore interface {
	Load(ctx context.Context) (*models.Identity, error)
	Save(ctx context.Context, identity models.Identity) error
	Clear(ctx context.Context) error
}
