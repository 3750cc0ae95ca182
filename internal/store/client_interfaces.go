package store

import (
	"context"

	"github.com/staykeeper/staykeeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the owner's sign-in state on the client device.
// At most one session exists at a time.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// GuideCacheRepository is the client-side read cache of properties and their
// manual sections. It is refreshed after every successful fetch and
// read from when the backend is unreachable.
type GuideCacheRepository interface {
	ReplaceProperties(ctx context.Context, properties []models.Property) error
	GetProperties(ctx context.Context) ([]models.Property, error)
	ReplaceSections(ctx context.Context, propertyID int64, sections []models.Section) error
	GetSections(ctx context.Context, propertyID int64) ([]models.Section, error)
}
