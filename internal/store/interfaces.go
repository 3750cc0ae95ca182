package store

import (
	"context"

	"github.com/staykeeper/staykeeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type PropertyRepository interface {
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	GetProperties(ctx context.Context, ownerID int64) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, propertyID, ownerID int64) (models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (models.Property, error)
	UpdateProperty(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error)
	DeleteProperty(ctx context.Context, propertyID, ownerID int64) error
}

type SectionRepository interface {
	CreateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	GetSectionsByProperty(ctx context.Context, propertyID int64) ([]models.Section, error)
	UpdateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	DeleteSection(ctx context.Context, sectionID, ownerID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented per database engine.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
