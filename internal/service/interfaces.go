package service

import (
	"context"

	"github.com/staykeeper/staykeeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PropertyService interface {
	CreateProperty(ctx context.Context, ownerID int64, property models.Property) (models.Property, error)
	ListProperties(ctx context.Context, ownerID int64) ([]models.Property, error)
	GetProperty(ctx context.Context, propertyID, ownerID int64) (models.Property, error)
	UpdateProperty(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error)
	DeleteProperty(ctx context.Context, propertyID, ownerID int64) error
}

type SectionService interface {
	CreateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	ListSections(ctx context.Context, propertyID, ownerID int64) ([]models.Section, error)
	UpdateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	DeleteSection(ctx context.Context, sectionID, ownerID int64) error
}

// GuideService resolves the public, guest-facing view of a property manual.
type GuideService interface {
	ResolveGuide(ctx context.Context, slug string) (models.Guide, error)
}
