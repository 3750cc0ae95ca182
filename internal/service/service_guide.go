package service

import (
	"context"
	"fmt"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
)

// guideService is the concrete implementation of GuideService. It composes
// the public view of a property manual for anonymous guests.
type guideService struct {
	propertyRepository store.PropertyRepository
	sectionRepository  store.SectionRepository
	logger             *logger.Logger
}

// NewGuideService constructs a GuideService wired to the given repositories.
func NewGuideService(propertyRepository store.PropertyRepository, sectionRepository store.SectionRepository, logger *logger.Logger) GuideService {
	return &guideService{
		propertyRepository: propertyRepository,
		sectionRepository:  sectionRepository,
		logger:             logger,
	}
}

// ResolveGuide looks a property up by its public slug and returns the
// guest-facing guide: the public projection of the property (the owner ID
// never leaves this method) plus all of its sections.
//
// Returns store.ErrNotFound when no property carries the slug.
func (s *guideService) ResolveGuide(ctx context.Context, slug string) (models.Guide, error) {
	log := logger.FromContext(ctx)

	property, err := s.propertyRepository.GetPropertyBySlug(ctx, slug)
	if err != nil {
		return models.Guide{}, fmt.Errorf("guide resolution ended with error: %w", err)
	}

	sections, err := s.sectionRepository.GetSectionsByProperty(ctx, property.ID)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("guide section listing ended with error")
		return models.Guide{}, fmt.Errorf("guide section listing ended with error: %w", err)
	}

	return models.Guide{
		Property: property.Public(),
		Sections: sections,
	}, nil
}
