package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/validators"
	"github.com/staykeeper/staykeeper/models"
)

// sectionService is the concrete implementation of SectionService. It
// enforces the section business rules (required title, known category)
// before delegating persistence to the SectionRepository.
type sectionService struct {
	sectionRepository  store.SectionRepository
	propertyRepository store.PropertyRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewSectionService constructs a SectionService wired to the given
// repositories and validator. The property repository is needed to verify
// ownership when listing sections, since the section table itself carries no
// owner column.
func NewSectionService(sectionRepository store.SectionRepository, propertyRepository store.PropertyRepository, validator validators.Validator, logger *logger.Logger) SectionService {
	return &sectionService{
		sectionRepository:  sectionRepository,
		propertyRepository: propertyRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateSection validates and persists a new section under one of the
// owner's properties.
//
// Returns the persisted section or:
//   - [ErrUnknownCategory] when the category is outside the closed set.
//   - [ErrValidation] when the title is blank.
//   - store.ErrNotFoundOrForbidden when the target property does not exist
//     or belongs to a different owner.
func (s *sectionService) CreateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	log := logger.FromContext(ctx)

	section.Title = strings.TrimSpace(section.Title)

	if !section.Category.Valid() {
		log.Error().Int64("property_id", section.PropertyID).Str("category", string(section.Category)).Msg("section category is outside the closed set")
		return models.Section{}, fmt.Errorf("%w: %q", ErrUnknownCategory, section.Category)
	}

	if err := s.validator.Validate(ctx, section.Payload(), validators.FieldTitle); err != nil {
		log.Error().Int64("property_id", section.PropertyID).Err(err).Msg("invalid section data provided")
		return models.Section{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.sectionRepository.CreateSection(ctx, ownerID, section)
	if err != nil {
		log.Err(err).Int64("property_id", section.PropertyID).Msg("section creation ended with error")
		return models.Section{}, fmt.Errorf("section creation ended with error: %w", err)
	}

	return created, nil
}

// ListSections returns every section of the given property, verifying first
// that the property belongs to the caller.
func (s *sectionService) ListSections(ctx context.Context, propertyID, ownerID int64) ([]models.Section, error) {
	log := logger.FromContext(ctx)

	if _, err := s.propertyRepository.GetPropertyByID(ctx, propertyID, ownerID); err != nil {
		return nil, fmt.Errorf("property lookup ended with error: %w", err)
	}

	sections, err := s.sectionRepository.GetSectionsByProperty(ctx, propertyID)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("section listing ended with error")
		return nil, fmt.Errorf("section listing ended with error: %w", err)
	}

	return sections, nil
}

// UpdateSection replaces the editable fields of one section of the caller's
// property.
func (s *sectionService) UpdateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	log := logger.FromContext(ctx)

	section.Title = strings.TrimSpace(section.Title)

	if !section.Category.Valid() {
		log.Error().Int64("section_id", section.ID).Str("category", string(section.Category)).Msg("section category is outside the closed set")
		return models.Section{}, fmt.Errorf("%w: %q", ErrUnknownCategory, section.Category)
	}

	if err := s.validator.Validate(ctx, section.Payload(), validators.FieldTitle); err != nil {
		log.Error().Int64("section_id", section.ID).Err(err).Msg("invalid section data provided")
		return models.Section{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.sectionRepository.UpdateSection(ctx, ownerID, section)
	if err != nil {
		log.Err(err).Int64("section_id", section.ID).Msg("section update ended with error")
		return models.Section{}, fmt.Errorf("section update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteSection removes one section of the caller's property.
func (s *sectionService) DeleteSection(ctx context.Context, sectionID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := s.sectionRepository.DeleteSection(ctx, sectionID, ownerID); err != nil {
		log.Err(err).Int64("section_id", sectionID).Msg("section deletion ended with error")
		return fmt.Errorf("section deletion ended with error: %w", err)
	}

	return nil
}
