package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/utils"
	"github.com/staykeeper/staykeeper/internal/validators"
	"github.com/staykeeper/staykeeper/models"
)

// propertyService is the concrete implementation of PropertyService. It
// enforces the property business rules (name bounds, slug assignment) before
// delegating persistence to the PropertyRepository.
//
// Every mutation carries the caller's owner ID down to the repository, where
// the ownership scope is enforced inside the SQL statement itself.
type propertyService struct {
	propertyRepository store.PropertyRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewPropertyService constructs a PropertyService wired to the given
// repository and validator.
func NewPropertyService(propertyRepository store.PropertyRepository, validator validators.Validator, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateProperty validates and persists a new property for the given owner.
//
// The name is trimmed before validation, so surrounding whitespace never
// counts toward the length bounds. A public slug is generated exactly once
// here; it never changes afterwards, even when the property is renamed.
//
// Returns the persisted property or:
//   - [ErrValidation] when the trimmed name is shorter than 2 or longer than
//     100 characters. Nothing is persisted in that case.
//   - A wrapped storage error if the INSERT fails.
func (s *propertyService) CreateProperty(ctx context.Context, ownerID int64, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	property.Name = strings.TrimSpace(property.Name)
	property.Address = strings.TrimSpace(property.Address)

	if err := s.validator.Validate(ctx, property); err != nil {
		log.Error().Int64("owner_id", ownerID).Err(err).Msg("invalid property data provided")
		return models.Property{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	property.OwnerID = ownerID
	property.Slug = utils.GenerateSlug(property.Name)

	created, err := s.propertyRepository.CreateProperty(ctx, property)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("property creation ended with error")
		return models.Property{}, fmt.Errorf("property creation ended with error: %w", err)
	}

	return created, nil
}

// ListProperties returns every property of the given owner.
func (s *propertyService) ListProperties(ctx context.Context, ownerID int64) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	properties, err := s.propertyRepository.GetProperties(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("property listing ended with error")
		return nil, fmt.Errorf("property listing ended with error: %w", err)
	}

	return properties, nil
}

// GetProperty returns one property scoped by the owner ID.
func (s *propertyService) GetProperty(ctx context.Context, propertyID, ownerID int64) (models.Property, error) {
	property, err := s.propertyRepository.GetPropertyByID(ctx, propertyID, ownerID)
	if err != nil {
		return models.Property{}, fmt.Errorf("property lookup ended with error: %w", err)
	}

	return property, nil
}

// UpdateProperty applies a partial update to a property of the given owner.
//
// The patch must carry at least one field; a provided name is trimmed and
// re-checked against the length bounds. The slug is never part of the patch.
func (s *propertyService) UpdateProperty(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error) {
	log := logger.FromContext(ctx)

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		log.Error().Int64("property_id", propertyID).Err(err).Msg("invalid property patch provided")
		return models.Property{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.propertyRepository.UpdateProperty(ctx, propertyID, ownerID, patch)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("property update ended with error")
		return models.Property{}, fmt.Errorf("property update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteProperty removes a property of the given owner together with all of
// its sections (cascade).
func (s *propertyService) DeleteProperty(ctx context.Context, propertyID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := s.propertyRepository.DeleteProperty(ctx, propertyID, ownerID); err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("property deletion ended with error")
		return fmt.Errorf("property deletion ended with error: %w", err)
	}

	return nil
}
