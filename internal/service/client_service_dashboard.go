package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/validators"
	"github.com/staykeeper/staykeeper/models"
)

type clientDashboardService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	validator  validators.Validator

	guestBaseURL string
}

// NewClientDashboardService builds the property list service of the owner
// client. guestBaseURL is the public base URL used to compose shareable
// guide links.
func NewClientDashboardService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, guestBaseURL string) ClientDashboardService {
	return &clientDashboardService{
		localStore:   localStore,
		adapter:      serverAdapter,
		validator:    validators.NewGuideValidator(),
		guestBaseURL: strings.TrimRight(guestBaseURL, "/"),
	}
}

func (d *clientDashboardService) Properties(ctx context.Context) ([]models.Property, bool, error) {
	properties, err := d.adapter.ListProperties(ctx)
	if err == nil {
		// cache refresh is best effort; a stale cache is still useful offline
		_ = d.localStore.GuideCacheRepository.ReplaceProperties(ctx, properties)
		return properties, false, nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrServerUnavailable) {
		return nil, false, mapped
	}

	cached, cacheErr := d.localStore.GuideCacheRepository.GetProperties(ctx)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("%w: cache unavailable: %w", mapped, cacheErr)
	}

	return cached, true, nil
}

func (d *clientDashboardService) CreateProperty(ctx context.Context, name, address, coverImage string) (models.Property, error) {
	property := models.Property{
		Name:       strings.TrimSpace(name),
		Address:    strings.TrimSpace(address),
		CoverImage: strings.TrimSpace(coverImage),
	}

	// same name bounds the server enforces, checked before any network call
	if err := d.validator.Validate(ctx, property); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := d.adapter.CreateProperty(ctx, property)
	if err != nil {
		return models.Property{}, mapConflict(err, store.ErrSlugAlreadyExists)
	}

	return created, nil
}

func (d *clientDashboardService) UpdateProperty(ctx context.Context, propertyID int64, patch models.PropertyPatch) (models.Property, error) {
	if err := d.validator.Validate(ctx, patch); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := d.adapter.UpdateProperty(ctx, propertyID, patch)
	if err != nil {
		return models.Property{}, mapAdapterError(err)
	}

	return updated, nil
}

func (d *clientDashboardService) DeleteProperty(ctx context.Context, propertyID int64) error {
	if err := d.adapter.DeleteProperty(ctx, propertyID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (d *clientDashboardService) GuestLink(property models.Property) string {
	return d.guestBaseURL + "/g/" + property.Slug
}
