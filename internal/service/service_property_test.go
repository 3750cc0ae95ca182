package service

import (
	"context"
	"strings"
	"testing"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/validators"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.PropertyRepository
// ─────────────────────────────────────────────

type mockPropertyRepository struct {
	createFn    func(ctx context.Context, property models.Property) (models.Property, error)
	listFn      func(ctx context.Context, ownerID int64) ([]models.Property, error)
	getByIDFn   func(ctx context.Context, propertyID, ownerID int64) (models.Property, error)
	getBySlugFn func(ctx context.Context, slug string) (models.Property, error)
	updateFn    func(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error)
	deleteFn    func(ctx context.Context, propertyID, ownerID int64) error
}

func (m *mockPropertyRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	if m.createFn != nil {
		return m.createFn(ctx, property)
	}
	return property, nil
}

func (m *mockPropertyRepository) GetProperties(ctx context.Context, ownerID int64) ([]models.Property, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) GetPropertyByID(ctx context.Context, propertyID, ownerID int64) (models.Property, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, propertyID, ownerID)
	}
	return models.Property{}, nil
}

func (m *mockPropertyRepository) GetPropertyBySlug(ctx context.Context, slug string) (models.Property, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return models.Property{}, nil
}

func (m *mockPropertyRepository) UpdateProperty(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, propertyID, ownerID, patch)
	}
	return models.Property{}, nil
}

func (m *mockPropertyRepository) DeleteProperty(ctx context.Context, propertyID, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, propertyID, ownerID)
	}
	return nil
}

func newTestPropertyService(repo store.PropertyRepository) PropertyService {
	return NewPropertyService(repo, validators.NewGuideValidator(), logger.Nop())
}

func TestCreateProperty_TrimsAndSlugifies(t *testing.T) {
	var persisted models.Property
	repo := &mockPropertyRepository{
		createFn: func(_ context.Context, property models.Property) (models.Property, error) {
			persisted = property
			property.ID = 10
			return property, nil
		},
	}

	svc := newTestPropertyService(repo)
	created, err := svc.CreateProperty(context.Background(), 1, models.Property{Name: "  Seaside Villa  "})
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, "Seaside Villa", persisted.Name)
	assert.Equal(t, int64(1), persisted.OwnerID)
	assert.True(t, strings.HasPrefix(persisted.Slug, "seaside-villa-"), "slug %q", persisted.Slug)
}

func TestCreateProperty_RejectsBadName_WithoutPersisting(t *testing.T) {
	called := false
	repo := &mockPropertyRepository{
		createFn: func(_ context.Context, property models.Property) (models.Property, error) {
			called = true
			return property, nil
		},
	}

	svc := newTestPropertyService(repo)

	for _, name := range []string{"", "x", "   ", strings.Repeat("a", 101)} {
		_, err := svc.CreateProperty(context.Background(), 1, models.Property{Name: name})
		assert.ErrorIs(t, err, ErrValidation, "name %q", name)
	}
	assert.False(t, called, "repository must not be reached on validation failure")
}

func TestUpdateProperty_TrimsName(t *testing.T) {
	var gotPatch models.PropertyPatch
	repo := &mockPropertyRepository{
		updateFn: func(_ context.Context, _, _ int64, patch models.PropertyPatch) (models.Property, error) {
			gotPatch = patch
			return models.Property{ID: 10, Name: *patch.Name}, nil
		},
	}

	svc := newTestPropertyService(repo)
	name := "  Renamed Villa  "
	updated, err := svc.UpdateProperty(context.Background(), 10, 1, models.PropertyPatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Renamed Villa", *gotPatch.Name)
	assert.Equal(t, "Renamed Villa", updated.Name)
}

func TestUpdateProperty_EmptyPatch(t *testing.T) {
	svc := newTestPropertyService(&mockPropertyRepository{})

	_, err := svc.UpdateProperty(context.Background(), 10, 1, models.PropertyPatch{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProperty_NotOwned(t *testing.T) {
	repo := &mockPropertyRepository{
		updateFn: func(context.Context, int64, int64, models.PropertyPatch) (models.Property, error) {
			return models.Property{}, store.ErrNotFoundOrForbidden
		},
	}

	svc := newTestPropertyService(repo)
	name := "Renamed"
	_, err := svc.UpdateProperty(context.Background(), 10, 99, models.PropertyPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}

func TestListProperties_PassesOwner(t *testing.T) {
	repo := &mockPropertyRepository{
		listFn: func(_ context.Context, ownerID int64) ([]models.Property, error) {
			assert.Equal(t, int64(1), ownerID)
			return []models.Property{{ID: 10}}, nil
		},
	}

	svc := newTestPropertyService(repo)
	properties, err := svc.ListProperties(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, properties, 1)
}

func TestDeleteProperty_NotOwned(t *testing.T) {
	repo := &mockPropertyRepository{
		deleteFn: func(context.Context, int64, int64) error {
			return store.ErrNotFoundOrForbidden
		},
	}

	svc := newTestPropertyService(repo)
	err := svc.DeleteProperty(context.Background(), 10, 99)
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}
