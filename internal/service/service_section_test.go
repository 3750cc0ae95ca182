package service

import (
	"context"
	"testing"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/validators"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.SectionRepository
// ─────────────────────────────────────────────

type mockSectionRepository struct {
	createFn func(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	listFn   func(ctx context.Context, propertyID int64) ([]models.Section, error)
	updateFn func(ctx context.Context, ownerID int64, section models.Section) (models.Section, error)
	deleteFn func(ctx context.Context, sectionID, ownerID int64) error
}

func (m *mockSectionRepository) CreateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, section)
	}
	return section, nil
}

func (m *mockSectionRepository) GetSectionsByProperty(ctx context.Context, propertyID int64) ([]models.Section, error) {
	if m.listFn != nil {
		return m.listFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *mockSectionRepository) UpdateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, section)
	}
	return section, nil
}

func (m *mockSectionRepository) DeleteSection(ctx context.Context, sectionID, ownerID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, sectionID, ownerID)
	}
	return nil
}

func newTestSectionService(sections store.SectionRepository, properties store.PropertyRepository) SectionService {
	if properties == nil {
		properties = &mockPropertyRepository{}
	}
	return NewSectionService(sections, properties, validators.NewGuideValidator(), logger.Nop())
}

func TestCreateSection_Success(t *testing.T) {
	repo := &mockSectionRepository{
		createFn: func(_ context.Context, ownerID int64, section models.Section) (models.Section, error) {
			assert.Equal(t, int64(1), ownerID)
			section.ID = 100
			return section, nil
		},
	}

	svc := newTestSectionService(repo, nil)
	created, err := svc.CreateSection(context.Background(), 1, models.Section{
		PropertyID: 10,
		Category:   models.CategoryEssentials,
		Title:      "  WiFi  ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, "WiFi", created.Title)
}

func TestCreateSection_BlankTitle(t *testing.T) {
	called := false
	repo := &mockSectionRepository{
		createFn: func(_ context.Context, _ int64, section models.Section) (models.Section, error) {
			called = true
			return section, nil
		},
	}

	svc := newTestSectionService(repo, nil)
	_, err := svc.CreateSection(context.Background(), 1, models.Section{
		PropertyID: 10,
		Category:   models.CategoryGear,
		Title:      "   ",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, called)
}

func TestCreateSection_UnknownCategory(t *testing.T) {
	svc := newTestSectionService(&mockSectionRepository{}, nil)

	_, err := svc.CreateSection(context.Background(), 1, models.Section{
		PropertyID: 10,
		Category:   "misc",
		Title:      "WiFi",
	})
	// a caller bug, not user validation
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestUpdateSection_UnknownCategory(t *testing.T) {
	svc := newTestSectionService(&mockSectionRepository{}, nil)

	_, err := svc.UpdateSection(context.Background(), 1, models.Section{
		ID:       100,
		Category: "misc",
		Title:    "WiFi",
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCreateSection_ForeignProperty(t *testing.T) {
	repo := &mockSectionRepository{
		createFn: func(context.Context, int64, models.Section) (models.Section, error) {
			return models.Section{}, store.ErrNotFoundOrForbidden
		},
	}

	svc := newTestSectionService(repo, nil)
	_, err := svc.CreateSection(context.Background(), 99, models.Section{
		PropertyID: 10,
		Category:   models.CategoryFun,
		Title:      "Beach",
	})
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}

func TestListSections_VerifiesOwnership(t *testing.T) {
	properties := &mockPropertyRepository{
		getByIDFn: func(context.Context, int64, int64) (models.Property, error) {
			return models.Property{}, store.ErrNotFoundOrForbidden
		},
	}
	sections := &mockSectionRepository{
		listFn: func(context.Context, int64) ([]models.Section, error) {
			t.Fatal("sections must not be listed for a foreign property")
			return nil, nil
		},
	}

	svc := newTestSectionService(sections, properties)
	_, err := svc.ListSections(context.Background(), 10, 99)
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}

func TestListSections_Success(t *testing.T) {
	properties := &mockPropertyRepository{
		getByIDFn: func(_ context.Context, propertyID, ownerID int64) (models.Property, error) {
			return models.Property{ID: propertyID, OwnerID: ownerID}, nil
		},
	}
	sections := &mockSectionRepository{
		listFn: func(_ context.Context, propertyID int64) ([]models.Section, error) {
			return []models.Section{{ID: 1, PropertyID: propertyID}}, nil
		},
	}

	svc := newTestSectionService(sections, properties)
	got, err := svc.ListSections(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateSection_TrimsTitle(t *testing.T) {
	repo := &mockSectionRepository{
		updateFn: func(_ context.Context, _ int64, section models.Section) (models.Section, error) {
			assert.Equal(t, "Checkout", section.Title)
			return section, nil
		},
	}

	svc := newTestSectionService(repo, nil)
	_, err := svc.UpdateSection(context.Background(), 1, models.Section{
		ID:       100,
		Category: models.CategoryLogistics,
		Title:    " Checkout ",
	})
	require.NoError(t, err)
}

func TestDeleteSection_NotOwned(t *testing.T) {
	repo := &mockSectionRepository{
		deleteFn: func(context.Context, int64, int64) error {
			return store.ErrNotFoundOrForbidden
		},
	}

	svc := newTestSectionService(repo, nil)
	err := svc.DeleteSection(context.Background(), 100, 99)
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}
