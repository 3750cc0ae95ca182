// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/mock"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEditorSvc(t *testing.T, ctrl *gomock.Controller) (ClientGuideEditorService, *mock.MockGuideCacheRepository, *mock.MockServerAdapter) {
	t.Helper()
	mockCache := mock.NewMockGuideCacheRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.ClientStorages{GuideCacheRepository: mockCache}
	svc := NewClientGuideEditorService(storages, mockAdapter)
	return svc, mockCache, mockAdapter
}

func testSections() []models.Section {
	return []models.Section{
		{ID: 1, PropertyID: 10, Category: models.CategoryEssentials, Title: "Wi-Fi"},
		{ID: 2, PropertyID: 10, Category: models.CategoryGear, Title: "Nespresso Machine"},
		{ID: 3, PropertyID: 10, Category: models.CategoryFun, Title: "Beach"},
	}
}

// loadEditor primes the working copy from the mocked server
func loadEditor(t *testing.T, svc ClientGuideEditorService, mockCache *mock.MockGuideCacheRepository, mockAdapter *mock.MockServerAdapter, sections []models.Section) {
	t.Helper()
	ctx := context.Background()

	mockAdapter.EXPECT().ListSections(ctx, int64(10)).Return(sections, nil)
	mockCache.EXPECT().ReplaceSections(ctx, int64(10), sections).Return(nil)

	got, fromCache, err := svc.Load(ctx, 10)
	require.NoError(t, err)
	require.False(t, fromCache)
	require.Equal(t, sections, got)
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestClientGuideEditorService_Load_OfflineFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	cached := testSections()

	mockAdapter.EXPECT().
		ListSections(ctx, int64(10)).
		Return(nil, fmt.Errorf("%w: list sections request: connection refused", adapter.ErrNetwork))
	mockCache.EXPECT().GetSections(ctx, int64(10)).Return(cached, nil)

	got, fromCache, err := svc.Load(ctx, 10)

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, cached, got)
	assert.Equal(t, cached, svc.Sections())
}

func TestClientGuideEditorService_Load_ForeignProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListSections(ctx, int64(99)).
		Return(nil, fmt.Errorf("%w: property not found", adapter.ErrNotFound))

	_, _, err := svc.Load(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
	assert.Empty(t, svc.Sections())
}

// ── SaveSection ─────────────────────────────────────────────────────────────

func TestClientGuideEditorService_SaveSection_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	loadEditor(t, svc, mockCache, mockAdapter, testSections())

	payload := models.SectionPayload{Category: models.CategoryLogistics, Title: "Parking"}
	created := models.Section{ID: 4, PropertyID: 10, Category: payload.Category, Title: payload.Title}

	mockAdapter.EXPECT().CreateSection(ctx, int64(10), payload).Return(created, nil)
	mockCache.EXPECT().ReplaceSections(ctx, int64(10), gomock.Any()).Return(nil)

	got, err := svc.SaveSection(ctx, 0, models.SectionPayload{Category: models.CategoryLogistics, Title: "  Parking  "})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Len(t, svc.Sections(), 4)
}

func TestClientGuideEditorService_SaveSection_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	loadEditor(t, svc, mockCache, mockAdapter, testSections())

	payload := models.SectionPayload{Category: models.CategoryGear, Title: "Espresso Machine"}
	updated := models.Section{ID: 2, PropertyID: 10, Category: payload.Category, Title: payload.Title}

	mockAdapter.EXPECT().UpdateSection(ctx, int64(2), payload).Return(updated, nil)
	mockCache.EXPECT().ReplaceSections(ctx, int64(10), gomock.Any()).Return(nil)

	got, err := svc.SaveSection(ctx, 2, payload)

	require.NoError(t, err)
	assert.Equal(t, updated, got)

	sections := svc.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Espresso Machine", sections[1].Title)
}

// ── DeleteSection ───────────────────────────────────────────────────────────

func TestClientGuideEditorService_DeleteSection_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	loadEditor(t, svc, mockCache, mockAdapter, testSections())

	mockAdapter.EXPECT().DeleteSection(ctx, int64(2)).Return(nil)
	mockCache.EXPECT().ReplaceSections(ctx, int64(10), gomock.Any()).Return(nil)

	require.NoError(t, svc.DeleteSection(ctx, 2))

	sections := svc.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, int64(1), sections[0].ID)
	assert.Equal(t, int64(3), sections[1].ID)
}

func TestClientGuideEditorService_DeleteSection_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	before := testSections()
	loadEditor(t, svc, mockCache, mockAdapter, before)

	mockAdapter.EXPECT().
		DeleteSection(ctx, int64(2)).
		Return(fmt.Errorf("%w: delete section request: connection refused", adapter.ErrNetwork))

	err := svc.DeleteSection(ctx, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)

	// the working copy is byte-for-byte the pre-delete state, order included
	assert.Equal(t, before, svc.Sections())
}

func TestClientGuideEditorService_DeleteSection_SecondDeleteWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	loadEditor(t, svc, mockCache, mockAdapter, testSections())

	started := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().
		DeleteSection(ctx, int64(1)).
		DoAndReturn(func(context.Context, int64) error {
			close(started)
			<-release
			return nil
		})
	mockCache.EXPECT().ReplaceSections(ctx, int64(10), gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() { done <- svc.DeleteSection(ctx, 1) }()

	<-started
	err := svc.DeleteSection(ctx, 2)
	assert.ErrorIs(t, err, ErrDeleteInFlight)

	close(release)
	require.NoError(t, <-done)
}

// ── ResolveGuide ────────────────────────────────────────────────────────────

func TestClientGuideEditorService_ResolveGuide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()
	want := models.Guide{
		Property: models.PublicProperty{Name: "Seaside Villa", Slug: "seaside-villa-a1b2c3d4"},
		Sections: testSections(),
	}

	mockAdapter.EXPECT().ResolveGuide(ctx, "seaside-villa-a1b2c3d4").Return(want, nil)

	got, err := svc.ResolveGuide(ctx, "seaside-villa-a1b2c3d4")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientGuideEditorService_ResolveGuide_UnknownSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestEditorSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ResolveGuide(ctx, "no-such-slug").
		Return(models.Guide{}, fmt.Errorf("%w: guide not found", adapter.ErrNotFound))

	_, err := svc.ResolveGuide(ctx, "no-such-slug")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFoundOrForbidden)
}
