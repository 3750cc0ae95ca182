// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// createSection
// ─────────────────────────────────────────────

func TestCreateSection_Success(t *testing.T) {
	var gotSection models.Section

	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		createFn: func(_ context.Context, _ int64, section models.Section) (models.Section, error) {
			gotSection = section
			section.ID = 5
			return section, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPost, "/api/properties/1/sections",
		`{"category":"essentials","title":"Wi-Fi","content":"Network: villa"}`, true)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(1), gotSection.PropertyID, "property id must come from the url path")
	assert.Equal(t, models.CategoryEssentials, gotSection.Category)

	var created models.Section
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &created))
	assert.Equal(t, int64(5), created.ID)
}

func TestCreateSection_UnknownCategory(t *testing.T) {
	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		createFn: func(_ context.Context, _ int64, _ models.Section) (models.Section, error) {
			return models.Section{}, service.ErrUnknownCategory
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPost, "/api/properties/1/sections",
		`{"category":"misc","title":"Wi-Fi"}`, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateSection_ForeignProperty(t *testing.T) {
	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		createFn: func(_ context.Context, _ int64, _ models.Section) (models.Section, error) {
			return models.Section{}, store.ErrNotFoundOrForbidden
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPost, "/api/properties/99/sections",
		`{"category":"gear","title":"TV"}`, true)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ─────────────────────────────────────────────
// listSections
// ─────────────────────────────────────────────

func TestListSections_Success(t *testing.T) {
	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		listFn: func(_ context.Context, propertyID, _ int64) ([]models.Section, error) {
			return []models.Section{
				{ID: 1, PropertyID: propertyID, Category: models.CategoryEssentials, Title: "Wi-Fi"},
			}, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodGet, "/api/properties/1/sections", "", true)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sections []models.Section
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &sections))
	require.Len(t, sections, 1)
	assert.Equal(t, "Wi-Fi", sections[0].Title)
}

func TestListSections_NoToken(t *testing.T) {
	h := newTestHandler(authedServices())

	resp := doRequest(t, h, http.MethodGet, "/api/properties/1/sections", "", false)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ─────────────────────────────────────────────
// updateSection / deleteSection
// ─────────────────────────────────────────────

func TestUpdateSection_Success(t *testing.T) {
	var gotSection models.Section

	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		updateFn: func(_ context.Context, _ int64, section models.Section) (models.Section, error) {
			gotSection = section
			return section, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPut, "/api/sections/5",
		`{"category":"gear","title":"Espresso Machine","content":"Use pods only"}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(5), gotSection.ID, "section id must come from the url path")
	assert.Equal(t, models.CategoryGear, gotSection.Category)
}

func TestDeleteSection_Success(t *testing.T) {
	var gotSectionID int64

	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		deleteFn: func(_ context.Context, sectionID, _ int64) error {
			gotSectionID = sectionID
			return nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodDelete, "/api/sections/5", "", true)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(5), gotSectionID)
}

func TestDeleteSection_NotOwned(t *testing.T) {
	svcs := authedServices()
	svcs.SectionService = &mockSectionService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNotFoundOrForbidden
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodDelete, "/api/sections/5", "", true)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
