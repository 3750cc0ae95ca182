// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// createProperty
// ─────────────────────────────────────────────

func TestCreateProperty_Success(t *testing.T) {
	var gotOwnerID int64

	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		createFn: func(_ context.Context, ownerID int64, property models.Property) (models.Property, error) {
			gotOwnerID = ownerID
			property.ID = 10
			property.OwnerID = ownerID
			property.Slug = "seaside-villa-a1b2c3d4"
			return property, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPost, "/api/properties",
		`{"name":"Seaside Villa","address":"1 Shore Rd"}`, true)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, testOwnerID, gotOwnerID)

	var created models.Property
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &created))
	assert.Equal(t, "seaside-villa-a1b2c3d4", created.Slug)
}

func TestCreateProperty_NoToken(t *testing.T) {
	h := newTestHandler(authedServices())

	resp := doRequest(t, h, http.MethodPost, "/api/properties", `{"name":"Seaside Villa"}`, false)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateProperty_ValidationError(t *testing.T) {
	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		createFn: func(_ context.Context, _ int64, _ models.Property) (models.Property, error) {
			return models.Property{}, fmt.Errorf("%w: name too short", service.ErrValidation)
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPost, "/api/properties", `{"name":"x"}`, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ─────────────────────────────────────────────
// listProperties / getProperty
// ─────────────────────────────────────────────

func TestListProperties_Success(t *testing.T) {
	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		listFn: func(_ context.Context, ownerID int64) ([]models.Property, error) {
			return []models.Property{
				{ID: 1, OwnerID: ownerID, Name: "Seaside Villa", Slug: "seaside-villa-a1b2c3d4"},
				{ID: 2, OwnerID: ownerID, Name: "City Loft", Slug: "city-loft-0f9e8d7c"},
			}, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodGet, "/api/properties", "", true)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var properties []models.Property
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &properties))
	assert.Len(t, properties, 2)
}

func TestGetProperty_NotOwned(t *testing.T) {
	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		getFn: func(_ context.Context, _, _ int64) (models.Property, error) {
			return models.Property{}, store.ErrNotFoundOrForbidden
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodGet, "/api/properties/42", "", true)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProperty_InvalidID(t *testing.T) {
	h := newTestHandler(authedServices())

	resp := doRequest(t, h, http.MethodGet, "/api/properties/abc", "", true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ─────────────────────────────────────────────
// updateProperty / deleteProperty
// ─────────────────────────────────────────────

func TestUpdateProperty_Success(t *testing.T) {
	var gotPatch models.PropertyPatch

	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		updateFn: func(_ context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error) {
			gotPatch = patch
			return models.Property{ID: propertyID, OwnerID: ownerID, Name: *patch.Name, Slug: "seaside-villa-a1b2c3d4"}, nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodPatch, "/api/properties/1", `{"name":"Renamed Villa"}`, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Renamed Villa", *gotPatch.Name)
	assert.Nil(t, gotPatch.Address)

	var updated models.Property
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &updated))
	assert.Equal(t, "seaside-villa-a1b2c3d4", updated.Slug, "rename must not touch the slug")
}

func TestDeleteProperty_Success(t *testing.T) {
	var gotPropertyID int64

	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		deleteFn: func(_ context.Context, propertyID, _ int64) error {
			gotPropertyID = propertyID
			return nil
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodDelete, "/api/properties/7", "", true)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(7), gotPropertyID)
}

func TestDeleteProperty_NotOwned(t *testing.T) {
	svcs := authedServices()
	svcs.PropertyService = &mockPropertyService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNotFoundOrForbidden
		},
	}
	h := newTestHandler(svcs)

	resp := doRequest(t, h, http.MethodDelete, "/api/properties/7", "", true)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
