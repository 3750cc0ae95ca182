package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/staykeeper/staykeeper/internal/config"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/utils"
	"github.com/staykeeper/staykeeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.EndpointURL and
// configures the underlying HTTP client with the resolved base URL, request
// timeout, and the public API key sent as X-Api-Key on every request.
//
// Returns an error if adapterCfg.EndpointURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("X-Api-Key", strings.TrimSpace(adapterCfg.APIKey))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the owner credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&createdUser).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: register request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return createdUser, nil
}

// Login implements [ServerAdapter]. It POSTs the owner credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: login request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// CreateProperty implements [ServerAdapter]. It POSTs the property to
// POST /api/properties and returns the stored record with the generated ID
// and slug. Requires a valid bearer token.
func (h *httpServerAdapter) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	var created models.Property

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(property).
		SetResult(&created).
		Post("/api/properties")
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: create property request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Property{}, err
	}

	return created, nil
}

// ListProperties implements [ServerAdapter]. It GETs /api/properties and
// decodes the response into a slice of [models.Property]. Requires a valid
// bearer token.
func (h *httpServerAdapter) ListProperties(ctx context.Context) ([]models.Property, error) {
	resp, err := h.authedRequest(ctx).Get("/api/properties")
	if err != nil {
		return nil, fmt.Errorf("%w: list properties request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var properties []models.Property
	if err = json.Unmarshal(resp.Body(), &properties); err != nil {
		return nil, fmt.Errorf("decode list properties response: %w", err)
	}

	return properties, nil
}

// GetProperty implements [ServerAdapter]. It GETs /api/properties/{id}.
// Returns [ErrNotFound] (wrapped) when the property does not exist or belongs
// to another owner. Requires a valid bearer token.
func (h *httpServerAdapter) GetProperty(ctx context.Context, propertyID int64) (models.Property, error) {
	var property models.Property

	resp, err := h.authedRequest(ctx).
		SetResult(&property).
		Get(fmt.Sprintf("/api/properties/%d", propertyID))
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: get property request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Property{}, err
	}

	return property, nil
}

// UpdateProperty implements [ServerAdapter]. It PATCHes the partial update to
// PATCH /api/properties/{id} and returns the updated record. Requires a valid
// bearer token.
func (h *httpServerAdapter) UpdateProperty(ctx context.Context, propertyID int64, patch models.PropertyPatch) (models.Property, error) {
	var updated models.Property

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch(fmt.Sprintf("/api/properties/%d", propertyID))
	if err != nil {
		return models.Property{}, fmt.Errorf("%w: update property request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Property{}, err
	}

	return updated, nil
}

// DeleteProperty implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/properties/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteProperty(ctx context.Context, propertyID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/properties/%d", propertyID))
	if err != nil {
		return fmt.Errorf("%w: delete property request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// CreateSection implements [ServerAdapter]. It POSTs the section payload to
// POST /api/properties/{id}/sections and returns the stored record. Requires
// a valid bearer token.
func (h *httpServerAdapter) CreateSection(ctx context.Context, propertyID int64, payload models.SectionPayload) (models.Section, error) {
	var created models.Section

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post(fmt.Sprintf("/api/properties/%d/sections", propertyID))
	if err != nil {
		return models.Section{}, fmt.Errorf("%w: create section request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Section{}, err
	}

	return created, nil
}

// ListSections implements [ServerAdapter]. It GETs
// /api/properties/{id}/sections and decodes the response into a slice of
// [models.Section]. Requires a valid bearer token.
func (h *httpServerAdapter) ListSections(ctx context.Context, propertyID int64) ([]models.Section, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/properties/%d/sections", propertyID))
	if err != nil {
		return nil, fmt.Errorf("%w: list sections request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sections []models.Section
	if err = json.Unmarshal(resp.Body(), &sections); err != nil {
		return nil, fmt.Errorf("decode list sections response: %w", err)
	}

	return sections, nil
}

// UpdateSection implements [ServerAdapter]. It PUTs the full editable payload
// to PUT /api/sections/{id} and returns the updated record. Requires a valid
// bearer token.
func (h *httpServerAdapter) UpdateSection(ctx context.Context, sectionID int64, payload models.SectionPayload) (models.Section, error) {
	var updated models.Section

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/sections/%d", sectionID))
	if err != nil {
		return models.Section{}, fmt.Errorf("%w: update section request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Section{}, err
	}

	return updated, nil
}

// DeleteSection implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/sections/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteSection(ctx context.Context, sectionID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/sections/%d", sectionID))
	if err != nil {
		return fmt.Errorf("%w: delete section request: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ResolveGuide implements [ServerAdapter]. It GETs the public guide endpoint
// GET /api/guides/{slug} without any Authorization header and decodes the
// response into a [models.Guide]. Returns [ErrNotFound] (wrapped) for an
// unknown slug.
func (h *httpServerAdapter) ResolveGuide(ctx context.Context, slug string) (models.Guide, error) {
	var guide models.Guide

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&guide).
		Get("/api/guides/" + url.PathEscape(slug))
	if err != nil {
		return models.Guide{}, fmt.Errorf("%w: resolve guide request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Guide{}, err
	}

	return guide, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
