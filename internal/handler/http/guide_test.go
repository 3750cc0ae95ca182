package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGuide() models.Guide {
	return models.Guide{
		Property: models.PublicProperty{
			Name:    "Seaside Villa",
			Slug:    "seaside-villa-a1b2c3d4",
			Address: "1 Shore Rd",
		},
		Sections: []models.Section{
			{ID: 1, Category: models.CategoryEssentials, Title: "Wi-Fi", Content: "Network is **villa**, password on the router."},
			{ID: 2, Category: models.CategoryFun, Title: "Beach", Content: "Five minutes on foot."},
		},
	}
}

func guideServices() *service.Services {
	return &service.Services{
		GuideService: &mockGuideService{
			resolveFn: func(_ context.Context, slug string) (models.Guide, error) {
				if slug != "seaside-villa-a1b2c3d4" {
					return models.Guide{}, store.ErrNotFound
				}
				return testGuide(), nil
			},
		},
	}
}

// ─────────────────────────────────────────────
// resolveGuide (JSON)
// ─────────────────────────────────────────────

func TestResolveGuide_Success(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/api/guides/seaside-villa-a1b2c3d4", "", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var guide models.Guide
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &guide))
	assert.Equal(t, "Seaside Villa", guide.Property.Name)
	assert.Len(t, guide.Sections, 2)
}

func TestResolveGuide_UnknownSlug(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/api/guides/no-such-guide", "", false)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ─────────────────────────────────────────────
// guest HTML page
// ─────────────────────────────────────────────

func TestGuestGuide_RendersMarkdown(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/seaside-villa-a1b2c3d4", "", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body := readBody(t, resp)
	assert.Contains(t, body, "Seaside Villa")
	assert.Contains(t, body, "<strong>villa</strong>", "section content is rendered as markdown")
	assert.NotContains(t, body, "**villa**")
}

func TestGuestGuide_GroupsByCategory(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/seaside-villa-a1b2c3d4", "", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "The Essentials")
	assert.Contains(t, body, "The Fun")
	// empty categories are dropped from the page entirely
	assert.NotContains(t, body, "The Gear")
	assert.Less(t, strings.Index(body, "The Essentials"), strings.Index(body, "The Fun"),
		"categories render in display order")
}

func TestGuestGuide_UnknownSlug(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/no-such-guide", "", false)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ─────────────────────────────────────────────
// print layout
// ─────────────────────────────────────────────

func TestPrintGuide_HasTableOfContents(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/seaside-villa-a1b2c3d4/print", "", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Contents")
	assert.Contains(t, body, `href="#section-1"`)
	assert.Contains(t, body, `id="section-1"`)
	assert.Contains(t, body, "Wi-Fi")
}

// ─────────────────────────────────────────────
// QR code
// ─────────────────────────────────────────────

func TestGuideQRCode_Success(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/seaside-villa-a1b2c3d4/qr.png", "", false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, readBody(t, resp))
}

func TestGuideQRCode_UnknownSlug(t *testing.T) {
	h := newTestHandler(guideServices())

	resp := doRequest(t, h, http.MethodGet, "/g/no-such-guide/qr.png", "", false)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
