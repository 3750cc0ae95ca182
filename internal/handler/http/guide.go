package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/utils"
)

// resolveGuide is the public JSON endpoint behind the guest link. It never
// requires authentication and never exposes owner data: the service layer
// projects the property before it reaches this handler.
func (h *Handler) resolveGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	guide, err := h.services.GuideService.ResolveGuide(r.Context(), slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("error resolving guide")
		writeError(w, err, "guide not found")
		return
	}

	utils.WriteJSON(w, guide, http.StatusOK)
}

// guestGuide renders the guest-facing HTML page of a guide with its sections
// grouped under the four category tabs.
func (h *Handler) guestGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	guide, err := h.services.GuideService.ResolveGuide(r.Context(), slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("error resolving guide page")
		writeError(w, err, "guide not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = h.views.renderGuide(w, guide); err != nil {
		log.Err(err).Str("slug", slug).Msg("error rendering guide page")
	}
}

// printGuide renders the print-friendly single-page layout: a table of
// contents built from the non-empty categories followed by every section in
// category order.
func (h *Handler) printGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	guide, err := h.services.GuideService.ResolveGuide(r.Context(), slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("error resolving guide for print")
		writeError(w, err, "guide not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = h.views.renderPrint(w, guide); err != nil {
		log.Err(err).Str("slug", slug).Msg("error rendering print page")
	}
}

// guideQRCode serves a PNG QR code pointing at the guest guide page, sized
// for printing and taping next to the front door.
func (h *Handler) guideQRCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	slug := chi.URLParam(r, "slug")

	// resolve first so unknown slugs get 404 instead of a dead QR code
	if _, err := h.services.GuideService.ResolveGuide(r.Context(), slug); err != nil {
		log.Err(err).Str("slug", slug).Msg("error resolving guide for qr code")
		writeError(w, err, "guide not found")
		return
	}

	guestURL := h.publicBaseURL + "/g/" + slug

	png, err := qrcode.Encode(guestURL, qrcode.Medium, 256)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("error encoding qr code")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
