package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/utils"
	"github.com/staykeeper/staykeeper/models"
)

// ownerIDFromContext pulls the authenticated owner out of the request context.
// The auth middleware guarantees its presence on protected routes; a miss here
// means the route was wired without auth and is answered with 401.
func ownerIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("owner id is missing from request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return ownerID, true
}

// pathID parses the named chi URL parameter as a positive int64.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Error().Str("param", name).Msg("invalid id in url path")
		http.Error(w, "invalid id in url path", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PropertyService.CreateProperty(r.Context(), ownerID, property)
	if err != nil {
		log.Err(err).Msg("error creating property")
		writeError(w, err, "")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}

	properties, err := h.services.PropertyService.ListProperties(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Msg("error listing properties")
		writeError(w, err, "")
		return
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "propertyID")
	if !ok {
		return
	}

	property, err := h.services.PropertyService.GetProperty(r.Context(), propertyID, ownerID)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("error getting property")
		writeError(w, err, "property not found")
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "propertyID")
	if !ok {
		return
	}

	var patch models.PropertyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PropertyService.UpdateProperty(r.Context(), propertyID, ownerID, patch)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("error updating property")
		writeError(w, err, "")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "propertyID")
	if !ok {
		return
	}

	if err := h.services.PropertyService.DeleteProperty(r.Context(), propertyID, ownerID); err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("error deleting property")
		writeError(w, err, "property not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
