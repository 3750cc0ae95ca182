package http

import (
	"encoding/json"
	"net/http"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/internal/utils"
	"github.com/staykeeper/staykeeper/models"
)

func (h *Handler) createSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "propertyID")
	if !ok {
		return
	}

	var payload models.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	section := models.Section{PropertyID: propertyID}
	section.Apply(payload)

	created, err := h.services.SectionService.CreateSection(r.Context(), ownerID, section)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("error creating section")
		writeError(w, err, "")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "propertyID")
	if !ok {
		return
	}

	sections, err := h.services.SectionService.ListSections(r.Context(), propertyID, ownerID)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("error listing sections")
		writeError(w, err, "property not found")
		return
	}

	utils.WriteJSON(w, sections, http.StatusOK)
}

func (h *Handler) updateSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	sectionID, ok := pathID(w, r, "sectionID")
	if !ok {
		return
	}

	var payload models.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	section := models.Section{ID: sectionID}
	section.Apply(payload)

	updated, err := h.services.SectionService.UpdateSection(r.Context(), ownerID, section)
	if err != nil {
		log.Err(err).Int64("section_id", sectionID).Msg("error updating section")
		writeError(w, err, "")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerIDFromContext(w, r)
	if !ok {
		return
	}
	sectionID, ok := pathID(w, r, "sectionID")
	if !ok {
		return
	}

	if err := h.services.SectionService.DeleteSection(r.Context(), sectionID, ownerID); err != nil {
		log.Err(err).Int64("section_id", sectionID).Msg("error deleting section")
		writeError(w, err, "section not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
