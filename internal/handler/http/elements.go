package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/collabcanvas/collab-canvas/internal/logger"
	"github.com/collabcanvas/collab-canvas/models"
)

func (h *Handler) listElements(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	canvasID := chi.URLParam(r, "canvasID")

	elements, err := h.storages.ElementRepository.ListElements(r.Context(), canvasID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listElements").Str("canvas_id", canvasID).Msg("error listing canvas elements")
		http.Error(w, "error listing canvas elements", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, elements)
}

func (h *Handler) createElement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	canvasID := chi.URLParam(r, "canvasID")

	var element models.Element
	if err := json.NewDecoder(r.Body).Decode(&element); err != nil {
		log.Err(err).Str("func", "*Handler.createElement").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if element.ElementType == "" {
		http.Error(w, "element_type is required", http.StatusBadRequest)
		return
	}

	// the URL is authoritative for canvas placement
	element.CanvasID = canvasID
	if element.ID == "" {
		element.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if element.CreatedAt == nil {
		element.CreatedAt = &now
	}
	if element.UpdatedAt == nil {
		element.UpdatedAt = &now
	}

	saved, err := h.storages.ElementRepository.InsertElement(r.Context(), element)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createElement").Str("element_id", element.ID).Msg("error creating element")
		http.Error(w, "error creating element", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getElement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	elementID := chi.URLParam(r, "elementID")

	element, err := h.storages.ElementRepository.GetElement(r.Context(), elementID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getElement").Str("element_id", elementID).Msg("error getting element")
		http.Error(w, "error getting element", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, element)
}

func (h *Handler) replaceElement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	elementID := chi.URLParam(r, "elementID")

	var element models.Element
	if err := json.NewDecoder(r.Body).Decode(&element); err != nil {
		log.Err(err).Str("func", "*Handler.replaceElement").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if element.ElementType == "" {
		http.Error(w, "element_type is required", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	if element.UpdatedAt == nil {
		element.UpdatedAt = &now
	}

	saved, err := h.storages.ElementRepository.ReplaceElement(r.Context(), elementID, element)
	if err != nil {
		log.Err(err).Str("func", "*Handler.replaceElement").Str("element_id", elementID).Msg("error replacing element")
		http.Error(w, "error replacing element", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) deleteElement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	elementID := chi.URLParam(r, "elementID")

	if err := h.storages.ElementRepository.DeleteElement(r.Context(), elementID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteElement").Str("element_id", elementID).Msg("error deleting element")
		http.Error(w, "error deleting element", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) touchCanvas(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	canvasID := chi.URLParam(r, "canvasID")

	if err := h.storages.ElementRepository.TouchCanvas(r.Context(), canvasID); err != nil {
		log.Err(err).Str("func", "*Handler.touchCanvas").Str("canvas_id", canvasID).Msg("error touching canvas")
		http.Error(w, "error touching canvas", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
