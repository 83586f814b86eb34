package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	itinerarydomain "zentravel-go/internal/domain/itinerary"
)

type updateNoteRequest struct {
	Note string `json:"note"`
}

type startAnalysisRequest struct {
	Input string `json:"input"`
}

func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request) {
	days, err := h.Itinerary.Days(r.Context())
	if err != nil {
		h.log.Error("itinerary: list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load itinerary")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"days": days})
}

func (h *Handlers) UpdateActivityNote(w http.ResponseWriter, r *http.Request) {
	var req updateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	activityID := chi.URLParam(r, "activity_id")
	err := h.Itinerary.EditNote(r.Context(), activityID, req.Note)
	switch {
	case errors.Is(err, itinerarydomain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "activity_not_found", "no activity with that id")
	case err != nil:
		h.log.Error("itinerary: note update failed", "activity_id", activityID, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to update note")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func (h *Handlers) MapLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.Itinerary.MapLink(r.URL.Query().Get("location"))
	if errors.Is(err, itinerarydomain.ErrEmptyLocation) {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "location is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

func (h *Handlers) StartAnalysis(w http.ResponseWriter, r *http.Request) {
	var req startAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	err := h.Analyzer.Start(req.Input)
	switch {
	case errors.Is(err, itinerarydomain.ErrEmptyInput):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "input is required")
	case errors.Is(err, itinerarydomain.ErrPlannerDisabled):
		writeError(w, http.StatusServiceUnavailable, "planner_disabled", "itinerary analysis is not configured for this session")
	case errors.Is(err, itinerarydomain.ErrAnalysisInFlight):
		writeError(w, http.StatusConflict, "analysis_in_flight", "an analysis is already running")
	case err != nil:
		h.log.Error("itinerary: start analysis failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to start analysis")
	default:
		writeJSON(w, http.StatusAccepted, h.Analyzer.State())
	}
}

func (h *Handlers) AnalysisStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Analyzer.State())
}
