package handler

import (
	"errors"
	"net/http"

	packingdomain "zentravel-go/internal/domain/packing"
)

type addPackingItemRequest struct {
	Label string `json:"label"`
}

type addPackingCategoryRequest struct {
	Title string `json:"title"`
}

func (h *Handlers) GetPackingList(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	categories, err := h.Packing.List(r.Context(), user.ID)
	if err != nil {
		h.log.Error("packing: list failed", "user_id", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load packing list")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *Handlers) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	categoryIndex, err := indexParam(r, "cat_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}
	itemIndex, err := indexParam(r, "item_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}

	item, err := h.Packing.ToggleItem(r.Context(), user.ID, categoryIndex, itemIndex)
	if err != nil {
		h.writePackingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) AddPackingItem(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	categoryIndex, err := indexParam(r, "cat_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}

	var req addPackingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	item, err := h.Packing.AddItem(r.Context(), user.ID, categoryIndex, req.Label)
	if err != nil {
		h.writePackingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handlers) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	categoryIndex, err := indexParam(r, "cat_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}
	itemIndex, err := indexParam(r, "item_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}

	if err := h.Packing.DeleteItem(r.Context(), user.ID, categoryIndex, itemIndex); err != nil {
		h.writePackingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handlers) AddPackingCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req addPackingCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	category, err := h.Packing.AddCategory(r.Context(), user.ID, req.Title)
	if err != nil {
		h.writePackingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handlers) DeletePackingCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	categoryIndex, err := indexParam(r, "cat_idx")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_index", err.Error())
		return
	}

	if err := h.Packing.DeleteCategory(r.Context(), user.ID, categoryIndex); err != nil {
		h.writePackingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handlers) writePackingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, packingdomain.ErrEmptyLabel), errors.Is(err, packingdomain.ErrEmptyTitle):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
	case errors.Is(err, packingdomain.ErrListNotFound),
		errors.Is(err, packingdomain.ErrCategoryNotFound),
		errors.Is(err, packingdomain.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		h.log.Error("packing: operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "packing list operation failed")
	}
}
