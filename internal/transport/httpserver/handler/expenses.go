package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	expensesdomain "zentravel-go/internal/domain/expenses"
)

type createExpenseRequest struct {
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	PayerID string  `json:"payerId"`
	Type    string  `json:"type"`
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	items, err := h.Expenses.Visible(r.Context(), user.ID)
	if err != nil {
		h.log.Error("expenses: list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load expenses")
		return
	}

	summary, err := h.Analytics.Summary(r.Context(), user.ID)
	if err != nil {
		h.log.Error("expenses: summary failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to compute totals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":   items,
		"summary": summary,
	})
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	expense, err := h.Expenses.Add(r.Context(), user.ID, expensesdomain.AddExpenseInput{
		Title:   req.Title,
		Amount:  req.Amount,
		PayerID: req.PayerID,
		Type:    expensesdomain.ExpenseType(req.Type),
	})
	switch {
	case errors.Is(err, expensesdomain.ErrInvalidExpense):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
	case errors.Is(err, expensesdomain.ErrUnknownPayer):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "payer is not a member")
	case err != nil:
		h.log.Error("expenses: create failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create expense")
	default:
		writeJSON(w, http.StatusCreated, expense)
	}
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	err := h.Expenses.Delete(r.Context(), user.ID, id)
	switch {
	case errors.Is(err, expensesdomain.ErrExpenseNotFound):
		writeError(w, http.StatusNotFound, "expense_not_found", "no expense with that id")
	case err != nil:
		h.log.Error("expenses: delete failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to delete expense")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func (h *Handlers) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := sessionUser(w, r)
	if !ok {
		return
	}

	summary, err := h.Analytics.Summary(r.Context(), user.ID)
	if err != nil {
		h.log.Error("expenses: summary failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to compute totals")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
