package handler

import (
	"errors"
	"net/http"

	currencydomain "zentravel-go/internal/domain/currency"
)

type setRateRequest struct {
	Rate float64 `json:"rate"`
}

type convertRequest struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

func (h *Handlers) GetRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"rate": h.Rates.Rate()})
}

func (h *Handlers) SetRate(w http.ResponseWriter, r *http.Request) {
	var req setRateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	if err := h.Rates.SetRate(req.Rate); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"rate": h.Rates.Rate()})
}

func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	result, err := currencydomain.Convert(req.Amount, h.Rates.Rate(), currencydomain.Direction(req.Direction))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"result": result})
}

func (h *Handlers) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
		return
	}

	result, err := currencydomain.Evaluate(req.Expression)
	switch {
	case errors.Is(err, currencydomain.ErrDivisionByZero):
		writeError(w, http.StatusUnprocessableEntity, "division_by_zero", "expression divides by zero")
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, "invalid_expression", "expression is not valid arithmetic")
	default:
		writeJSON(w, http.StatusOK, map[string]float64{"result": result})
	}
}
