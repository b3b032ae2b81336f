package currency

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pocketfin/internal/currency"
	"pocketfin/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/active", h.active)
	r.Put("/active", h.setActive)
}

type currencyResponse struct {
	Code    string `json:"code"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	codes := currency.Codes()

	resp := make([]currencyResponse, len(codes))
	for i, code := range codes {
		resp[i] = toResponse(code)
	}

	writeJSON(w, resp)
}

func (h *Handler) active(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, toResponse(h.svc.Currency()))
}

type setCurrencyRequest struct {
	Code string `json:"code"`
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	var req setCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetCurrency(req.Code); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toResponse(code string) currencyResponse {
	return currencyResponse{
		Code:    code,
		Symbol:  currency.Symbol(code),
		Name:    currency.Name(code),
		Display: currency.DisplayText(code),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
