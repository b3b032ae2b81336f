package stats

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pocketfin/internal/currency"
	"pocketfin/internal/ledger"
	"pocketfin/internal/stats"
)

const defaultWindowDays = 30

type Handler struct {
	svc       *ledger.Service
	formatter *currency.Formatter
}

func NewHandler(svc *ledger.Service, formatter *currency.Formatter) *Handler {
	return &Handler{svc: svc, formatter: formatter}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/balance", h.balance)
	r.Get("/categories", h.categories)
}

type formattedPeriod struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

type summaryResponse struct {
	Days      int             `json:"days"`
	Income    float64         `json:"income"`
	Expenses  float64         `json:"expenses"`
	Balance   float64         `json:"balance"`
	Count     int             `json:"count"`
	Formatted formattedPeriod `json:"formatted"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	days := queryDays(r)
	code := h.svc.Currency()

	p := stats.Summary(h.svc.Transactions(), days, time.Now())

	resp := summaryResponse{
		Days:     days,
		Income:   p.Income,
		Expenses: p.Expenses,
		Balance:  p.Balance,
		Count:    p.Count,
		Formatted: formattedPeriod{
			Income:   h.formatter.Format(code, p.Income),
			Expenses: h.formatter.Format(code, p.Expenses),
			Balance:  h.formatter.Format(code, p.Balance),
		},
	}

	writeJSON(w, resp)
}

type balanceResponse struct {
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

func (h *Handler) balance(w http.ResponseWriter, _ *http.Request) {
	balance := h.svc.Balance()

	writeJSON(w, balanceResponse{
		Balance:   balance,
		Formatted: h.formatter.Format(h.svc.Currency(), balance),
	})
}

type categoriesResponse struct {
	Days   int                `json:"days"`
	Type   ledger.Type        `json:"type"`
	Totals map[string]float64 `json:"totals"`
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	txType := ledger.Type(r.URL.Query().Get("type"))
	if !txType.Valid() {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}

	days := queryDays(r)

	writeJSON(w, categoriesResponse{
		Days:   days,
		Type:   txType,
		Totals: stats.ByCategory(h.svc.Transactions(), txType, days, time.Now()),
	})
}

// queryDays reads the days query param, defaulting to a 30-day window.
// Non-numeric values fall back to the default; zero and negative values
// are passed through and yield empty windows.
func queryDays(r *http.Request) int {
	s := r.URL.Query().Get("days")
	if s == "" {
		return defaultWindowDays
	}

	days, err := strconv.Atoi(s)
	if err != nil {
		return defaultWindowDays
	}

	return days
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
