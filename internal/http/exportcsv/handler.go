package exportcsv

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pocketfin/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.svc.WriteCSV(w); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}
