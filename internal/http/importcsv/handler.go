package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pocketfin/internal/importer"
	"pocketfin/internal/ledger"
	"pocketfin/internal/suggest"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc  *importer.Service
	ledgerSvc  *ledger.Service
	suggestSvc *suggest.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service, suggestSvc *suggest.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		ledgerSvc:  ledgerSvc,
		suggestSvc: suggestSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Type        ledger.Type `json:"type"`
	Category    string      `json:"category"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Statements rarely carry categories; fill the gaps from the
	// ledger's own history before falling back to the catch-all.
	for i, p := range params {
		if p.Category != "" {
			continue
		}

		category := h.suggestSvc.Category(p.Description, p.Type)
		if category == "" {
			category = ledger.FallbackCategory(p.Type)
		}

		params[i].Category = category
	}

	txs, err := h.ledgerSvc.AddBatch(params)
	if err != nil {
		if ledger.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(txs []*ledger.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Description: tx.Description,
			Type:        tx.Type,
			Category:    tx.Category,
			Date:        tx.Date,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}
