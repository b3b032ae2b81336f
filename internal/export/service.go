// Package export renders the ledger in formats consumable outside the
// application.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"pocketfin/internal/ledger"
)

// Service handles exporting the ledger's transactions.
type Service struct {
	ledger *ledger.Service
}

func NewService(ledgerSvc *ledger.Service) *Service {
	return &Service{ledger: ledgerSvc}
}

var csvHeader = []string{"id", "date", "type", "amount", "description", "category", "created_at"}

// WriteCSV writes all transactions as CSV, newest-inserted first,
// suitable for opening in a spreadsheet.
func (s *Service) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range s.ledger.Transactions() {
		row := []string{
			tx.ID,
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Description,
			tx.Category,
			tx.CreatedAt.Format(time.RFC3339),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
