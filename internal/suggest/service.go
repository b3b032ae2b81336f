// Package suggest proposes categories for new transactions based on what
// the ledger already contains.
package suggest

import (
	"strings"

	"pocketfin/internal/ledger"
)

// TransactionSource provides the transaction history to mine, newest
// first.
type TransactionSource interface {
	Transactions() []ledger.Transaction
}

type Service struct {
	source TransactionSource
}

func NewService(source TransactionSource) *Service {
	return &Service{source: source}
}

// Category suggests a category for the given description and transaction
// type. It prefers the category of the most recent transaction with the
// same normalized description, then the most common category among
// transactions sharing the description's leading word. Returns empty
// string when the history offers nothing.
func (s *Service) Category(description string, txType ledger.Type) string {
	norm := normalize(description)
	if norm == "" {
		return ""
	}

	txs := s.source.Transactions()

	for _, tx := range txs {
		if tx.Type == txType && normalize(tx.Description) == norm {
			return tx.Category
		}
	}

	lead, _, _ := strings.Cut(norm, " ")

	counts := make(map[string]int)
	best := ""

	for _, tx := range txs {
		if tx.Type != txType || tx.Category == "" {
			continue
		}

		txLead, _, _ := strings.Cut(normalize(tx.Description), " ")
		if txLead != lead {
			continue
		}

		counts[tx.Category]++
		if best == "" || counts[tx.Category] > counts[best] {
			best = tx.Category
		}
	}

	return best
}

// normalize lowercases and collapses runs of whitespace so descriptions
// that differ only in casing or spacing compare equal.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
