// Package stats computes aggregate figures over a ledger's transaction
// set. All functions are pure: they recompute from the transactions they
// are handed and take the reference instant as an argument, so results
// for a fixed input are exactly reproducible.
package stats

import (
	"time"

	"pocketfin/internal/ledger"
)

// Period holds the aggregate figures for a trailing window.
type Period struct {
	Income   float64
	Expenses float64
	Balance  float64
	Count    int
}

// cutoff returns the start of a trailing window of the given number of
// days before now. Days at or below zero place the cutoff at or after
// now, which excludes everything not dated in the future.
func cutoff(days int, now time.Time) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// inWindow admits transactions dated at or after the cutoff. The
// comparison is against the user-assigned date, not the creation time.
func inWindow(tx ledger.Transaction, cutoff time.Time) bool {
	return !tx.Date.Before(cutoff)
}

// Summary aggregates income, expenses, net balance and transaction count
// over the trailing window of the given number of days.
func Summary(txs []ledger.Transaction, days int, now time.Time) Period {
	var p Period

	from := cutoff(days, now)

	for _, tx := range txs {
		if !inWindow(tx, from) {
			continue
		}

		switch tx.Type {
		case ledger.TypeIncome:
			p.Income += tx.Amount
		case ledger.TypeExpense:
			p.Expenses += tx.Amount
		}

		p.Count++
	}

	p.Balance = p.Income - p.Expenses

	return p
}

// ByCategory sums amounts per category for one transaction type over the
// same trailing window. Category keys are exact, case-sensitive strings;
// categories with no matching transactions are absent from the result.
func ByCategory(txs []ledger.Transaction, txType ledger.Type, days int, now time.Time) map[string]float64 {
	totals := make(map[string]float64)

	from := cutoff(days, now)

	for _, tx := range txs {
		if tx.Type != txType || !inWindow(tx, from) {
			continue
		}

		totals[tx.Category] += tx.Amount
	}

	return totals
}
