package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketfin/internal/ledger"
	"pocketfin/internal/stats"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tx(txType ledger.Type, amount float64, category string, daysAgo int) ledger.Transaction {
	return ledger.Transaction{
		ID:          "test0000",
		Amount:      amount,
		Description: category,
		Type:        txType,
		Category:    category,
		Date:        now.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		CreatedAt:   now,
	}
}

func TestSummary_EmptyLedger(t *testing.T) {
	p := stats.Summary(nil, 30, now)

	assert.Zero(t, p.Income)
	assert.Zero(t, p.Expenses)
	assert.Zero(t, p.Balance)
	assert.Zero(t, p.Count)
}

func TestSummary_MixedTypes(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeIncome, 1000, "Salary", 0),
		tx(ledger.TypeExpense, 200, "Food & Dining", 0),
	}

	p := stats.Summary(txs, 30, now)

	assert.InDelta(t, 1000, p.Income, 1e-9)
	assert.InDelta(t, 200, p.Expenses, 1e-9)
	assert.InDelta(t, 800, p.Balance, 1e-9)
	assert.Equal(t, 2, p.Count)
}

func TestSummary_WindowExcludesOlderTransactions(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeExpense, 50, "Food & Dining", 40),
	}

	p30 := stats.Summary(txs, 30, now)
	assert.Zero(t, p30.Count)
	assert.Zero(t, p30.Expenses)

	p60 := stats.Summary(txs, 60, now)
	assert.Equal(t, 1, p60.Count)
	assert.InDelta(t, 50, p60.Expenses, 1e-9)
}

func TestSummary_WindowBoundaryIsInclusive(t *testing.T) {
	// A transaction dated exactly at the cutoff instant is inside the
	// window.
	txs := []ledger.Transaction{
		tx(ledger.TypeIncome, 100, "Salary", 30),
	}

	p := stats.Summary(txs, 30, now)
	assert.Equal(t, 1, p.Count)
}

func TestSummary_NonPositiveDays(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeIncome, 1000, "Salary", 1),
		tx(ledger.TypeExpense, 200, "Food & Dining", 5),
	}

	for _, days := range []int{0, -7} {
		p := stats.Summary(txs, days, now)

		assert.Zero(t, p.Income)
		assert.Zero(t, p.Expenses)
		assert.Zero(t, p.Balance)
		assert.Zero(t, p.Count)
	}
}

func TestSummary_Deterministic(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeIncome, 1234.56, "Freelance", 3),
		tx(ledger.TypeExpense, 78.90, "Transportation", 12),
	}

	first := stats.Summary(txs, 30, now)
	second := stats.Summary(txs, 30, now)

	assert.Equal(t, first, second)
}

func TestByCategory_GroupsAndSums(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeExpense, 30, "Food & Dining", 1),
		tx(ledger.TypeExpense, 20, "Food & Dining", 2),
		tx(ledger.TypeExpense, 15, "Transportation", 3),
		tx(ledger.TypeIncome, 1000, "Salary", 1),
	}

	totals := stats.ByCategory(txs, ledger.TypeExpense, 30, now)

	require.Len(t, totals, 2)
	assert.InDelta(t, 50, totals["Food & Dining"], 1e-9)
	assert.InDelta(t, 15, totals["Transportation"], 1e-9)
}

func TestByCategory_ZeroMatchesAreAbsent(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeExpense, 30, "Food & Dining", 45), // outside window
		tx(ledger.TypeIncome, 1000, "Salary", 1),        // wrong type
	}

	totals := stats.ByCategory(txs, ledger.TypeExpense, 30, now)
	assert.Empty(t, totals)
	assert.NotContains(t, totals, "Food & Dining")
}

func TestByCategory_CaseSensitiveKeys(t *testing.T) {
	txs := []ledger.Transaction{
		tx(ledger.TypeExpense, 10, "food", 1),
		tx(ledger.TypeExpense, 10, "Food", 1),
	}

	totals := stats.ByCategory(txs, ledger.TypeExpense, 30, now)

	require.Len(t, totals, 2)
	assert.InDelta(t, 10, totals["food"], 1e-9)
	assert.InDelta(t, 10, totals["Food"], 1e-9)
}
