package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pocketfin/internal/ledger"
	"pocketfin/internal/suggest"
)

type staticSource struct {
	txs []ledger.Transaction
}

func (s staticSource) Transactions() []ledger.Transaction {
	return s.txs
}

func expense(description, category string) ledger.Transaction {
	return ledger.Transaction{
		Description: description,
		Category:    category,
		Type:        ledger.TypeExpense,
	}
}

func TestService_Category(t *testing.T) {
	history := []ledger.Transaction{
		expense("Uber downtown", "Taxi/Uber"),
		expense("Uber airport", "Taxi/Uber"),
		expense("Uber eats", "Food & Dining"),
		expense("Gym membership", "Gym/Sports"),
		{Description: "Uber refund", Category: "Refund", Type: ledger.TypeIncome},
	}

	type testCase struct {
		name        string
		description string
		txType      ledger.Type
		want        string
	}

	tests := []testCase{
		{
			name:        "ExactMatchIgnoringCaseAndSpacing",
			description: "  GYM   Membership ",
			txType:      ledger.TypeExpense,
			want:        "Gym/Sports",
		},
		{
			name:        "MostRecentExactMatchWins",
			description: "uber downtown",
			txType:      ledger.TypeExpense,
			want:        "Taxi/Uber",
		},
		{
			name:        "LeadingWordFallbackPicksMostCommon",
			description: "Uber to the office",
			txType:      ledger.TypeExpense,
			want:        "Taxi/Uber",
		},
		{
			name:        "TypeFilterApplies",
			description: "Uber refund",
			txType:      ledger.TypeIncome,
			want:        "Refund",
		},
		{
			name:        "NoHistoryMatch",
			description: "Dentist appointment",
			txType:      ledger.TypeExpense,
			want:        "",
		},
		{
			name:        "BlankDescription",
			description: "   ",
			txType:      ledger.TypeExpense,
			want:        "",
		},
	}

	svc := suggest.NewService(staticSource{txs: history})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Category(tt.description, tt.txType))
		})
	}
}

func TestService_Category_EmptyHistory(t *testing.T) {
	svc := suggest.NewService(staticSource{})

	assert.Empty(t, svc.Category("Coffee", ledger.TypeExpense))
}
