package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"pocketfin/internal/importer/statement"
	"pocketfin/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_SignedAmountColumn(t *testing.T) {
	csv := `Date,Description,Amount,Category
2025-06-01,Salary May,"1,000.00",Salary
2025-06-02,Groceries,-42.99,
2025-06-03,Refund,15.50,Refund
Total,,972.51,
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 3, "footer row without a date is skipped")

	assert.Equal(t, date(2025, 6, 1), txs[0].Date)
	assert.Equal(t, "Salary May", txs[0].Description)
	assert.InDelta(t, 1000, txs[0].Amount, 1e-9)
	assert.Equal(t, ledger.TypeIncome, txs[0].Type)
	assert.Equal(t, "Salary", txs[0].Category)

	assert.Equal(t, ledger.TypeExpense, txs[1].Type)
	assert.InDelta(t, 42.99, txs[1].Amount, 1e-9)
	assert.Empty(t, txs[1].Category)

	assert.Equal(t, ledger.TypeIncome, txs[2].Type)
}

func TestParser_DebitCreditColumns(t *testing.T) {
	csv := `Some Bank Export
Account,12345

Date;Description;Debit;Credit
02-06-2025;Groceries;42,99;
01-06-2025;Salary May;;1.000,00
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2025, 6, 2), txs[0].Date)
	assert.Equal(t, ledger.TypeExpense, txs[0].Type)
	assert.InDelta(t, 42.99, txs[0].Amount, 1e-9)

	assert.Equal(t, date(2025, 6, 1), txs[1].Date)
	assert.Equal(t, ledger.TypeIncome, txs[1].Type)
	assert.InDelta(t, 1000, txs[1].Amount, 1e-9)
}

func TestParser_ExplicitTypeColumnOverridesSign(t *testing.T) {
	csv := `Date,Description,Amount,Type
2025-06-01,Cashback,12.00,income
2025-06-02,Subscription,9.99,expense
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, ledger.TypeIncome, txs[0].Type)
	assert.Equal(t, ledger.TypeExpense, txs[1].Type)
}

func TestParser_HeaderAliases(t *testing.T) {
	csv := `Posted Date,Memo,Value
2025-06-01,Coffee,-3.20
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Coffee", txs[0].Description)
}

func TestParser_Windows1252Input(t *testing.T) {
	// "Café" in Windows-1252 is not valid UTF-8 and must be transcoded.
	encoder := charmap.Windows1252.NewEncoder()

	raw, err := encoder.Bytes([]byte("Date,Description,Amount\n2025-06-01,Café São Bento,-3.20\n"))
	require.NoError(t, err)

	p := statement.NewParser()
	txs, err := p.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Café São Bento", txs[0].Description)
}

func TestParser_NoHeader(t *testing.T) {
	csv := `just,some,random,cells
1,2,3,4
`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Date,Description,Amount
2025-06-01,,12.00
`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing description")
}

func TestParser_ZeroAmountRowsSkipped(t *testing.T) {
	csv := `Date,Description,Amount
2025-06-01,Pending hold,0.00
2025-06-02,Coffee,-3.20
`

	p := statement.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Coffee", txs[0].Description)
}
