// Package statement reads bank statement CSV exports and produces
// transaction params. Columns are discovered by header name so exports
// from different banks parse without per-bank profiles, as long as they
// carry a date, a description and either a signed amount column or a
// debit/credit pair.
package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "pocketfin/internal/encoding"
	"pocketfin/internal/ledger"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Column name aliases, matched case-insensitively against trimmed header
// cells.
var (
	dateCols     = []string{"date", "transaction date", "posted date", "data"}
	descCols     = []string{"description", "memo", "payee", "details", "narrative"}
	amountCols   = []string{"amount", "value", "montante"}
	debitCols    = []string{"debit", "withdrawal"}
	creditCols   = []string{"credit", "deposit"}
	categoryCols = []string{"category"}
	typeCols     = []string{"type", "transaction type", "transaction_type"}
)

// columns holds the resolved indexes for one file. An index of -1 means
// the column is absent.
type columns struct {
	date     int
	desc     int
	amount   int
	debit    int
	credit   int
	category int
	txType   int
}

func (c columns) complete() bool {
	if c.date < 0 || c.desc < 0 {
		return false
	}

	return c.amount >= 0 || (c.debit >= 0 && c.credit >= 0)
}

func (p *Parser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: expected date, description and amount (or debit/credit) columns")
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// detectDelimiter picks ';' when the file carries more semicolons than
// commas; European exports commonly use semicolons with decimal commas.
func detectDelimiter(data []byte) rune {
	if bytes.Count(data, []byte(";")) > bytes.Count(data, []byte(",")) {
		return ';'
	}

	return ','
}

// findHeader scans rows for the first one resolving to a complete column
// set.
func findHeader(rows [][]string) (columns, int, bool) {
	for rowIdx, row := range rows {
		names := make(map[string]int, len(row))

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				names[name] = i
			}
		}

		cols := columns{
			date:     indexOf(names, dateCols),
			desc:     indexOf(names, descCols),
			amount:   indexOf(names, amountCols),
			debit:    indexOf(names, debitCols),
			credit:   indexOf(names, creditCols),
			category: indexOf(names, categoryCols),
			txType:   indexOf(names, typeCols),
		}

		if cols.complete() {
			return cols, rowIdx, true
		}
	}

	return columns{}, 0, false
}

func indexOf(names map[string]int, aliases []string) int {
	for _, alias := range aliases {
		if idx, ok := names[alias]; ok {
			return idx
		}
	}

	return -1
}

// parseRows extracts transaction params from data rows. Rows without a
// parsable date (footers, blank padding) are skipped; a row with a date
// but no description is an error.
func parseRows(cols columns, rows [][]string, headerRowNum int) ([]ledger.CreateParams, error) {
	var params []ledger.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, past the header

		date, ok := parseDate(cellValue(row, cols.date))
		if !ok {
			continue
		}

		desc := cellValue(row, cols.desc)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, txType, ok := parseRowAmount(cols, row)
		if !ok {
			continue
		}

		if t, ok := explicitType(cellValue(row, cols.txType)); ok {
			txType = t
		}

		params = append(params, ledger.CreateParams{
			Amount:      amount,
			Description: desc,
			Type:        txType,
			Category:    cellValue(row, cols.category),
			Date:        date,
		})
	}

	return params, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseRowAmount resolves the amount and type, either from a single
// signed column (negative means expense) or a debit/credit pair.
func parseRowAmount(cols columns, row []string) (float64, ledger.Type, bool) {
	if cols.amount >= 0 {
		amount, err := parseAmount(cellValue(row, cols.amount))
		if err != nil || amount == 0 {
			return 0, "", false
		}

		if amount < 0 {
			return -amount, ledger.TypeExpense, true
		}

		return amount, ledger.TypeIncome, true
	}

	if s := cellValue(row, cols.debit); s != "" {
		if amount, err := parseAmount(s); err == nil && amount != 0 {
			return abs(amount), ledger.TypeExpense, true
		}
	}

	if s := cellValue(row, cols.credit); s != "" {
		if amount, err := parseAmount(s); err == nil && amount != 0 {
			return abs(amount), ledger.TypeIncome, true
		}
	}

	return 0, "", false
}

func explicitType(s string) (ledger.Type, bool) {
	switch strings.ToLower(s) {
	case "income":
		return ledger.TypeIncome, true
	case "expense":
		return ledger.TypeExpense, true
	}

	return "", false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
