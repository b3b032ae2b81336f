package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an amount string in either anglophone ("1,234.56")
// or European ("1.234,56") style. Whichever of '.' and ',' appears last
// is taken as the decimal separator; the other is a thousands separator
// and stripped.
func parseAmount(s string) (float64, error) {
	clean := strings.TrimSpace(s)

	lastDot := strings.LastIndexByte(clean, '.')
	lastComma := strings.LastIndexByte(clean, ',')

	if lastComma > lastDot {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.InexactFloat64(), nil
}
