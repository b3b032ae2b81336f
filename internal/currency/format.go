package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts for display: the currency symbol followed by
// the amount with thousands separators and exactly two decimal places.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English)}
}

// Format renders an amount in the currency identified by code, e.g.
// Format("USD", 1234.5) == "$1,234.50". Unknown codes use the fallback
// symbol; formatting never fails.
func (f *Formatter) Format(code string, amount float64) string {
	return Symbol(code) + f.printer.Sprintf("%.2f", amount)
}
