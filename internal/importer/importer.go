package importer

import (
	"io"

	"pocketfin/internal/ledger"
)

// Format names a supported import file format.
type Format string

const (
	FormatStatement Format = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.CreateParams, error)
}
