package importer

import (
	"fmt"
	"io"

	"pocketfin/internal/importer/statement"
	"pocketfin/internal/ledger"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]ledger.CreateParams, error) {
	var imp Importer

	switch format {
	case FormatStatement:
		imp = s.statementImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}
