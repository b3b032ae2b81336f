// Package store persists a ledger as a single human-readable JSON file.
// Every save rewrites the whole file through a temp-file-and-rename so the
// previous content is replaced atomically.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pocketfin/internal/ledger"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

type fileData struct {
	Transactions []record `json:"transactions"`
	CurrencyCode string   `json:"currency_code"`
	LastUpdated  string   `json:"last_updated"`
}

// record is the on-disk shape of one transaction. Required fields are
// pointers so a missing key can be told apart from a zero value: one
// incomplete record fails the whole load and the caller falls back to an
// empty ledger.
type record struct {
	ID          *string  `json:"id"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Type        *string  `json:"transaction_type"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	CreatedAt   *string  `json:"created_at"`
}

func (r record) toTransaction() (ledger.Transaction, error) {
	if r.ID == nil || r.Amount == nil || r.Description == nil ||
		r.Type == nil || r.Category == nil || r.Date == nil || r.CreatedAt == nil {
		return ledger.Transaction{}, errors.New("record is missing a required field")
	}

	date, err := parseTime(*r.Date)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parsing date: %w", err)
	}

	createdAt, err := parseTime(*r.CreatedAt)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parsing created_at: %w", err)
	}

	if !ledger.Type(*r.Type).Valid() {
		return ledger.Transaction{}, fmt.Errorf("unknown transaction_type %q", *r.Type)
	}

	return ledger.Transaction{
		ID:          *r.ID,
		Amount:      *r.Amount,
		Description: *r.Description,
		Type:        ledger.Type(*r.Type),
		Category:    *r.Category,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}

// timeLayouts are tried in order when reading. Files written by this
// store use RFC 3339; zone-less layouts cover ISO-8601 stamps written by
// other tools.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparsable time %q", s)
}

// Load reads the backing file. A missing file returns (nil, nil). Any
// malformed content, incomplete record or unparsable date returns an
// error: the file's transaction data is discarded as a whole rather than
// recovered per record.
func (s *Store) Load() (*ledger.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var file fileData
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}

	snap := &ledger.Snapshot{
		Transactions: make([]ledger.Transaction, 0, len(file.Transactions)),
		CurrencyCode: file.CurrencyCode,
	}

	for i, r := range file.Transactions {
		tx, err := r.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}

		snap.Transactions = append(snap.Transactions, tx)
	}

	return snap, nil
}

// Save writes the snapshot to a temp file in the target directory and
// renames it over the backing file, stamping last_updated.
func (s *Store) Save(snap ledger.Snapshot) error {
	file := fileData{
		Transactions: make([]record, len(snap.Transactions)),
		CurrencyCode: snap.CurrencyCode,
		LastUpdated:  time.Now().Format(time.RFC3339Nano),
	}

	for i := range snap.Transactions {
		file.Transactions[i] = toRecord(snap.Transactions[i])
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	// CreateTemp opens 0600; widen so the renamed ledger file keeps
	// ordinary data-file permissions across rewrites.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	return nil
}

func toRecord(tx ledger.Transaction) record {
	txType := string(tx.Type)
	date := tx.Date.Format(time.RFC3339Nano)
	createdAt := tx.CreatedAt.Format(time.RFC3339Nano)

	return record{
		ID:          &tx.ID,
		Amount:      &tx.Amount,
		Description: &tx.Description,
		Type:        &txType,
		Category:    &tx.Category,
		Date:        &date,
		CreatedAt:   &createdAt,
	}
}
