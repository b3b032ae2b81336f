package ledger

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ledger
type Store interface {
	// Load reads the persisted ledger. A missing backing file is not an
	// error: it returns (nil, nil).
	Load() (*Snapshot, error)

	// Save replaces the persisted ledger with the given snapshot.
	Save(snap Snapshot) error
}

// Service owns the in-memory transaction collection and the active
// currency code. Every successful mutation is flushed to the Store before
// the call returns; a flush failure is logged and absorbed, leaving the
// in-memory state as the source of truth (the on-disk copy goes stale).
//
// A single mutex serializes mutations against reads so a reader never
// observes a half-applied add or delete.
type Service struct {
	mu           sync.Mutex
	store        Store
	log          *slog.Logger
	transactions []Transaction
	currencyCode string
}

// NewService loads the ledger from the store. Any load failure falls back
// to an empty ledger with the default currency; the failure is logged,
// never returned.
func NewService(store Store, defaultCurrency string, log *slog.Logger) *Service {
	s := &Service{
		store:        store,
		log:          log,
		currencyCode: defaultCurrency,
	}

	snap, err := store.Load()
	if err != nil {
		log.Warn("failed to load ledger, starting empty", "error", err)
		return s
	}

	if snap == nil {
		return s
	}

	s.transactions = snap.Transactions
	if snap.CurrencyCode != "" {
		s.currencyCode = snap.CurrencyCode
	}

	return s
}

type CreateParams struct {
	Amount      float64
	Description string
	Type        Type
	Category    string
	Date        time.Time // zero value means "now"
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}

	if !p.Type.Valid() {
		return ErrInvalidType
	}

	return nil
}

func newTransaction(p CreateParams, now time.Time) Transaction {
	date := p.Date
	if date.IsZero() {
		date = now
	}

	return Transaction{
		ID:          uuid.NewString()[:8],
		Amount:      p.Amount,
		Description: strings.TrimSpace(p.Description),
		Type:        p.Type,
		Category:    p.Category,
		Date:        date,
		CreatedAt:   now,
	}
}

// Add validates the params, inserts a new transaction at the front of the
// collection (newest-added first, regardless of its date) and persists.
// On a validation error nothing is mutated and nothing is written.
func (s *Service) Add(p CreateParams) (*Transaction, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTransaction(p, time.Now())
	s.transactions = append([]Transaction{tx}, s.transactions...)
	s.persist()

	return &tx, nil
}

// AddBatch inserts a batch of transactions with a single persistence
// write. Validation is all-or-nothing: one bad entry rejects the whole
// batch and the ledger is untouched.
func (s *Service) AddBatch(params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	txs := make([]*Transaction, len(params))

	for i, p := range params {
		tx := newTransaction(p, now)
		s.transactions = append([]Transaction{tx}, s.transactions...)
		txs[i] = &tx
	}

	s.persist()

	return txs, nil
}

// Get returns the transaction with the given id, or ErrNotFound.
func (s *Service) Get(id string) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			tx := s.transactions[i]
			return &tx, nil
		}
	}

	return nil, ErrNotFound
}

// Delete removes the transaction with the given id. Deleting an id that
// does not exist is a no-op; deletion is idempotent and never fails.
func (s *Service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}

	s.transactions = kept
	s.persist()
}

// SetCurrency replaces the ledger-wide currency code and persists.
func (s *Service) SetCurrency(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrInvalidCurrency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currencyCode = code
	s.persist()

	return nil
}

// Currency returns the active currency code.
func (s *Service) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currencyCode
}

// Balance returns sum(income) - sum(expense) over all transactions,
// regardless of date.
func (s *Service) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balance float64

	for _, tx := range s.transactions {
		switch tx.Type {
		case TypeIncome:
			balance += tx.Amount
		case TypeExpense:
			balance -= tx.Amount
		}
	}

	return balance
}

// Transactions returns a copy of the collection, newest-inserted first.
func (s *Service) Transactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)

	return out
}

// persist flushes the full ledger. Callers must hold s.mu. A write
// failure leaves the in-memory state authoritative; it is logged and not
// retried.
func (s *Service) persist() {
	snap := Snapshot{
		Transactions: make([]Transaction, len(s.transactions)),
		CurrencyCode: s.currencyCode,
	}
	copy(snap.Transactions, s.transactions)

	if err := s.store.Save(snap); err != nil {
		s.log.Error("failed to persist ledger", "error", err)
	}
}

// IsValidationError reports whether err is one of the input validation
// failures a caller should surface as a bad request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidCurrency)
}
