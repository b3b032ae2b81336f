package ledger

import (
	"errors"
	"time"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidType      = errors.New("unknown transaction type")
	ErrInvalidCurrency  = errors.New("currency code must not be empty")
	ErrNotFound         = errors.New("transaction not found")
)

// Transaction represents a single recorded money movement. Records are
// immutable once stored; the sign of the movement is carried by Type,
// Amount is always positive.
type Transaction struct {
	ID          string
	Amount      float64
	Description string
	Type        Type
	Category    string
	Date        time.Time // user-assigned date, may differ from CreatedAt
	CreatedAt   time.Time
}

// Snapshot is the full persistent state of a ledger.
type Snapshot struct {
	Transactions []Transaction
	CurrencyCode string
}

// Category pairs an emoji with a display name. The lists below mirror the
// pickers offered when recording a transaction; stored categories are
// free-form strings and are never checked against them.
type Category struct {
	Emoji string
	Name  string
}

var IncomeCategories = []Category{
	{"💼", "Salary"},
	{"💻", "Freelance"},
	{"📈", "Investment"},
	{"🎁", "Gift"},
	{"💰", "Business"},
	{"🏠", "Rental"},
	{"🔄", "Refund"},
	{"💳", "Bonus"},
	{"🏆", "Prize"},
	{"💸", "Cashback"},
	{"📦", "Other Income"},
}

var ExpenseCategories = []Category{
	{"🍔", "Food & Dining"},
	{"🚗", "Transportation"},
	{"🏠", "Housing"},
	{"⚡", "Utilities"},
	{"🏥", "Healthcare"},
	{"🎬", "Entertainment"},
	{"🛒", "Shopping"},
	{"📚", "Education"},
	{"💳", "Bills"},
	{"👕", "Clothing"},
	{"✈️", "Travel"},
	{"🎮", "Hobbies"},
	{"💊", "Medicine"},
	{"🔧", "Maintenance"},
	{"📱", "Technology"},
	{"🎵", "Subscriptions"},
	{"🚖", "Taxi/Uber"},
	{"⛽", "Fuel"},
	{"🏋️", "Gym/Sports"},
	{"💄", "Beauty"},
	{"🎪", "Events"},
	{"🎨", "Arts & Crafts"},
	{"📦", "Other Expense"},
}

// CategoriesFor returns the category list for the given transaction type.
func CategoriesFor(t Type) []Category {
	if t == TypeIncome {
		return IncomeCategories
	}

	return ExpenseCategories
}

// FallbackCategory returns the catch-all category name for a type.
func FallbackCategory(t Type) string {
	if t == TypeIncome {
		return "Other Income"
	}

	return "Other Expense"
}
