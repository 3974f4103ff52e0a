package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is a known transaction kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single dated income or expense entry. The ID is stable
// across edits; RecurringID links an entry produced by a recurring template
// back to that template (empty for manual entries).
type Transaction struct {
	ID          string
	Date        time.Time
	Kind        Kind
	Category    string
	Amount      decimal.Decimal // non-negative, currency precision
	Description string
	RecurringID string
}

// NewTransaction creates a transaction with a fresh ID and the amount
// rounded to currency precision.
func NewTransaction(date time.Time, kind Kind, category string, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Kind:        kind,
		Category:    category,
		Amount:      amount.Round(2),
		Description: description,
	}
}
