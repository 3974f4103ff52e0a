package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringTemplate produces at most one concrete transaction per eligible
// month, dated at Day (clamped to the month's last valid day).
type RecurringTemplate struct {
	ID          string
	Kind        Kind
	Category    string
	Amount      decimal.Decimal
	Description string
	Day         int    // day of month, 1-31
	Active      bool
	StartMonth  string // "YYYY-MM"; empty means no lower bound
}

// NewRecurringTemplate creates an active template with a fresh ID.
func NewRecurringTemplate(kind Kind, category string, amount decimal.Decimal, description string, day int, startMonth string) RecurringTemplate {
	return RecurringTemplate{
		ID:          uuid.NewString(),
		Kind:        kind,
		Category:    category,
		Amount:      amount.Round(2),
		Description: description,
		Day:         day,
		Active:      true,
		StartMonth:  startMonth,
	}
}

// AppliesTo reports whether the template should produce an entry for the
// given month, ignoring idempotence (already-materialized) checks.
// Month keys compare lexicographically in calendar order.
func (t RecurringTemplate) AppliesTo(monthKey string) bool {
	if !t.Active {
		return false
	}
	if t.StartMonth != "" && t.StartMonth > monthKey {
		return false
	}
	return true
}
