package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant     int
	TransactionID string
	Description   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.TransactionID, e.Description)
}

// ValidateDocument enforces 7 invariants on a month document before it is
// persisted or after it is parsed.
func ValidateDocument(doc *model.MonthDocument) []ValidationError {
	var errs []ValidationError

	// Invariant 1: Well-formed month key.
	if !monthkey.Valid(doc.MonthKey) {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Description: fmt.Sprintf("malformed month key %q", doc.MonthKey),
		})
		return errs
	}

	idsSeen := make(map[string]bool, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		errs = append(errs, ValidateTransaction(doc.MonthKey, tx)...)

		// Invariant 7: Non-empty, unique transaction IDs.
		if tx.ID == "" {
			errs = append(errs, ValidationError{
				Invariant:   7,
				Description: "transaction has empty ID",
			})
			continue
		}
		if idsSeen[tx.ID] {
			errs = append(errs, ValidationError{
				Invariant:     7,
				TransactionID: tx.ID,
				Description:   "duplicate transaction ID",
			})
		}
		idsSeen[tx.ID] = true
	}

	return errs
}

// ValidateTransaction enforces the per-transaction invariants against a
// target month.
func ValidateTransaction(targetMonth string, tx model.Transaction) []ValidationError {
	var errs []ValidationError

	// Invariant 2: Known transaction kind.
	if !tx.Kind.Valid() {
		errs = append(errs, ValidationError{
			Invariant:     2,
			TransactionID: tx.ID,
			Description:   fmt.Sprintf("unknown kind %q", tx.Kind),
		})
	}

	// Invariant 3: Non-empty category.
	if strings.TrimSpace(tx.Category) == "" {
		errs = append(errs, ValidationError{
			Invariant:     3,
			TransactionID: tx.ID,
			Description:   "empty category",
		})
	}

	// Invariant 4: Non-negative amount.
	if tx.Amount.IsNegative() {
		errs = append(errs, ValidationError{
			Invariant:     4,
			TransactionID: tx.ID,
			Description:   fmt.Sprintf("negative amount %s", tx.Amount),
		})
	}

	// Invariant 5: Exact decimals, no more than 2 decimal places.
	hundred := decimal.NewFromInt(100)
	if !tx.Amount.Mul(hundred).Equal(tx.Amount.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{
			Invariant:     5,
			TransactionID: tx.ID,
			Description:   fmt.Sprintf("amount %s has more than 2 decimal places", tx.Amount),
		})
	}

	// Invariant 6: Date within the target month.
	if !monthkey.Contains(targetMonth, tx.Date) {
		errs = append(errs, ValidationError{
			Invariant:     6,
			TransactionID: tx.ID,
			Description:   fmt.Sprintf("date %s not in %s", tx.Date.Format("2006-01-02"), targetMonth),
		})
	}

	return errs
}

// joinValidationErrors flattens validation errors into one error value.
func joinValidationErrors(errs []ValidationError) error {
	msgs := make([]string, len(errs))
	for i, ve := range errs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
