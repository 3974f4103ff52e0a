package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

func TestValidateDocumentClean(t *testing.T) {
	doc := model.NewMonthDocument("2026-01")
	doc.Add(model.NewTransaction(date(2026, 1, 5), model.KindIncome, "Gehalt", dec("2500.00"), ""))
	doc.Add(model.NewTransaction(date(2026, 1, 31), model.KindExpense, "Miete", dec("900.00"), ""))

	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateTransactionInvariants(t *testing.T) {
	tests := []struct {
		name      string
		tx        model.Transaction
		invariant int
	}{
		{
			name:      "unknown kind",
			tx:        model.Transaction{ID: "a", Date: date(2026, 1, 5), Kind: "transfer", Category: "X", Amount: dec("1")},
			invariant: 2,
		},
		{
			name:      "empty category",
			tx:        model.Transaction{ID: "a", Date: date(2026, 1, 5), Kind: model.KindExpense, Category: "   ", Amount: dec("1")},
			invariant: 3,
		},
		{
			name:      "negative amount",
			tx:        model.Transaction{ID: "a", Date: date(2026, 1, 5), Kind: model.KindExpense, Category: "X", Amount: dec("-1")},
			invariant: 4,
		},
		{
			name:      "sub-cent amount",
			tx:        model.Transaction{ID: "a", Date: date(2026, 1, 5), Kind: model.KindExpense, Category: "X", Amount: dec("1.005")},
			invariant: 5,
		},
		{
			name:      "date outside month",
			tx:        model.Transaction{ID: "a", Date: date(2026, 2, 1), Kind: model.KindExpense, Category: "X", Amount: dec("1")},
			invariant: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTransaction("2026-01", tt.tx)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.invariant, errs[0].Invariant)
		})
	}
}

func TestValidateDocumentIDInvariants(t *testing.T) {
	doc := model.NewMonthDocument("2026-01")
	doc.Transactions = []model.Transaction{
		{ID: "", Date: date(2026, 1, 1), Kind: model.KindExpense, Category: "X", Amount: dec("1")},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, 7, errs[0].Invariant)

	doc.Transactions = []model.Transaction{
		{ID: "a", Date: date(2026, 1, 1), Kind: model.KindExpense, Category: "X", Amount: dec("1")},
		{ID: "a", Date: date(2026, 1, 2), Kind: model.KindExpense, Category: "X", Amount: dec("1")},
	}
	errs = ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, 7, errs[0].Invariant)
	assert.Equal(t, "a", errs[0].TransactionID)
}

func TestValidateDocumentBadMonthKey(t *testing.T) {
	doc := model.NewMonthDocument("2026-13")
	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
}
