package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestAddKeepsDateOrder(t *testing.T) {
	doc := NewMonthDocument("2026-01")
	doc.Add(NewTransaction(day(20), KindExpense, "Miete", decimal.NewFromInt(900), ""))
	doc.Add(NewTransaction(day(5), KindIncome, "Gehalt", decimal.NewFromInt(2500), ""))
	doc.Add(NewTransaction(day(12), KindExpense, "Einkauf", decimal.NewFromInt(80), ""))

	require.Len(t, doc.Transactions, 3)
	assert.Equal(t, 5, doc.Transactions[0].Date.Day())
	assert.Equal(t, 12, doc.Transactions[1].Date.Day())
	assert.Equal(t, 20, doc.Transactions[2].Date.Day())
}

func TestUpdatePreservesID(t *testing.T) {
	doc := NewMonthDocument("2026-01")
	tx := NewTransaction(day(10), KindExpense, "Einkauf", decimal.NewFromInt(50), "")
	doc.Add(tx)

	updated := NewTransaction(day(11), KindExpense, "Einkauf", decimal.NewFromInt(55), "corrected")
	ok := doc.Update(tx.ID, updated)
	require.True(t, ok)

	got, found := doc.Find(tx.ID)
	require.True(t, found)
	assert.Equal(t, tx.ID, got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(55)))
	assert.Equal(t, "corrected", got.Description)

	assert.False(t, doc.Update("no-such-id", updated))
}

func TestDelete(t *testing.T) {
	doc := NewMonthDocument("2026-01")
	tx := NewTransaction(day(10), KindExpense, "Einkauf", decimal.NewFromInt(50), "")
	doc.Add(tx)

	assert.False(t, doc.Delete("no-such-id"))
	assert.True(t, doc.Delete(tx.ID))
	assert.Empty(t, doc.Transactions)
}

func TestByKindAndHasRecurring(t *testing.T) {
	doc := NewMonthDocument("2026-01")
	doc.Add(NewTransaction(day(1), KindIncome, "Gehalt", decimal.NewFromInt(2500), ""))

	rent := NewTransaction(day(1), KindExpense, "Miete", decimal.NewFromInt(900), "")
	rent.RecurringID = "tmpl-1"
	doc.Add(rent)

	assert.Len(t, doc.ByKind(KindIncome), 1)
	assert.Len(t, doc.ByKind(KindExpense), 1)
	assert.True(t, doc.HasRecurring("tmpl-1"))
	assert.False(t, doc.HasRecurring("tmpl-2"))
}

func TestGoalCompletion(t *testing.T) {
	g := NewSavingsGoal("Urlaub", decimal.NewFromInt(1000), "")
	assert.False(t, g.Completed())
	assert.True(t, g.Remaining().Equal(decimal.NewFromInt(1000)))

	g.Accumulated = decimal.NewFromInt(1200)
	assert.True(t, g.Completed())
	assert.True(t, g.Remaining().IsZero())
}

func TestTemplateAppliesTo(t *testing.T) {
	tmpl := NewRecurringTemplate(KindExpense, "Miete", decimal.NewFromInt(900), "Miete", 1, "2026-01")
	assert.True(t, tmpl.AppliesTo("2026-01"))
	assert.True(t, tmpl.AppliesTo("2026-06"))
	assert.False(t, tmpl.AppliesTo("2025-12"))

	tmpl.Active = false
	assert.False(t, tmpl.AppliesTo("2026-06"))

	always := NewRecurringTemplate(KindIncome, "Gehalt", decimal.NewFromInt(2500), "", 1, "")
	assert.True(t, always.AppliesTo("1999-01"))
}
