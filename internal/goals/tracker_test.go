package goals

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func monthWith(key string, income, expense string) *model.MonthDocument {
	doc := model.NewMonthDocument(key)
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if income != "0" {
		doc.Add(model.NewTransaction(day, model.KindIncome, "Gehalt", dec(income), ""))
	}
	if expense != "0" {
		doc.Add(model.NewTransaction(day, model.KindExpense, "Miete", dec(expense), ""))
	}
	return doc
}

func TestRolloverCarriesNetBalance(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	cur := model.NewMonthDocument("2026-02")

	_, carried := Rollover(prev, cur, nil)
	assert.True(t, carried.Equal(dec("300.00")))
	assert.True(t, cur.CarriedBalance.Equal(dec("300.00")))
}

func TestRolloverStacksPriorCarry(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	prev.CarriedBalance = dec("150.00")
	cur := model.NewMonthDocument("2026-02")

	_, carried := Rollover(prev, cur, nil)
	assert.True(t, carried.Equal(dec("450.00")))
}

func TestRolloverNegativeBalanceAllocatesNothing(t *testing.T) {
	prev := monthWith("2026-01", "500.00", "700.00")
	cur := model.NewMonthDocument("2026-02")
	goal := model.NewSavingsGoal("Urlaub", dec("1000.00"), "")

	updated, carried := Rollover(prev, cur, []model.SavingsGoal{goal})
	assert.True(t, carried.Equal(dec("-200.00")))
	assert.True(t, cur.CarriedBalance.Equal(dec("-200.00")))
	assert.True(t, updated[0].Accumulated.IsZero())
}

func TestRolloverEqualSplit(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	cur := model.NewMonthDocument("2026-02")
	goals := []model.SavingsGoal{
		model.NewSavingsGoal("Urlaub", dec("1000.00"), ""),
		model.NewSavingsGoal("Notgroschen", dec("5000.00"), ""),
	}

	updated, _ := Rollover(prev, cur, goals)
	assert.True(t, updated[0].Accumulated.Equal(dec("150.00")))
	assert.True(t, updated[1].Accumulated.Equal(dec("150.00")))
}

func TestRolloverLeftoverCentsGoToEarliestGoals(t *testing.T) {
	prev := monthWith("2026-01", "100.01", "0")
	cur := model.NewMonthDocument("2026-02")
	goals := []model.SavingsGoal{
		model.NewSavingsGoal("A", dec("1000.00"), ""),
		model.NewSavingsGoal("B", dec("1000.00"), ""),
	}

	updated, _ := Rollover(prev, cur, goals)
	assert.True(t, updated[0].Accumulated.Equal(dec("50.01")), "got %s", updated[0].Accumulated)
	assert.True(t, updated[1].Accumulated.Equal(dec("50.00")), "got %s", updated[1].Accumulated)

	// Nothing created or lost.
	total := updated[0].Accumulated.Add(updated[1].Accumulated)
	assert.True(t, total.Equal(dec("100.01")))
}

func TestRolloverFixedContributionFirst(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	cur := model.NewMonthDocument("2026-02")

	fixed := model.NewSavingsGoal("Auto", dec("5000.00"), "")
	fixed.MonthlyContribution = dec("100.00")
	split := model.NewSavingsGoal("Urlaub", dec("1000.00"), "")

	updated, _ := Rollover(prev, cur, []model.SavingsGoal{fixed, split})
	assert.True(t, updated[0].Accumulated.Equal(dec("100.00")))
	assert.True(t, updated[1].Accumulated.Equal(dec("200.00")))
}

func TestRolloverFixedContributionCappedAtRemaining(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "0")
	cur := model.NewMonthDocument("2026-02")

	almostDone := model.NewSavingsGoal("Fahrrad", dec("500.00"), "")
	almostDone.Accumulated = dec("480.00")
	almostDone.MonthlyContribution = dec("100.00")

	updated, _ := Rollover(prev, cur, []model.SavingsGoal{almostDone})
	assert.True(t, updated[0].Accumulated.Equal(dec("500.00")))
	assert.True(t, updated[0].Completed())
}

func TestRolloverSkipsCompletedGoals(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	cur := model.NewMonthDocument("2026-02")

	done := model.NewSavingsGoal("Fertig", dec("100.00"), "")
	done.Accumulated = dec("100.00")
	open := model.NewSavingsGoal("Offen", dec("1000.00"), "")

	updated, _ := Rollover(prev, cur, []model.SavingsGoal{done, open})
	// Completion is terminal: no further automatic contribution.
	assert.True(t, updated[0].Accumulated.Equal(dec("100.00")))
	// The open goal takes the whole split.
	assert.True(t, updated[1].Accumulated.Equal(dec("300.00")))
}

func TestRolloverRunsOncePerMonth(t *testing.T) {
	prev := monthWith("2026-01", "1000.00", "700.00")
	cur := model.NewMonthDocument("2026-02")
	goal := model.NewSavingsGoal("Urlaub", dec("1200.00"), "")

	updated, carried := Rollover(prev, cur, []model.SavingsGoal{goal})
	require.True(t, carried.Equal(dec("300.00")))
	require.True(t, updated[0].Accumulated.Equal(dec("300.00")))
	assert.True(t, cur.RolloverDone)

	// The same carry must never fund the goals twice.
	again, carriedAgain := Rollover(prev, cur, updated)
	assert.True(t, carriedAgain.Equal(dec("300.00")))
	assert.True(t, again[0].Accumulated.Equal(dec("300.00")), "got %s", again[0].Accumulated)
	assert.True(t, cur.CarriedBalance.Equal(dec("300.00")))
}

func TestTrackerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tracker := NewTracker(dir)

	goals, err := tracker.Load()
	require.NoError(t, err)
	assert.Empty(t, goals)

	g := model.NewSavingsGoal("Urlaub", dec("1500.00"), "2026-08")
	g.Accumulated = dec("250.00")
	g.MonthlyContribution = dec("50.00")
	require.NoError(t, tracker.Save([]model.SavingsGoal{g}))

	goals, err = tracker.Load()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, g.ID, goals[0].ID)
	assert.Equal(t, "Urlaub", goals[0].Name)
	assert.Equal(t, "2026-08", goals[0].TargetMonth)
	assert.True(t, goals[0].TargetAmount.Equal(dec("1500.00")))
	assert.True(t, goals[0].Accumulated.Equal(dec("250.00")))
	assert.True(t, goals[0].MonthlyContribution.Equal(dec("50.00")))

	_, found := Find(goals, g.ID)
	assert.True(t, found)
	_, found = Find(goals, "nope")
	assert.False(t, found)

	// The atomic save leaves no temp files behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}
