package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal accumulates a share of each month's rolled-over surplus until
// its target is reached. Accumulated never decreases except through a manual
// edit. A goal with a MonthlyContribution is funded with that fixed amount
// before the equal split across the remaining goals.
type SavingsGoal struct {
	ID                  string
	Name                string
	TargetAmount        decimal.Decimal
	TargetMonth         string // "YYYY-MM"; empty means open-ended
	Accumulated         decimal.Decimal
	MonthlyContribution decimal.Decimal // zero means equal-split pool
}

// NewSavingsGoal creates a goal with a fresh ID and nothing accumulated.
func NewSavingsGoal(name string, target decimal.Decimal, targetMonth string) SavingsGoal {
	return SavingsGoal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: target.Round(2),
		TargetMonth:  targetMonth,
	}
}

// Completed reports whether the goal has reached its target. Completion is
// terminal for automatic contributions but the goal stays visible.
func (g SavingsGoal) Completed() bool {
	return g.Accumulated.GreaterThanOrEqual(g.TargetAmount)
}

// Remaining returns the amount still needed to reach the target, never
// negative.
func (g SavingsGoal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.Accumulated)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
