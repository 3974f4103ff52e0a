package goals

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/stats"
	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

const goalsFile = "goals.json"

// Tracker persists savings goals under the data directory.
type Tracker struct {
	path string
}

// NewTracker creates a Tracker storing goals under dataDir.
func NewTracker(dataDir string) *Tracker {
	return &Tracker{path: filepath.Join(dataDir, goalsFile)}
}

// goalRecord is the JSON wire form of a savings goal.
type goalRecord struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	TargetAmount        json.Number `json:"target_amount"`
	TargetMonth         string      `json:"target_month,omitempty"`
	Accumulated         json.Number `json:"accumulated"`
	MonthlyContribution json.Number `json:"monthly_contribution,omitempty"`
}

// Load reads all goals. A missing file yields an empty list.
func (t *Tracker) Load() ([]model.SavingsGoal, error) {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading goals %s: %w", t.path, err)
	}

	var records []goalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &store.ParseError{Path: t.path, Err: err}
	}

	goals := make([]model.SavingsGoal, 0, len(records))
	for i, rec := range records {
		g, err := unmarshalGoal(rec)
		if err != nil {
			return nil, &store.ParseError{Path: t.path, Err: fmt.Errorf("goal %d: %w", i, err)}
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func unmarshalGoal(rec goalRecord) (model.SavingsGoal, error) {
	target, err := decimal.NewFromString(rec.TargetAmount.String())
	if err != nil {
		return model.SavingsGoal{}, fmt.Errorf("parsing target_amount %q: %w", rec.TargetAmount.String(), err)
	}

	accumulated := decimal.Zero
	if rec.Accumulated != "" {
		accumulated, err = decimal.NewFromString(rec.Accumulated.String())
		if err != nil {
			return model.SavingsGoal{}, fmt.Errorf("parsing accumulated %q: %w", rec.Accumulated.String(), err)
		}
	}

	contribution := decimal.Zero
	if rec.MonthlyContribution != "" {
		contribution, err = decimal.NewFromString(rec.MonthlyContribution.String())
		if err != nil {
			return model.SavingsGoal{}, fmt.Errorf("parsing monthly_contribution %q: %w", rec.MonthlyContribution.String(), err)
		}
	}

	return model.SavingsGoal{
		ID:                  rec.ID,
		Name:                rec.Name,
		TargetAmount:        target,
		TargetMonth:         rec.TargetMonth,
		Accumulated:         accumulated,
		MonthlyContribution: contribution,
	}, nil
}

// Save writes all goals, replacing the previous set.
func (t *Tracker) Save(goals []model.SavingsGoal) error {
	records := make([]goalRecord, len(goals))
	for i, g := range goals {
		records[i] = goalRecord{
			ID:           g.ID,
			Name:         g.Name,
			TargetAmount: json.Number(g.TargetAmount.StringFixed(2)),
			TargetMonth:  g.TargetMonth,
			Accumulated:  json.Number(g.Accumulated.StringFixed(2)),
		}
		if !g.MonthlyContribution.IsZero() {
			records[i].MonthlyContribution = json.Number(g.MonthlyContribution.StringFixed(2))
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling goals: %w", err)
	}
	if err := store.WriteFileAtomic(t.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing goals: %w", err)
	}
	return nil
}

// Find returns the goal with the given ID.
func Find(goals []model.SavingsGoal, id string) (model.SavingsGoal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.SavingsGoal{}, false
}

// Rollover carries the previous month's net balance into the current month
// and allocates a positive carry to the savings goals.
//
// The carried balance is prev income minus prev expenses plus whatever prev
// itself carried. It becomes the current month's opening balance whether
// positive or not. A positive carry is allocated to incomplete goals in two
// passes: goals with a fixed monthly contribution are funded first in listed
// order, each capped at its remaining need and at the balance still
// unallocated; the rest of the carry splits equally across the remaining
// incomplete goals, with leftover cents going to the earliest goals.
// Completed goals receive nothing and are never reduced.
//
// A month rolls over at most once: when cur is already marked, the goals
// come back unchanged and no carry is taken again.
func Rollover(prev, cur *model.MonthDocument, goals []model.SavingsGoal) ([]model.SavingsGoal, decimal.Decimal) {
	updated := make([]model.SavingsGoal, len(goals))
	copy(updated, goals)

	if cur.RolloverDone {
		return updated, cur.CarriedBalance
	}

	prevTotals := stats.Summarize(prev)
	carried := prevTotals.Balance.Add(prev.CarriedBalance)
	cur.CarriedBalance = carried
	cur.RolloverDone = true

	if !carried.IsPositive() {
		return updated, carried
	}

	available := carried

	// Pass 1: fixed contributions, in listed order.
	var splitIdx []int
	for i, g := range updated {
		if g.Completed() {
			continue
		}
		if g.MonthlyContribution.IsZero() {
			splitIdx = append(splitIdx, i)
			continue
		}
		amount := decimal.Min(g.MonthlyContribution, g.Remaining(), available)
		if amount.IsPositive() {
			updated[i].Accumulated = g.Accumulated.Add(amount)
			available = available.Sub(amount)
		}
	}

	// Pass 2: equal split of the remainder, leftover cents to earliest goals.
	if len(splitIdx) > 0 && available.IsPositive() {
		n := decimal.NewFromInt(int64(len(splitIdx)))
		share := available.Div(n).RoundDown(2)
		leftover := available.Sub(share.Mul(n))

		cent := decimal.New(1, -2)
		for _, i := range splitIdx {
			amount := share
			if leftover.IsPositive() {
				amount = amount.Add(cent)
				leftover = leftover.Sub(cent)
			}
			updated[i].Accumulated = updated[i].Accumulated.Add(amount)
		}
	}

	return updated, carried
}
