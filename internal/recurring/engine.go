package recurring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

const templatesFile = "recurring.json"

// Engine persists recurring templates and materializes them into concrete
// month entries.
type Engine struct {
	path string
}

// NewEngine creates an Engine storing templates under dataDir.
func NewEngine(dataDir string) *Engine {
	return &Engine{path: filepath.Join(dataDir, templatesFile)}
}

// templateRecord is the JSON wire form of a recurring template.
type templateRecord struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Day         int         `json:"day"`
	Active      bool        `json:"active"`
	StartMonth  string      `json:"start_month,omitempty"`
}

// Load reads all templates. A missing file yields an empty list.
func (e *Engine) Load() ([]model.RecurringTemplate, error) {
	data, err := os.ReadFile(e.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading templates %s: %w", e.path, err)
	}

	var records []templateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &store.ParseError{Path: e.path, Err: err}
	}

	templates := make([]model.RecurringTemplate, 0, len(records))
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, &store.ParseError{Path: e.path, Err: fmt.Errorf("template %d: parsing amount %q: %w", i, rec.Amount.String(), err)}
		}
		templates = append(templates, model.RecurringTemplate{
			ID:          rec.ID,
			Kind:        model.Kind(rec.Type),
			Category:    rec.Category,
			Amount:      amount,
			Description: rec.Description,
			Day:         rec.Day,
			Active:      rec.Active,
			StartMonth:  rec.StartMonth,
		})
	}
	return templates, nil
}

// Save writes all templates, replacing the previous set.
func (e *Engine) Save(templates []model.RecurringTemplate) error {
	records := make([]templateRecord, len(templates))
	for i, t := range templates {
		records[i] = templateRecord{
			ID:          t.ID,
			Type:        string(t.Kind),
			Category:    t.Category,
			Amount:      json.Number(t.Amount.StringFixed(2)),
			Description: t.Description,
			Day:         t.Day,
			Active:      t.Active,
			StartMonth:  t.StartMonth,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling templates: %w", err)
	}
	if err := store.WriteFileAtomic(e.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing templates: %w", err)
	}
	return nil
}

// Find returns the template with the given ID.
func Find(templates []model.RecurringTemplate, id string) (model.RecurringTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.RecurringTemplate{}, false
}

// Materialize synthesizes the transactions that the given templates owe the
// target month: one per active template whose start month does not exclude
// the month and that is not already represented in existing (matched on
// template ID). Dates clamp to the month's last valid day, so day 31 in a
// 30-day month lands on day 30. Calling Materialize again with the combined
// set yields nothing.
func Materialize(monthKey string, templates []model.RecurringTemplate, existing []model.Transaction) ([]model.Transaction, error) {
	materialized := make(map[string]bool)
	for _, tx := range existing {
		if tx.RecurringID != "" {
			materialized[tx.RecurringID] = true
		}
	}

	var result []model.Transaction
	for _, t := range templates {
		if !t.AppliesTo(monthKey) || materialized[t.ID] {
			continue
		}

		date, err := monthkey.Date(monthKey, t.Day)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.ID, err)
		}

		tx := model.NewTransaction(date, t.Kind, t.Category, t.Amount, t.Description)
		tx.RecurringID = t.ID
		result = append(result, tx)
	}
	return result, nil
}

// Apply materializes templates into a loaded document, reporting how many
// entries were added.
func Apply(doc *model.MonthDocument, templates []model.RecurringTemplate) (int, error) {
	added, err := Materialize(doc.MonthKey, templates, doc.Transactions)
	if err != nil {
		return 0, err
	}
	for _, tx := range added {
		doc.Add(tx)
	}
	return len(added), nil
}
