package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

const dateFormat = "2006-01-02"

// monthFile is the JSON wire form of a month document. Amounts travel as
// plain JSON numbers with two decimal places.
type monthFile struct {
	Month          string              `json:"month"`
	CarriedBalance *json.Number        `json:"carried_balance,omitempty"`
	RolloverDone   bool                `json:"rollover_done,omitempty"`
	Transactions   []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	RecurringID string      `json:"recurring_id,omitempty"`
}

// MarshalDocument serializes a month document to indented JSON.
func MarshalDocument(doc *model.MonthDocument) ([]byte, error) {
	file := monthFile{
		Month:        doc.MonthKey,
		RolloverDone: doc.RolloverDone,
		Transactions: make([]transactionRecord, len(doc.Transactions)),
	}

	if !doc.CarriedBalance.IsZero() {
		n := json.Number(doc.CarriedBalance.StringFixed(2))
		file.CarriedBalance = &n
	}

	for i, tx := range doc.Transactions {
		file.Transactions[i] = transactionRecord{
			ID:          tx.ID,
			Date:        tx.Date.Format(dateFormat),
			Type:        string(tx.Kind),
			Category:    tx.Category,
			Amount:      json.Number(tx.Amount.StringFixed(2)),
			Description: tx.Description,
			RecurringID: tx.RecurringID,
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling month document: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalDocument parses JSON into a month document. Schema violations
// surface as plain errors; callers wrap them into a ParseError with the
// file path attached.
func UnmarshalDocument(data []byte) (*model.MonthDocument, error) {
	var file monthFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing month document: %w", err)
	}

	doc := model.NewMonthDocument(file.Month)
	doc.RolloverDone = file.RolloverDone

	if file.CarriedBalance != nil {
		carried, err := decimal.NewFromString(file.CarriedBalance.String())
		if err != nil {
			return nil, fmt.Errorf("parsing carried_balance %q: %w", file.CarriedBalance.String(), err)
		}
		doc.CarriedBalance = carried
	}

	for i, rec := range file.Transactions {
		tx, err := unmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		doc.Transactions = append(doc.Transactions, tx)
	}

	if errs := ValidateDocument(doc); len(errs) > 0 {
		return nil, joinValidationErrors(errs)
	}

	doc.SortByDate()
	return doc, nil
}

func unmarshalTransaction(rec transactionRecord) (model.Transaction, error) {
	date, err := time.Parse(dateFormat, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount.String(), err)
	}

	return model.Transaction{
		ID:          rec.ID,
		Date:        date,
		Kind:        model.Kind(rec.Type),
		Category:    rec.Category,
		Amount:      amount,
		Description: rec.Description,
		RecurringID: rec.RecurringID,
	}, nil
}
