package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthDocument holds all transactions for one calendar month plus the
// balance carried over from the prior month. It maps 1:1 to a JSON file
// named after its month key. RolloverDone marks that the carry from the
// prior month has been taken and allocated to the savings goals; a month
// rolls over at most once.
type MonthDocument struct {
	MonthKey       string
	Transactions   []Transaction
	CarriedBalance decimal.Decimal
	RolloverDone   bool
}

// NewMonthDocument returns an empty document for the given month key.
func NewMonthDocument(monthKey string) *MonthDocument {
	return &MonthDocument{MonthKey: monthKey}
}

// SortByDate orders transactions by calendar day, keeping insertion order
// for entries on the same day.
func (d *MonthDocument) SortByDate() {
	sort.SliceStable(d.Transactions, func(i, j int) bool {
		return d.Transactions[i].Date.Before(d.Transactions[j].Date)
	})
}

// Find returns the transaction with the given ID.
func (d *MonthDocument) Find(id string) (Transaction, bool) {
	for _, tx := range d.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Add appends a transaction and re-sorts by date.
func (d *MonthDocument) Add(tx Transaction) {
	d.Transactions = append(d.Transactions, tx)
	d.SortByDate()
}

// Update replaces the transaction with the given ID, preserving that ID.
// Returns false if no transaction matches.
func (d *MonthDocument) Update(id string, updated Transaction) bool {
	for i, tx := range d.Transactions {
		if tx.ID == id {
			updated.ID = id
			d.Transactions[i] = updated
			d.SortByDate()
			return true
		}
	}
	return false
}

// Delete removes the transaction with the given ID. Returns false if no
// transaction matches.
func (d *MonthDocument) Delete(id string) bool {
	for i, tx := range d.Transactions {
		if tx.ID == id {
			d.Transactions = append(d.Transactions[:i], d.Transactions[i+1:]...)
			return true
		}
	}
	return false
}

// ByKind returns all transactions of the given kind.
func (d *MonthDocument) ByKind(kind Kind) []Transaction {
	var result []Transaction
	for _, tx := range d.Transactions {
		if tx.Kind == kind {
			result = append(result, tx)
		}
	}
	return result
}

// HasRecurring reports whether any transaction was produced by the given
// recurring template.
func (d *MonthDocument) HasRecurring(templateID string) bool {
	for _, tx := range d.Transactions {
		if tx.RecurringID == templateID {
			return true
		}
	}
	return false
}
