package categories

import (
	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

// Service provides in-memory lookup over the known category labels per
// transaction kind. Categories are free text at the data level; the service
// only drives defaults and CLI listings.
type Service struct {
	expense []string
	income  []string
	known   map[model.Kind]map[string]bool
}

// NewService creates a Service from explicit category lists. Empty lists
// fall back to the built-in defaults.
func NewService(expense, income []string) *Service {
	if len(expense) == 0 {
		expense = DefaultExpense()
	}
	if len(income) == 0 {
		income = DefaultIncome()
	}

	known := map[model.Kind]map[string]bool{
		model.KindExpense: make(map[string]bool, len(expense)),
		model.KindIncome:  make(map[string]bool, len(income)),
	}
	for _, c := range expense {
		known[model.KindExpense][c] = true
	}
	for _, c := range income {
		known[model.KindIncome][c] = true
	}
	return &Service{expense: expense, income: income, known: known}
}

// Defaults returns a Service over the built-in category sets.
func Defaults() *Service {
	return NewService(nil, nil)
}

// All returns the category labels for the given kind.
func (s *Service) All(kind model.Kind) []string {
	if kind == model.KindIncome {
		return s.income
	}
	return s.expense
}

// Has reports whether name is a known category for the given kind.
func (s *Service) Has(kind model.Kind, name string) bool {
	return s.known[kind][name]
}
