package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

// Totals summarizes one month.
type Totals struct {
	Income            decimal.Decimal
	Expense           decimal.Decimal
	Balance           decimal.Decimal // Income - Expense
	ExpenseByCategory map[string]decimal.Decimal
	IncomeByCategory  map[string]decimal.Decimal
}

// Summarize computes the totals for a month document.
func Summarize(doc *model.MonthDocument) Totals {
	t := Totals{
		Income:            decimal.Zero,
		Expense:           decimal.Zero,
		ExpenseByCategory: make(map[string]decimal.Decimal),
		IncomeByCategory:  make(map[string]decimal.Decimal),
	}

	for _, tx := range doc.Transactions {
		switch tx.Kind {
		case model.KindIncome:
			t.Income = t.Income.Add(tx.Amount)
			t.IncomeByCategory[tx.Category] = t.IncomeByCategory[tx.Category].Add(tx.Amount)
		case model.KindExpense:
			t.Expense = t.Expense.Add(tx.Amount)
			t.ExpenseByCategory[tx.Category] = t.ExpenseByCategory[tx.Category].Add(tx.Amount)
		}
	}

	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// Point is one month's value in a time series.
type Point struct {
	MonthKey string
	Value    decimal.Decimal
}

// CategoryTotal is one category's expense total across a month range.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Series holds the multi-month derived data behind the statistics charts.
type Series struct {
	BalanceHistory     []Point
	SavingsRateHistory []Point // balance / income, 0 when income is 0
	TopCategories      []CategoryTotal
}

// MultiMonthSeries derives balance history, savings-rate history, and the
// expense category ranking for a range of months. Documents are processed
// in calendar order regardless of input order. Savings rates are ratios
// rounded to 4 decimal places. Categories rank by descending total, ties by
// name ascending.
func MultiMonthSeries(docs []*model.MonthDocument) Series {
	ordered := make([]*model.MonthDocument, len(docs))
	copy(ordered, docs)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].MonthKey < ordered[j].MonthKey
	})

	s := Series{}
	categoryTotals := make(map[string]decimal.Decimal)

	for _, doc := range ordered {
		t := Summarize(doc)

		s.BalanceHistory = append(s.BalanceHistory, Point{MonthKey: doc.MonthKey, Value: t.Balance})

		rate := decimal.Zero
		if t.Income.IsPositive() {
			rate = t.Balance.DivRound(t.Income, 4)
		}
		s.SavingsRateHistory = append(s.SavingsRateHistory, Point{MonthKey: doc.MonthKey, Value: rate})

		for cat, sum := range t.ExpenseByCategory {
			categoryTotals[cat] = categoryTotals[cat].Add(sum)
		}
	}

	s.TopCategories = RankCategories(categoryTotals)
	return s
}

// RankCategories orders category sums by descending total, ties broken by
// category name ascending.
func RankCategories(totals map[string]decimal.Decimal) []CategoryTotal {
	ranked := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})
	return ranked
}

// Forecast projects a future month's income and expenses from the active
// recurring templates.
func Forecast(templates []model.RecurringTemplate) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range templates {
		if !t.Active {
			continue
		}
		switch t.Kind {
		case model.KindIncome:
			income = income.Add(t.Amount)
		case model.KindExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}
