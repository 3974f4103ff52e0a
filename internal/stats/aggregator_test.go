package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(key string, day int, kind model.Kind, category, amount string) model.Transaction {
	year, month, err := monthkey.Parse(key)
	if err != nil {
		panic(err)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return model.NewTransaction(date, kind, category, dec(amount), "")
}

func monthDoc(key string, txs ...model.Transaction) *model.MonthDocument {
	doc := model.NewMonthDocument(key)
	doc.Transactions = txs
	return doc
}

func TestSummarize(t *testing.T) {
	doc := monthDoc("2026-01",
		tx("2026-01", 1, model.KindIncome, "Gehalt", "2500.00"),
		tx("2026-01", 3, model.KindIncome, "Freelance", "400.50"),
		tx("2026-01", 5, model.KindExpense, "Miete", "900.00"),
		tx("2026-01", 8, model.KindExpense, "Einkauf", "120.30"),
		tx("2026-01", 20, model.KindExpense, "Einkauf", "79.70"),
	)

	totals := Summarize(doc)
	assert.True(t, totals.Income.Equal(dec("2900.50")))
	assert.True(t, totals.Expense.Equal(dec("1100.00")))
	assert.True(t, totals.Balance.Equal(dec("1800.50")))
	assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expense)))

	assert.True(t, totals.ExpenseByCategory["Einkauf"].Equal(dec("200.00")))
	assert.True(t, totals.ExpenseByCategory["Miete"].Equal(dec("900.00")))
	assert.True(t, totals.IncomeByCategory["Gehalt"].Equal(dec("2500.00")))
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(model.NewMonthDocument("2026-01"))
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.Empty(t, totals.ExpenseByCategory)
}

func TestMultiMonthSeriesOrdersByMonth(t *testing.T) {
	jan := monthDoc("2026-01",
		tx("2026-01", 1, model.KindIncome, "Gehalt", "1000.00"),
		tx("2026-01", 2, model.KindExpense, "Miete", "700.00"),
	)
	feb := monthDoc("2026-02",
		tx("2026-02", 1, model.KindIncome, "Gehalt", "1000.00"),
		tx("2026-02", 2, model.KindExpense, "Miete", "400.00"),
	)

	// Input deliberately out of order.
	s := MultiMonthSeries([]*model.MonthDocument{feb, jan})

	require.Len(t, s.BalanceHistory, 2)
	assert.Equal(t, "2026-01", s.BalanceHistory[0].MonthKey)
	assert.True(t, s.BalanceHistory[0].Value.Equal(dec("300.00")))
	assert.Equal(t, "2026-02", s.BalanceHistory[1].MonthKey)
	assert.True(t, s.BalanceHistory[1].Value.Equal(dec("600.00")))
}

func TestSavingsRate(t *testing.T) {
	earning := monthDoc("2026-01",
		tx("2026-01", 1, model.KindIncome, "Gehalt", "1000.00"),
		tx("2026-01", 2, model.KindExpense, "Miete", "700.00"),
	)
	noIncome := monthDoc("2026-02",
		tx("2026-02", 2, model.KindExpense, "Miete", "700.00"),
	)

	s := MultiMonthSeries([]*model.MonthDocument{earning, noIncome})
	require.Len(t, s.SavingsRateHistory, 2)
	assert.True(t, s.SavingsRateHistory[0].Value.Equal(dec("0.3")))
	// Savings rate is defined as 0 when income is 0.
	assert.True(t, s.SavingsRateHistory[1].Value.IsZero())
}

func TestTopCategoriesRanking(t *testing.T) {
	jan := monthDoc("2026-01",
		tx("2026-01", 2, model.KindExpense, "Groceries", "50.00"),
		tx("2026-01", 3, model.KindExpense, "Rent", "1200.00"),
	)
	feb := monthDoc("2026-02",
		tx("2026-02", 2, model.KindExpense, "Groceries", "30.00"),
	)

	s := MultiMonthSeries([]*model.MonthDocument{jan, feb})
	require.Len(t, s.TopCategories, 2)
	assert.Equal(t, "Rent", s.TopCategories[0].Category)
	assert.True(t, s.TopCategories[0].Total.Equal(dec("1200.00")))
	assert.Equal(t, "Groceries", s.TopCategories[1].Category)
	assert.True(t, s.TopCategories[1].Total.Equal(dec("80.00")))
}

func TestTopCategoriesTieBreaksByName(t *testing.T) {
	doc := monthDoc("2026-01",
		tx("2026-01", 2, model.KindExpense, "Kleidung", "100.00"),
		tx("2026-01", 3, model.KindExpense, "Bildung", "100.00"),
	)

	s := MultiMonthSeries([]*model.MonthDocument{doc})
	require.Len(t, s.TopCategories, 2)
	assert.Equal(t, "Bildung", s.TopCategories[0].Category)
	assert.Equal(t, "Kleidung", s.TopCategories[1].Category)
}

func TestForecast(t *testing.T) {
	templates := []model.RecurringTemplate{
		model.NewRecurringTemplate(model.KindIncome, "Gehalt", dec("2500.00"), "", 1, ""),
		model.NewRecurringTemplate(model.KindExpense, "Miete", dec("900.00"), "", 1, ""),
		model.NewRecurringTemplate(model.KindExpense, "Abonnements", dec("19.99"), "", 15, ""),
	}
	templates[2].Active = false

	income, expense := Forecast(templates)
	assert.True(t, income.Equal(dec("2500.00")))
	assert.True(t, expense.Equal(dec("900.00")))
}
