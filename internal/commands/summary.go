package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/stats"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [month]",
		Short: "Show a month's totals and expense breakdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			key := currentMonthKey()
			if len(args) > 0 {
				key = args[0]
			}
			return runSummary(a, key)
		},
	}
	return cmd
}

func runSummary(a *app, key string) error {
	doc, err := a.loadMonth(key)
	if err != nil {
		return err
	}
	totals := stats.Summarize(doc)
	currency := a.cfg.Currency

	fmt.Println(styleHeader.Render(key))
	if !doc.CarriedBalance.IsZero() {
		fmt.Printf("Carried over   %s\n", styleBalance(doc.CarriedBalance).Render(fmtSigned(doc.CarriedBalance, currency)))
	}
	fmt.Printf("Income         %s\n", styleIncome.Render(fmtMoney(totals.Income, currency)))
	fmt.Printf("Expenses       %s\n", styleExpense.Render(fmtMoney(totals.Expense, currency)))
	fmt.Printf("Balance        %s\n", styleBalance(totals.Balance).Render(fmtSigned(totals.Balance, currency)))

	if len(totals.ExpenseByCategory) > 0 {
		fmt.Println()
		fmt.Println(styleHeader.Render("Expenses by category"))
		for _, ct := range stats.RankCategories(totals.ExpenseByCategory) {
			fmt.Printf("  %-20s %s\n", ct.Category, styleExpense.Render(fmtMoney(ct.Total, currency)))
		}
	}

	// Future months show a projection from the recurring templates.
	if key > currentMonthKey() {
		templates, err := a.engine.Load()
		if err != nil {
			return err
		}
		income, expense := stats.Forecast(templates)
		fmt.Println()
		fmt.Println(styleMuted.Render(fmt.Sprintf(
			"Forecast from recurring entries: income %s | expenses %s | balance %s",
			fmtMoney(income, currency), fmtMoney(expense, currency), fmtSigned(income.Sub(expense), currency),
		)))
	}
	return nil
}
