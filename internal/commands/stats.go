package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/stats"
)

func newMonthsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months with stored data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			keys, err := a.store.ListMonths()
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Println("No data yet")
				return nil
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return nil
		},
	}
}

func newStatsCommand(configPath *string) *cobra.Command {
	var from, to string
	var topN int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show multi-month balance, savings rate, and top categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return runStats(a, from, to, topN)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first month key (defaults to the earliest)")
	cmd.Flags().StringVar(&to, "to", "", "last month key (defaults to the latest)")
	cmd.Flags().IntVar(&topN, "top", 5, "number of top expense categories to show")

	return cmd
}

func runStats(a *app, from, to string, topN int) error {
	docs, err := a.store.LoadRange(from, to)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No data in range")
		return nil
	}

	series := stats.MultiMonthSeries(docs)
	currency := a.cfg.Currency

	fmt.Println(styleHeader.Render("Balance per month"))
	rows := make([][]string, len(series.BalanceHistory))
	for i, p := range series.BalanceHistory {
		rows[i] = []string{
			p.MonthKey,
			styleBalance(p.Value).Render(fmtSigned(p.Value, currency)),
			percent(series.SavingsRateHistory[i].Value),
		}
	}
	fmt.Print(renderRows([]string{"MONTH", "BALANCE", "SAVINGS RATE"}, rows))

	top := series.TopCategories
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}
	if len(top) > 0 {
		fmt.Println()
		fmt.Println(styleHeader.Render(fmt.Sprintf("Top %d expense categories", len(top))))
		for _, ct := range top {
			fmt.Printf("  %-20s %s\n", ct.Category, styleExpense.Render(fmtMoney(ct.Total, currency)))
		}
	}
	return nil
}
