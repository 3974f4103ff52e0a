package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/goals"
	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
)

func newGoalsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals and month rollover",
	}
	cmd.AddCommand(newGoalsListCommand(configPath))
	cmd.AddCommand(newGoalsAddCommand(configPath))
	cmd.AddCommand(newGoalsRemoveCommand(configPath))
	cmd.AddCommand(newGoalsRolloverCommand(configPath))
	return cmd
}

func newGoalsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			all, err := a.tracker.Load()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No savings goals")
				return nil
			}

			currency := a.cfg.Currency
			rows := make([][]string, len(all))
			for i, g := range all {
				progress := fmt.Sprintf("%s / %s", fmtMoney(g.Accumulated, currency), fmtMoney(g.TargetAmount, currency))
				state := ""
				if g.Completed() {
					state = styleIncome.Render("reached")
				} else if g.TargetMonth != "" {
					state = styleMuted.Render("by " + g.TargetMonth)
				}
				rows[i] = []string{g.Name, progress, state, styleMuted.Render(g.ID)}
			}
			fmt.Print(renderRows([]string{"GOAL", "PROGRESS", "", "ID"}, rows))
			return nil
		},
	}
}

func newGoalsAddCommand(configPath *string) *cobra.Command {
	var name, targetStr, targetMonth, monthlyStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			target, err := decimal.NewFromString(targetStr)
			if err != nil {
				return fmt.Errorf("parsing target %q: %w", targetStr, err)
			}
			if !target.IsPositive() {
				return fmt.Errorf("target must be positive")
			}
			if targetMonth != "" && !monthkey.Valid(targetMonth) {
				return fmt.Errorf("invalid target month %q, want YYYY-MM", targetMonth)
			}

			goal := model.NewSavingsGoal(name, target, targetMonth)
			if monthlyStr != "" {
				monthly, err := decimal.NewFromString(monthlyStr)
				if err != nil {
					return fmt.Errorf("parsing monthly contribution %q: %w", monthlyStr, err)
				}
				if monthly.IsNegative() {
					return fmt.Errorf("monthly contribution must not be negative")
				}
				goal.MonthlyContribution = monthly.Round(2)
			}

			all, err := a.tracker.Load()
			if err != nil {
				return err
			}
			if err := a.tracker.Save(append(all, goal)); err != nil {
				return err
			}
			fmt.Printf("Added goal %q targeting %s, id %s\n", name, fmtMoney(target, a.cfg.Currency), goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "goal name (required)")
	cmd.Flags().StringVar(&targetStr, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&targetMonth, "target-month", "", "optional target month key")
	cmd.Flags().StringVar(&monthlyStr, "monthly", "", "fixed monthly contribution, funded before the equal split")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalsRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <goal-id>",
		Short: "Remove a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			all, err := a.tracker.Load()
			if err != nil {
				return err
			}

			for i, g := range all {
				if g.ID == args[0] {
					all = append(all[:i], all[i+1:]...)
					if err := a.tracker.Save(all); err != nil {
						return err
					}
					fmt.Printf("Removed goal %q\n", g.Name)
					return nil
				}
			}
			return fmt.Errorf("no goal %s", args[0])
		},
	}
}

func newGoalsRolloverCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollover [month]",
		Short: "Carry the previous month's balance into a month and fund the goals",
		Long: `Rollover closes out the month before the given one (default: the current
month): its net balance plus its own carried balance becomes the month's
opening balance, and a positive carry is allocated to the incomplete
savings goals. Fixed monthly contributions are funded first, the rest
splits equally.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			key := currentMonthKey()
			if len(args) > 0 {
				key = args[0]
			}
			prevKey, err := monthkey.Prev(key)
			if err != nil {
				return err
			}

			prev, err := a.loadMonth(prevKey)
			if err != nil {
				return err
			}
			cur, err := a.loadMonth(key)
			if err != nil {
				return err
			}
			if cur.RolloverDone {
				fmt.Printf("%s already rolled over (carried %s)\n", key, fmtSigned(cur.CarriedBalance, a.cfg.Currency))
				return nil
			}
			all, err := a.tracker.Load()
			if err != nil {
				return err
			}

			updated, carried := goals.Rollover(prev, cur, all)
			if err := a.tracker.Save(updated); err != nil {
				return err
			}
			if err := a.saveWithAudit(cur, "rollover", "", fmt.Sprintf("carried %s from %s", carried.StringFixed(2), prevKey)); err != nil {
				return err
			}

			currency := a.cfg.Currency
			fmt.Printf("Carried %s from %s into %s\n", styleBalance(carried).Render(fmtSigned(carried, currency)), prevKey, key)
			for i, g := range updated {
				delta := g.Accumulated.Sub(all[i].Accumulated)
				if delta.IsPositive() {
					fmt.Printf("  %-20s +%s (now %s of %s)\n", g.Name,
						fmtMoney(delta, currency), fmtMoney(g.Accumulated, currency), fmtMoney(g.TargetAmount, currency))
				}
			}
			return nil
		},
	}
	return cmd
}
