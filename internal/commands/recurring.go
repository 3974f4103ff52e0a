package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/recurring"
)

func newRecurringCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transaction templates",
	}
	cmd.AddCommand(newRecurringListCommand(configPath))
	cmd.AddCommand(newRecurringAddCommand(configPath))
	cmd.AddCommand(newRecurringToggleCommand(configPath))
	cmd.AddCommand(newRecurringRemoveCommand(configPath))
	cmd.AddCommand(newRecurringApplyCommand(configPath))
	return cmd
}

func newRecurringListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			templates, err := a.engine.Load()
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No recurring templates")
				return nil
			}

			rows := make([][]string, len(templates))
			for i, t := range templates {
				state := "active"
				if !t.Active {
					state = styleMuted.Render("paused")
				}
				rows[i] = []string{
					fmt.Sprintf("%02d.", t.Day),
					styleFor(t.Kind).Render(string(t.Kind)),
					t.Category,
					styleFor(t.Kind).Render(fmtMoney(t.Amount, a.cfg.Currency)),
					state,
					styleMuted.Render(t.ID),
				}
			}
			fmt.Print(renderRows([]string{"DAY", "TYPE", "CATEGORY", "AMOUNT", "STATE", "ID"}, rows))
			return nil
		},
	}
}

func newRecurringAddCommand(configPath *string) *cobra.Command {
	var kindStr, category, amountStr, description, startMonth string
	var day int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			kind := model.Kind(kindStr)
			if !kind.Valid() {
				return fmt.Errorf("unknown type %q", kindStr)
			}
			if day < 1 || day > 31 {
				return fmt.Errorf("day must be 1-31")
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount must not be negative")
			}

			templates, err := a.engine.Load()
			if err != nil {
				return err
			}
			tmpl := model.NewRecurringTemplate(kind, category, amount, description, day, startMonth)
			if err := a.engine.Save(append(templates, tmpl)); err != nil {
				return err
			}
			fmt.Printf("Added recurring %s %s (%s) on day %d, id %s\n", kindStr, fmtMoney(amount, a.cfg.Currency), category, day, tmpl.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindStr, "type", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category label (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount per month (required)")
	cmd.Flags().StringVar(&description, "desc", "", "free-text description")
	cmd.Flags().IntVar(&day, "day", 1, "day of month (clamped to shorter months)")
	cmd.Flags().StringVar(&startMonth, "start", "", "first eligible month key (optional)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newRecurringToggleCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <template-id>",
		Short: "Pause or resume a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			templates, err := a.engine.Load()
			if err != nil {
				return err
			}

			for i, t := range templates {
				if t.ID == args[0] {
					templates[i].Active = !t.Active
					if err := a.engine.Save(templates); err != nil {
						return err
					}
					state := "paused"
					if templates[i].Active {
						state = "active"
					}
					fmt.Printf("Template %s is now %s\n", t.ID, state)
					return nil
				}
			}
			return fmt.Errorf("no template %s", args[0])
		},
	}
}

func newRecurringRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <template-id>",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			templates, err := a.engine.Load()
			if err != nil {
				return err
			}

			for i, t := range templates {
				if t.ID == args[0] {
					templates = append(templates[:i], templates[i+1:]...)
					if err := a.engine.Save(templates); err != nil {
						return err
					}
					fmt.Printf("Removed template %s\n", t.ID)
					return nil
				}
			}
			return fmt.Errorf("no template %s", args[0])
		},
	}
}

func newRecurringApplyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "apply [month]",
		Short: "Materialize due templates into a month",
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
			if key > currentMonthKey() {
				return fmt.Errorf("%s is in the future, recurring entries apply to current or past months", key)
			}

			doc, err := a.store.Load(key)
			if err != nil {
				return err
			}
			templates, err := a.engine.Load()
			if err != nil {
				return err
			}

			added, err := recurring.Apply(doc, templates)
			if err != nil {
				return err
			}
			if added == 0 {
				fmt.Printf("Nothing due for %s\n", key)
				return nil
			}
			if err := a.saveWithAudit(doc, "recurring", "", fmt.Sprintf("%d recurring entries", added)); err != nil {
				return err
			}
			fmt.Printf("Added %d recurring entries to %s\n", added, key)
			return nil
		},
	}
}
