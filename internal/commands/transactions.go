package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
	"github.com/cashmonitor-dev/cashmonitor/internal/monthkey"
	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

const dateFormat = "2006-01-02"

func newAddCommand(configPath *string) *cobra.Command {
	var dateStr, kindStr, category, amountStr, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction (no PIN required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return runAdd(a, dateStr, kindStr, category, amountStr, description)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(dateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindStr, "type", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category label (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 12.50 (required)")
	cmd.Flags().StringVar(&description, "desc", "", "free-text description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(a *app, dateStr, kindStr, category, amountStr, description string) error {
	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}

	key := monthkey.FromDate(date)
	doc, err := a.loadMonth(key)
	if err != nil {
		return err
	}

	tx := model.NewTransaction(date, model.Kind(kindStr), category, amount, description)
	if verrs := store.ValidateTransaction(key, tx); len(verrs) > 0 {
		return fmt.Errorf("invalid transaction: %s", verrs[0].Description)
	}

	doc.Add(tx)
	if err := a.saveWithAudit(doc, "add", tx.ID, fmt.Sprintf("%s %s", category, amount.StringFixed(2))); err != nil {
		return err
	}

	if !a.cats.Has(tx.Kind, category) {
		fmt.Println(styleMuted.Render("note: new category " + category))
	}
	fmt.Printf("Added %s %s (%s) to %s\n", kindStr, fmtMoney(amount, a.cfg.Currency), category, key)
	return nil
}

func newEditCommand(configPath *string) *cobra.Command {
	var month, pin string
	var dateStr, kindStr, category, amountStr, description string

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction (PIN required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.requireUnlocked(pin); err != nil {
				return err
			}

			key := month
			if key == "" {
				key = currentMonthKey()
			}
			doc, err := a.store.Load(key)
			if err != nil {
				return err
			}

			tx, found := doc.Find(args[0])
			if !found {
				return fmt.Errorf("no transaction %s in %s", args[0], key)
			}

			if cmd.Flags().Changed("date") {
				tx.Date, err = time.Parse(dateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateStr, err)
				}
			}
			if cmd.Flags().Changed("type") {
				tx.Kind = model.Kind(kindStr)
			}
			if cmd.Flags().Changed("category") {
				tx.Category = category
			}
			if cmd.Flags().Changed("amount") {
				tx.Amount, err = decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amountStr, err)
				}
			}
			if cmd.Flags().Changed("desc") {
				tx.Description = description
			}

			if verrs := store.ValidateTransaction(key, tx); len(verrs) > 0 {
				return fmt.Errorf("invalid transaction: %s", verrs[0].Description)
			}

			doc.Update(tx.ID, tx)
			if err := a.saveWithAudit(doc, "edit", tx.ID, fmt.Sprintf("%s %s", tx.Category, tx.Amount.StringFixed(2))); err != nil {
				return err
			}
			fmt.Printf("Updated %s in %s\n", tx.ID, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month key (defaults to the current month)")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN unlocking edit/delete")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kindStr, "type", "", "new kind: income or expense")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&description, "desc", "", "new description")

	return cmd
}

func newDeleteCommand(configPath *string) *cobra.Command {
	var month, pin string

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction (PIN required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.requireUnlocked(pin); err != nil {
				return err
			}

			key := month
			if key == "" {
				key = currentMonthKey()
			}
			doc, err := a.store.Load(key)
			if err != nil {
				return err
			}

			if !doc.Delete(args[0]) {
				return fmt.Errorf("no transaction %s in %s", args[0], key)
			}
			if err := a.saveWithAudit(doc, "delete", args[0], ""); err != nil {
				return err
			}
			fmt.Printf("Deleted %s from %s\n", args[0], key)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month key (defaults to the current month)")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN unlocking edit/delete")

	return cmd
}

func newListCommand(configPath *string) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list [month]",
		Short: "List a month's transactions",
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
			doc, err := a.loadMonth(key)
			if err != nil {
				return err
			}

			txs := doc.Transactions
			if filter != "" {
				kind := model.Kind(filter)
				if !kind.Valid() {
					return fmt.Errorf("unknown filter %q", filter)
				}
				txs = doc.ByKind(kind)
			}
			if len(txs) == 0 {
				fmt.Printf("No transactions in %s\n", key)
				return nil
			}

			rows := make([][]string, len(txs))
			for i, tx := range txs {
				kind := string(tx.Kind)
				if tx.RecurringID != "" {
					kind = "↻ " + kind
				}
				rows[i] = []string{
					tx.Date.Format(dateFormat),
					styleFor(tx.Kind).Render(kind),
					tx.Category,
					styleFor(tx.Kind).Render(fmtMoney(tx.Amount, a.cfg.Currency)),
					tx.Description,
					styleMuted.Render(tx.ID),
				}
			}
			fmt.Print(renderRows([]string{"DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "show only income or expense entries")

	return cmd
}
