package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/export"
	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

func newExportCommand(configPath *string) *cobra.Command {
	var month, out string
	var all bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			var docs []*model.MonthDocument
			if all {
				docs, err = a.store.LoadRange("", "")
				if err != nil {
					return err
				}
			} else {
				key := month
				if key == "" {
					key = currentMonthKey()
				}
				doc, err := a.store.Load(key)
				if err != nil {
					return err
				}
				docs = []*model.MonthDocument{doc}
			}

			total := 0
			for _, doc := range docs {
				total += len(doc.Transactions)
			}
			if total == 0 {
				return fmt.Errorf("nothing to export")
			}

			if err := export.WriteFile(out, docs); err != nil {
				return err
			}
			fmt.Printf("Exported %d transactions from %d months to %s\n", total, len(docs), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month key to export (defaults to the current month)")
	cmd.Flags().BoolVar(&all, "all", false, "export every stored month")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newImportCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from an exported CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return runImport(a, args[0])
		},
	}
	return cmd
}

func runImport(a *app, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := export.Read(f)
	if err != nil {
		return err
	}

	byMonth := make(map[string][]model.Transaction)
	var order []string
	for _, row := range rows {
		if _, seen := byMonth[row.MonthKey]; !seen {
			order = append(order, row.MonthKey)
		}
		byMonth[row.MonthKey] = append(byMonth[row.MonthKey], row.Transaction)
	}

	imported, skipped := 0, 0
	for _, key := range order {
		doc, err := a.store.Load(key)
		if err != nil {
			return err
		}

		added := 0
		for _, tx := range byMonth[key] {
			if hasEquivalent(doc, tx) {
				skipped++
				continue
			}
			doc.Add(tx)
			added++
		}
		if added == 0 {
			continue
		}

		if err := a.saveWithAudit(doc, "import", "", fmt.Sprintf("%d transactions", added)); err != nil {
			return err
		}
		imported += added
	}

	fmt.Printf("Imported %d transactions (%d duplicates skipped)\n", imported, skipped)
	return nil
}

// hasEquivalent reports whether the document already holds a transaction
// with the same date, kind, category, amount, and description. Exported
// rows carry no IDs, so imports match on content.
func hasEquivalent(doc *model.MonthDocument, tx model.Transaction) bool {
	for _, existing := range doc.Transactions {
		if existing.Date.Equal(tx.Date) &&
			existing.Kind == tx.Kind &&
			existing.Category == tx.Category &&
			existing.Amount.Equal(tx.Amount) &&
			existing.Description == tx.Description {
			return true
		}
	}
	return false
}
