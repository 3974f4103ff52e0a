package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

func newCategoriesCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known category labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			fmt.Println(styleHeader.Render("Expense"))
			for _, c := range a.cats.All(model.KindExpense) {
				fmt.Println("  " + c)
			}
			fmt.Println()
			fmt.Println(styleHeader.Render("Income"))
			for _, c := range a.cats.All(model.KindIncome) {
				fmt.Println("  " + c)
			}
			return nil
		},
	}
}
