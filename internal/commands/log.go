package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/changelog"
)

func newLogCommand(configPath *string) *cobra.Command {
	var month string
	var last int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the change log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			entries, err := changelog.Read(a.store.Dir())
			if err != nil {
				return err
			}
			if month != "" {
				filtered := entries[:0]
				for _, e := range entries {
					if e.MonthKey == month {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			if len(entries) == 0 {
				fmt.Println("Change log is empty")
				return nil
			}
			if last > 0 && len(entries) > last {
				entries = entries[len(entries)-last:]
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{
					styleMuted.Render(e.Timestamp.Local().Format(time.DateTime)),
					e.Action,
					e.MonthKey,
					e.Details,
				}
			}
			fmt.Print(renderRows([]string{"WHEN", "ACTION", "MONTH", "DETAILS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only show entries for this month key")
	cmd.Flags().IntVar(&last, "last", 0, "only show the most recent N entries")

	return cmd
}
