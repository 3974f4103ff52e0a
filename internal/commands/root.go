package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "cashmonitor",
		Short:   "Monthly income and expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "cashmonitor.yaml", "path to the config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&configPath))
	rootCmd.AddCommand(newEditCommand(&configPath))
	rootCmd.AddCommand(newDeleteCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))
	rootCmd.AddCommand(newCategoriesCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))
	rootCmd.AddCommand(newMonthsCommand(&configPath))
	rootCmd.AddCommand(newStatsCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))
	rootCmd.AddCommand(newImportCommand(&configPath))
	rootCmd.AddCommand(newRecurringCommand(&configPath))
	rootCmd.AddCommand(newGoalsCommand(&configPath))
	rootCmd.AddCommand(newPinCommand(&configPath))
	rootCmd.AddCommand(newLogCommand(&configPath))

	return rootCmd
}
