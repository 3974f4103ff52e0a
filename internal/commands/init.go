package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cashmonitor-dev/cashmonitor/internal/access"
	"github.com/cashmonitor-dev/cashmonitor/internal/config"
	"github.com/cashmonitor-dev/cashmonitor/internal/gitops"
	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

func newInitCommand() *cobra.Command {
	var currency string
	var pin string
	var snapshots bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new CashMonitor setup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, currency, pin, snapshots)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "EUR", "currency code for display")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN protecting edit/delete (4-6 digits, optional)")
	cmd.Flags().BoolVar(&snapshots, "snapshots", false, "version the data directory with git")

	return cmd
}

func runInit(dir, currency, pin string, snapshots bool) error {
	dataDir := filepath.Join(dir, "data")

	// Creating the data directory is the one fatal startup requirement.
	if _, err := store.New(dataDir); err != nil {
		return err
	}

	cfg := config.Default(dataDir)
	cfg.Currency = currency
	cfg.Backup.AutoSnapshot = snapshots
	if err := config.Save(filepath.Join(dir, "cashmonitor.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if pin != "" {
		guard := access.NewGuard(dataDir)
		if err := guard.SetPin("", pin); err != nil {
			return fmt.Errorf("setting pin: %w", err)
		}
		code, err := guard.EnsureResetCode()
		if err != nil {
			return fmt.Errorf("generating reset code: %w", err)
		}
		fmt.Printf("PIN set. Reset code (write this down, it is shown only once): %s\n", code)
	}

	if snapshots {
		if err := gitops.EnsureRepo(dataDir); err != nil {
			return err
		}
		if _, err := gitops.Snapshot(dataDir, "init: empty data directory"); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized CashMonitor at %s\n", dir)
	return nil
}
