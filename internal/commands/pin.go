package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPinCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the PIN protecting edits and deletes",
	}
	cmd.AddCommand(newPinSetCommand(configPath))
	cmd.AddCommand(newPinResetCommand(configPath))
	cmd.AddCommand(newPinStatusCommand(configPath))
	return cmd
}

func newPinSetCommand(configPath *string) *cobra.Command {
	var oldPin, newPin string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or change the PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			if err := a.guard.SetPin(oldPin, newPin); err != nil {
				return err
			}
			fmt.Println("PIN updated")

			code, err := a.guard.EnsureResetCode()
			if err != nil {
				return err
			}
			if code != "" {
				fmt.Println()
				fmt.Println("Your reset code, shown only this once:")
				fmt.Println()
				fmt.Println("  " + styleHeader.Render(code))
				fmt.Println()
				fmt.Println("Store it somewhere safe. It is the only way to recover a forgotten PIN.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oldPin, "old", "", "current PIN (required once a PIN exists)")
	cmd.Flags().StringVar(&newPin, "new", "", "new PIN, 4-6 digits (required)")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func newPinResetCommand(configPath *string) *cobra.Command {
	var code, newPin string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace a forgotten PIN using the reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			next, err := a.guard.ResetWithCode(code, newPin)
			if err != nil {
				return err
			}
			fmt.Println("PIN replaced")
			fmt.Println()
			fmt.Println("The used reset code is no longer valid. Your new one, shown only this once:")
			fmt.Println()
			fmt.Println("  " + styleHeader.Render(next))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "reset code printed when the PIN was first set (required)")
	cmd.Flags().StringVar(&newPin, "new", "", "new PIN, 4-6 digits (required)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func newPinStatusCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a PIN is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			set, err := a.guard.PinSet()
			if err != nil {
				return err
			}
			if set {
				fmt.Println("PIN is set. Edits and deletes require --pin.")
			} else {
				fmt.Println("No PIN set. Run 'cashmonitor pin set --new <pin>' to protect edits and deletes.")
			}
			return nil
		},
	}
}
