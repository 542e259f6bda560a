// Package cli wires the ATM commands together with cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutu-network/atm/internal/app/atm"
	"github.com/tutu-network/atm/internal/daemon"
	"github.com/tutu-network/atm/internal/infra/observability"
)

// Version is stamped at build time with -ldflags.
var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "atm",
	Short: "Simulate an ATM session against one bank account",
	Long: `atm simulates a single automated teller machine session: balance
inquiries, cash withdrawals from the card or deposit, cash top-ups of the card
or deposit, and phone top-ups from cash or card.

The account snapshot and default amounts come from a TOML file (--config);
without one the built-in sample account is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to atm.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newTeller builds a teller over a fresh account from the loaded config.
// Logs go to stderr so stdout carries only status lines.
func newTeller(cfg daemon.Config) (*atm.Teller, error) {
	acct, err := cfg.NewAccount()
	if err != nil {
		return nil, fmt.Errorf("build account: %w", err)
	}
	return atm.NewTeller(acct,
		atm.WithDefaultAmounts(cfg.DefaultAmounts()),
		atm.WithCurrency(cfg.Currency),
		atm.WithLogger(cfg.NewLogger(os.Stderr)),
		atm.WithRecorder(observability.NewRecorder()),
	), nil
}
