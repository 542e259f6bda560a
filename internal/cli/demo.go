package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/atm/internal/app/atm"
	"github.com/tutu-network/atm/internal/daemon"
	"github.com/tutu-network/atm/internal/domain"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

// ─── atm demo ───────────────────────────────────────────────────────────────

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the sample ATM session script",
	Long: `Replay a fixed script against the configured account: a balance inquiry,
withdrawals from card and deposit, a phone top-up, card and deposit top-ups,
and a wrong pin. Amounts come from the [amounts] section of the config.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

// demoStep is one scripted request; a zero amount selects the configured one.
type demoStep struct {
	action   domain.Action
	method   domain.PaymentMethod
	wrongPIN bool
}

var demoScript = []demoStep{
	{action: domain.ActionCheckCardBalance},
	{action: domain.ActionWithdrawFromCard, method: domain.MethodCard},
	{action: domain.ActionWithdrawFromDeposit, method: domain.MethodDeposit},
	{action: domain.ActionTopUpPhone, method: domain.MethodCash},
	{action: domain.ActionTopUpCard, method: domain.MethodCash},
	{action: domain.ActionTopUpDeposit, method: domain.MethodCash},
	{action: domain.ActionCheckDepositBalance},
	{action: domain.ActionCheckCardBalance, wrongPIN: true},
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}
	teller, err := newTeller(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, step := range demoScript {
		pin := cfg.Account.PIN
		if step.wrongPIN {
			pin++
		}
		res := teller.Serve(cmd.Context(), atm.Request{
			CardID: cfg.Account.CardID,
			PIN:    pin,
			Action: step.action,
			Method: step.method,
		})
		fmt.Fprintln(out, res.Message)
	}

	bal := teller.Balances()
	fmt.Fprintf(out, "Balances: cash=%s deposit=%s phone=%s card=%s\n",
		bal.Cash, bal.Deposit, bal.PhoneBalance, bal.CardBalance)
	return nil
}
