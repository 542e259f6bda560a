package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/atm/internal/app/atm"
	"github.com/tutu-network/atm/internal/daemon"
	"github.com/tutu-network/atm/internal/domain"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("card", "", "Card id (required)")
	runCmd.Flags().Int("pin", 0, "Card pin (required)")
	runCmd.Flags().StringP("action", "a", "", "Action: checkCardBalance, checkDepositBalance, withdrawFromCard, withdrawFromDeposit, topUpCard, topUpDeposit, topUpPhone")
	runCmd.Flags().StringP("method", "m", "", "Payment method: cash, card or deposit")
	runCmd.Flags().String("amount", "", "Amount such as 500 or 12.50 (default: the configured amount for the action)")
	runCmd.MarkFlagRequired("card")
	runCmd.MarkFlagRequired("pin")
	runCmd.MarkFlagRequired("action")
}

// ─── atm run ────────────────────────────────────────────────────────────────

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one ATM session",
	Long: `Authenticate with --card and --pin, then perform one action against the
configured account and print the resulting status line.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cardID, _ := cmd.Flags().GetString("card")
	pin, _ := cmd.Flags().GetInt("pin")
	actionName, _ := cmd.Flags().GetString("action")
	methodName, _ := cmd.Flags().GetString("method")
	amountText, _ := cmd.Flags().GetString("amount")

	action, err := domain.ParseAction(actionName)
	if err != nil {
		return err
	}
	method, err := domain.ParsePaymentMethod(methodName)
	if err != nil {
		return err
	}
	var amount domain.Amount
	hasAmount := cmd.Flags().Changed("amount") && amountText != ""
	if hasAmount {
		if amount, err = domain.ParseAmount(amountText); err != nil {
			return err
		}
	}

	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}
	teller, err := newTeller(cfg)
	if err != nil {
		return err
	}

	res := teller.Serve(cmd.Context(), atm.Request{
		CardID:    cardID,
		PIN:       pin,
		Action:    action,
		Method:    method,
		Amount:    amount,
		HasAmount: hasAmount,
	})
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return res.Err
}
