package domain

import "fmt"

// ─── Actions ────────────────────────────────────────────────────────────────

// Action is a button the customer presses on the ATM.
type Action string

const (
	ActionCheckCardBalance    Action = "checkCardBalance"
	ActionCheckDepositBalance Action = "checkDepositBalance"
	ActionWithdrawFromCard    Action = "withdrawFromCard"
	ActionWithdrawFromDeposit Action = "withdrawFromDeposit"
	ActionTopUpCard           Action = "topUpCard"
	ActionTopUpDeposit        Action = "topUpDeposit"
	ActionTopUpPhone          Action = "topUpPhone"
)

// Actions lists every supported action in menu order.
var Actions = []Action{
	ActionCheckCardBalance,
	ActionCheckDepositBalance,
	ActionWithdrawFromCard,
	ActionWithdrawFromDeposit,
	ActionTopUpCard,
	ActionTopUpDeposit,
	ActionTopUpPhone,
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// IsQuery reports whether the action only reads balances.
func (a Action) IsQuery() bool {
	return a == ActionCheckCardBalance || a == ActionCheckDepositBalance
}

// ─── Payment Methods ────────────────────────────────────────────────────────

// PaymentMethod is the source of funds for a withdrawal or top-up.
type PaymentMethod string

const (
	MethodNone    PaymentMethod = ""
	MethodCash    PaymentMethod = "cash"
	MethodCard    PaymentMethod = "card"
	MethodDeposit PaymentMethod = "deposit"
)

// ParsePaymentMethod validates a payment method. The empty string means none.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodNone, MethodCash, MethodCard, MethodDeposit:
		return m, nil
	default:
		return MethodNone, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}
