package domain

// ─── Service Interfaces ─────────────────────────────────────────────────────

// Bank is the capability the ATM needs from the account holder's bank.
// *Account is the only production implementation; tests substitute doubles.
type Bank interface {
	VerifyIdentity(cardID string, pin int) bool

	CardBalance() Amount
	DepositBalance() Amount
	Snapshot() Balances

	WithdrawFromCard(amount Amount) error
	WithdrawFromDeposit(amount Amount) error
	DepositCardCash(amount Amount) error
	DepositToDeposit(amount Amount) error
	TopUpPhoneFromCash(amount Amount) error
	TopUpPhoneFromCard(amount Amount) error
}
