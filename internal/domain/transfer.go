package domain

// ─── Transfer Types ─────────────────────────────────────────────────────────
// Every mutation of an Account is a debit on one pocket and a credit on another.

// Pocket names one of the four balances an account holds.
type Pocket string

const (
	PocketCash    Pocket = "cash"
	PocketDeposit Pocket = "deposit"
	PocketPhone   Pocket = "phone"
	PocketCard    Pocket = "card"
)

// Transfer is a single debit/credit pair between two pockets.
type Transfer struct {
	From   Pocket `json:"from"`
	To     Pocket `json:"to"`
	Amount Amount `json:"amount"`
}
