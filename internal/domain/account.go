// Package domain contains pure business types with ZERO infrastructure imports
// beyond money formatting. It depends on nothing else in the module.
package domain

import (
	"fmt"
	"math"
)

// ─── Account Types ──────────────────────────────────────────────────────────

// Identity is the immutable part of an account record.
type Identity struct {
	Name   string `json:"name"`
	CardID string `json:"card_id"`
	PIN    int    `json:"-"`
	Phone  string `json:"phone"`
}

// Balances is a point-in-time copy of the four balances of an account.
type Balances struct {
	Cash         Amount `json:"cash"`
	Deposit      Amount `json:"deposit"`
	PhoneBalance Amount `json:"phone_balance"`
	CardBalance  Amount `json:"card_balance"`
}

// Account is the single account record an ATM session works against.
// It is not safe for concurrent use; the teller serialises access.
type Account struct {
	id  Identity
	bal Balances
}

var _ Bank = (*Account)(nil)

// NewAccount creates an account from its identity and an initial snapshot.
func NewAccount(id Identity, initial Balances) (*Account, error) {
	if id.CardID == "" {
		return nil, fmt.Errorf("%w: card id is required", ErrInvalidAccount)
	}
	for _, v := range []Amount{initial.Cash, initial.Deposit, initial.PhoneBalance, initial.CardBalance} {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative initial balance %s", ErrInvalidAccount, v)
		}
	}
	return &Account{id: id, bal: initial}, nil
}

// Name returns the account holder's display name.
func (a *Account) Name() string { return a.id.Name }

// CardID returns the card number bound to the account.
func (a *Account) CardID() string { return a.id.CardID }

// ─── Queries ────────────────────────────────────────────────────────────────

// CardBalance returns the funds held on the debit card.
func (a *Account) CardBalance() Amount { return a.bal.CardBalance }

// DepositBalance returns the funds held on the bank deposit.
func (a *Account) DepositBalance() Amount { return a.bal.Deposit }

// Cash returns the cash the customer holds.
func (a *Account) Cash() Amount { return a.bal.Cash }

// PhoneBalance returns the prepaid mobile balance.
func (a *Account) PhoneBalance() Amount { return a.bal.PhoneBalance }

// Snapshot returns a copy of all balances.
func (a *Account) Snapshot() Balances { return a.bal }

// VerifyIdentity reports whether both the card id and the pin match exactly.
func (a *Account) VerifyIdentity(cardID string, pin int) bool {
	return a.id.CardID == cardID && a.id.PIN == pin
}

// VerifyPhone reports whether phone matches the number on file.
func (a *Account) VerifyPhone(phone string) bool {
	return a.id.Phone == phone
}

// HasSufficientCash reports whether the customer holds at least amount in cash.
func (a *Account) HasSufficientCash(amount Amount) bool {
	return a.bal.Cash >= amount
}

// HasSufficientCard reports whether the card holds at least amount.
func (a *Account) HasSufficientCard(amount Amount) bool {
	return a.bal.CardBalance >= amount
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// WithdrawFromCard moves amount from the card to cash.
func (a *Account) WithdrawFromCard(amount Amount) error {
	return a.Apply(Transfer{From: PocketCard, To: PocketCash, Amount: amount})
}

// WithdrawFromDeposit moves amount from the deposit to cash.
func (a *Account) WithdrawFromDeposit(amount Amount) error {
	return a.Apply(Transfer{From: PocketDeposit, To: PocketCash, Amount: amount})
}

// DepositCardCash moves amount from cash onto the card.
func (a *Account) DepositCardCash(amount Amount) error {
	return a.Apply(Transfer{From: PocketCash, To: PocketCard, Amount: amount})
}

// DepositToDeposit moves amount from cash onto the deposit.
func (a *Account) DepositToDeposit(amount Amount) error {
	return a.Apply(Transfer{From: PocketCash, To: PocketDeposit, Amount: amount})
}

// TopUpPhoneFromCash moves amount from cash onto the phone balance.
func (a *Account) TopUpPhoneFromCash(amount Amount) error {
	return a.Apply(Transfer{From: PocketCash, To: PocketPhone, Amount: amount})
}

// TopUpPhoneFromCard moves amount from the card onto the phone balance.
func (a *Account) TopUpPhoneFromCard(amount Amount) error {
	return a.Apply(Transfer{From: PocketCard, To: PocketPhone, Amount: amount})
}

// Apply performs t as a single step: both legs are applied or neither is.
// A short source pocket yields ErrInsufficientFunds and leaves every balance unchanged.
func (a *Account) Apply(t Transfer) error {
	if t.Amount < 0 {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, t.Amount)
	}
	from, to := a.pocket(t.From), a.pocket(t.To)
	if from == nil || to == nil || from == to {
		return fmt.Errorf("%w: transfer %s -> %s", ErrOperationFailed, t.From, t.To)
	}
	if *from < t.Amount {
		return fmt.Errorf("%w: %s holds %s, need %s", ErrInsufficientFunds, t.From, *from, t.Amount)
	}
	if *to > math.MaxInt64-t.Amount {
		return fmt.Errorf("%w: %s balance would overflow", ErrInvalidAmount, t.To)
	}
	*from -= t.Amount
	*to += t.Amount
	return nil
}

func (a *Account) pocket(p Pocket) *Amount {
	switch p {
	case PocketCash:
		return &a.bal.Cash
	case PocketDeposit:
		return &a.bal.Deposit
	case PocketPhone:
		return &a.bal.PhoneBalance
	case PocketCard:
		return &a.bal.CardBalance
	}
	return nil
}
