// Package atm runs ATM sessions against a single bank account.
//
// A session has three states:
//  1. Unauthenticated: the card id and pin are checked against the account
//  2. Authorized: the action and payment method select exactly one account operation
//  3. Completed: the outcome is reported as a status line or an error
package atm

import (
	"fmt"

	"github.com/tutu-network/atm/internal/domain"
)

// State is the lifecycle position of a Dispatcher.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthorized
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthorized:
		return "authorized"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Request is one customer interaction with the ATM.
type Request struct {
	CardID string               `json:"card_id"`
	PIN    int                  `json:"pin"`
	Action domain.Action        `json:"action"`
	Method domain.PaymentMethod `json:"payment_method,omitempty"`
	Amount domain.Amount        `json:"amount"`

	// HasAmount marks Amount as given by the caller, zero included.
	// Without it the Teller substitutes the configured amount for the action.
	HasAmount bool `json:"-"`
}

// Dispatcher processes exactly one Request.
type Dispatcher struct {
	bank  domain.Bank
	state State
	print printer
}

// NewDispatcher creates a dispatcher for a single request against bank.
func NewDispatcher(bank domain.Bank, currency string) *Dispatcher {
	return &Dispatcher{bank: bank, print: printer{currency: currency}}
}

// State returns the current lifecycle state.
func (d *Dispatcher) State() State { return d.state }

// Dispatch authenticates req and performs its action. It returns the status
// line on success. A dispatcher cannot be reused once it has completed.
func (d *Dispatcher) Dispatch(req Request) (string, error) {
	if d.state != StateUnauthenticated {
		return "", fmt.Errorf("%w: session already %s", domain.ErrOperationFailed, d.state)
	}
	defer func() { d.state = StateCompleted }()

	if !d.bank.VerifyIdentity(req.CardID, req.PIN) {
		return "", fmt.Errorf("card %q: %w", req.CardID, domain.ErrInvalidUser)
	}
	d.state = StateAuthorized

	return d.route(req)
}

// route maps (action, payment method) onto one account operation.
func (d *Dispatcher) route(req Request) (string, error) {
	switch req.Action {
	case domain.ActionCheckCardBalance:
		return d.print.cardBalance(d.bank.CardBalance()), nil

	case domain.ActionCheckDepositBalance:
		return d.print.depositBalance(d.bank.DepositBalance()), nil

	case domain.ActionWithdrawFromCard:
		if err := requireMethod(req, domain.MethodCard); err != nil {
			return "", err
		}
		return d.apply(req, d.bank.WithdrawFromCard, d.print.withdrewCard)

	case domain.ActionWithdrawFromDeposit:
		if err := requireMethod(req, domain.MethodDeposit); err != nil {
			return "", err
		}
		return d.apply(req, d.bank.WithdrawFromDeposit, d.print.withdrewDeposit)

	case domain.ActionTopUpCard:
		if err := requireMethod(req, domain.MethodCash); err != nil {
			return "", err
		}
		return d.apply(req, d.bank.DepositCardCash, d.print.toppedUpCard)

	case domain.ActionTopUpDeposit:
		if err := requireMethod(req, domain.MethodCash); err != nil {
			return "", err
		}
		return d.apply(req, d.bank.DepositToDeposit, d.print.toppedUpDeposit)

	case domain.ActionTopUpPhone:
		switch req.Method {
		case domain.MethodCash:
			return d.apply(req, d.bank.TopUpPhoneFromCash, d.print.phoneFromCash)
		case domain.MethodCard:
			return d.apply(req, d.bank.TopUpPhoneFromCard, d.print.phoneFromCard)
		}
		return "", methodMismatch(req)
	}

	return "", fmt.Errorf("%w: %w %q", domain.ErrOperationFailed, domain.ErrUnknownAction, req.Action)
}

func (d *Dispatcher) apply(req Request, op func(domain.Amount) error, line func(domain.Amount) string) (string, error) {
	if err := op(req.Amount); err != nil {
		return "", fmt.Errorf("%s %s: %w", req.Action, req.Amount, err)
	}
	return line(req.Amount), nil
}

func requireMethod(req Request, want domain.PaymentMethod) error {
	if req.Method != want {
		return methodMismatch(req)
	}
	return nil
}

func methodMismatch(req Request) error {
	method := string(req.Method)
	if method == "" {
		method = "none"
	}
	return fmt.Errorf("%w: %s does not accept payment method %s", domain.ErrOperationFailed, req.Action, method)
}
