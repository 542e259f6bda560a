package atm

import (
	"fmt"

	"github.com/tutu-network/atm/internal/domain"
)

// DefaultCurrency is the symbol appended to every printed amount.
const DefaultCurrency = "₽"

// printer renders the fixed status lines shown on the ATM screen.
type printer struct {
	currency string
}

func (p printer) money(a domain.Amount) string {
	return a.String() + p.currency
}

func (p printer) cardBalance(a domain.Amount) string {
	return fmt.Sprintf("Card balance: %s", p.money(a))
}

func (p printer) depositBalance(a domain.Amount) string {
	return fmt.Sprintf("Deposit balance: %s", p.money(a))
}

func (p printer) withdrewCard(a domain.Amount) string {
	return fmt.Sprintf("Withdrew %s from card.", p.money(a))
}

func (p printer) withdrewDeposit(a domain.Amount) string {
	return fmt.Sprintf("Withdrew %s from deposit.", p.money(a))
}

func (p printer) toppedUpCard(a domain.Amount) string {
	return fmt.Sprintf("Card topped up by %s.", p.money(a))
}

func (p printer) toppedUpDeposit(a domain.Amount) string {
	return fmt.Sprintf("Deposit topped up by %s.", p.money(a))
}

func (p printer) phoneFromCash(a domain.Amount) string {
	return fmt.Sprintf("Phone topped up by %s in cash.", p.money(a))
}

func (p printer) phoneFromCard(a domain.Amount) string {
	return fmt.Sprintf("Phone topped up by %s from card.", p.money(a))
}

// ErrorLine renders the screen line for a rejected request.
func ErrorLine(err error) string {
	return "Error: " + domain.ErrorText(err)
}
