package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ─── Money ──────────────────────────────────────────────────────────────────
// Balances are integer minor units (kopecks). Decimal strings only appear at
// the edges: flags, config files, JSON bodies and printed messages.

// MinorDigits is the number of fractional digits an Amount carries.
const MinorDigits = 2

// Amount is a non-negative monetary value in minor units.
type Amount int64

// Units converts whole display units (roubles) to an Amount.
func Units(n int64) Amount { return Amount(n * 100) }

// ParseAmount parses a decimal string such as "500" or "12.50".
// Negative values and values with more than two fractional digits are rejected.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal value to an Amount.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	if !d.Equal(d.Truncate(MinorDigits)) {
		return 0, fmt.Errorf("%w: %s has more than %d fractional digits", ErrInvalidAmount, d, MinorDigits)
	}
	minor := d.Shift(MinorDigits)
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: %s is too large", ErrInvalidAmount, d)
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns the amount in display units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -MinorDigits)
}

// String formats the amount in display units without trailing zeros ("3000", "12.5").
func (a Amount) String() string {
	return a.Decimal().String()
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. TOML integers and floats
// arrive here as their string form.
func (a *Amount) UnmarshalText(text []byte) error {
	v, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
