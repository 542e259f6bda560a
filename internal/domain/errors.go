package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors carry no infrastructure dependency.

var (
	// Session outcomes reported to the customer
	ErrInvalidUser       = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOperationFailed   = errors.New("operation failed")

	// Input errors
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrUnknownAction        = errors.New("unknown action")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInvalidAccount       = errors.New("invalid account")
)

// Customer-facing error kinds reported by ErrorKind.
const (
	KindInvalidUser       = "InvalidUser"
	KindInsufficientFunds = "InsufficientFunds"
	KindOperationFailed   = "OperationFailed"
)

// ErrorKind names the customer-facing category of err, one of the Kind constants.
// It returns "" for a nil error. Input errors count as KindOperationFailed.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidUser):
		return KindInvalidUser
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	default:
		return KindOperationFailed
	}
}

// ErrorText returns the fixed message shown on screen for err.
func ErrorText(err error) string {
	switch ErrorKind(err) {
	case "":
		return ""
	case KindInvalidUser:
		return "User not found"
	case KindInsufficientFunds:
		return "Insufficient funds"
	default:
		return "Operation failed"
	}
}
