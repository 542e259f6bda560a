package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ─── Amount Tests ───────────────────────────────────────────────────────────

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    Amount
		wantErr bool
	}{
		{"500", 50000, false},
		{"12.50", 1250, false},
		{"0.01", 1, false},
		{" 300 ", 30000, false},
		{"0", 0, false},
		{"1.005", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{Units(3000), "3000"},
		{1250, "12.5"},
		{1, "0.01"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := tt.amount.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", int64(tt.amount), got, tt.want)
		}
	}
}

func TestAmount_JSON(t *testing.T) {
	var body struct {
		Amount Amount `json:"amount"`
	}
	if err := json.Unmarshal([]byte(`{"amount": 12.5}`), &body); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if body.Amount != 1250 {
		t.Errorf("number amount = %d, want 1250", body.Amount)
	}
	if err := json.Unmarshal([]byte(`{"amount": "300"}`), &body); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if body.Amount != Units(300) {
		t.Errorf("string amount = %d, want %d", body.Amount, Units(300))
	}
	if err := json.Unmarshal([]byte(`{"amount": -5}`), &body); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}

	out, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{Units(3000)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"amount":3000}` {
		t.Errorf("marshal = %s, want {\"amount\":3000}", out)
	}
}

// ─── Action Tests ───────────────────────────────────────────────────────────

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}
	if _, err := ParseAction("transferToMoon"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action error = %v, want ErrUnknownAction", err)
	}
}

func TestAction_IsQuery(t *testing.T) {
	queries := map[Action]bool{
		ActionCheckCardBalance:    true,
		ActionCheckDepositBalance: true,
	}
	for _, a := range Actions {
		if got := a.IsQuery(); got != queries[a] {
			t.Errorf("%s.IsQuery() = %v, want %v", a, got, queries[a])
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    PaymentMethod
		wantErr bool
	}{
		{"", MethodNone, false},
		{"cash", MethodCash, false},
		{"card", MethodCard, false},
		{"deposit", MethodDeposit, false},
		{"bitcoin", MethodNone, true},
	}
	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePaymentMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePaymentMethod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ─── Error Tests ────────────────────────────────────────────────────────────

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err      error
		wantKind string
		wantText string
	}{
		{nil, "", ""},
		{ErrInvalidUser, KindInvalidUser, "User not found"},
		{fmt.Errorf("withdraw: %w", ErrInsufficientFunds), KindInsufficientFunds, "Insufficient funds"},
		{ErrOperationFailed, KindOperationFailed, "Operation failed"},
		{ErrInvalidAmount, KindOperationFailed, "Operation failed"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.wantKind {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.wantKind)
		}
		if got := ErrorText(tt.err); got != tt.wantText {
			t.Errorf("ErrorText(%v) = %q, want %q", tt.err, got, tt.wantText)
		}
	}
}
