package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tutu-network/atm/internal/domain"
)

// execute runs the root command with args and returns stdout.
// Every flag is passed explicitly because cobra keeps flag values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func runArgs(config, pin, action, method, amount string) []string {
	return []string{"run", "--config=" + config, "--card=1234-5678", "--pin=" + pin,
		"--action=" + action, "--method=" + method, "--amount=" + amount}
}

// ─── atm run ────────────────────────────────────────────────────────────────

func TestRun_CheckCardBalance(t *testing.T) {
	out, err := execute(t, runArgs("", "1234", "checkCardBalance", "", "")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.TrimSpace(out) != "Card balance: 3000₽" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_DefaultAmount(t *testing.T) {
	out, err := execute(t, runArgs("", "1234", "topUpPhone", "card", "")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.TrimSpace(out) != "Phone topped up by 300₽ from card." {
		t.Errorf("output = %q", out)
	}
}

func TestRun_ExplicitAmount(t *testing.T) {
	out, err := execute(t, runArgs("", "1234", "withdrawFromDeposit", "deposit", "12.50")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.TrimSpace(out) != "Withdrew 12.5₽ from deposit." {
		t.Errorf("output = %q", out)
	}
}

func TestRun_ExplicitZeroAmount(t *testing.T) {
	out, err := execute(t, runArgs("", "1234", "withdrawFromCard", "card", "0")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.TrimSpace(out) != "Withdrew 0₽ from card." {
		t.Errorf("output = %q, want a zero withdrawal", out)
	}
}

func TestRun_WrongPIN(t *testing.T) {
	out, err := execute(t, runArgs("", "1111", "checkCardBalance", "", "")...)
	if !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("error = %v, want ErrInvalidUser", err)
	}
	if strings.TrimSpace(out) != "Error: User not found" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_InsufficientFunds(t *testing.T) {
	out, err := execute(t, runArgs("", "1234", "withdrawFromCard", "card", "10000")...)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("error = %v, want ErrInsufficientFunds", err)
	}
	if strings.TrimSpace(out) != "Error: Insufficient funds" {
		t.Errorf("output = %q", out)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown action", runArgs("", "1234", "fly", "", ""), domain.ErrUnknownAction},
		{"unknown method", runArgs("", "1234", "topUpPhone", "gold", ""), domain.ErrUnknownPaymentMethod},
		{"bad amount", runArgs("", "1234", "topUpPhone", "cash", "-3"), domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atm.toml")
	body := "currency = \" RUB\"\n[account]\ncard_id = \"1234-5678\"\npin = 7777\ncard_balance = 42\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := execute(t, runArgs(path, "7777", "checkCardBalance", "", "")...)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.TrimSpace(out) != "Card balance: 42 RUB" {
		t.Errorf("output = %q", out)
	}
}

// ─── atm demo ───────────────────────────────────────────────────────────────

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--config=")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	want := []string{
		"Card balance: 3000₽",
		"Withdrew 500₽ from card.",
		"Withdrew 500₽ from deposit.",
		"Phone topped up by 300₽ in cash.",
		"Card topped up by 1000₽.",
		"Error: Insufficient funds",
		"Deposit balance: 4500₽",
		"Error: User not found",
		"Balances: cash=700 deposit=4500 phone=400 card=3500",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if len(got) != len(want) {
		t.Fatalf("demo printed %d lines, want %d:\n%s", len(got), len(want), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ─── atm version ────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != "atm "+Version {
		t.Errorf("output = %q", out)
	}
}
