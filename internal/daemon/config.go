// Package daemon holds process-level configuration for the ATM binary.
package daemon

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tutu-network/atm/internal/app/atm"
	"github.com/tutu-network/atm/internal/domain"
)

// Config is the contents of an atm.toml file.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Currency string        `toml:"currency"`
	Account  AccountConfig `toml:"account"`
	Amounts  AmountsConfig `toml:"amounts"`
	API      APIConfig     `toml:"api"`
	Metrics  MetricsConfig `toml:"metrics"`
}

// AccountConfig is the initial snapshot of the simulated account.
type AccountConfig struct {
	Name         string        `toml:"name"`
	CardID       string        `toml:"card_id"`
	PIN          int           `toml:"pin"`
	Phone        string        `toml:"phone"`
	Cash         domain.Amount `toml:"cash"`
	Deposit      domain.Amount `toml:"deposit"`
	PhoneBalance domain.Amount `toml:"phone_balance"`
	CardBalance  domain.Amount `toml:"card_balance"`
}

// AmountsConfig holds the amount used when a request does not name one.
type AmountsConfig struct {
	WithdrawFromCard    domain.Amount `toml:"withdraw_from_card"`
	WithdrawFromDeposit domain.Amount `toml:"withdraw_from_deposit"`
	TopUpCard           domain.Amount `toml:"top_up_card"`
	TopUpDeposit        domain.Amount `toml:"top_up_deposit"`
	TopUpPhone          domain.Amount `toml:"top_up_phone"`
}

// APIConfig configures the HTTP presentation layer.
type APIConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	RequestTimeout string `toml:"request_timeout"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the sample account and amounts of the demo driver.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Currency: atm.DefaultCurrency,
		Account: AccountConfig{
			Name:         "Alexander",
			CardID:       "1234-5678",
			PIN:          1234,
			Phone:        "+79999999999",
			Cash:         domain.Units(1000),
			Deposit:      domain.Units(5000),
			PhoneBalance: domain.Units(100),
			CardBalance:  domain.Units(3000),
		},
		Amounts: AmountsConfig{
			WithdrawFromCard:    domain.Units(500),
			WithdrawFromDeposit: domain.Units(500),
			TopUpCard:           domain.Units(1000),
			TopUpDeposit:        domain.Units(1500),
			TopUpPhone:          domain.Units(300),
		},
		API: APIConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			RequestTimeout: "30s",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads path over DefaultConfig. An empty path returns the defaults.
// Unknown keys are an error so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that cannot be repaired with a default.
func (c Config) Validate() error {
	var errs []error
	if c.Account.CardID == "" {
		errs = append(errs, errors.New("account.card_id is required"))
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		errs = append(errs, fmt.Errorf("api.port %d out of range", c.API.Port))
	}
	if _, err := parseDuration(c.API.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("api.request_timeout: %w", err))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewAccount builds the simulated account from the [account] section.
func (c Config) NewAccount() (*domain.Account, error) {
	a := c.Account
	return domain.NewAccount(
		domain.Identity{Name: a.Name, CardID: a.CardID, PIN: a.PIN, Phone: a.Phone},
		domain.Balances{Cash: a.Cash, Deposit: a.Deposit, PhoneBalance: a.PhoneBalance, CardBalance: a.CardBalance},
	)
}

// DefaultAmounts maps each mutating action to its configured amount.
func (c Config) DefaultAmounts() map[domain.Action]domain.Amount {
	return map[domain.Action]domain.Amount{
		domain.ActionWithdrawFromCard:    c.Amounts.WithdrawFromCard,
		domain.ActionWithdrawFromDeposit: c.Amounts.WithdrawFromDeposit,
		domain.ActionTopUpCard:           c.Amounts.TopUpCard,
		domain.ActionTopUpDeposit:        c.Amounts.TopUpDeposit,
		domain.ActionTopUpPhone:          c.Amounts.TopUpPhone,
	}
}

// Addr returns the host:port the API listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port))
}

// RequestTimeout returns the per-request timeout, defaulting to 30s.
func (c Config) RequestTimeout() time.Duration {
	d, err := parseDuration(c.API.RequestTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// parseDuration parses "30s"-style strings; empty means the default.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %s must be positive", s)
	}
	return d, nil
}
