package atm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tutu-network/atm/internal/domain"
)

// Recorder receives one observation per finished session.
type Recorder interface {
	ObserveSession(action domain.Action, method domain.PaymentMethod, kind string, moved domain.Amount, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSession(domain.Action, domain.PaymentMethod, string, domain.Amount, time.Duration) {
}

// Result is the outcome of one session.
type Result struct {
	SessionID string               `json:"session_id"`
	Action    domain.Action        `json:"action"`
	Method    domain.PaymentMethod `json:"payment_method,omitempty"`
	Amount    domain.Amount        `json:"amount"`
	Message   string               `json:"message"`
	Kind      string               `json:"error,omitempty"`
	Balances  domain.Balances      `json:"balances"`
	Err       error                `json:"-"`
}

// OK reports whether the session completed without error.
func (r Result) OK() bool { return r.Err == nil }

// Stats counts finished sessions.
type Stats struct {
	Completed    int64 `json:"completed"`
	Failed       int64 `json:"failed"`
	RejectedAuth int64 `json:"rejected_auth"`
}

// Option configures a Teller.
type Option func(*Teller)

// WithDefaultAmounts sets the amount used when a request carries none.
func WithDefaultAmounts(amounts map[domain.Action]domain.Amount) Option {
	return func(t *Teller) {
		for k, v := range amounts {
			t.amounts[k] = v
		}
	}
}

// WithCurrency sets the currency symbol printed after amounts.
func WithCurrency(symbol string) Option {
	return func(t *Teller) { t.currency = symbol }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Teller) { t.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(t *Teller) { t.recorder = r }
}

// Teller owns one account and runs sessions against it one at a time.
type Teller struct {
	mu       sync.Mutex
	bank     domain.Bank
	amounts  map[domain.Action]domain.Amount
	currency string
	logger   *slog.Logger
	recorder Recorder
	stats    Stats
}

// NewTeller creates a teller for bank.
func NewTeller(bank domain.Bank, opts ...Option) *Teller {
	t := &Teller{
		bank:     bank,
		amounts:  make(map[domain.Action]domain.Amount),
		currency: DefaultCurrency,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("component", "atm")
	return t
}

// DefaultAmount returns the configured amount for action, or zero.
func (t *Teller) DefaultAmount(action domain.Action) domain.Amount {
	return t.amounts[action]
}

// Serve runs req as a single session. The account is locked for the whole
// session so both legs of every transfer land together.
func (t *Teller) Serve(ctx context.Context, req Request) Result {
	res := Result{
		SessionID: uuid.NewString(),
		Action:    req.Action,
		Method:    req.Method,
	}
	start := time.Now()

	if !req.HasAmount && !req.Action.IsQuery() {
		req.Amount = t.amounts[req.Action]
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("%w: %w", domain.ErrOperationFailed, err)
	} else {
		res.Message, res.Err = NewDispatcher(t.bank, t.currency).Dispatch(req)
	}
	res.Balances = t.bank.Snapshot()

	switch {
	case res.Err == nil && req.Action == domain.ActionCheckCardBalance:
		res.Amount = res.Balances.CardBalance
	case res.Err == nil && req.Action == domain.ActionCheckDepositBalance:
		res.Amount = res.Balances.Deposit
	default:
		res.Amount = req.Amount
	}

	var moved domain.Amount
	if res.Err != nil {
		res.Kind = domain.ErrorKind(res.Err)
		res.Message = ErrorLine(res.Err)
		t.stats.Failed++
		if res.Kind == domain.KindInvalidUser {
			t.stats.RejectedAuth++
		}
		t.logger.Warn("session rejected",
			"session", res.SessionID, "action", req.Action, "method", req.Method,
			"kind", res.Kind, "err", res.Err)
	} else {
		if !req.Action.IsQuery() {
			moved = req.Amount
		}
		t.stats.Completed++
		t.logger.Info("session completed",
			"session", res.SessionID, "action", req.Action, "method", req.Method,
			"amount", moved.String())
	}
	t.recorder.ObserveSession(req.Action, req.Method, res.Kind, moved, time.Since(start))

	return res
}

// Balances returns a snapshot of the account balances.
func (t *Teller) Balances() domain.Balances {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bank.Snapshot()
}

// Stats returns counters of finished sessions.
func (t *Teller) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
