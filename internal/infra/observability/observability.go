// Package observability exports Prometheus metrics for ATM sessions.
//
// This provides:
//   - Session counters by action and outcome
//   - Amounts moved, in minor units, by action and payment method
//   - Session latency histogram
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tutu-network/atm/internal/domain"
)

// OutcomeOK labels sessions that finished without error.
const OutcomeOK = "ok"

// ─── Metrics ────────────────────────────────────────────────────────────────

// SessionsTotal counts finished sessions by action and outcome.
var SessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "atm",
	Name:      "sessions_total",
	Help:      "ATM sessions by action and outcome (ok, InvalidUser, InsufficientFunds, OperationFailed).",
}, []string{"action", "outcome"})

// AmountMovedMinor sums the money moved by successful sessions, in minor units.
var AmountMovedMinor = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "atm",
	Name:      "amount_moved_minor_total",
	Help:      "Money moved by successful sessions, in minor units.",
}, []string{"action", "method"})

// SessionDuration observes how long a session held the account.
var SessionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "atm",
	Name:      "session_duration_seconds",
	Help:      "Time spent serving one ATM session.",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"action"})

// ─── Recorder ───────────────────────────────────────────────────────────────

// Recorder feeds session observations into the package metrics.
type Recorder struct{}

// NewRecorder returns a recorder bound to the default registry.
func NewRecorder() Recorder { return Recorder{} }

// ObserveSession records one finished session. kind is "" on success.
func (Recorder) ObserveSession(action domain.Action, method domain.PaymentMethod, kind string, moved domain.Amount, elapsed time.Duration) {
	outcome := kind
	if outcome == "" {
		outcome = OutcomeOK
	}
	SessionsTotal.WithLabelValues(string(action), outcome).Inc()
	if moved > 0 {
		AmountMovedMinor.WithLabelValues(string(action), methodLabel(method)).Add(float64(moved))
	}
	SessionDuration.WithLabelValues(string(action)).Observe(elapsed.Seconds())
}

func methodLabel(m domain.PaymentMethod) string {
	if m == domain.MethodNone {
		return "none"
	}
	return string(m)
}
