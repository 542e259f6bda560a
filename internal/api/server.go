// Package api provides the HTTP presentation layer for the ATM.
// It only formats teller results; all account rules live in the app layer.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tutu-network/atm/internal/app/atm"
	"github.com/tutu-network/atm/internal/domain"
)

// maxBodyBytes bounds a session request body.
const maxBodyBytes = 4 << 10

// Server is the ATM HTTP API server.
type Server struct {
	teller         *atm.Teller
	metricsEnabled bool
	timeout        time.Duration
}

// NewServer creates a new API server.
func NewServer(teller *atm.Teller) *Server {
	return &Server{teller: teller, timeout: 30 * time.Second}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetTimeout sets the per-request timeout.
func (s *Server) SetTimeout(d time.Duration) { s.timeout = d }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/sessions", s.handleSession)
		r.Get("/balances", s.handleBalances)
		r.Get("/stats", s.handleStats)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// sessionRequest is the wire form of atm.Request. Action and method arrive
// as strings so unknown values can be rejected with a clear message; a missing
// amount selects the configured one.
type sessionRequest struct {
	CardID        string         `json:"card_id"`
	PIN           int            `json:"pin"`
	Action        string         `json:"action"`
	PaymentMethod string         `json:"payment_method"`
	Amount        *domain.Amount `json:"amount"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var body sessionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	action, err := domain.ParseAction(body.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	method, err := domain.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := atm.Request{
		CardID: body.CardID,
		PIN:    body.PIN,
		Action: action,
		Method: method,
	}
	if body.Amount != nil {
		req.Amount, req.HasAmount = *body.Amount, true
	}
	res := s.teller.Serve(r.Context(), req)
	if res.Kind == domain.KindInvalidUser {
		// Do not leak balances to an unauthenticated caller.
		res.Balances = domain.Balances{}
	}
	writeJSON(w, statusFor(res.Err), res)
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.teller.Balances())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.teller.Stats())
}

// statusFor maps a session error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidUser):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
