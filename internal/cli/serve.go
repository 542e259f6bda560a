package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutu-network/atm/internal/api"
	"github.com/tutu-network/atm/internal/daemon"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default: [api] host:port)")
}

// ─── atm serve ──────────────────────────────────────────────────────────────

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve ATM sessions over HTTP",
	Long: `Start the HTTP API. Sessions are posted to /v1/sessions and run one at a
time against the configured account. The account lives only as long as the
process.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}
	teller, err := newTeller(cfg)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr).With("component", "api")

	srv := api.NewServer(teller)
	srv.SetTimeout(cfg.RequestTimeout())
	if cfg.Metrics.Enabled {
		srv.EnableMetrics()
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Addr()
	}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "metrics", cfg.Metrics.Enabled)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	stats := teller.Stats()
	logger.Info("stopped", "completed", stats.Completed, "failed", stats.Failed)
	return nil
}
