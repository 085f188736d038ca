package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/edmcheck/internal/adapters/http"
	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/aretw0/edmcheck/pkg/observability"
	"github.com/aretw0/edmcheck/pkg/runner"
)

// shutdownTimeout bounds how long outstanding requests may take once the server stops.
const shutdownTimeout = 5 * time.Second

// NewServeHandler builds the HTTP handler for serve mode. Every /report request
// performs a complete run; metrics accumulate across runs.
func NewServeHandler(opts RunOptions) http.Handler {
	logger := createLogger(opts)
	metrics := observability.NewMetrics()

	run := func(ctx context.Context) (*domain.Report, error) {
		r := createRunner(opts, logger, metrics, runner.NopReporter{}, nil)
		return r.Run(ctx)
	}

	return httpAdapter.NewHandler(run, metrics.Handler(), logger)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, opts RunOptions, addr string) error {
	out, _ := opts.streams()
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServeHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(out, "Starting edmcheck server on %s\n", srv.Addr)
		fmt.Fprintf(out, "Validating %s against %s\n", opts.Config.Pattern, opts.Config.Schema)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		if sig := signalFrom(ctx); sig != nil {
			printSystemMessage(out, "Received %v, shutting down...", sig)
		} else {
			printSystemMessage(out, "Shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		fmt.Fprintln(out, "edmcheck server stopped gracefully")
		return nil
	}
}
