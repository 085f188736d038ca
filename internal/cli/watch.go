package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/edmcheck/internal/presentation/tui"
	"github.com/aretw0/edmcheck/pkg/adapters/file"
	"github.com/aretw0/edmcheck/pkg/observability"
)

// debounce is how long the loop waits for the file system to settle before re-running.
const debounce = 100 * time.Millisecond

// Watch runs the full batch, then re-runs it whenever the schema or a file under
// the pattern's base directory changes. It returns nil once ctx is cancelled.
func Watch(ctx context.Context, opts RunOptions, version string) error {
	logger := createLogger(opts)
	metrics := observability.NewMetrics()
	out, _ := opts.streams()

	src := file.NewSource("", opts.Config.Pattern)
	src.ExtraWatch = []string{opts.Config.Schema}

	// One watcher for the whole session: edits saved while a batch runs stay
	// queued and trigger the next run.
	events, err := src.Watch(ctx)
	if err != nil {
		return err
	}

	profile := tui.Profile(opts.Config.Color, fileOf(out))
	tui.PrintBanner(out, profile, version, opts.Config.Schema, opts.Config.Pattern)

	run := func() {
		r := createRunner(opts, logger, metrics, createReporter(opts), src)
		r.Run(ctx)
		writeMetrics(opts, metrics)
	}
	return watchLoop(ctx, out, logger, events, run)
}

// watchLoop calls run, then waits for the next change, until ctx ends.
func watchLoop(ctx context.Context, out io.Writer, logger *slog.Logger, events <-chan string, run func()) error {
	for {
		run()
		if ctx.Err() != nil {
			return stopped(ctx, out, logger)
		}

		printSystemMessage(out, "Watching for changes... (Ctrl+C to stop)")
		if !waitForChange(ctx, events) {
			if ctx.Err() == nil {
				return errors.New("file watcher stopped")
			}
			return stopped(ctx, out, logger)
		}

		logger.Debug("change detected, re-running")
		printSystemMessage(out, "Change detected, re-validating...")
	}
}

// stopped reports which signal ended the session, if any.
func stopped(ctx context.Context, out io.Writer, logger *slog.Logger) error {
	if sig := signalFrom(ctx); sig != nil {
		logger.Info("Watch stopped", "signal", sig.String())
		printSystemMessage(out, "Received %v, stopping", sig)
	}
	return nil
}

// waitForChange blocks until an event arrives and the debounce window then
// passes without further events. It reports false when ctx ends first or the
// watcher closes.
func waitForChange(ctx context.Context, events <-chan string) bool {
	select {
	case <-ctx.Done():
		return false
	case _, ok := <-events:
		if !ok {
			return false
		}
	}

	timer := time.NewTimer(debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-events:
			if !ok {
				return ctx.Err() == nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
		case <-timer.C:
			return true
		}
	}
}
