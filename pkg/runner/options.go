package runner

import (
	"log/slog"

	"github.com/aretw0/edmcheck/pkg/observability"
	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/aretw0/edmcheck/pkg/schema"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithSource replaces the filesystem source (e.g. with an in-memory one).
func WithSource(src ports.Source) Option {
	return func(r *Runner) {
		r.Source = src
	}
}

// WithReporter configures how results are presented.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) {
		r.Reporter = rep
	}
}

// WithMetrics enables Prometheus instrumentation of the run.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithSchemaOptions overrides the compile options.
func WithSchemaOptions(opts schema.Options) Option {
	return func(r *Runner) {
		r.SchemaOptions = opts
	}
}

// WithCountMalformed classifies candidates that are not well-formed JSON as
// invalid instead of aborting the run.
func WithCountMalformed(enabled bool) Option {
	return func(r *Runner) {
		r.CountMalformed = enabled
	}
}
