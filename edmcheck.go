package edmcheck

import (
	"context"
	"log/slog"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/aretw0/edmcheck/pkg/runner"
	"github.com/aretw0/edmcheck/pkg/schema"
)

// Version is the released version of edmcheck.
var Version = "v0.1.0"

// Checker is the high-level entry point for the library.
// It wraps the runner and keeps no output of its own: callers inspect the Report.
type Checker struct {
	schemaPath string
	pattern    string
	opts       []runner.Option
}

// Option defines a functional option for configuring the Checker.
type Option func(*Checker)

// WithSource replaces the file system as the origin of candidate documents.
func WithSource(src ports.Source) Option {
	return func(c *Checker) {
		c.opts = append(c.opts, runner.WithSource(src))
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.opts = append(c.opts, runner.WithLogger(logger))
	}
}

// WithReporter streams results while the check runs.
func WithReporter(rep runner.Reporter) Option {
	return func(c *Checker) {
		c.opts = append(c.opts, runner.WithReporter(rep))
	}
}

// WithSchemaOptions overrides how the schema is compiled.
func WithSchemaOptions(opts schema.Options) Option {
	return func(c *Checker) {
		c.opts = append(c.opts, runner.WithSchemaOptions(opts))
	}
}

// WithCountMalformed counts unparsable documents as invalid instead of aborting.
func WithCountMalformed(enabled bool) Option {
	return func(c *Checker) {
		c.opts = append(c.opts, runner.WithCountMalformed(enabled))
	}
}

// New creates a Checker for one schema and one discovery pattern.
func New(schemaPath, pattern string, opts ...Option) *Checker {
	c := &Checker{
		schemaPath: schemaPath,
		pattern:    pattern,
		opts:       []runner.Option{runner.WithReporter(runner.NopReporter{})},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs one complete validation. The report is always returned; err is
// non-nil only when the run could not complete.
func (c *Checker) Check(ctx context.Context) (*domain.Report, error) {
	return runner.NewRunner(c.schemaPath, c.pattern, c.opts...).Run(ctx)
}
