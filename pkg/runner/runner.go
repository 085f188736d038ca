package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/edmcheck/pkg/adapters/file"
	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/aretw0/edmcheck/pkg/observability"
	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/aretw0/edmcheck/pkg/schema"
)

// Runner validates every candidate document against one schema.
type Runner struct {
	// SchemaPath is the schema file, loaded and compiled once per Run.
	SchemaPath string

	// Pattern is the discovery glob, used for reporting and for the default Source.
	Pattern string

	// Source discovers and reads candidates. Defaults to the filesystem.
	Source ports.Source

	// Reporter presents results. Defaults to text on stdout/stderr.
	Reporter Reporter

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *observability.Metrics

	SchemaOptions  schema.Options
	CountMalformed bool
}

// NewRunner creates a Runner for schemaPath and pattern.
func NewRunner(schemaPath, pattern string, opts ...Option) *Runner {
	r := &Runner{
		SchemaPath:    schemaPath,
		Pattern:       pattern,
		SchemaOptions: schema.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.Source == nil {
		r.Source = file.NewSource("", pattern)
	}
	if r.Reporter == nil {
		r.Reporter = NewTextReporter(os.Stdout, os.Stderr)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes one complete batch. The returned report is never nil.
// A non-nil error is an infrastructure failure: the report then has status
// crashed and holds the results produced before the failure.
func (r *Runner) Run(ctx context.Context) (*domain.Report, error) {
	start := time.Now()
	report := domain.NewReport(r.SchemaPath, schema.Label(r.SchemaPath), r.Pattern)

	err := r.run(ctx, report)

	report.Duration = time.Since(start)
	report.Finalize(err)
	r.Metrics.ObserveReport(report)

	if err != nil {
		r.Logger.Error("Run aborted", "err", err, "processed", len(report.Results))
	} else {
		r.Logger.Info("Run finished",
			"status", report.Status,
			"files", len(report.Results),
			"failures", report.Failures,
			"duration", report.Duration,
		)
	}

	if repErr := r.Reporter.Finish(report); repErr != nil {
		r.Logger.Warn("Report output failed", "err", repErr)
	}
	return report, err
}

func (r *Runner) run(ctx context.Context, report *domain.Report) error {
	// 1. Load schema
	doc, err := schema.LoadFile(r.SchemaPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaLoad, err)
	}

	// 2. Compile once; every candidate is checked against the same validator.
	validator, err := schema.Compile(r.SchemaPath, doc, r.SchemaOptions)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSchemaCompile, r.SchemaPath, err)
	}
	r.Logger.Debug("Schema compiled", "schema", r.SchemaPath, "strict", r.SchemaOptions.Strict)

	// 3. Discover
	paths, err := r.Source.Discover(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDiscovery, err)
	}
	r.Logger.Debug("Candidates discovered", "pattern", r.Pattern, "count", len(paths))

	// 4. Validate in discovery order
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := r.check(ctx, validator, path)
		if err != nil {
			return err
		}

		report.Add(res)
		r.Metrics.ObserveResult(res)
		if err := r.Reporter.Result(res); err != nil {
			r.Logger.Warn("Result output failed", "path", path, "err", err)
		}
	}

	return nil
}

// check reads, parses and validates one candidate.
func (r *Runner) check(ctx context.Context, v *schema.Validator, path string) (domain.Result, error) {
	data, err := r.Source.Read(ctx, path)
	if err != nil {
		return domain.Result{}, fmt.Errorf("%w: %w", domain.ErrDocumentRead, err)
	}

	doc, err := schema.ParseBytes(data)
	if err != nil {
		if !r.CountMalformed {
			return domain.Result{}, fmt.Errorf("%w: %s: %w", domain.ErrDocumentParse, path, err)
		}
		r.Logger.Debug("Malformed candidate counted as invalid", "path", path, "err", err)
		return domain.Result{
			Path: path,
			Violations: domain.Violations{{
				Keyword: "parse",
				Message: err.Error(),
			}},
		}, nil
	}

	violations := v.Validate(doc)
	r.Logger.Debug("Validated", "path", path, "violations", len(violations))
	return domain.Result{
		Path:       path,
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}
