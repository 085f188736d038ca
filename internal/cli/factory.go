package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/edmcheck/internal/config"
	"github.com/aretw0/edmcheck/internal/logging"
	"github.com/aretw0/edmcheck/internal/presentation/tui"
	"github.com/aretw0/edmcheck/pkg/observability"
	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/aretw0/edmcheck/pkg/runner"
	"github.com/aretw0/edmcheck/pkg/schema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// RunOptions contains everything a command needs to build a run.
type RunOptions struct {
	Config *config.Config
	Debug  bool

	// Out and Err receive the report. They default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

func (o RunOptions) streams() (io.Writer, io.Writer) {
	out, errOut := o.Out, o.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return out, errOut
}

// createLogger configures the application logger.
// Logging is off unless --debug is set or a log level is configured; it always
// goes to Stderr so Stdout stays a clean report.
func createLogger(opts RunOptions) *slog.Logger {
	cfg := opts.Config
	level := slog.LevelDebug
	if !opts.Debug {
		if cfg.Log.Level == "" {
			return logging.NewNop()
		}
		parsed, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			parsed = slog.LevelInfo
		}
		level = parsed
	}
	if cfg.Log.Format == "json" {
		return logging.NewWithFormat(os.Stderr, level, "json")
	}
	return logging.New(level)
}

// createReporter picks the reporter for the configured format.
func createReporter(opts RunOptions) runner.Reporter {
	out, errOut := opts.streams()
	switch opts.Config.Format {
	case "json":
		return runner.NewJSONReporter(out)
	case "markdown":
		var renderer runner.ContentRenderer
		if tui.IsTerminal(fileOf(out)) {
			renderer = tui.NewRenderer()
		}
		return runner.NewMarkdownReporter(out, renderer)
	default:
		profile := tui.Profile(opts.Config.Color, fileOf(out))
		return runner.NewTextReporter(out, errOut, runner.WithPainter(tui.NewPainter(profile)))
	}
}

// createRunner wires a Runner from the configuration.
// The draft name was checked by config.Validate.
func createRunner(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics, reporter runner.Reporter, src ports.Source) *runner.Runner {
	cfg := opts.Config
	draft, err := schema.ParseDraft(cfg.Validation.Draft)
	if err != nil {
		draft = jsonschema.Draft7
	}
	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithReporter(reporter),
		runner.WithMetrics(metrics),
		runner.WithCountMalformed(cfg.CountMalformed),
		runner.WithSchemaOptions(schema.Options{
			Draft:           draft,
			Strict:          cfg.Validation.Strict,
			AllowUnionTypes: cfg.Validation.AllowUnionTypes,
			AssertFormat:    cfg.Validation.AssertFormat,
		}),
	}
	if src != nil {
		runnerOpts = append(runnerOpts, runner.WithSource(src))
	}
	return runner.NewRunner(cfg.Schema, cfg.Pattern, runnerOpts...)
}
