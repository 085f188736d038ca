package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/edmcheck/pkg/observability"
)

// Check runs one batch and returns the process exit code.
func Check(ctx context.Context, opts RunOptions) int {
	logger := createLogger(opts)
	metrics := observability.NewMetrics()

	r := createRunner(opts, logger, metrics, createReporter(opts), nil)
	report, _ := r.Run(ctx)

	writeMetrics(opts, metrics)
	return report.ExitCode()
}

// writeMetrics exports the run metrics when --metrics-file is set.
// A failed export is reported but does not change the exit code.
func writeMetrics(opts RunOptions, metrics *observability.Metrics) {
	path := opts.Config.MetricsFile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		_, errOut := opts.streams()
		fmt.Fprintf(errOut, "edmcheck: %v\n", err)
	}
}
