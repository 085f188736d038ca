/*
Package runner implements the validation pipeline of edmcheck.

A run is strictly sequential: load the schema, compile it once, discover the
candidate documents, validate each one against the same compiled validator,
report, and derive the exit code from the aggregate outcome.

# Key Components

  - Runner: owns one run. All collaborators are injected, nothing is global.
  - Reporter: decouples how results are presented (text, JSON, markdown).
  - TextReporter: the console contract ("Valid: <path>", "Invalid: <path>", summaries).

# Usage

	r := runner.NewRunner(domain.DefaultSchemaPath, domain.DefaultPattern,
		runner.WithLogger(logger),
		runner.WithReporter(runner.NewTextReporter(os.Stdout, os.Stderr)),
	)

	report, err := r.Run(ctx)
	if err != nil {
		// infrastructure failure; report.ExitCode() == 2
	}
	os.Exit(report.ExitCode())
*/
package runner
