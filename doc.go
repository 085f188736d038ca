/*
Package edmcheck validates a set of example documents against one JSON Schema.

It loads the schema once, compiles it into a reusable validator, discovers the
candidate files with a glob pattern and validates each of them, collecting every
violation rather than stopping at the first. The outcome is a Report whose exit
code follows the usual CI convention: 0 when everything is valid (or nothing
matched), 1 when at least one document is invalid, 2 when the run itself failed.

# Usage

	checker := edmcheck.New("schema/edm.v0.4.schema.json", "examples/*.ddna.json")
	report, err := checker.Check(ctx)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(report.ExitCode())

Documents can come from anywhere that implements ports.Source; the default
reads the file system. The edmcheck command wraps the same pipeline with console,
JSON and markdown reporters, a watch mode and a small HTTP server.
*/
package edmcheck
