package domain

// Fixed inputs of a run when nothing else is configured.
const (
	// DefaultSchemaPath is the schema every example is checked against.
	DefaultSchemaPath = "schema/edm.v0.4.schema.json"

	// DefaultPattern selects the example documents, relative to the working directory.
	DefaultPattern = "examples/*.ddna.json"

	// ViolationSeparator joins the violations of one file for console output.
	ViolationSeparator = "\n  - "
)

// Process exit codes.
const (
	ExitOK      = 0 // all files valid, or no files found
	ExitInvalid = 1 // at least one file failed validation
	ExitCrash   = 2 // infrastructure failure (I/O, parse, compile)
)
