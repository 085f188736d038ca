package domain

import "time"

// Status is the aggregate outcome of a run.
type Status string

const (
	StatusPassed  Status = "passed"  // every discovered file is valid
	StatusFailed  Status = "failed"  // at least one file is invalid
	StatusEmpty   Status = "empty"   // the pattern matched nothing
	StatusCrashed Status = "crashed" // the run aborted on an infrastructure failure
)

// ExitCode maps the status to the process exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusPassed, StatusEmpty:
		return ExitOK
	case StatusFailed:
		return ExitInvalid
	default:
		return ExitCrash
	}
}

// Result is the outcome for one candidate document.
type Result struct {
	Path       string     `json:"path"`
	Valid      bool       `json:"valid"`
	Violations Violations `json:"violations,omitempty"`
}

// Report aggregates the results of one run.
type Report struct {
	// Schema is the path of the schema file the run used.
	Schema string `json:"schema"`

	// Label is the short schema name used in the success summary (e.g. "edm.v0.4").
	Label string `json:"label"`

	// Pattern is the discovery glob.
	Pattern string `json:"pattern"`

	// Results holds one entry per processed file, in discovery order.
	Results []Result `json:"results"`

	// Failures counts the invalid results.
	Failures int `json:"failures"`

	Status   Status        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// NewReport creates an empty report for a run.
func NewReport(schemaPath, label, pattern string) *Report {
	return &Report{
		Schema:  schemaPath,
		Label:   label,
		Pattern: pattern,
		Results: []Result{},
	}
}

// Add records a result and updates the failure counter.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	if !res.Valid {
		r.Failures++
	}
}

// Finalize sets the status from the collected results.
// A non-nil err marks the run as crashed.
func (r *Report) Finalize(err error) {
	switch {
	case err != nil:
		r.Status = StatusCrashed
		r.Error = err.Error()
	case len(r.Results) == 0:
		r.Status = StatusEmpty
	case r.Failures > 0:
		r.Status = StatusFailed
	default:
		r.Status = StatusPassed
	}
}

// ExitCode is shorthand for r.Status.ExitCode().
func (r *Report) ExitCode() int {
	return r.Status.ExitCode()
}
