package runner

import "github.com/aretw0/edmcheck/pkg/domain"

// Reporter defines how a run is presented.
// This allows switching between Text (console), JSON and Markdown output.
type Reporter interface {
	// Result is called once per processed candidate, in discovery order.
	Result(res domain.Result) error

	// Finish is called exactly once, after the last Result, whatever the outcome
	// (including empty and crashed runs).
	Finish(report *domain.Report) error
}

// Tone classifies a line of console output so a Painter can style it.
type Tone int

const (
	ToneSuccess Tone = iota
	ToneFailure
	ToneInfo
)

// Painter decorates text for a given tone (e.g. ANSI colors).
type Painter func(tone Tone, s string) string

// ContentRenderer transforms markdown before it is written (e.g. to ANSI for a TTY).
type ContentRenderer func(string) (string, error)

func plain(_ Tone, s string) string { return s }

// NopReporter discards all output. Used when only the returned report matters.
type NopReporter struct{}

func (NopReporter) Result(domain.Result) error  { return nil }
func (NopReporter) Finish(*domain.Report) error { return nil }
