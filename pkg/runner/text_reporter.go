package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/edmcheck/pkg/domain"
)

// TextReporter implements the console contract:
//
//	✅ Valid: <path>
//	❌ Invalid: <path>
//	data <violation>
//	  - data/<pointer> <violation>
//
// followed by a summary on stdout (success) or stderr (failure).
type TextReporter struct {
	Out   io.Writer
	Err   io.Writer
	Paint Painter
}

// TextReporterOption defines configuration for TextReporter.
type TextReporterOption func(*TextReporter)

// WithPainter configures the line decorator.
func WithPainter(p Painter) TextReporterOption {
	return func(t *TextReporter) {
		t.Paint = p
	}
}

// NewTextReporter creates a reporter writing to out and errOut.
func NewTextReporter(out, errOut io.Writer, opts ...TextReporterOption) *TextReporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	t := &TextReporter{Out: out, Err: errOut, Paint: plain}
	for _, opt := range opts {
		opt(t)
	}
	if t.Paint == nil {
		t.Paint = plain
	}
	return t
}

func (t *TextReporter) Result(res domain.Result) error {
	if res.Valid {
		_, err := fmt.Fprintln(t.Out, t.Paint(ToneSuccess, "✅ Valid: "+res.Path))
		return err
	}

	if _, err := fmt.Fprintln(t.Out, t.Paint(ToneFailure, "❌ Invalid: "+res.Path)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.Out, res.Violations.Join(domain.ViolationSeparator))
	return err
}

func (t *TextReporter) Finish(report *domain.Report) error {
	var err error
	switch report.Status {
	case domain.StatusEmpty:
		_, err = fmt.Fprintln(t.Out, t.Paint(ToneInfo, "ℹ️  No example files found in "+report.Pattern))
	case domain.StatusFailed:
		msg := fmt.Sprintf("✖ %d file(s) failed validation.", report.Failures)
		_, err = fmt.Fprintf(t.Err, "\n%s\n", t.Paint(ToneFailure, msg))
	case domain.StatusPassed:
		msg := fmt.Sprintf("✔ All example files are valid against %s.", report.Label)
		_, err = fmt.Fprintf(t.Out, "\n%s\n", t.Paint(ToneSuccess, msg))
	case domain.StatusCrashed:
		_, err = fmt.Fprintln(t.Err, t.Paint(ToneFailure, "edmcheck: "+report.Error))
	}
	return err
}
