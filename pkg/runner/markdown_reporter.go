package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/edmcheck/pkg/domain"
)

// MarkdownReporter renders a summary table, suitable for CI step summaries.
// When Renderer is set (e.g. glamour on a terminal) the markdown is rendered first.
type MarkdownReporter struct {
	Writer   io.Writer
	Renderer ContentRenderer
}

// NewMarkdownReporter creates a reporter writing to w.
func NewMarkdownReporter(w io.Writer, renderer ContentRenderer) *MarkdownReporter {
	if w == nil {
		w = os.Stdout
	}
	return &MarkdownReporter{Writer: w, Renderer: renderer}
}

func (m *MarkdownReporter) Result(res domain.Result) error { return nil }

func (m *MarkdownReporter) Finish(report *domain.Report) error {
	md := Markdown(report)
	if m.Renderer != nil {
		rendered, err := m.Renderer(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := io.WriteString(m.Writer, md)
	return err
}

// Markdown builds the markdown summary of a report.
func Markdown(report *domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Validation against `%s`\n\n", report.Label)
	fmt.Fprintf(&b, "Schema: `%s`  \nPattern: `%s`  \nStatus: **%s**\n\n", report.Schema, report.Pattern, report.Status)

	switch report.Status {
	case domain.StatusEmpty:
		fmt.Fprintf(&b, "No example files found in `%s`.\n", report.Pattern)
		return b.String()
	case domain.StatusCrashed:
		fmt.Fprintf(&b, "Run aborted:\n\n```\n%s\n```\n", report.Error)
		if len(report.Results) == 0 {
			return b.String()
		}
		b.WriteString("\n")
	}

	b.WriteString("| File | Result | Violations |\n|---|---|---|\n")
	for _, res := range report.Results {
		result := "valid"
		if !res.Valid {
			result = "invalid"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %d |\n", escapeCell(res.Path), result, len(res.Violations))
	}

	for _, res := range report.Results {
		if res.Valid {
			continue
		}
		fmt.Fprintf(&b, "\n## `%s`\n\n", res.Path)
		for _, v := range res.Violations {
			fmt.Fprintf(&b, "- `%s`: %s\n", "data"+v.InstanceLocation, escapeCell(v.Message))
		}
	}

	fmt.Fprintf(&b, "\n%d of %d file(s) failed validation.\n", report.Failures, len(report.Results))
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
