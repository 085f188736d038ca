package runner

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/edmcheck/pkg/domain"
)

// JSONReporter writes the whole report as a single JSON document when the run
// finishes. Per-file results are not streamed.
type JSONReporter struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONReporter creates a reporter writing indented JSON to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONReporter{Writer: w, Encoder: enc}
}

func (h *JSONReporter) Result(res domain.Result) error { return nil }

func (h *JSONReporter) Finish(report *domain.Report) error {
	return h.Encoder.Encode(report)
}
