package domain

import "strings"

// Violation is a single structured description of a schema failure.
type Violation struct {
	// InstanceLocation is the JSON pointer of the offending value ("" for the root).
	InstanceLocation string `json:"instance_location"`

	// KeywordLocation is the JSON pointer of the failing keyword inside the schema.
	KeywordLocation string `json:"keyword_location"`

	// Keyword is the schema keyword that failed (e.g. "required", "type", "format").
	Keyword string `json:"keyword"`

	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// String renders the violation the way the console reporter prints it,
// e.g. "data/name got number, want string".
func (v Violation) String() string {
	return "data" + v.InstanceLocation + " " + v.Message
}

// Violations is an ordered list of violations for one document.
type Violations []Violation

// Join renders all violations separated by sep, preserving order.
func (vs Violations) Join(sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// Error lets a non-empty Violations list be returned as an error.
func (vs Violations) Error() string {
	return vs.Join(ViolationSeparator)
}
