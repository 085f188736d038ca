package schema

import "fmt"

// KeywordError is a single strict-mode finding in a schema document.
type KeywordError struct {
	Pointer string // JSON pointer of the schema object holding the keyword
	Keyword string
	Reason  string
}

func (e *KeywordError) Error() string {
	loc := e.Pointer
	if loc == "" {
		loc = "#"
	}
	return fmt.Sprintf("strict mode: %s: keyword %q: %s", loc, e.Keyword, e.Reason)
}

// StrictError aggregates every strict-mode finding of a schema document.
type StrictError struct {
	Errors []*KeywordError
}

func (e *StrictError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d strict mode errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// KeywordErrors returns the findings if err is a *StrictError.
// Otherwise returns nil.
func KeywordErrors(err error) []*KeywordError {
	if se, ok := err.(*StrictError); ok {
		return se.Errors
	}
	return nil
}
