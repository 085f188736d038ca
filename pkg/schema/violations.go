package schema

import (
	"errors"
	"strings"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/message"
)

// flatten converts the engine's error tree into an ordered list of violations.
// Only leaves are reported: inner nodes ("allOf failed", "schema failed") are
// summaries of their causes.
func flatten(err error, p *message.Printer) domain.Violations {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return domain.Violations{{Message: err.Error()}}
	}

	var out domain.Violations
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, toViolation(e, p))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func toViolation(e *jsonschema.ValidationError, p *message.Printer) domain.Violation {
	kwPath := e.ErrorKind.KeywordPath()

	keyword := ""
	if len(kwPath) > 0 {
		keyword = kwPath[0]
	}

	kwLoc := fragment(e.SchemaURL)
	if len(kwPath) > 0 {
		kwLoc += "/" + strings.Join(escapeTokens(kwPath), "/")
	}

	return domain.Violation{
		InstanceLocation: pointer(e.InstanceLocation),
		KeywordLocation:  kwLoc,
		Keyword:          keyword,
		Message:          e.ErrorKind.LocalizedString(p),
	}
}

// fragment returns the JSON pointer part of a schema URL ("" for the root).
func fragment(schemaURL string) string {
	if i := strings.IndexByte(schemaURL, '#'); i >= 0 {
		return schemaURL[i+1:]
	}
	return ""
}

// pointer builds an RFC 6901 JSON pointer from reference tokens.
func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return "/" + strings.Join(escapeTokens(tokens), "/")
}

func escapeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		t = strings.ReplaceAll(t, "~", "~0")
		out[i] = strings.ReplaceAll(t, "/", "~1")
	}
	return out
}
