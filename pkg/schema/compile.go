package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options configures how a schema document is compiled.
type Options struct {
	// Strict rejects unknown keywords before the engine sees the document.
	Strict bool

	// AllowUnionTypes permits "type" to be an array of type names.
	// Only consulted when Strict is set.
	AllowUnionTypes bool

	// AssertFormat turns "format" into an assertion (date-time, email, uri, ...)
	// instead of an annotation.
	AssertFormat bool

	// Draft is used for documents without "$schema". Defaults to draft-07.
	Draft *jsonschema.Draft
}

// DefaultOptions mirrors the behaviour expected from the example checker:
// draft-07, strict, union types allowed, formats asserted.
func DefaultOptions() Options {
	return Options{
		Strict:          true,
		AllowUnionTypes: true,
		AssertFormat:    true,
		Draft:           jsonschema.Draft7,
	}
}

// Validator is a compiled schema. It is immutable and can be reused for any
// number of documents.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// Compile turns a parsed schema document into a Validator.
// location identifies the document; relative "$ref"s are resolved against it.
func Compile(location string, doc Document, opts Options) (*Validator, error) {
	if opts.Strict {
		if err := CheckStrict(doc, opts); err != nil {
			return nil, err
		}
	}

	loc, err := resourceURL(location)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	draft := opts.Draft
	if draft == nil {
		draft = jsonschema.Draft7
	}
	c.DefaultDraft(draft)
	if opts.AssertFormat {
		c.AssertFormat()
	}
	for _, f := range extraFormats {
		c.RegisterFormat(f)
	}

	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("add resource %s: %w", location, err)
	}

	sch, err := c.Compile(loc)
	if err != nil {
		return nil, err
	}

	return &Validator{
		schema:  sch,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate checks doc and returns every violation found. An empty result means
// the document is valid.
func (v *Validator) Validate(doc Document) domain.Violations {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	return flatten(err, v.printer)
}

// ParseDraft maps a draft name ("draft-04", "draft-06", "draft-07", "2019-09",
// "2020-12") to the engine's dialect.
func ParseDraft(name string) (*jsonschema.Draft, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "draft-") {
	case "04", "4":
		return jsonschema.Draft4, nil
	case "06", "6":
		return jsonschema.Draft6, nil
	case "07", "7", "":
		return jsonschema.Draft7, nil
	case "2019-09":
		return jsonschema.Draft2019, nil
	case "2020-12":
		return jsonschema.Draft2020, nil
	default:
		return nil, fmt.Errorf("unknown draft %q", name)
	}
}

// resourceURL converts a file path into the URL the compiler indexes it under.
// Values that already carry a scheme are passed through.
func resourceURL(location string) (string, error) {
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", location, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String(), nil
}

// Label derives the short schema name used in summaries from its path,
// e.g. "schema/edm.v0.4.schema.json" -> "edm.v0.4".
func Label(path string) string {
	base := filepath.Base(path)
	for _, suffix := range []string{".schema.json", ".json"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}
