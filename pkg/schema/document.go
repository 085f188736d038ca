package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document is a parsed JSON value. Numbers are kept as json.Number so that
// large integers and decimals survive the round trip into the validator.
type Document = any

// Parse decodes exactly one JSON value from r.
func Parse(r io.Reader) (Document, error) {
	doc, err := jsonschema.UnmarshalJSON(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseBytes decodes exactly one JSON value from data.
func ParseBytes(data []byte) (Document, error) {
	return Parse(bytes.NewReader(data))
}

// LoadFile reads and parses the JSON file at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
