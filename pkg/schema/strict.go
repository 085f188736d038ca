package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// draft7Keywords lists the keywords strict mode accepts for draft-07 schemas.
var draft7Keywords = map[string]bool{
	// core
	"$schema": true, "$id": true, "$ref": true, "$comment": true,
	"$vocabulary": true, "$defs": true, "definitions": true,
	// applicator
	"items": true, "additionalItems": true, "contains": true,
	"properties": true, "patternProperties": true, "additionalProperties": true,
	"propertyNames": true, "dependencies": true,
	"allOf": true, "anyOf": true, "oneOf": true, "not": true,
	"if": true, "then": true, "else": true,
	// validation
	"type": true, "enum": true, "const": true,
	"multipleOf": true, "maximum": true, "exclusiveMaximum": true,
	"minimum": true, "exclusiveMinimum": true,
	"maxLength": true, "minLength": true, "pattern": true,
	"maxItems": true, "minItems": true, "uniqueItems": true,
	"maxProperties": true, "minProperties": true, "required": true,
	// format, content
	"format": true, "contentEncoding": true, "contentMediaType": true, "contentSchema": true,
	// meta-data
	"title": true, "description": true, "default": true, "deprecated": true,
	"readOnly": true, "writeOnly": true, "examples": true,
}

// draft2020Keywords adds the 2019-09 and 2020-12 vocabularies.
var draft2020Keywords = withKeywords(draft7Keywords,
	"$anchor", "$dynamicRef", "$dynamicAnchor", "$recursiveRef", "$recursiveAnchor",
	"prefixItems", "dependentSchemas", "dependentRequired",
	"maxContains", "minContains",
	"unevaluatedItems", "unevaluatedProperties",
)

func withKeywords(base map[string]bool, extra ...string) map[string]bool {
	out := make(map[string]bool, len(base)+len(extra))
	for k := range base {
		out[k] = true
	}
	for _, k := range extra {
		out[k] = true
	}
	return out
}

// keywordsFor picks the keyword set of the dialect doc is read with: its own
// "$schema" when present, the compile draft otherwise.
func keywordsFor(doc Document, draft *jsonschema.Draft) map[string]bool {
	if obj, ok := doc.(map[string]any); ok {
		if uri, ok := obj["$schema"].(string); ok {
			if strings.Contains(uri, "2020-12") || strings.Contains(uri, "2019-09") {
				return draft2020Keywords
			}
			return draft7Keywords
		}
	}
	if draft == jsonschema.Draft2019 || draft == jsonschema.Draft2020 {
		return draft2020Keywords
	}
	return draft7Keywords
}

// Subschema positions, by shape.
var (
	schemaKeywords = []string{
		"additionalItems", "additionalProperties", "contains", "contentSchema",
		"else", "if", "not", "propertyNames", "then",
		"unevaluatedItems", "unevaluatedProperties",
	}
	schemaArrayKeywords = []string{"allOf", "anyOf", "oneOf", "prefixItems"}
	schemaMapKeywords   = []string{"$defs", "definitions", "dependentSchemas", "patternProperties", "properties"}
)

// CheckStrict walks a schema document and reports unknown keywords, unknown
// format names and, unless opts.AllowUnionTypes is set, "type" keywords listing
// more than one type. Values of data keywords (enum, const, default, examples)
// are not inspected.
func CheckStrict(doc Document, opts Options) error {
	c := &strictChecker{
		allowUnionTypes: opts.AllowUnionTypes,
		keywords:        keywordsFor(doc, opts.Draft),
	}
	c.walk(doc, "")
	if len(c.errs) == 0 {
		return nil
	}
	return &StrictError{Errors: c.errs}
}

type strictChecker struct {
	allowUnionTypes bool
	keywords        map[string]bool
	errs            []*KeywordError
}

func (c *strictChecker) walk(node any, ptr string) {
	obj, ok := node.(map[string]any)
	if !ok {
		// Boolean schemas are always valid; anything else is left to the engine.
		return
	}

	for _, k := range sortedKeys(obj) {
		if !c.keywords[k] {
			c.errs = append(c.errs, &KeywordError{Pointer: ptr, Keyword: k, Reason: "unknown keyword"})
		}
	}

	if name, ok := obj["format"].(string); ok && !knownFormats[name] {
		c.errs = append(c.errs, &KeywordError{
			Pointer: ptr,
			Keyword: "format",
			Reason:  fmt.Sprintf("unknown format %q", name),
		})
	}

	if types, ok := obj["type"].([]any); ok && len(types) > 1 && !c.allowUnionTypes {
		c.errs = append(c.errs, &KeywordError{
			Pointer: ptr,
			Keyword: "type",
			Reason:  "union types are not allowed",
		})
	}

	for _, k := range schemaKeywords {
		if sub, ok := obj[k]; ok {
			c.walk(sub, ptr+"/"+k)
		}
	}

	for _, k := range schemaArrayKeywords {
		if arr, ok := obj[k].([]any); ok {
			for i, sub := range arr {
				c.walk(sub, ptr+"/"+k+"/"+strconv.Itoa(i))
			}
		}
	}

	for _, k := range schemaMapKeywords {
		if m, ok := obj[k].(map[string]any); ok {
			c.walkMap(m, ptr+"/"+k)
		}
	}

	// "items" is a schema, or an array of schemas before 2020-12.
	switch items := obj["items"].(type) {
	case []any:
		for i, sub := range items {
			c.walk(sub, ptr+"/items/"+strconv.Itoa(i))
		}
	case nil:
	default:
		c.walk(items, ptr+"/items")
	}

	// "dependencies" mixes schemas and property-name arrays.
	if deps, ok := obj["dependencies"].(map[string]any); ok {
		for _, name := range sortedKeys(deps) {
			if _, isList := deps[name].([]any); isList {
				continue
			}
			c.walk(deps[name], ptr+"/dependencies/"+escapeTokens([]string{name})[0])
		}
	}
}

func (c *strictChecker) walkMap(m map[string]any, ptr string) {
	for _, name := range sortedKeys(m) {
		c.walk(m[name], ptr+"/"+escapeTokens([]string{name})[0])
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
