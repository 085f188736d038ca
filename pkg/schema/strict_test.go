package schema

import (
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStrict(t *testing.T) {
	tests := []struct {
		name       string
		schema     string
		allowUnion bool
		draft      *jsonschema.Draft
		want       []KeywordError
	}{
		{
			name:   "Known keywords only",
			schema: `{"$schema":"https://json-schema.org/draft/2020-12/schema","title":"x","type":"object","properties":{"id":{"type":"string","minLength":1}},"required":["id"]}`,
		},
		{
			name:   "Unknown keyword at root",
			schema: `{"type":"object","foo":1}`,
			want:   []KeywordError{{Pointer: "", Keyword: "foo"}},
		},
		{
			name:   "Unknown keyword nested in properties",
			schema: `{"properties":{"a":{"type":"string","maxlength":3}}}`,
			want:   []KeywordError{{Pointer: "/properties/a", Keyword: "maxlength"}},
		},
		{
			name:   "Unknown keyword inside allOf and items",
			schema: `{"allOf":[{"bogus":true}],"items":{"nope":1}}`,
			want: []KeywordError{
				{Pointer: "/allOf/0", Keyword: "bogus"},
				{Pointer: "/items", Keyword: "nope"},
			},
		},
		{
			name:   "Data keywords are not inspected",
			schema: `{"enum":[{"whatever":1}],"default":{"foo":1},"examples":[{"bar":2}],"const":{"baz":3}}`,
		},
		{
			name:   "Property named like a keyword",
			schema: `{"properties":{"foo":{"type":"string"}}}`,
		},
		{
			name:       "Union types rejected when not allowed",
			schema:     `{"type":["string","null"]}`,
			allowUnion: false,
			want:       []KeywordError{{Pointer: "", Keyword: "type"}},
		},
		{
			name:       "Union types accepted when allowed",
			schema:     `{"type":["string","null"]}`,
			allowUnion: true,
		},
		{
			name:   "Boolean subschemas",
			schema: `{"additionalProperties":false,"items":true}`,
		},
		{
			name:   "Legacy dependencies",
			schema: `{"dependencies":{"a":["b"],"c":{"oops":1}}}`,
			want:   []KeywordError{{Pointer: "/dependencies/c", Keyword: "oops"}},
		},
		{
			name:   "Unknown format name",
			schema: `{"type":"string","format":"not-a-format"}`,
			want:   []KeywordError{{Pointer: "", Keyword: "format"}},
		},
		{
			name:   "Unknown format name nested",
			schema: `{"properties":{"at":{"type":"string","format":"datetime"}}}`,
			want:   []KeywordError{{Pointer: "/properties/at", Keyword: "format"}},
		},
		{
			name:   "Formats outside the engine are known",
			schema: `{"properties":{"a":{"format":"url"},"b":{"format":"int32"},"c":{"format":"iso-date-time"}}}`,
		},
		{
			name:   "Newer keywords are unknown in draft-07",
			schema: `{"prefixItems":[{"type":"string"}],"dependentRequired":{"a":["b"]}}`,
			want: []KeywordError{
				{Pointer: "", Keyword: "dependentRequired"},
				{Pointer: "", Keyword: "prefixItems"},
			},
		},
		{
			name:   "Newer keywords are known when $schema says 2020-12",
			schema: `{"$schema":"https://json-schema.org/draft/2020-12/schema","prefixItems":[{"type":"string"}]}`,
		},
		{
			name:   "Newer keywords are known when compiling as 2020-12",
			schema: `{"unevaluatedProperties":false}`,
			draft:  jsonschema.Draft2020,
		},
		{
			name:   "Escaped pointer tokens",
			schema: `{"$defs":{"a/b":{"zzz":1}}}`,
			want:   []KeywordError{{Pointer: "/$defs/a~1b", Keyword: "zzz"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.schema)
			err := CheckStrict(doc, Options{AllowUnionTypes: tt.allowUnion, Draft: tt.draft})
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			got := KeywordErrors(err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w.Pointer, got[i].Pointer)
				assert.Equal(t, w.Keyword, got[i].Keyword)
			}
		})
	}
}

func TestStrictError_Message(t *testing.T) {
	err := CheckStrict(mustParse(t, `{"a":1,"b":2}`), Options{AllowUnionTypes: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 strict mode errors")
	assert.Contains(t, err.Error(), `keyword "a"`)
}
