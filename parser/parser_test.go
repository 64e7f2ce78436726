/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-design/cascade/parser"
	"github.com/cascade-design/cascade/token"
)

func TestParseJSON_OrderAndShapes(t *testing.T) {
	doc := `{
		// brand palette
		"color.blue.50": "#3500ff",
		"color.brand.50": {"alias": "color.blue.50"},
		"color.brand.ref": {"reference": "color.blue.50"},
		"space.base": {"type": "dimension", "value": 4, "unit": "px"},
		"space.large": {"steps": [
			{"type": "alias", "args": ["space.base"]},
			{"type": "multiply", "args": [4]}
		]},
		"font.heading": {"family": "Inter", "size": {"type": "dimension", "value": 24, "unit": "px"}},
		"flag": true,
		"nothing": null,
		"scale": 1.25
	}`

	set, err := parser.ParseJSON([]byte(doc))
	require.NoError(t, err)

	wantOrder := []string{
		"color.blue.50", "color.brand.50", "color.brand.ref", "space.base",
		"space.large", "font.heading", "flag", "nothing", "scale",
	}
	assert.Equal(t, wantOrder, set.Paths())

	tests := []struct {
		path     string
		expected token.Value
	}{
		{"color.blue.50", token.Color("#3500ff")},
		{"color.brand.50", token.Alias("color.blue.50")},
		{"color.brand.ref", token.Reference("color.blue.50")},
		{"space.base", token.Dimension{Value: 4, Unit: "px"}},
		{"space.large", token.Transform{Steps: []token.Step{
			{Name: "alias", Args: []token.Value{token.String("space.base")}},
			{Name: "multiply", Args: []token.Value{token.Number(4)}},
		}}},
		{"flag", token.Bool(true)},
		{"nothing", token.Null{}},
		{"scale", token.Number(1.25)},
	}
	for _, tt := range tests {
		tok, ok := set.Get(tt.path)
		require.True(t, ok, "missing %s", tt.path)
		assert.True(t, tok.Value.Equal(tt.expected), "%s = %v, want %v", tt.path, tok.Value, tt.expected)
	}

	heading, _ := set.Get("font.heading")
	obj, ok := heading.Value.(token.Object)
	require.True(t, ok, "font.heading should be an Object, got %T", heading.Value)
	assert.Equal(t, []string{"family", "size"}, obj.Keys())
}

func TestParseJSON_ShapePriority(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected token.Value
	}{
		{
			"alias wins over reference",
			`{"t": {"alias": "a", "reference": "b"}}`,
			token.Alias("a"),
		},
		{
			"reference wins over dimension",
			`{"t": {"reference": "a", "type": "dimension", "value": 1}}`,
			token.Reference("a"),
		},
		{
			"dimension wins over steps",
			`{"t": {"type": "dimension", "value": 2, "unit": "em", "steps": []}}`,
			token.Dimension{Value: 2, Unit: "em"},
		},
		{
			"non-dimension type stays generic",
			`{"t": {"type": "color", "value": 1}}`,
			func() token.Value {
				obj := token.NewObject()
				obj.Set("type", token.String("color"))
				obj.Set("value", token.Number(1))
				return obj
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parser.ParseJSON([]byte(tt.doc))
			require.NoError(t, err)
			tok, ok := set.Get("t")
			require.True(t, ok)
			assert.True(t, tok.Value.Equal(tt.expected), "got %v, want %v", tok.Value, tt.expected)
		})
	}
}

func TestParseJSON_TokenEntryShape(t *testing.T) {
	doc := `{
		"color.blue.50": {"value": "#3500ff", "comment": "Primary brand hue"},
		"typography": {"value": {"family": "Inter"}, "comment": "bundle"},
		"looks.like.entry": {"value": 4, "weight": 700}
	}`

	set, err := parser.ParseJSON([]byte(doc))
	require.NoError(t, err)

	blue, _ := set.Get("color.blue.50")
	assert.True(t, blue.Value.Equal(token.Color("#3500ff")))
	assert.Equal(t, "Primary brand hue", blue.Comment)

	typography, _ := set.Get("typography")
	_, isObject := typography.Value.(token.Object)
	assert.True(t, isObject)
	assert.Equal(t, "bundle", typography.Comment)

	// An extra key disqualifies the entry shape: the whole object is the value.
	entryish, _ := set.Get("looks.like.entry")
	obj, ok := entryish.Value.(token.Object)
	require.True(t, ok)
	assert.Equal(t, 2, obj.Len())
}

func TestParseJSON_Arrays(t *testing.T) {
	set, err := parser.ParseJSON([]byte(`{"stops": ["#000", "#fff", 0.5]}`))
	require.NoError(t, err)

	tok, _ := set.Get("stops")
	obj, ok := tok.Value.(token.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "2"}, obj.Keys())

	first, _ := obj.Get("0")
	assert.True(t, first.Equal(token.Color("#000")))
	last, _ := obj.Get("2")
	assert.True(t, last.Equal(token.Number(0.5)))
}

func TestParseJSON_ColorDetection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isColor bool
	}{
		{"hex", `"#3500ff"`, true},
		{"short hex", `"#fff"`, true},
		{"rgb functional", `"rgb(255 0 0)"`, true},
		{"hsl functional", `"hsl(120, 50%, 50%)"`, true},
		{"named color stays string", `"red"`, false},
		{"keyword", `"bold"`, false},
		{"invalid functional", `"rgb(not a color)"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parser.ParseJSON([]byte(`{"t": ` + tt.input + `}`))
			require.NoError(t, err)
			tok, _ := set.Get("t")
			_, isColor := tok.Value.(token.Color)
			assert.Equal(t, tt.isColor, isColor, "value %v", tok.Value)
		})
	}
}

func TestParseJSON_RoundTrip(t *testing.T) {
	set := token.NewSet()
	set.Add("color.blue.50", token.Color("#3500ff"))
	set.Add("color.brand.50", token.Alias("color.blue.50"))
	set.Add("ref", token.Reference("color.blue.50"))
	set.Add("space.base", token.Dimension{Value: 4, Unit: "px"})
	set.Add("space.large", token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("space.base")}},
		{Name: "multiply", Args: []token.Value{token.Number(4)}},
	}})
	set.Set("documented", &token.Token{Name: "documented", Value: token.Number(1), Comment: "kept"})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	decoded, err := parser.ParseJSON(data)
	require.NoError(t, err)

	require.Equal(t, set.Paths(), decoded.Paths())
	set.Entries(func(path string, tok *token.Token) bool {
		got, ok := decoded.Get(path)
		require.True(t, ok)
		assert.True(t, got.Value.Equal(tok.Value), "%s: %v != %v", path, got.Value, tok.Value)
		assert.Equal(t, tok.Comment, got.Comment, "%s comment", path)
		return true
	})
}

func TestDecodeValue(t *testing.T) {
	v, err := parser.DecodeValue([]byte(`{"type":"dimension","value":1.5,"unit":"rem"}`))
	require.NoError(t, err)
	assert.True(t, v.Equal(token.Dimension{Value: 1.5, Unit: "rem"}))
}

func TestParseYAML(t *testing.T) {
	doc := `
color.blue.50: "#3500ff"
color.brand.50:
  alias: color.blue.50
space.base:
  type: dimension
  value: 4
  unit: px
space.large:
  steps:
    - type: alias
      args: [space.base]
    - type: multiply
      args: [4]
font.heading:
  value:
    family: Inter
    lineHeight: 1.5
  comment: heading bundle
`

	set, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	wantOrder := []string{"color.blue.50", "color.brand.50", "space.base", "space.large", "font.heading"}
	assert.Equal(t, wantOrder, set.Paths())

	blue, _ := set.Get("color.blue.50")
	assert.True(t, blue.Value.Equal(token.Color("#3500ff")))

	brand, _ := set.Get("color.brand.50")
	assert.True(t, brand.Value.Equal(token.Alias("color.blue.50")))

	base, _ := set.Get("space.base")
	assert.True(t, base.Value.Equal(token.Dimension{Value: 4, Unit: "px"}))

	large, _ := set.Get("space.large")
	assert.True(t, large.Value.Equal(token.Transform{Steps: []token.Step{
		{Name: "alias", Args: []token.Value{token.String("space.base")}},
		{Name: "multiply", Args: []token.Value{token.Number(4)}},
	}}))

	heading, _ := set.Get("font.heading")
	assert.Equal(t, "heading bundle", heading.Comment)
	obj, ok := heading.Value.(token.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"family", "lineHeight"}, obj.Keys())
}

func TestParseYAML_Anchors(t *testing.T) {
	doc := `
base: &base
  type: dimension
  value: 4
  unit: px
copy: *base
`
	set, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	copied, ok := set.Get("copy")
	require.True(t, ok)
	assert.True(t, copied.Value.Equal(token.Dimension{Value: 4, Unit: "px"}))
}

func TestParse_DetectsFormat(t *testing.T) {
	jsonSet, err := parser.Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, jsonSet.Len())

	yamlSet, err := parser.Parse([]byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, yamlSet.Len())

	commented, err := parser.Parse([]byte("// leading comment\n{\"a\": 1}"))
	require.NoError(t, err)
	assert.Equal(t, 1, commented.Len())

	_, err = parser.Parse([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON", "array root should report a JSON error")
}
