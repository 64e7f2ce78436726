/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes token documents into token sets. Input is an
// ordered mapping from dotted path to a structurally tagged value; JSON
// (with comments) and YAML are supported, and key order is preserved in
// both.
//
// Object shapes are distinguished by priority, since the tagging is
// structural rather than explicit: alias > reference > dimension >
// transform > generic object.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cascade-design/cascade/token"
)

// Parse decodes a token document, detecting JSON versus YAML by shape.
func Parse(data []byte) (*token.Set, error) {
	if isLikelyJSON(data) {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseJSON decodes a JSON token document. Comments and trailing commas are
// tolerated.
func ParseJSON(data []byte) (*token.Set, error) {
	doc := orderedmap.New[string, json.RawMessage]()
	if err := doc.UnmarshalJSON(jsonc.ToJSON(data)); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	set := token.NewSet()
	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		tok, err := decodeEntry(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		set.Set(pair.Key, tok)
	}
	return set, nil
}

// DecodeValue decodes a single tagged JSON value. This is the boundary
// contract for externally computed transform functions.
func DecodeValue(data []byte) (token.Value, error) {
	return decodeValue(data)
}

// isLikelyJSON reports whether data looks like a JSON document: '{' or '['
// optionally preceded by whitespace, a BOM, or a // comment. An array root
// still fails to decode, but with a JSON error rather than a YAML one.
func isLikelyJSON(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{', '[':
			return true
		case '/':
			// jsonc input may open with a comment.
			return i+1 < len(data) && (data[i+1] == '/' || data[i+1] == '*')
		default:
			return false
		}
	}
	return false
}

// decodeEntry decodes one top-level document entry. An object carrying a
// "value" key (with only "value", "comment" and "name" siblings) is a token
// entry with metadata; anything else is a bare value.
func decodeEntry(path string, raw json.RawMessage) (*token.Token, error) {
	if isObject(raw) {
		fields := orderedmap.New[string, json.RawMessage]()
		if err := fields.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("token %q: %w", path, err)
		}
		if isTokenEntry(fields) {
			rawValue, _ := fields.Get("value")
			value, err := decodeValue(rawValue)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", path, err)
			}
			tok := &token.Token{Name: path, Value: value}
			if rawComment, ok := fields.Get("comment"); ok {
				if err := json.Unmarshal(rawComment, &tok.Comment); err != nil {
					return nil, fmt.Errorf("token %q: comment must be a string: %w", path, err)
				}
			}
			return tok, nil
		}
	}

	value, err := decodeValue(raw)
	if err != nil {
		return nil, fmt.Errorf("token %q: %w", path, err)
	}
	return &token.Token{Name: path, Value: value}, nil
}

// isTokenEntry reports whether an object is the {"value": ..., "comment":
// ...} entry form rather than a structured value that happens to be an
// object.
func isTokenEntry(fields *orderedmap.OrderedMap[string, json.RawMessage]) bool {
	if _, ok := fields.Get("value"); !ok {
		return false
	}
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case "value", "comment", "name":
		default:
			return false
		}
	}
	return true
}

func decodeValue(raw json.RawMessage) (token.Value, error) {
	if len(raw) == 0 {
		return token.Null{}, nil
	}

	switch raw[firstByte(raw)] {
	case '{':
		return decodeObjectValue(raw)
	case '[':
		return decodeArrayValue(raw)
	default:
		return decodeScalar(raw)
	}
}

func firstByte(raw json.RawMessage) int {
	for i, b := range raw {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return i
		}
	}
	return 0
}

func isObject(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[firstByte(raw)] == '{'
}

func decodeScalar(raw json.RawMessage) (token.Value, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case nil:
		return token.Null{}, nil
	case bool:
		return token.Bool(s), nil
	case float64:
		return token.Number(s), nil
	case string:
		return stringValue(s), nil
	}
	return nil, fmt.Errorf("unsupported scalar: %s", raw)
}

// decodeObjectValue applies the shape priority: alias > reference >
// dimension > transform > generic object.
func decodeObjectValue(raw json.RawMessage) (token.Value, error) {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(raw); err != nil {
		return nil, err
	}

	if rawAlias, ok := fields.Get("alias"); ok {
		var path string
		if err := json.Unmarshal(rawAlias, &path); err != nil {
			return nil, fmt.Errorf("alias must be a string path: %w", err)
		}
		return token.Alias(path), nil
	}

	if rawRef, ok := fields.Get("reference"); ok {
		var path string
		if err := json.Unmarshal(rawRef, &path); err != nil {
			return nil, fmt.Errorf("reference must be a string path: %w", err)
		}
		return token.Reference(path), nil
	}

	if rawType, ok := fields.Get("type"); ok {
		var kind string
		if err := json.Unmarshal(rawType, &kind); err == nil && kind == "dimension" {
			return decodeDimension(fields)
		}
	}

	if rawSteps, ok := fields.Get("steps"); ok {
		return decodeTransform(rawSteps)
	}

	obj := token.NewObject()
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		member, err := decodeValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", pair.Key, err)
		}
		obj.Set(pair.Key, member)
	}
	return obj, nil
}

func decodeDimension(fields *orderedmap.OrderedMap[string, json.RawMessage]) (token.Value, error) {
	rawValue, ok := fields.Get("value")
	if !ok {
		return nil, fmt.Errorf("dimension missing value")
	}
	var d token.Dimension
	if err := json.Unmarshal(rawValue, &d.Value); err != nil {
		return nil, fmt.Errorf("dimension value must be a number: %w", err)
	}
	if rawUnit, ok := fields.Get("unit"); ok {
		if err := json.Unmarshal(rawUnit, &d.Unit); err != nil {
			return nil, fmt.Errorf("dimension unit must be a string: %w", err)
		}
	}
	return d, nil
}

func decodeTransform(rawSteps json.RawMessage) (token.Value, error) {
	var rawList []json.RawMessage
	if err := json.Unmarshal(rawSteps, &rawList); err != nil {
		return nil, fmt.Errorf("steps must be an array: %w", err)
	}

	steps := make([]token.Step, 0, len(rawList))
	for i, rawStep := range rawList {
		fields := orderedmap.New[string, json.RawMessage]()
		if err := fields.UnmarshalJSON(rawStep); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		var step token.Step
		rawType, ok := fields.Get("type")
		if !ok {
			return nil, fmt.Errorf("step %d: missing type", i)
		}
		if err := json.Unmarshal(rawType, &step.Name); err != nil {
			return nil, fmt.Errorf("step %d: type must be a string: %w", i, err)
		}

		if rawArgs, ok := fields.Get("args"); ok {
			var argList []json.RawMessage
			if err := json.Unmarshal(rawArgs, &argList); err != nil {
				return nil, fmt.Errorf("step %d: args must be an array: %w", i, err)
			}
			for j, rawArg := range argList {
				arg, err := decodeValue(rawArg)
				if err != nil {
					return nil, fmt.Errorf("step %d arg %d: %w", i, j, err)
				}
				step.Args = append(step.Args, arg)
			}
		}

		steps = append(steps, step)
	}

	return token.Transform{Steps: steps}, nil
}

// decodeArrayValue represents an array as an Object with numeric keys, so
// list content survives in an order-preserving shape.
func decodeArrayValue(raw json.RawMessage) (token.Value, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	obj := token.NewObject()
	for i, item := range items {
		v, err := decodeValue(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		obj.Set(fmt.Sprintf("%d", i), v)
	}
	return obj, nil
}
