/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
)

// Values marshal to the tagged document shape consumed by the parser
// package, so an encoded set round-trips through decode unchanged:
//
//	String/Number/Bool/Null/Color  bare JSON literals
//	Dimension                      {"type": "dimension", "value": v, "unit": u}
//	Alias                          {"alias": "path"}
//	Reference                      {"reference": "path"}
//	Transform                      {"steps": [{"type": name, "args": [...]}]}
//	Object                         a plain JSON object, member order preserved

// MarshalJSON encodes the string as a JSON string literal.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON encodes the number as a bare JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// MarshalJSON encodes the boolean as a JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// MarshalJSON encodes explicit absence as JSON null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes the color as a JSON string literal.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// MarshalJSON encodes the dimension in its tagged object form.
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}{"dimension", d.Value, d.Unit})
}

// MarshalJSON encodes the alias in its tagged object form.
func (a Alias) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Alias string `json:"alias"`
	}{string(a)})
}

// MarshalJSON encodes the reference in its tagged object form.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reference string `json:"reference"`
	}{string(r)})
}

// MarshalJSON encodes the pipeline in its tagged object form.
func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Steps []Step `json:"steps"`
	}{t.Steps})
}

// MarshalJSON encodes a pipeline step, omitting empty argument lists.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string  `json:"type"`
		Args []Value `json:"args,omitempty"`
	}{s.Name, s.Args})
}

// MarshalJSON encodes the object as a JSON object in member order.
func (o Object) MarshalJSON() ([]byte, error) {
	if o.members == nil {
		return []byte("{}"), nil
	}
	return o.members.MarshalJSON()
}

// MarshalJSON encodes a token as {"value": ..., "comment": ...}.
func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value   Value  `json:"value"`
		Comment string `json:"comment,omitempty"`
	}{t.Value, t.Comment})
}

// MarshalJSON encodes the set as a JSON object keyed by token path, in
// insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	if s == nil || s.m == nil {
		return []byte("{}"), nil
	}
	return s.m.MarshalJSON()
}
