/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token value model: the Value variant
// type, the Token container, and the insertion-ordered Set.
package token

import (
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a design token value. It is a closed sum type: the only
// implementations are the variants defined in this package.
//
// String, Number, Bool, Null, Color, Dimension and Object are terminal
// values that may appear in a resolved set. Alias and Transform must be
// eliminated by resolution; Reference resolves to a String holding a CSS
// var() indirection.
type Value interface {
	// Equal reports structural equality with another value.
	Equal(other Value) bool

	// String renders the value for serialization (CSS declaration values,
	// flat string maps). See the per-variant rules on each implementation.
	String() string

	isValue()
}

// String is literal text.
type String string

// Number is a literal float.
type Number float64

// Bool is a literal boolean.
type Bool bool

// Null is explicit absence of a value.
type Null struct{}

// Color is a literal color string (hex, functional notation, or named).
type Color string

// Dimension is a numeric value with a unit, e.g. {4, "px"}.
type Dimension struct {
	Value float64
	Unit  string
}

// Alias means "become exactly the resolved value of the token at Path".
type Alias string

// Reference means "render as an indirection to the token at Path's output
// identifier", not the target's value.
type Reference string

// Transform is an ordered pipeline of named operations. Each step consumes
// the previous step's output; the first step receives no input.
type Transform struct {
	Steps []Step
}

// Step is a single named operation in a Transform pipeline.
type Step struct {
	Name string
	Args []Value
}

// Object is an ordered name to Value mapping with unique keys. Member order
// is preserved from the source document.
type Object struct {
	members *orderedmap.OrderedMap[string, Value]
}

// NewObject creates an empty Object.
func NewObject() Object {
	return Object{members: orderedmap.New[string, Value]()}
}

// Set inserts or replaces a member, preserving insertion order for new keys.
// A zero-value Object is initialized on first Set.
func (o *Object) Set(key string, v Value) {
	if o.members == nil {
		o.members = orderedmap.New[string, Value]()
	}
	o.members.Set(key, v)
}

// Get returns the member value for key.
func (o Object) Get(key string) (Value, bool) {
	if o.members == nil {
		return nil, false
	}
	return o.members.Get(key)
}

// Len returns the number of members.
func (o Object) Len() int {
	if o.members == nil {
		return 0
	}
	return o.members.Len()
}

// Members calls fn for each member in insertion order. Iteration stops if fn
// returns false.
func (o Object) Members(fn func(key string, v Value) bool) {
	if o.members == nil {
		return
	}
	for pair := o.members.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Keys returns the member keys in insertion order.
func (o Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Members(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (String) isValue()    {}
func (Number) isValue()    {}
func (Bool) isValue()      {}
func (Null) isValue()      {}
func (Color) isValue()     {}
func (Dimension) isValue() {}
func (Alias) isValue()     {}
func (Reference) isValue() {}
func (Transform) isValue() {}
func (Object) isValue()    {}

// FormatNumber renders a float without trailing ".0" artifacts: whole
// numbers print as integers, everything else uses the shortest exact form.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s String) String() string { return string(s) }

func (n Number) String() string { return FormatNumber(float64(n)) }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (Null) String() string { return "null" }

func (c Color) String() string { return string(c) }

func (d Dimension) String() string { return FormatNumber(d.Value) + d.Unit }

// String renders an unresolved alias as a tagged diagnostic. Aliases should
// not survive resolution; this keeps one visible if it does.
func (a Alias) String() string { return fmt.Sprintf("alias(%s)", string(a)) }

// String renders an unresolved reference as a tagged diagnostic.
func (r Reference) String() string { return fmt.Sprintf("reference(%s)", string(r)) }

// String renders the pipeline as a diagnostic; pipelines should not survive
// resolution.
func (t Transform) String() string {
	data, err := json.Marshal(t)
	if err != nil {
		return "transform()"
	}
	return string(data)
}

// String renders the object as compact JSON. This is a diagnostic fallback
// for an Object escaping to a leaf context; flattening handles Objects
// explicitly.
func (o Object) String() string {
	data, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

func (c Color) Equal(other Value) bool {
	o, ok := other.(Color)
	return ok && c == o
}

func (d Dimension) Equal(other Value) bool {
	o, ok := other.(Dimension)
	return ok && d == o
}

func (a Alias) Equal(other Value) bool {
	o, ok := other.(Alias)
	return ok && a == o
}

func (r Reference) Equal(other Value) bool {
	o, ok := other.(Reference)
	return ok && r == o
}

func (t Transform) Equal(other Value) bool {
	o, ok := other.(Transform)
	if !ok || len(t.Steps) != len(o.Steps) {
		return false
	}
	for i, step := range t.Steps {
		if !step.Equal(o.Steps[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two steps have the same name and equal arguments.
func (s Step) Equal(other Step) bool {
	if s.Name != other.Name || len(s.Args) != len(other.Args) {
		return false
	}
	for i, arg := range s.Args {
		if !arg.Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Equal reports member-wise equality: same size, and every key maps to an
// equal value.
func (o Object) Equal(other Value) bool {
	om, ok := other.(Object)
	if !ok || o.Len() != om.Len() {
		return false
	}
	equal := true
	o.Members(func(key string, v Value) bool {
		ov, ok := om.Get(key)
		if !ok || !v.Equal(ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
