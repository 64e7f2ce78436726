/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert projects resolved token sets into output artifacts: CSS
// custom property maps, stylesheets, and flat interchange documents. It
// also provides the shallow merge combinator over two sets.
package convert

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cascade-design/cascade/cssvar"
	"github.com/cascade-design/cascade/token"
)

// Flatten converts a resolved set into an ordered CSS-variable-name to
// stringified-value map. Every token produces exactly one entry: an
// Object-valued token serializes as a single structural value rather than
// one variable per member. Callers wanting per-field variables should model
// the fields as sibling top-level tokens.
func Flatten(resolved *token.Set, opts cssvar.Options) *orderedmap.OrderedMap[string, string] {
	out := orderedmap.New[string, string]()
	resolved.Entries(func(path string, tok *token.Token) bool {
		out.Set(cssvar.Name(path, opts), tok.Value.String())
		return true
	})
	return out
}

// PathStrings converts a resolved set into an ordered path to
// stringified-value map: the identity-path debug and interchange
// projection.
func PathStrings(resolved *token.Set) *orderedmap.OrderedMap[string, string] {
	out := orderedmap.New[string, string]()
	resolved.Entries(func(path string, tok *token.Token) bool {
		out.Set(path, tok.Value.String())
		return true
	})
	return out
}

// Merge shallow-merges two sets by key: every key present in overrides
// fully replaces the base entry, with no deep merging of Object values.
// Base key order is preserved, overridden keys keep their original
// position, and keys new in overrides append in overrides' order.
func Merge(base, overrides *token.Set) *token.Set {
	out := token.NewSet()
	base.Entries(func(path string, tok *token.Token) bool {
		if replacement, ok := overrides.Get(path); ok {
			out.Set(path, replacement)
		} else {
			out.Set(path, tok)
		}
		return true
	})
	overrides.Entries(func(path string, tok *token.Token) bool {
		if !out.Has(path) {
			out.Set(path, tok)
		}
		return true
	})
	return out
}
