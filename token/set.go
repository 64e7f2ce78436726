/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Token is a named design token.
type Token struct {
	// Name duplicates the owning key in the set, for convenience when a
	// token is handled outside its set.
	Name string

	// Value is the token's value, resolved or not.
	Value Value

	// Comment is optional documentation. An alias with no comment of its
	// own inherits its target's comment during resolution.
	Comment string
}

// Set is an insertion-ordered mapping from dotted token path (e.g.
// "color.primary.500") to Token. Key order is preserved and drives
// deterministic output ordering; it does not affect resolution correctness.
type Set struct {
	m *orderedmap.OrderedMap[string, *Token]
}

// NewSet creates an empty token set.
func NewSet() *Set {
	return &Set{m: orderedmap.New[string, *Token]()}
}

// Set inserts or replaces the token at path. New paths append to the key
// order; existing paths keep their position.
func (s *Set) Set(path string, t *Token) {
	s.m.Set(path, t)
}

// Add inserts a token at path with the given value and no comment.
func (s *Set) Add(path string, v Value) {
	s.Set(path, &Token{Name: path, Value: v})
}

// Get returns the token at path.
func (s *Set) Get(path string) (*Token, bool) {
	if s == nil || s.m == nil {
		return nil, false
	}
	return s.m.Get(path)
}

// Has reports whether path is present.
func (s *Set) Has(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Len returns the number of tokens in the set.
func (s *Set) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Entries calls fn for each path and token in insertion order. Iteration
// stops if fn returns false.
func (s *Set) Entries(fn func(path string, t *Token) bool) {
	if s == nil || s.m == nil {
		return
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Paths returns all token paths in insertion order.
func (s *Set) Paths() []string {
	paths := make([]string, 0, s.Len())
	s.Entries(func(path string, _ *Token) bool {
		paths = append(paths, path)
		return true
	})
	return paths
}
