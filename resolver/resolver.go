/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver turns a source token set into a fully resolved one:
// aliases inlined, transform pipelines evaluated, references rewritten to
// var() indirections. Resolution is deterministic, all-or-nothing, and
// mutates nothing; the caller owns the returned set.
package resolver

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cascade-design/cascade/cssvar"
	"github.com/cascade-design/cascade/token"
	"github.com/cascade-design/cascade/transform"
)

// Sentinel errors for resolution.
var (
	// ErrCycleDetected indicates the alias graph revisits a path already on
	// the active resolution stack. The message carries the full chain.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrTokenNotFound indicates an alias or reference names a path absent
	// from the source set.
	ErrTokenNotFound = errors.New("token not found")
)

// Options configures resolution.
type Options struct {
	// CSSVar controls the output identifiers built for Reference values
	// (namespace prefix, separator, case policy). Flattening the resolved
	// set with the same options guarantees references point at emitted
	// names.
	CSSVar cssvar.Options
}

// Resolve walks source in insertion order and returns a new set of the same
// shape where no Alias or Transform values remain. Alias targets are
// memoized into the output set the first time they are needed, so a target
// reached through an alias is never walked twice.
//
// The first cycle, missing target, or failing transform aborts the whole
// call; a partially resolved set is never returned.
func Resolve(source *token.Set, reg *transform.Registry, opts Options) (*token.Set, error) {
	if reg == nil {
		reg = transform.NewRegistry()
	}
	w := &walker{
		source: source,
		out:    token.NewSet(),
		reg:    reg,
		opts:   opts,
	}

	var err error
	source.Entries(func(path string, tok *token.Token) bool {
		// Already resolved as some earlier token's alias target.
		if w.out.Has(path) {
			return true
		}

		w.stack = append(w.stack[:0], path)
		var resolved *token.Token
		resolved, err = w.resolveToken(path, tok)
		if err != nil {
			return false
		}
		w.out.Set(path, resolved)
		return true
	})
	if err != nil {
		return nil, err
	}

	return w.out, nil
}

// walker threads the in-progress output set and the active path stack
// through the recursive walk. The stack bounds recursion by the number of
// distinct token paths, so termination is structural.
type walker struct {
	source *token.Set
	out    *token.Set
	reg    *transform.Registry
	opts   Options
	stack  []string
}

// resolveToken resolves a token's value and decides its comment: the
// token's own, or its alias target's when the token has none.
func (w *walker) resolveToken(path string, tok *token.Token) (*token.Token, error) {
	value, err := w.resolveValue(path, tok.Value)
	if err != nil {
		return nil, err
	}

	comment := tok.Comment
	if comment == "" {
		if alias, ok := tok.Value.(token.Alias); ok {
			// The target is in the output set by now; its comment may
			// itself have been inherited.
			if target, ok := w.out.Get(string(alias)); ok {
				comment = target.Comment
			}
		}
	}

	return &token.Token{Name: path, Value: value, Comment: comment}, nil
}

func (w *walker) resolveValue(name string, v token.Value) (token.Value, error) {
	switch val := v.(type) {
	case token.Alias:
		return w.resolveAlias(name, string(val))

	case token.Reference:
		// A reference needs its target to exist, not to resolve: it
		// becomes a pointer to the target's output identifier.
		if !w.source.Has(string(val)) {
			return nil, fmt.Errorf("%w: %q (referenced by %q)",
				ErrTokenNotFound, string(val), name)
		}
		return token.String(cssvar.Var(string(val), w.opts.CSSVar)), nil

	case token.Object:
		// Members resolve against the top-level set and the same stack, so
		// a cycle through a nested member is caught like a top-level one.
		out := token.NewObject()
		var memberErr error
		val.Members(func(key string, member token.Value) bool {
			resolved, err := w.resolveValue(name, member)
			if err != nil {
				memberErr = err
				return false
			}
			out.Set(key, resolved)
			return true
		})
		if memberErr != nil {
			return nil, memberErr
		}
		return out, nil

	case token.Transform:
		return w.reg.Eval(&stepContext{w: w, name: name}, val.Steps)

	default:
		// String, Number, Bool, Color, Dimension, Null are terminal.
		return v, nil
	}
}

// resolveAlias resolves the token at target and returns its value. The
// freshly resolved target is stored in the output set under its own key, so
// later references hit the cache and the source loop skips it.
func (w *walker) resolveAlias(referrer, target string) (token.Value, error) {
	if slices.Contains(w.stack, target) {
		start := slices.Index(w.stack, target)
		chain := append(slices.Clone(w.stack[start:]), target)
		return nil, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(chain, " -> "))
	}

	if cached, ok := w.out.Get(target); ok {
		return cached.Value, nil
	}

	src, ok := w.source.Get(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q (referenced by %q)",
			ErrTokenNotFound, target, referrer)
	}

	w.stack = append(w.stack, target)
	resolved, err := w.resolveToken(target, src)
	w.stack = w.stack[:len(w.stack)-1]
	if err != nil {
		return nil, err
	}

	w.out.Set(target, resolved)
	return resolved.Value, nil
}

// stepContext adapts the walker to transform.Context so pipeline alias
// steps reuse the walker's cycle detection and memoization.
type stepContext struct {
	w    *walker
	name string
}

func (c *stepContext) ResolveAlias(path string) (token.Value, error) {
	return c.w.resolveAlias(c.name, path)
}

func (c *stepContext) TokenName() string { return c.name }
