/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the pluggable operation table used to derive
// one token's value from another's, and the left-to-right pipeline
// evaluator over it.
package transform

import (
	"errors"
	"fmt"

	"github.com/cascade-design/cascade/token"
)

// Sentinel errors for pipeline evaluation.
var (
	// ErrInvalidTransform indicates an unknown step name or a malformed
	// argument list.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrTransformFailed indicates a recognized operation cannot produce a
	// result for its runtime input, e.g. divide by zero.
	ErrTransformFailed = errors.New("transform failed")

	// ErrTypeMismatch indicates incompatible value shapes, e.g. adding
	// dimensions with different units.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Context supplies the evaluation environment for a pipeline step. The
// resolver implements it, so the alias step shares the resolver's own
// alias-resolution logic (including cycle detection and memoization).
type Context interface {
	// ResolveAlias returns the fully resolved value of the token at path.
	ResolveAlias(path string) (token.Value, error)

	// TokenName returns the path of the token being resolved, for error
	// messages and external computed functions.
	TokenName() string
}

// Func is a pipeline operation. input is the previous step's output, nil
// for the first step. args are the step's literal arguments with any Alias
// arguments already resolved.
type Func func(ctx Context, input token.Value, args []token.Value) (token.Value, error)

// Registry maps step names to operations. The zero value is not usable;
// construct with NewRegistry.
//
// A registry is safe for concurrent read-shared use once populated.
type Registry struct {
	builtins map[string]Func
	computed map[string]Func
}

// NewRegistry creates a registry with the built-in operations installed:
// alias, multiply, add, subtract, divide.
func NewRegistry() *Registry {
	return &Registry{
		builtins: map[string]Func{
			"alias":    aliasStep,
			"multiply": multiplyStep,
			"add":      addStep,
			"subtract": subtractStep,
			"divide":   divideStep,
		},
		computed: map[string]Func{},
	}
}

// Register installs an externally supplied computed function. Unknown step
// names fall through to these after the built-ins.
func (r *Registry) Register(name string, fn Func) {
	r.computed[name] = fn
}

// Lookup returns the operation for name, built-ins first.
func (r *Registry) Lookup(name string) (Func, bool) {
	if fn, ok := r.builtins[name]; ok {
		return fn, true
	}
	fn, ok := r.computed[name]
	return fn, ok
}

// Eval runs the pipeline strictly left to right. Each step's output becomes
// the next step's input; the first step receives nil. An empty pipeline
// resolves to Null. The first failing step aborts the pipeline.
func (r *Registry) Eval(ctx Context, steps []token.Step) (token.Value, error) {
	var current token.Value

	for _, step := range steps {
		fn, ok := r.Lookup(step.Name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown step %q in token %q",
				ErrInvalidTransform, step.Name, ctx.TokenName())
		}

		args, err := resolveArgs(ctx, step.Args)
		if err != nil {
			return nil, err
		}

		current, err = fn(ctx, current, args)
		if err != nil {
			return nil, err
		}
	}

	if current == nil {
		return token.Null{}, nil
	}
	return current, nil
}

// resolveArgs resolves Alias arguments through the context so steps always
// see terminal values.
func resolveArgs(ctx Context, args []token.Value) ([]token.Value, error) {
	resolved := make([]token.Value, len(args))
	for i, arg := range args {
		if alias, ok := arg.(token.Alias); ok {
			v, err := ctx.ResolveAlias(string(alias))
			if err != nil {
				return nil, err
			}
			resolved[i] = v
			continue
		}
		resolved[i] = arg
	}
	return resolved, nil
}
