/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package script loads Starlark files and exposes their top-level functions
// as computed transform functions.
//
// The scripting runtime is an external collaborator behind a narrow JSON
// contract: a function receives the pipeline input, the step arguments and
// the token name, with values JSON-encoded in the parser's tagged shape,
// and returns a value in the same shape. Each invocation is one blocking
// call on a fresh thread, so concurrent resolutions never share
// interpreter state.
package script

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	starlarkjson "go.starlark.net/lib/json"
	"go.starlark.net/starlark"

	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/parser"
	"github.com/cascade-design/cascade/token"
	"github.com/cascade-design/cascade/transform"
)

// Load executes a Starlark script and returns its functions keyed by name.
func Load(filename string, src []byte) (map[string]transform.Func, error) {
	thread := &starlark.Thread{Name: "cascade:" + filename}
	globals, err := starlark.ExecFile(thread, filename, src, predeclared())
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", filename, err)
	}

	funcs := make(map[string]transform.Func)
	for name, global := range globals {
		fn, ok := global.(*starlark.Function)
		if !ok {
			continue
		}
		funcs[name] = wrap(fn)
	}
	return funcs, nil
}

// Register loads a script and installs every function into the registry.
func Register(reg *transform.Registry, filename string, src []byte) error {
	funcs, err := Load(filename, src)
	if err != nil {
		return err
	}
	for name, fn := range funcs {
		reg.Register(name, fn)
	}
	return nil
}

// RegisterFiles reads each script from the filesystem, resolving relative
// paths against root, and installs every function into the registry.
func RegisterFiles(reg *transform.Registry, filesystem fs.FileSystem, root string, files []string) error {
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		src, err := filesystem.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read script %s: %w", path, err)
		}
		if err := Register(reg, path, src); err != nil {
			return err
		}
	}
	return nil
}

// predeclared exposes the json module so scripts can decode their inputs
// and encode their results.
func predeclared() starlark.StringDict {
	return starlark.StringDict{"json": starlarkjson.Module}
}

// wrap adapts a Starlark function to the transform.Func contract.
func wrap(fn *starlark.Function) transform.Func {
	return func(ctx transform.Context, input token.Value, args []token.Value) (token.Value, error) {
		inputJSON, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot encode input for %s: %v",
				transform.ErrTransformFailed, fn.Name(), err)
		}
		argsJSON := []byte("[]")
		if len(args) > 0 {
			argsJSON, err = json.Marshal(args)
			if err != nil {
				return nil, fmt.Errorf("%w: cannot encode arguments for %s: %v",
					transform.ErrTransformFailed, fn.Name(), err)
			}
		}

		thread := &starlark.Thread{Name: "cascade:" + ctx.TokenName()}
		result, err := starlark.Call(thread, fn, starlark.Tuple{
			starlark.String(inputJSON),
			starlark.String(argsJSON),
			starlark.String(ctx.TokenName()),
		}, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s in token %q: %v",
				transform.ErrTransformFailed, fn.Name(), ctx.TokenName(), err)
		}

		switch out := result.(type) {
		case starlark.NoneType:
			return token.Null{}, nil
		case starlark.String:
			value, err := parser.DecodeValue([]byte(out))
			if err != nil {
				return nil, fmt.Errorf("%w: %s returned malformed JSON in token %q: %v",
					transform.ErrTransformFailed, fn.Name(), ctx.TokenName(), err)
			}
			return value, nil
		default:
			return nil, fmt.Errorf("%w: %s must return a JSON string, got %s in token %q",
				transform.ErrTransformFailed, fn.Name(), result.Type(), ctx.TokenName())
		}
	}
}
