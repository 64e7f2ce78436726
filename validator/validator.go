/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides static validation of token sets before
// resolution. Unlike the resolver, which stops at the first failure,
// validation collects every finding so a token file can be fixed in
// one pass. Cycles are left to the resolver, which reports the full
// chain.
package validator

import (
	"fmt"
	"strings"

	"github.com/cascade-design/cascade/token"
	"github.com/cascade-design/cascade/transform"
)

// ValidationError is one static finding in a token set.
type ValidationError struct {
	// FilePath is the file containing the finding, when known.
	FilePath string
	// Path is the token path of the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// builtinArity maps built-in step names to their required argument count.
var builtinArity = map[string]int{
	"alias":    1,
	"multiply": 1,
	"add":      1,
	"subtract": 1,
	"divide":   1,
}

// Validate checks every token in the set and returns all findings.
// The registry supplies the known transform step names; a nil registry
// checks built-ins only.
func Validate(set *token.Set, reg *transform.Registry) []ValidationError {
	return ValidateWithPath(set, reg, "")
}

// ValidateWithPath validates a set and includes the file path in findings.
func ValidateWithPath(set *token.Set, reg *transform.Registry, filePath string) []ValidationError {
	v := &validation{set: set, reg: reg, filePath: filePath}

	set.Entries(func(path string, t *token.Token) bool {
		v.checkPath(path)
		v.checkValue(path, t.Value)
		return true
	})

	return v.findings
}

type validation struct {
	set      *token.Set
	reg      *transform.Registry
	filePath string
	findings []ValidationError
}

func (v *validation) report(path, message, suggestion string) {
	v.findings = append(v.findings, ValidationError{
		FilePath:   v.filePath,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

// checkPath flags empty paths and empty path segments.
func (v *validation) checkPath(path string) {
	if strings.TrimSpace(path) == "" {
		v.report(path, "token path is empty", "name the token with a dotted path like color.primary")
		return
	}
	for _, segment := range strings.Split(path, ".") {
		if strings.TrimSpace(segment) == "" {
			v.report(path, "token path has an empty segment", "remove leading, trailing or doubled dots")
			return
		}
	}
}

// checkValue walks a value and flags dangling targets and malformed
// pipelines, recursing into object members.
func (v *validation) checkValue(path string, value token.Value) {
	switch val := value.(type) {
	case nil:
		v.report(path, "token has no value", "give the token a value or remove it")

	case token.Alias:
		v.checkTarget(path, "alias", string(val))

	case token.Reference:
		v.checkTarget(path, "reference", string(val))

	case token.Object:
		val.Members(func(key string, member token.Value) bool {
			v.checkValue(path+"."+key, member)
			return true
		})

	case token.Transform:
		v.checkTransform(path, val)
	}
}

// checkTarget flags alias and reference targets that are not in the set.
func (v *validation) checkTarget(path, kind, target string) {
	if target == "" {
		v.report(path, fmt.Sprintf("%s target is empty", kind), "name an existing token path")
		return
	}
	if !v.set.Has(target) {
		v.report(path,
			fmt.Sprintf("%s target %q does not exist", kind, target),
			"check the token path for typos")
	}
}

// checkTransform flags empty pipelines, unknown step names and wrong
// built-in argument counts.
func (v *validation) checkTransform(path string, t token.Transform) {
	if len(t.Steps) == 0 {
		v.report(path, "transform pipeline has no steps", "add at least one step or replace the value")
		return
	}

	for i, step := range t.Steps {
		where := fmt.Sprintf("step %d (%s)", i+1, step.Name)

		if !v.knownStep(step.Name) {
			v.report(path,
				fmt.Sprintf("%s is not a known transform", where),
				"register the function or fix the step name")
			continue
		}

		if want, ok := builtinArity[step.Name]; ok && len(step.Args) != want {
			v.report(path,
				fmt.Sprintf("%s takes %d argument(s), got %d", where, want, len(step.Args)),
				"fix the step's args array")
		}

		// Alias step targets are resolvable statically.
		if step.Name == "alias" && len(step.Args) == 1 {
			switch target := step.Args[0].(type) {
			case token.String:
				v.checkTarget(path, "alias step", string(target))
			case token.Reference:
				v.checkTarget(path, "alias step", string(target))
			}
		}

		for _, arg := range step.Args {
			if alias, ok := arg.(token.Alias); ok {
				v.checkTarget(path, "step argument alias", string(alias))
			}
		}
	}
}

// knownStep reports whether a step name is resolvable, checking the
// registry when present and the built-in table otherwise.
func (v *validation) knownStep(name string) bool {
	if v.reg != nil {
		_, ok := v.reg.Lookup(name)
		return ok
	}
	_, ok := builtinArity[name]
	return ok
}
