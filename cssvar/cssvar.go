/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssvar constructs CSS custom property identifiers from token
// paths. The same construction backs Reference resolution and stylesheet
// flattening, so a reference always points at the name flattening emits.
package cssvar

import (
	"strings"
)

// Options controls identifier construction.
type Options struct {
	// Prefix is an optional namespace prepended to every identifier. It is
	// normalized with the same rules as the path.
	Prefix string

	// Separator joins path segments. Zero value means "-".
	Separator rune

	// KeepCase disables lowercasing of segments. camelCase boundaries are
	// still split into separate segments.
	KeepCase bool
}

func (o Options) separator() rune {
	if o.Separator == 0 {
		return '-'
	}
	return o.Separator
}

// Name converts a dotted, slashed or space-delimited token path into a CSS
// custom property name: "--"-prefixed, separator-joined, lowercase segments
// with camelCase and PascalCase boundaries split. The construction is
// idempotent: an already-prefixed input's "--" marker is consumed, never
// doubled.
func Name(path string, opts Options) string {
	sep := opts.separator()

	var out strings.Builder
	if opts.Prefix != "" {
		out.WriteString(normalizeSegment(opts.Prefix, sep, !opts.KeepCase))
	}

	body := strings.TrimPrefix(strings.TrimSpace(path), "--")
	norm := normalizePath(body, sep, !opts.KeepCase)
	if norm != "" {
		if out.Len() > 0 {
			out.WriteRune(sep)
		}
		out.WriteString(norm)
	}

	return "--" + out.String()
}

// Var wraps the constructed name in a CSS var() indirection.
func Var(path string, opts Options) string {
	return "var(" + Name(path, opts) + ")"
}

// normalizePath splits on path delimiters and joins the normalized segments.
func normalizePath(s string, sep rune, lowercase bool) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '/' || r == ' ' || r == '\t' || r == '\n'
	})

	var out strings.Builder
	for _, segment := range segments {
		norm := normalizeSegment(segment, sep, lowercase)
		if norm == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteRune(sep)
		}
		out.WriteString(norm)
	}
	return out.String()
}

// normalizeSegment rewrites one segment: camelCase boundaries become
// separators, non-alphanumerics collapse into single separators, and the
// result carries no leading or trailing separator.
func normalizeSegment(s string, sep rune, lowercase bool) string {
	var out []rune
	prevLowerOrDigit := false

	endsWithSep := func() bool {
		return len(out) > 0 && out[len(out)-1] == sep
	}

	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevLowerOrDigit && !endsWithSep() {
				out = append(out, sep)
			}
			if lowercase {
				r += 'a' - 'A'
			}
			out = append(out, r)
			prevLowerOrDigit = false
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
			prevLowerOrDigit = true
		default:
			if !endsWithSep() && len(out) > 0 {
				out = append(out, sep)
			}
			prevLowerOrDigit = false
		}
	}

	return strings.Trim(string(out), string(sep))
}
