/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders a resolved token set as a stylesheet of CSS custom
// properties under a single selector block.
package css

import (
	"strings"

	"github.com/cascade-design/cascade/convert/formatter"
	"github.com/cascade-design/cascade/cssvar"
	"github.com/cascade-design/cascade/token"
)

// DefaultSelector wraps declarations when no selector is configured.
const DefaultSelector = ":root"

// Formatter outputs CSS custom properties.
type Formatter struct{}

// New creates a CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders "selector { --name: value; ... }" with one declaration per
// token, in set order.
func (f *Formatter) Format(resolved *token.Set, opts formatter.Options) ([]byte, error) {
	return []byte(Stylesheet(resolved, opts.Selector, opts.CSSVar)), nil
}

// Stylesheet renders the resolved set as a single selector block.
func Stylesheet(resolved *token.Set, selector string, opts cssvar.Options) string {
	if selector == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	resolved.Entries(func(path string, tok *token.Token) bool {
		if tok.Comment != "" {
			b.WriteString("  /* ")
			b.WriteString(tok.Comment)
			b.WriteString(" */\n")
		}
		b.WriteString("  ")
		b.WriteString(cssvar.Name(path, opts))
		b.WriteString(": ")
		b.WriteString(tok.Value.String())
		b.WriteString(";\n")
		return true
	})
	b.WriteString("}\n")
	return b.String()
}
