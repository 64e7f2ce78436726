/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface shared by token output
// formatters.
package formatter

import (
	"github.com/cascade-design/cascade/cssvar"
	"github.com/cascade-design/cascade/token"
)

// Formatter renders a resolved token set to an output document.
type Formatter interface {
	Format(resolved *token.Set, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// CSSVar controls output identifier construction (namespace prefix,
	// separator, case policy).
	CSSVar cssvar.Options

	// Selector wraps CSS declarations. Zero value means ":root".
	Selector string
}
