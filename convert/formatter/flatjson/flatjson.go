/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson renders a resolved token set as a flat path-to-string
// JSON document, preserving set order. This is the interchange projection:
// its output parses back through the parser package.
package flatjson

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cascade-design/cascade/convert/formatter"
	"github.com/cascade-design/cascade/token"
)

// Formatter outputs flat path-keyed JSON.
type Formatter struct{}

// New creates a flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts the resolved set to an ordered path: value JSON object.
func (f *Formatter) Format(resolved *token.Set, _ formatter.Options) ([]byte, error) {
	flat := orderedmap.New[string, string]()
	resolved.Entries(func(path string, tok *token.Token) bool {
		flat.Set(path, tok.Value.String())
		return true
	})

	data, err := json.Marshal(flat)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
