/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"github.com/cascade-design/cascade/convert/formatter"
	"github.com/cascade-design/cascade/convert/formatter/css"
	"github.com/cascade-design/cascade/convert/formatter/flatjson"
	"github.com/cascade-design/cascade/token"
)

// Format is an output format for resolved token sets.
type Format string

const (
	// FormatCSS outputs CSS custom properties under a selector block.
	FormatCSS Format = "css"

	// FormatJSON outputs a flat path-to-string JSON document.
	FormatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{string(FormatCSS), string(FormatJSON)}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "json", "flat", "flat-json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatTokens renders a resolved set in the requested format.
func FormatTokens(resolved *token.Set, format Format, opts formatter.Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatCSS:
		f = css.New()
	case FormatJSON:
		f = flatjson.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return f.Format(resolved, opts)
}
