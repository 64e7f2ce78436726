/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/cascade-design/cascade/token"
)

// colorPrefixes are the notations we treat as color candidates. Bare named
// colors ("red") stay Strings: a plain word is more often a keyword than a
// color, and both variants serialize identically anyway.
var colorPrefixes = []string{
	"rgb(", "rgba(", "hsl(", "hsla(", "hwb(",
	"lab(", "lch(", "oklab(", "oklch(", "color(",
}

// stringValue decodes a string scalar, promoting validated color notation
// to the Color variant.
func stringValue(s string) token.Value {
	if looksLikeColor(s) {
		if _, err := csscolorparser.Parse(s); err == nil {
			return token.Color(s)
		}
	}
	return token.String(s)
}

func looksLikeColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		return true
	}
	lower := strings.ToLower(s)
	for _, prefix := range colorPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
