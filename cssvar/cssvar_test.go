/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvar_test

import (
	"testing"

	"github.com/cascade-design/cascade/cssvar"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		opts     cssvar.Options
		expected string
	}{
		{"simple dotted path", "color.primary.background", cssvar.Options{}, "--color-primary-background"},
		{"slashes and spaces", "color/theme / primary 500", cssvar.Options{}, "--color-theme-primary-500"},
		{"existing marker consumed once", "--color.primary-500", cssvar.Options{}, "--color-primary-500"},
		{"pascal case boundaries", "Color.PrimaryAccent", cssvar.Options{}, "--color-primary-accent"},
		{"camel case boundaries", "borderRadius.sm", cssvar.Options{}, "--border-radius-sm"},
		{"custom separator", "color.primary.500", cssvar.Options{Separator: '_'}, "--color_primary_500"},
		{"with prefix", "color.primary.500", cssvar.Options{Prefix: "dark"}, "--dark-color-primary-500"},
		{"prefix is normalized", "Color.Primary", cssvar.Options{Prefix: "Dark Mode"}, "--dark-mode-color-primary"},
		{"consecutive delimiters collapse", "layout..grid   cols", cssvar.Options{}, "--layout-grid-cols"},
		{"repeated separators collapse", "color---primary", cssvar.Options{}, "--color-primary"},
		{"punctuation sanitized", "size(2x)@md", cssvar.Options{}, "--size-2x-md"},
		{"mixed separators and camel case", "button/PrimaryLabel.sizeLg", cssvar.Options{}, "--button-primary-label-size-lg"},
		{"empty path", "", cssvar.Options{}, "--"},
		{"bare marker", "--", cssvar.Options{}, "--"},
		{"whitespace only", "   ", cssvar.Options{}, "--"},
		{"keep case", "Color.Primary", cssvar.Options{KeepCase: true}, "--Color-Primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cssvar.Name(tt.path, tt.opts); got != tt.expected {
				t.Errorf("Name(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestName_Idempotent(t *testing.T) {
	paths := []string{"color.primary.500", "button/PrimaryLabel.sizeLg", "Color Primary"}
	for _, path := range paths {
		once := cssvar.Name(path, cssvar.Options{})
		twice := cssvar.Name(once, cssvar.Options{})
		if once != twice {
			t.Errorf("Name not idempotent for %q: %q != %q", path, once, twice)
		}
	}
}

func TestVar(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		opts     cssvar.Options
		expected string
	}{
		{"default", "a.b.c", cssvar.Options{}, "var(--a-b-c)"},
		{"camel case path", "button/Primary.sizeLg", cssvar.Options{}, "var(--button-primary-size-lg)"},
		{"with prefix", "Color.Primary.500", cssvar.Options{Prefix: "theme"}, "var(--theme-color-primary-500)"},
		{"prefixed namespace", "a.b.c", cssvar.Options{Prefix: "app"}, "var(--app-a-b-c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cssvar.Var(tt.path, tt.opts); got != tt.expected {
				t.Errorf("Var(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
