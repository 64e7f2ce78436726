/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the cascade toolchain.
package config

import (
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/convert/formatter"
	"github.com/cascade-design/cascade/convert/formatter/css"
	"github.com/cascade-design/cascade/cssvar"
)

// Config is the project configuration, read from
// .config/cascade.{yaml,yml,json} or an explicit --config path.
type Config struct {
	// Prefix is the global CSS variable namespace prefix.
	Prefix string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`

	// Separator joins variable name segments. Empty means "-".
	Separator string `mapstructure:"separator" yaml:"separator" json:"separator"`

	// KeepCase disables camelCase boundary splitting in variable names.
	KeepCase bool `mapstructure:"keepCase" yaml:"keepCase" json:"keepCase"`

	// Selector is the CSS rule selector for stylesheet output.
	Selector string `mapstructure:"selector" yaml:"selector" json:"selector"`

	// Files are token documents to load, in override order. Globs are
	// expanded with ** support.
	Files []string `mapstructure:"files" yaml:"files" json:"files"`

	// Format selects the output format: "css" or "json".
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Out is the output file path. Empty means stdout.
	Out string `mapstructure:"out" yaml:"out" json:"out"`

	// Scripts are Starlark files whose functions become transform steps.
	Scripts []string `mapstructure:"scripts" yaml:"scripts" json:"scripts"`

	// Palettes are tonal scales to generate before resolution, keyed by
	// palette name.
	Palettes map[string]Palette `mapstructure:"palettes" yaml:"palettes" json:"palettes"`
}

// Palette configures one generated tonal scale.
type Palette struct {
	// Base is the source color, in any CSS color notation.
	Base string `mapstructure:"base" yaml:"base" json:"base"`

	// Variant optionally names the theme variant the palette belongs to.
	Variant string `mapstructure:"variant" yaml:"variant" json:"variant"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Selector: css.DefaultSelector,
		Format:   string(convert.FormatCSS),
	}
}

// CSSVarOptions translates the config into variable naming options.
// Only the first rune of Separator is used.
func (c *Config) CSSVarOptions() cssvar.Options {
	opts := cssvar.Options{
		Prefix:   c.Prefix,
		KeepCase: c.KeepCase,
	}
	for _, r := range c.Separator {
		opts.Separator = r
		break
	}
	return opts
}

// FormatterOptions translates the config into formatter options.
func (c *Config) FormatterOptions() formatter.Options {
	return formatter.Options{
		CSSVar:   c.CSSVarOptions(),
		Selector: c.Selector,
	}
}
