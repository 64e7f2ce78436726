/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette provides the palette command for cascade.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/palette"
	"github.com/cascade-design/cascade/resolver"
	"github.com/cascade-design/cascade/transform"
)

// Cmd is the palette cobra command. With a name and base color it
// generates one scale; without arguments it generates every palette
// the config declares.
var Cmd = &cobra.Command{
	Use:   "palette [name base]",
	Short: "Generate tonal color palettes",
	Long: `Palette derives a tonal scale from a base color and prints it in the
configured output format. Pass a name and a base color for a one-off
scale, or no arguments to generate the palettes from the config.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "css", "Output format (css, json)")
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("palette needs both a name and a base color")
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := loadConfig(cmd, filesystem)
	if err != nil {
		return err
	}

	palettes := cfg.Palettes
	if len(args) == 2 {
		palettes = map[string]config.Palette{args[0]: {Base: args[1]}}
	}
	if len(palettes) == 0 {
		return fmt.Errorf("no palettes configured")
	}

	format, _ := cmd.Flags().GetString("format")
	parsedFormat, err := convert.ParseFormat(format)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	titler := cases.Title(language.English)
	for _, name := range names {
		p, err := palette.Generate(name, palettes[name].Base)
		if err != nil {
			return err
		}

		resolved, err := resolver.Resolve(p.Tokens(), transform.NewRegistry(),
			resolver.Options{CSSVar: cfg.CSSVarOptions()})
		if err != nil {
			return err
		}

		out, err := convert.FormatTokens(resolved, parsedFormat, cfg.FormatterOptions())
		if err != nil {
			return err
		}

		if parsedFormat == convert.FormatCSS {
			fmt.Fprintf(cmd.OutOrStdout(), "/* %s */\n", titler.String(name))
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command, filesystem fs.FileSystem) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadPath(filesystem, path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(filesystem, cwd)
}
