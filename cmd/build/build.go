/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for cascade.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/internal/logger"
	"github.com/cascade-design/cascade/load"
	"github.com/cascade-design/cascade/palette"
	"github.com/cascade-design/cascade/resolver"
	"github.com/cascade-design/cascade/script"
	"github.com/cascade-design/cascade/transform"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Load, resolve and emit tokens per config",
	Long: `Build loads every token file named by the config, generates configured
palettes, resolves the merged set and writes the formatted output.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "", "Output format (css, json); overrides config")
	Cmd.Flags().StringP("out", "o", "", "Output file path; overrides config, empty means stdout")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.Get("build")
	filesystem := fs.NewOSFileSystem()

	cfg, err := loadConfig(cmd, filesystem)
	if err != nil {
		return err
	}
	if len(cfg.Files) == 0 && len(cfg.Palettes) == 0 {
		return fmt.Errorf("nothing to build: config names no files and no palettes")
	}

	format := cfg.Format
	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		format = flag
	}
	parsedFormat, err := convert.ParseFormat(format)
	if err != nil {
		return err
	}

	set, err := load.Load(cmd.Context(), cfg, load.Options{
		FS:      filesystem,
		Fetcher: load.NewHTTPFetcher(load.DefaultMaxSize),
	})
	if err != nil {
		return err
	}
	log.Debug().Int("tokens", set.Len()).Msg("loaded token files")

	set, err = palette.Apply(set, cfg.Palettes)
	if err != nil {
		return err
	}

	reg := transform.NewRegistry()
	if err := script.RegisterFiles(reg, filesystem, ".", cfg.Scripts); err != nil {
		return err
	}

	resolved, err := resolver.Resolve(set, reg, resolver.Options{CSSVar: cfg.CSSVarOptions()})
	if err != nil {
		return err
	}

	out, err := convert.FormatTokens(resolved, parsedFormat, cfg.FormatterOptions())
	if err != nil {
		return err
	}

	target := cfg.Out
	if flag, _ := cmd.Flags().GetString("out"); flag != "" {
		target = flag
	}
	if target == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := filesystem.WriteFile(target, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	log.Info().Str("out", target).Int("tokens", resolved.Len()).Msg("build complete")
	return nil
}

// loadConfig reads the config named by --config, or discovers one from
// the working directory.
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
