/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for cascade.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/load"
	"github.com/cascade-design/cascade/palette"
	"github.com/cascade-design/cascade/resolver"
	"github.com/cascade-design/cascade/script"
	"github.com/cascade-design/cascade/token"
	"github.com/cascade-design/cascade/transform"
)

// Cmd is the resolve cobra command. It prints the fully resolved token
// set as JSON, keeping value structure that the flat output formats
// collapse to strings.
var Cmd = &cobra.Command{
	Use:   "resolve [files...]",
	Short: "Print the resolved token set as JSON",
	Long: `Resolve loads token files (the config's files when no arguments are
given), resolves the set and prints it as a JSON document in token order.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cfg, err := loadConfig(cmd, filesystem)
	if err != nil {
		return err
	}

	var set *token.Set
	if len(args) > 0 {
		set = token.NewSet()
		for _, path := range args {
			fileSet, err := load.File(filesystem, path)
			if err != nil {
				return err
			}
			set = convert.Merge(set, fileSet)
		}
	} else {
		set, err = load.Load(cmd.Context(), cfg, load.Options{
			FS:      filesystem,
			Fetcher: load.NewHTTPFetcher(load.DefaultMaxSize),
		})
		if err != nil {
			return err
		}
	}

	if set.Len() == 0 && len(cfg.Palettes) == 0 {
		return fmt.Errorf("no tokens to resolve")
	}

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

	out, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resolved tokens: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
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
