/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for cascade.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/load"
	"github.com/cascade-design/cascade/resolver"
	"github.com/cascade-design/cascade/script"
	"github.com/cascade-design/cascade/transform"
	"github.com/cascade-design/cascade/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token files",
	Long: `Validate checks token files statically (dangling targets, malformed
pipelines, bad paths) and then runs a full resolution to surface cycles
and transform failures. Without arguments the config's files are checked.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output findings")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg, err := loadConfig(cmd, filesystem)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		files, err = cfg.ExpandFiles(filesystem, cwd)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	reg := transform.NewRegistry()
	if err := script.RegisterFiles(reg, filesystem, ".", cfg.Scripts); err != nil {
		return err
	}

	hasErrors := false
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Validating %s...\n", file)
		}

		set, err := load.File(filesystem, file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			hasErrors = true
			continue
		}

		findings := validator.ValidateWithPath(set, reg, file)
		for _, finding := range findings {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", finding.Error())
		}
		if len(findings) > 0 {
			hasErrors = true
			continue
		}

		// Static checks pass; a dry-run resolution surfaces cycles.
		if _, err := resolver.Resolve(set, reg, resolver.Options{CSSVar: cfg.CSSVarOptions()}); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d tokens\n", set.Len())
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "All files valid.")
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
