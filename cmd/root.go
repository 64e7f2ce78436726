/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for cascade.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cascade-design/cascade/cmd/build"
	"github.com/cascade-design/cascade/cmd/palette"
	"github.com/cascade-design/cascade/cmd/resolve"
	"github.com/cascade-design/cascade/cmd/validate"
	"github.com/cascade-design/cascade/cmd/version"
	"github.com/cascade-design/cascade/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Resolve and emit design tokens",
	Long: `cascade loads design token files, resolves aliases, references and
transform pipelines, and emits the result as CSS custom properties or JSON.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger.Setup(verbosity)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default .config/cascade.{yaml,yml,json})")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(palette.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
