// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/mapsmith/mapsmith/internal/defparse"
	"github.com/mapsmith/mapsmith/internal/fgd"
)

// NewLintCmd creates the lint subcommand.
func NewLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file|glob>...",
		Short: "Check definition files and report all diagnostics",
		Long: `Parse and resolve the given FGD definition files, printing every
warning and error with its source location. The command fails if any file
cannot be parsed or any error-severity diagnostic is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLint,
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	defaultColor, err := colorful.Hex(cfg.DefaultColor)
	if err != nil {
		return oops.With("color", cfg.DefaultColor).Wrapf(err, "parsing default color")
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	errorCount := 0
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return oops.With("file", path).Wrapf(err, "reading definition file")
		}

		status := &defparse.CollectingStatus{}
		parser := defparse.NewParser(fgd.NewParser(path, string(source)), defaultColor)

		if _, err := parser.ParseDefinitions(status); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", path, err)
			errorCount++
			continue
		}

		for _, diagnostic := range status.Diagnostics {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", path, diagnostic)
			if diagnostic.Severity == defparse.SeverityError {
				errorCount++
			}
		}
	}

	if errorCount > 0 {
		return oops.With("errors", errorCount).Errorf("found %d error(s)", errorCount)
	}
	return nil
}
