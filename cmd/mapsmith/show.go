// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/mapsmith/mapsmith/internal/defparse"
	"github.com/mapsmith/mapsmith/internal/entdef"
	"github.com/mapsmith/mapsmith/internal/fgd"
	"github.com/mapsmith/mapsmith/internal/logging"
	"github.com/mapsmith/mapsmith/pkg/errutil"
)

// NewShowCmd creates the show subcommand.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file|glob>...",
		Short: "Resolve definition files and print the entity definitions",
		Long: `Resolve the given FGD definition files and print every resulting
entity definition. Diagnostics encountered during resolution are logged;
they do not abort the listing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.Setup("mapsmith", version, cfg.LogFormat, cmd.ErrOrStderr())

	defaultColor, err := colorful.Hex(cfg.DefaultColor)
	if err != nil {
		return oops.With("color", cfg.DefaultColor).Wrapf(err, "parsing default color")
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tCOLOR\tBOUNDS\tPROPERTIES\tDESCRIPTION")

	failed := 0
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return oops.With("file", path).Wrapf(err, "reading definition file")
		}

		status := &defparse.LogStatus{Logger: logger, File: path}
		parser := defparse.NewParser(fgd.NewParser(path, string(source)), defaultColor)

		// A parse failure aborts this file's load only; keep listing the rest.
		definitions, err := parser.ParseDefinitions(status)
		if err != nil {
			errutil.LogError(logger, "definition load failed", err)
			failed++
			continue
		}

		for _, definition := range definitions {
			printDefinition(w, definition)
		}
	}

	if err := w.Flush(); err != nil {
		return oops.Wrapf(err, "flushing output")
	}
	if failed > 0 {
		return oops.With("failed", failed).Errorf("failed to load %d file(s)", failed)
	}
	return nil
}

func printDefinition(w *tabwriter.Writer, definition entdef.Definition) {
	kind := "brush"
	bounds := ""
	if point, ok := definition.(*entdef.PointDefinition); ok {
		kind = "point"
		bounds = point.Bounds().String()
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
		definition.Name(),
		kind,
		definition.Color().Hex(),
		bounds,
		len(definition.Properties()),
		definition.Description(),
	)
}
