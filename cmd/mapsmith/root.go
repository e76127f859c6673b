// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the mapsmith CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapsmith",
		Short: "Mapsmith - entity definition tooling for map editors",
		Long: `Mapsmith resolves game-configuration definition files (FGD) into
entity definitions, reporting duplicate declarations, unresolved
super classes and inheritance cycles along the way.`,
		SilenceUsage: true,
	}

	// Global flags shared by all subcommands
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("log-format", "text", "log output format (text or json)")
	cmd.PersistentFlags().String("default-color", "#939393", "color assigned to definitions without one")

	// Add subcommands
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewLintCmd())

	return cmd
}
