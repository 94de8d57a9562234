// Package cmd wires the uigate CLI: validate, suggest, diff, init, and serve.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for uigate
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uigate",
		Short: "Analyze and score declarative UI scaffolds",
		Long: `uigate analyzes declarative UI scaffold documents - trees of typed
layout and interaction nodes - and produces structured diagnostics, a
keyboard reachability model, and a weighted quality score used to gate
automated acceptance of generated UI designs.

Scaffolds are YAML files, or Markdown design docs carrying a fenced
yaml block.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewSuggestCommand())
	cmd.AddCommand(NewDiffCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewServeCommand())

	return cmd
}
