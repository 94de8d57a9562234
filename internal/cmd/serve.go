package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/uigate/internal/server"
)

// NewServeCommand creates and returns the serve subcommand
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over MCP (stdio)",
		Long: `Start an MCP server on stdio exposing scaffold_validate,
scaffold_suggest, and scaffold_diff, so UI-generation agents can gate
their own output in-loop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ServeStdio()
		},
		SilenceUsage: true,
	}
}
