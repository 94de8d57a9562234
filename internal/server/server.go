// Package server exposes the scaffold analyzer over MCP so UI-generation
// agents can gate their own output in-loop. This is the composition root:
// tools are created and registered here, business logic stays in the
// analyzer, pattern, and diff packages.
package server

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every analysis tool registered.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		"uigate",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	validateTool := NewValidateTool()
	s.AddTool(validateTool.Definition(), validateTool.Handle)

	suggestTool := NewSuggestTool()
	s.AddTool(suggestTool.Definition(), suggestTool.Handle)

	diffTool := NewDiffTool()
	s.AddTool(diffTool.Definition(), diffTool.Handle)

	return s
}

// ServeStdio runs the server over stdio until the client disconnects.
func ServeStdio() error {
	return server.ServeStdio(New())
}

const instructions = `uigate analyzes declarative UI scaffold documents and scores them
against known UX patterns.

Typical loop for a UI-generation agent:
 1. scaffold_suggest - find which patterns the generated scaffold resembles
 2. scaffold_validate - run pattern rules, reachability, and scoring; the
    report's "score.pass" field is the acceptance gate
 3. scaffold_diff - compare a revised scaffold against the previous attempt

Scaffolds are YAML documents with a settings block and a root node tree of
stack/grid/box/text/button/field/form/table nodes.`
