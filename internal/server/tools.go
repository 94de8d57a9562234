package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harrison/uigate/internal/analyzer"
	"github.com/harrison/uigate/internal/diff"
	"github.com/harrison/uigate/internal/models"
	"github.com/harrison/uigate/internal/parser"
	"github.com/harrison/uigate/internal/pattern"
)

// ValidateTool runs the full analysis pipeline on a scaffold document.
type ValidateTool struct{}

// NewValidateTool creates the scaffold_validate tool.
func NewValidateTool() *ValidateTool { return &ValidateTool{} }

// Definition returns the MCP tool definition for registration.
func (t *ValidateTool) Definition() mcp.Tool {
	return mcp.NewTool("scaffold_validate",
		mcp.WithDescription(
			"Analyze a UI scaffold document: pattern rule validation, keyboard "+
				"reachability, hierarchy and responsive analysis, and the weighted "+
				"acceptance score. Returns the full report as JSON; score.pass is "+
				"the acceptance gate.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The scaffold document (YAML)"),
		),
		mcp.WithString("patterns",
			mcp.Description("Comma-separated pattern names to validate; empty auto-selects from high-confidence suggestions"),
		),
	)
}

// Handle processes a scaffold_validate call.
func (t *ValidateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	sc, issues, err := parser.Parse([]byte(content))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse scaffold: %v", err)), nil
	}
	if sc == nil {
		return shapeIssuesResult(issues)
	}

	var names []string
	if raw := req.GetString("patterns", ""); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	}

	report, err := analyzer.Analyze(sc, analyzer.Options{Patterns: names})
	if err != nil {
		var unknown *pattern.UnknownPatternError
		if errors.As(err, &unknown) {
			return mcp.NewToolResultError(unknown.Error()), nil
		}
		return nil, fmt.Errorf("analyze scaffold: %w", err)
	}
	return jsonResult(report)
}

// SuggestTool scores a scaffold against the known pattern indicator sets.
type SuggestTool struct{}

// NewSuggestTool creates the scaffold_suggest tool.
func NewSuggestTool() *SuggestTool { return &SuggestTool{} }

// Definition returns the MCP tool definition for registration.
func (t *SuggestTool) Definition() mcp.Tool {
	return mcp.NewTool("scaffold_suggest",
		mcp.WithDescription(
			"Score how strongly a scaffold's structure resembles each known UX "+
				"pattern. Returns per-pattern confidence scores and bands "+
				"(low/medium/high); high-band patterns are validation candidates.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The scaffold document (YAML)"),
		),
	)
}

// Handle processes a scaffold_suggest call.
func (t *SuggestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	sc, issues, err := parser.Parse([]byte(content))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse scaffold: %v", err)), nil
	}
	if sc == nil {
		return shapeIssuesResult(issues)
	}

	suggestions := pattern.NewSuggester().Suggest(sc.Root)
	return jsonResult(suggestions)
}

// DiffTool compares two scaffold documents structurally.
type DiffTool struct{}

// NewDiffTool creates the scaffold_diff tool.
func NewDiffTool() *DiffTool { return &DiffTool{} }

// Definition returns the MCP tool definition for registration.
func (t *DiffTool) Definition() mcp.Tool {
	return mcp.NewTool("scaffold_diff",
		mcp.WithDescription(
			"Compare two scaffold documents structurally. Returns the list of "+
				"added, removed, and changed nodes with their tree paths.",
		),
		mcp.WithString("old",
			mcp.Required(),
			mcp.Description("The previous scaffold document (YAML)"),
		),
		mcp.WithString("new",
			mcp.Required(),
			mcp.Description("The revised scaffold document (YAML)"),
		),
	)
}

// Handle processes a scaffold_diff call.
func (t *DiffTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oldContent := req.GetString("old", "")
	newContent := req.GetString("new", "")
	if oldContent == "" || newContent == "" {
		return mcp.NewToolResultError("'old' and 'new' are both required"), nil
	}

	oldSc, oldIssues, err := parser.Parse([]byte(oldContent))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse old scaffold: %v", err)), nil
	}
	if oldSc == nil {
		return shapeIssuesResult(oldIssues)
	}
	newSc, newIssues, err := parser.Parse([]byte(newContent))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse new scaffold: %v", err)), nil
	}
	if newSc == nil {
		return shapeIssuesResult(newIssues)
	}

	return jsonResult(diff.Compare(oldSc, newSc))
}

// shapeIssuesResult reports ingest validation failures as a tool error with
// the issue list attached, so the agent can fix the document shape.
func shapeIssuesResult(issues []models.Issue) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal issues: %w", err)
	}
	return mcp.NewToolResultError("scaffold failed shape validation:\n" + string(data)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
