// Package analyzer runs the full analysis pipeline for one scaffold:
// suggestion scoring, pattern selection, rule validation, reachability and
// structural analyses, and score aggregation. Each call is independent and
// touches no shared state, so callers may analyze many scaffolds
// concurrently as long as each scaffold's pipeline runs to completion on its
// own.
package analyzer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harrison/uigate/internal/analysis"
	"github.com/harrison/uigate/internal/flow"
	"github.com/harrison/uigate/internal/models"
	"github.com/harrison/uigate/internal/pattern"
	"github.com/harrison/uigate/internal/scoring"
)

// Options configures one analysis run. The zero value selects patterns
// automatically from high-confidence suggestions and scores with the stock
// weights and criteria.
type Options struct {
	// Patterns names the patterns to validate. Empty means auto-select
	// from high-band suggestions; an unknown name is a configuration
	// error.
	Patterns []string

	// Weights and Criteria default to the stock configuration when left
	// zero-valued.
	Weights  *scoring.Weights
	Criteria *scoring.PassCriteria

	// HighThreshold overrides the high-confidence suggestion threshold
	// when positive.
	HighThreshold float64
}

// Report is the full output of one pipeline run for one scaffold.
type Report struct {
	// RunID uniquely identifies this run for downstream consumers; it is
	// the only non-deterministic field in the report.
	RunID string `json:"run_id"`

	Scaffold string `json:"scaffold"`

	Suggestions      []pattern.Suggestion `json:"suggestions"`
	SelectedPatterns []string             `json:"selected_patterns"`

	Patterns     pattern.FlowOutput         `json:"patterns"`
	Reachability *flow.ReachabilityResult   `json:"reachability"`
	Hierarchy    *analysis.HierarchyResult  `json:"hierarchy"`
	Responsive   *analysis.ResponsiveResult `json:"responsive"`

	// Issues concatenates every diagnostic in pipeline order: pattern
	// rules, reachability, hierarchy, responsive.
	Issues []models.Issue `json:"issues"`

	Score scoring.Output `json:"score"`
}

// Analyze runs the pipeline on a normalized scaffold. It returns an error for
// configuration problems (unknown pattern name, invalid weights) and for
// upstream contract violations surfaced by traversal; rule failures and
// findings are data in the report, never errors.
func Analyze(sc *models.Scaffold, opts Options) (*Report, error) {
	if sc == nil || sc.Root == nil {
		return nil, fmt.Errorf("analyze: nil scaffold")
	}

	suggester := pattern.NewSuggester()
	if opts.HighThreshold > 0 {
		suggester.HighThreshold = opts.HighThreshold
	}
	suggestions := suggester.Suggest(sc.Root)

	selected := opts.Patterns
	if len(selected) == 0 {
		selected = pattern.AutoSelect(suggestions)
	}
	patterns := make([]pattern.Pattern, 0, len(selected))
	for _, name := range selected {
		p, err := pattern.Lookup(name)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	flowOut := pattern.ValidatePatterns(patterns, sc.Root)

	reach, err := flow.AnalyzeReachability(sc.Root)
	if err != nil {
		return nil, fmt.Errorf("reachability analysis: %w", err)
	}
	hier, err := analysis.AnalyzeHierarchy(sc)
	if err != nil {
		return nil, fmt.Errorf("hierarchy analysis: %w", err)
	}
	resp, err := analysis.AnalyzeResponsive(sc)
	if err != nil {
		return nil, fmt.Errorf("responsive analysis: %w", err)
	}

	weights := scoring.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	criteria := scoring.DefaultPassCriteria()
	if opts.Criteria != nil {
		criteria = *opts.Criteria
	}

	score, err := scoring.Compute(scoring.Input{
		MustFailed:             flowOut.TotalMustFailed(),
		ShouldFailed:           flowOut.TotalShouldFailed(),
		UnreachableCount:       reach.Unreachable,
		FlowWarnings:           reach.Warnings,
		StructuralFindings:     hier.Structural,
		SpacingClusterFindings: hier.SpacingClusters,
		ViewportPenalties:      resp.Penalties,
	}, weights, criteria)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:            uuid.NewString(),
		Scaffold:         sc.Name,
		Suggestions:      suggestions,
		SelectedPatterns: selected,
		Patterns:         flowOut,
		Reachability:     reach,
		Hierarchy:        hier,
		Responsive:       resp,
		Score:            score,
	}
	for _, r := range flowOut.Results {
		report.Issues = append(report.Issues, r.Issues...)
	}
	report.Issues = append(report.Issues, reach.Issues...)
	report.Issues = append(report.Issues, hier.Issues...)
	report.Issues = append(report.Issues, resp.Issues...)
	return report, nil
}
