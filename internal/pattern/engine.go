package pattern

import (
	"fmt"

	"github.com/harrison/uigate/internal/models"
)

// PatternResult tallies one pattern's rule outcomes against one tree.
// Invariant: MustPassed+MustFailed equals the pattern's MUST rule count, and
// likewise for SHOULD, for every input tree including an empty one.
type PatternResult struct {
	Pattern string `json:"pattern"`
	Source  string `json:"source"`

	MustPassed   int `json:"must_passed"`
	MustFailed   int `json:"must_failed"`
	ShouldPassed int `json:"should_passed"`
	ShouldFailed int `json:"should_failed"`

	// Issues concatenates every issue the rules emitted, in
	// rule-declaration order: all MUST rules first, then all SHOULD rules.
	Issues []models.Issue `json:"issues"`
}

// FlowOutput aggregates the independent results of validating several
// patterns against one tree.
type FlowOutput struct {
	Results []PatternResult `json:"results"`

	// HasMustFailures is true when any pattern has at least one failed
	// MUST rule. SHOULD failures never contribute here.
	HasMustFailures bool `json:"has_must_failures"`

	TotalIssues int `json:"total_issues"`
}

// TotalMustFailed sums failed MUST rules across all patterns.
func (f FlowOutput) TotalMustFailed() int {
	n := 0
	for _, r := range f.Results {
		n += r.MustFailed
	}
	return n
}

// TotalShouldFailed sums failed SHOULD rules across all patterns.
func (f FlowOutput) TotalShouldFailed() int {
	n := 0
	for _, r := range f.Results {
		n += r.ShouldFailed
	}
	return n
}

// ValidatePattern runs every MUST rule, then every SHOULD rule, against the
// tree, accumulating issues in rule-declaration order. A rule returning zero
// issues passed; a non-empty result is exactly one failure for the tally no
// matter how many issues it emitted.
//
// Each rule runs isolated: a panic inside one rule becomes a single critical
// issue and a failure for that rule, and every other rule still runs, so a
// misbehaving rule can never cost the caller the rest of the results.
func ValidatePattern(p Pattern, root *models.Node) PatternResult {
	result := PatternResult{Pattern: p.Name, Source: p.Source}

	for _, rule := range p.Must {
		issues := runRule(rule, p.Source, root)
		if len(issues) == 0 {
			result.MustPassed++
		} else {
			result.MustFailed++
			result.Issues = append(result.Issues, issues...)
		}
	}
	for _, rule := range p.Should {
		issues := runRule(rule, p.Source, root)
		if len(issues) == 0 {
			result.ShouldPassed++
		} else {
			result.ShouldFailed++
			result.Issues = append(result.Issues, issues...)
		}
	}
	return result
}

// runRule executes one rule, converting an escaped panic into a critical
// issue so the engine's tally invariant holds even for buggy rules.
func runRule(rule Rule, source string, root *models.Node) (issues []models.Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []models.Issue{{
				Severity: models.SeverityCritical,
				Code:     "pattern.rule-panic",
				Source:   source,
				Message:  fmt.Sprintf("rule %q panicked: %v", rule.ID(), r),
			}}
		}
	}()
	return rule.Check(root)
}

// ValidatePatterns validates every supplied pattern independently: rules from
// different patterns share no state and never short-circuit each other.
func ValidatePatterns(patterns []Pattern, root *models.Node) FlowOutput {
	out := FlowOutput{Results: make([]PatternResult, 0, len(patterns))}
	for _, p := range patterns {
		result := ValidatePattern(p, root)
		out.Results = append(out.Results, result)
		if result.MustFailed > 0 {
			out.HasMustFailures = true
		}
		out.TotalIssues += len(result.Issues)
	}
	return out
}
