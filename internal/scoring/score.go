// Package scoring converts rule, reachability, and structural findings into
// four 0-100 category scores, a weighted overall score, and the boolean
// acceptance verdict. The formulas are fixed; the weights, pass criteria, and
// their validation are the only configurable surface.
package scoring

import (
	"fmt"
	"math"
)

// Deduction points per finding, applied by the category formulas.
const (
	mustFailurePenalty   = 30
	shouldFailurePenalty = 10
	unreachablePenalty   = 30
	flowWarningPenalty   = 10
	structuralPenalty    = 10
	spacingPenalty       = 5
)

// Weights maps the four categories to their fractional contribution to the
// overall score. The four values must sum to 1.0; Compute validates this and
// fails fast rather than silently renormalizing.
type Weights struct {
	PatternFidelity    float64 `yaml:"pattern_fidelity" json:"pattern_fidelity"`
	FlowReachability   float64 `yaml:"flow_reachability" json:"flow_reachability"`
	HierarchyGrouping  float64 `yaml:"hierarchy_grouping" json:"hierarchy_grouping"`
	ResponsiveBehavior float64 `yaml:"responsive_behavior" json:"responsive_behavior"`
}

// DefaultWeights is the stock category weighting.
func DefaultWeights() Weights {
	return Weights{
		PatternFidelity:    0.45,
		FlowReachability:   0.25,
		HierarchyGrouping:  0.20,
		ResponsiveBehavior: 0.10,
	}
}

// weightTolerance absorbs float representation noise when validating that
// weights sum to 1.0.
const weightTolerance = 1e-9

// Validate checks the sum-to-one invariant.
func (w Weights) Validate() error {
	sum := w.PatternFidelity + w.FlowReachability + w.HierarchyGrouping + w.ResponsiveBehavior
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("category weights sum to %v, must sum to 1.0", sum)
	}
	return nil
}

// PassCriteria is the acceptance gate configuration.
type PassCriteria struct {
	NoMustFailures       bool    `yaml:"no_must_failures" json:"no_must_failures"`
	NoCriticalFlowErrors bool    `yaml:"no_critical_flow_errors" json:"no_critical_flow_errors"`
	MinOverallScore      float64 `yaml:"min_overall_score" json:"min_overall_score"`
}

// DefaultPassCriteria is the stock gate: no MUST failures, no critical flow
// findings, overall score at least 85.
func DefaultPassCriteria() PassCriteria {
	return PassCriteria{
		NoMustFailures:       true,
		NoCriticalFlowErrors: true,
		MinOverallScore:      85,
	}
}

// ViewportPenalty is the accumulated responsive-behavior penalty for one
// viewport.
type ViewportPenalty struct {
	Viewport string  `json:"viewport"`
	Penalty  float64 `json:"penalty"`
}

// Input carries the per-scaffold finding counts the aggregator consumes.
type Input struct {
	MustFailed   int
	ShouldFailed int

	UnreachableCount int
	FlowWarnings     int

	StructuralFindings     int
	SpacingClusterFindings int

	ViewportPenalties []ViewportPenalty
}

// CategoryScores are the four 0-100 sub-scores.
type CategoryScores struct {
	PatternFidelity    float64 `json:"pattern_fidelity"`
	FlowReachability   float64 `json:"flow_reachability"`
	HierarchyGrouping  float64 `json:"hierarchy_grouping"`
	ResponsiveBehavior float64 `json:"responsive_behavior"`
}

// Output is the aggregated verdict.
type Output struct {
	Categories CategoryScores `json:"categories"`
	Overall    float64        `json:"overall"`
	Pass       bool           `json:"pass"`

	// FailReasons holds one human-readable string per violated criterion,
	// in fixed order: MUST failures, then critical flow findings, then the
	// score threshold. A later criterion never overwrites an earlier one.
	FailReasons []string `json:"fail_reasons,omitempty"`
}

// clamp bounds a category score to [0, 100].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Compute aggregates finding counts into category scores, the weighted
// overall score, and the pass verdict. It returns an error only for invalid
// configuration (weights not summing to 1.0); finding counts can never fail.
func Compute(in Input, weights Weights, criteria PassCriteria) (Output, error) {
	if err := weights.Validate(); err != nil {
		return Output{}, err
	}

	cats := CategoryScores{
		PatternFidelity:   clamp(100 - float64(mustFailurePenalty*in.MustFailed) - float64(shouldFailurePenalty*in.ShouldFailed)),
		FlowReachability:  clamp(100 - float64(unreachablePenalty*in.UnreachableCount) - float64(flowWarningPenalty*in.FlowWarnings)),
		HierarchyGrouping: clamp(100 - float64(structuralPenalty*in.StructuralFindings) - float64(spacingPenalty*in.SpacingClusterFindings)),
	}

	// Responsive behavior averages per-viewport scores, flooring each
	// viewport at 0 before averaging. No viewports means nothing to
	// penalize.
	if len(in.ViewportPenalties) == 0 {
		cats.ResponsiveBehavior = 100
	} else {
		sum := 0.0
		for _, vp := range in.ViewportPenalties {
			sum += math.Max(0, 100-vp.Penalty)
		}
		cats.ResponsiveBehavior = clamp(sum / float64(len(in.ViewportPenalties)))
	}

	out := Output{Categories: cats}
	overall := weights.PatternFidelity*cats.PatternFidelity +
		weights.FlowReachability*cats.FlowReachability +
		weights.HierarchyGrouping*cats.HierarchyGrouping +
		weights.ResponsiveBehavior*cats.ResponsiveBehavior
	// Round to two decimals so the gate comparison is bit-exact and
	// reproducible instead of hanging on float noise from the products.
	out.Overall = math.Round(overall*100) / 100

	if criteria.NoMustFailures && in.MustFailed > 0 {
		out.FailReasons = append(out.FailReasons,
			fmt.Sprintf("%d MUST rule failure(s)", in.MustFailed))
	}
	if criteria.NoCriticalFlowErrors && in.UnreachableCount > 0 {
		out.FailReasons = append(out.FailReasons,
			fmt.Sprintf("%d critical flow finding(s)", in.UnreachableCount))
	}
	if out.Overall < criteria.MinOverallScore {
		out.FailReasons = append(out.FailReasons,
			fmt.Sprintf("overall score %.1f below minimum %.1f", out.Overall, criteria.MinOverallScore))
	}
	out.Pass = len(out.FailReasons) == 0
	return out, nil
}
