package pattern

import (
	"sort"
	"strings"

	"github.com/harrison/uigate/internal/flow"
	"github.com/harrison/uigate/internal/models"
)

// Confidence band boundaries on the 0-100 score scale. HighConfidenceThreshold
// is exposed for external configuration; a Suggester carries its own copy so
// bands stay reproducible under a different policy without recompilation.
const (
	HighConfidenceThreshold   = 70.0
	MediumConfidenceThreshold = 35.0
)

// Band is the discretized confidence level of a suggestion.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Suggestion estimates how strongly a tree's structure resembles one known
// pattern, independent of any MUST/SHOULD rule outcome. It is advisory: a
// high-band suggestion marks the pattern as an auto-selected candidate for
// validation, but the scorer itself never blocks anything.
type Suggestion struct {
	Pattern string  `json:"pattern"`
	Source  string  `json:"source"`
	Score   float64 `json:"score"`
	Band    Band    `json:"band"`

	// Indicators names the structural signals that contributed to the
	// score, in indicator-declaration order.
	Indicators []string `json:"indicators,omitempty"`
}

// indicator is one independent structural signal. Each present indicator adds
// its weight to the pattern's score, so corroborating signals accumulate and
// partial matches score proportionally instead of binary match/no-match.
type indicator struct {
	name    string
	weight  float64
	present func(visits []flow.Visit) bool
}

// Suggester scores trees against the known pattern indicator sets.
type Suggester struct {
	// HighThreshold is the minimum score for the high band.
	HighThreshold float64

	// MediumThreshold is the minimum score for the medium band; the medium
	// band additionally requires more than one corroborating indicator.
	MediumThreshold float64
}

// NewSuggester returns a Suggester with the module-wide default thresholds.
func NewSuggester() *Suggester {
	return &Suggester{
		HighThreshold:   HighConfidenceThreshold,
		MediumThreshold: MediumConfidenceThreshold,
	}
}

// Suggest scores every known pattern against the tree and returns suggestions
// ordered by descending score, name-ascending on ties. A tree with zero
// indicators for a pattern scores 0 with band "low"; a tree that cannot be
// walked (unrecognized kind, reported elsewhere) scores every pattern 0.
func (s *Suggester) Suggest(root *models.Node) []Suggestion {
	visits, err := flow.Walk(root, true)
	if err != nil {
		visits = nil
	}

	suggestions := make([]Suggestion, 0, 3)
	for _, set := range indicatorSets() {
		sg := Suggestion{Pattern: set.pattern, Source: set.source}
		for _, ind := range set.indicators {
			if ind.present(visits) {
				sg.Score += ind.weight
				sg.Indicators = append(sg.Indicators, ind.name)
			}
		}
		sg.Band = s.band(sg.Score, len(sg.Indicators))
		suggestions = append(suggestions, sg)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Pattern < suggestions[j].Pattern
	})
	return suggestions
}

// band discretizes a score. Medium requires more than one corroborating
// indicator: a single weak signal stays low however it is weighted.
func (s *Suggester) band(score float64, indicators int) Band {
	switch {
	case score >= s.HighThreshold:
		return BandHigh
	case score >= s.MediumThreshold && indicators > 1:
		return BandMedium
	default:
		return BandLow
	}
}

// AutoSelect returns the names of patterns whose suggestion reached the high
// band, preserving suggestion order.
func AutoSelect(suggestions []Suggestion) []string {
	var names []string
	for _, sg := range suggestions {
		if sg.Band == BandHigh {
			names = append(names, sg.Pattern)
		}
	}
	return names
}

type indicatorSet struct {
	pattern    string
	source     string
	indicators []indicator
}

// indicatorSets declares the structural signals per pattern. Weights per
// pattern sum to 100, so a full match lands exactly at the scale ceiling.
func indicatorSets() []indicatorSet {
	return []indicatorSet{
		{
			pattern: "Form.Basic",
			source:  SourceFormBasic,
			indicators: []indicator{
				{name: "form node present", weight: 40, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindForm })
				}},
				{name: "form has fields", weight: 15, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindForm && len(n.Fields) > 0 })
				}},
				{name: "form has actions", weight: 15, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindForm && len(n.Actions) > 0 })
				}},
				{name: "primary-role action", weight: 20, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool {
						if n.Kind != models.KindForm {
							return false
						}
						for _, a := range n.Actions {
							if a.Kind == models.KindButton && a.Role == "primary" {
								return true
							}
						}
						return false
					})
				}},
				{name: "labeled fields", weight: 10, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool {
						return n.Kind == models.KindField && strings.TrimSpace(n.Label) != ""
					})
				}},
			},
		},
		{
			pattern: "Guided.Flow",
			source:  SourceGuidedFlow,
			indicators: []indicator{
				{name: "forward navigation button", weight: 40, present: func(vs []flow.Visit) bool {
					return anyNode(vs, isForwardNav)
				}},
				{name: "backward navigation button", weight: 30, present: func(vs []flow.Visit) bool {
					return anyNode(vs, isBackwardNav)
				}},
				{name: "step-progress text", weight: 20, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool {
						return n.Kind == models.KindText && strings.Contains(strings.ToLower(n.Label), "step")
					})
				}},
				{name: "form in flow", weight: 10, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindForm })
				}},
			},
		},
		{
			pattern: "Table.Simple",
			source:  SourceTableSimple,
			indicators: []indicator{
				{name: "table node present", weight: 50, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindTable })
				}},
				{name: "responsive strategy defined", weight: 30, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindTable && n.Responsive != "" })
				}},
				{name: "columns defined", weight: 20, present: func(vs []flow.Visit) bool {
					return anyNode(vs, func(n *models.Node) bool { return n.Kind == models.KindTable && len(n.Columns) > 0 })
				}},
			},
		},
	}
}

func anyNode(visits []flow.Visit, pred func(*models.Node) bool) bool {
	for _, v := range visits {
		if pred(v.Node) {
			return true
		}
	}
	return false
}
