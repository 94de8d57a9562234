// Package analysis implements the structural analyses that feed the scoring
// aggregator beyond pattern rules: hierarchy/grouping findings, spacing
// clusters, and per-viewport responsive penalties.
package analysis

import (
	"fmt"
	"sort"

	"github.com/harrison/uigate/internal/flow"
	"github.com/harrison/uigate/internal/models"
)

const sourceHierarchy = "hierarchy"

// maxNestingDepth is the container depth beyond which grouping stops carrying
// meaning for a reader of the layout.
const maxNestingDepth = 8

// HierarchyResult carries the grouping and spacing findings for one scaffold.
// Structural counts structural/grouping findings, SpacingClusters the distinct
// off-scale gap values; both feed the hierarchy category score directly.
type HierarchyResult struct {
	Structural      int            `json:"structural"`
	SpacingClusters int            `json:"spacing_clusters"`
	Issues          []models.Issue `json:"issues"`
}

// AnalyzeHierarchy walks the visible tree and reports grouping defects:
// empty containers, single-child wrapper stacks, grids without a declared
// column count, and containers nested past readable depth. It also clusters
// the gap values in use and flags each distinct value off the scaffold's
// spacing scale.
func AnalyzeHierarchy(sc *models.Scaffold) (*HierarchyResult, error) {
	res := &HierarchyResult{}
	if sc == nil || sc.Root == nil {
		return res, nil
	}

	visits, err := flow.Walk(sc.Root, true)
	if err != nil {
		return nil, err
	}

	offScale := map[int]models.Path{}
	for _, v := range visits {
		n := v.Node
		switch n.Kind {
		case models.KindStack, models.KindGrid:
			if len(n.Children) == 0 {
				res.Issues = append(res.Issues, structuralIssue(v, "hierarchy.empty-container",
					fmt.Sprintf("%s %q has no children", n.Kind, n.ID),
					"0 children", "at least 1 child or removal"))
			}
			if n.Kind == models.KindStack && len(n.Children) == 1 && n.Children[0].Kind == models.KindStack {
				res.Issues = append(res.Issues, structuralIssue(v, "hierarchy.redundant-wrapper",
					fmt.Sprintf("stack %q wraps a single stack", n.ID),
					"stack > stack with one child", "a single stack"))
			}
			if n.Kind == models.KindGrid && n.GridColumns == 0 {
				res.Issues = append(res.Issues, structuralIssue(v, "hierarchy.grid-columns-unset",
					fmt.Sprintf("grid %q declares no column count", n.ID),
					"grid_columns unset", "an explicit column count"))
			}
			if n.Gap > 0 && !onScale(n.Gap, sc.Settings.SpacingScale) {
				if _, seen := offScale[n.Gap]; !seen {
					offScale[n.Gap] = v.Path
				}
			}
		}
		if len(v.Path) > maxNestingDepth && v.Node.IsContainer() {
			res.Issues = append(res.Issues, structuralIssue(v, "hierarchy.deep-nesting",
				fmt.Sprintf("container %q sits %d levels deep", n.ID, len(v.Path)),
				fmt.Sprintf("depth %d", len(v.Path)),
				fmt.Sprintf("depth at most %d", maxNestingDepth)))
		}
	}
	res.Structural = len(res.Issues)

	// One spacing-cluster finding per distinct off-scale gap, reported in
	// ascending gap order so output stays deterministic.
	gaps := make([]int, 0, len(offScale))
	for gap := range offScale {
		gaps = append(gaps, gap)
	}
	sort.Ints(gaps)
	for _, gap := range gaps {
		res.SpacingClusters++
		res.Issues = append(res.Issues, models.Issue{
			Severity: models.SeverityWarning,
			Path:     offScale[gap],
			Code:     "spacing.off-scale",
			Source:   sourceHierarchy,
			Message:  fmt.Sprintf("gap %dpx is not on the spacing scale", gap),
			Found:    fmt.Sprintf("%dpx", gap),
			Expected: fmt.Sprintf("one of %v", sc.Settings.SpacingScale),
		})
	}
	return res, nil
}

func structuralIssue(v flow.Visit, code, msg, found, expected string) models.Issue {
	return models.Issue{
		Severity: models.SeverityWarning,
		Path:     v.Path,
		Code:     code,
		Source:   sourceHierarchy,
		Message:  msg,
		Found:    found,
		Expected: expected,
	}
}

func onScale(gap int, scale []int) bool {
	if len(scale) == 0 {
		return true
	}
	for _, s := range scale {
		if s == gap {
			return true
		}
	}
	return false
}
