package flow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harrison/uigate/internal/models"
)

// ReachabilityResult summarizes the keyboard-flow analysis of one tree.
// Unreachable counts the critical findings and Warnings the warning-level
// findings; both feed the flow-reachability category score directly.
type ReachabilityResult struct {
	Unreachable int            `json:"unreachable"`
	Warnings    int            `json:"warnings"`
	Issues      []models.Issue `json:"issues"`

	// FocusOrder lists focusable node IDs in effective tab order: sorted by
	// tab index with a stable tie-break on traversal order.
	FocusOrder []string `json:"focus_order"`
}

const sourceFlow = "flow"

// AnalyzeReachability walks the tree and reports keyboard-flow defects.
//
// Critical findings (each counts toward Unreachable):
//   - an interactive node that is itself marked visible but sits inside an
//     invisible subtree, so no traversal can reach it
//   - a primary-role Button that opted out of focus with focusable=false
//
// Warning findings:
//   - a positive tab index, which fights the document order
//   - an effective focus order that diverges from reading order
func AnalyzeReachability(root *models.Node) (*ReachabilityResult, error) {
	res := &ReachabilityResult{}
	if root == nil {
		return res, nil
	}

	all, err := Walk(root, false)
	if err != nil {
		return nil, err
	}
	visible, err := Walk(root, true)
	if err != nil {
		return nil, err
	}

	reachable := make(map[string]bool, len(visible))
	for _, v := range visible {
		reachable[v.Node.ID] = true
	}

	for _, v := range all {
		n := v.Node
		if n.IsInteractive() && n.Visible && !reachable[n.ID] {
			res.Issues = append(res.Issues, models.Issue{
				Severity: models.SeverityCritical,
				Path:     v.Path,
				Code:     "flow.unreachable-interactive",
				Source:   sourceFlow,
				Message:  fmt.Sprintf("%s %q is inside an invisible subtree and can never be reached", n.Kind, n.ID),
				Found:    "interactive node under invisible ancestor",
				Expected: "interactive nodes reachable from the root",
			})
		}
	}

	type focusable struct {
		visit Visit
		order int
	}
	var focus []focusable
	for i, v := range visible {
		n := v.Node
		if n.Kind == models.KindButton && n.Role == "primary" && !IsFocusable(n) {
			res.Issues = append(res.Issues, models.Issue{
				Severity: models.SeverityCritical,
				Path:     v.Path,
				Code:     "flow.primary-not-focusable",
				Source:   sourceFlow,
				Message:  fmt.Sprintf("primary action %q cannot receive keyboard focus", n.ID),
				Found:    "focusable: false",
				Expected: "primary actions keyboard-reachable",
			})
		}
		if IsFocusable(n) {
			focus = append(focus, focusable{visit: v, order: i})
			if TabIndex(n) > 0 {
				res.Issues = append(res.Issues, models.Issue{
					Severity: models.SeverityWarning,
					Path:     v.Path,
					Code:     "flow.positive-tabindex",
					Source:   sourceFlow,
					Message:  fmt.Sprintf("node %q declares tab_index %d, overriding reading order", n.ID, TabIndex(n)),
					Found:    fmt.Sprintf("tab_index: %d", TabIndex(n)),
					Expected: "tab_index 0 and natural document order",
				})
			}
		}
	}

	// Effective tab order: sort by tab index, stable on traversal order.
	sorted := make([]focusable, len(focus))
	copy(sorted, focus)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TabIndex(sorted[i].visit.Node) < TabIndex(sorted[j].visit.Node)
	})

	diverged := false
	res.FocusOrder = make([]string, len(sorted))
	for i, f := range sorted {
		res.FocusOrder[i] = f.visit.Node.ID
		if f.order != focus[i].order {
			diverged = true
		}
	}
	if diverged {
		reading := make([]string, len(focus))
		for i, f := range focus {
			reading[i] = f.visit.Node.ID
		}
		res.Issues = append(res.Issues, models.Issue{
			Severity: models.SeverityWarning,
			Code:     "flow.focus-order-divergence",
			Source:   sourceFlow,
			Message:  "effective tab order diverges from reading order",
			Found:    strings.Join(res.FocusOrder, " -> "),
			Expected: strings.Join(reading, " -> "),
		})
	}

	res.Unreachable = models.CountSeverity(res.Issues, models.SeverityCritical)
	res.Warnings = models.CountSeverity(res.Issues, models.SeverityWarning)
	return res, nil
}
