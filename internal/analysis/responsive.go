package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harrison/uigate/internal/flow"
	"github.com/harrison/uigate/internal/models"
	"github.com/harrison/uigate/internal/scoring"
)

const sourceResponsive = "responsive"

// Viewport width classes, in px.
const (
	narrowWidth = 768
	wideWidth   = 1200
)

// Penalty points per responsive finding.
const (
	penaltyTableNoStrategyNarrow = 40
	penaltyTableNoStrategyMid    = 20
	penaltyWideGridNarrow        = 20
	penaltySmallTouchTarget      = 20
)

// ResponsiveResult carries per-viewport penalties plus the issues that
// explain them. Penalties are ordered as the scaffold declares its
// breakpoints, so scoring stays deterministic.
type ResponsiveResult struct {
	Penalties []scoring.ViewportPenalty `json:"penalties"`
	Issues    []models.Issue            `json:"issues"`
}

// AnalyzeResponsive evaluates the visible tree once per declared breakpoint
// and accumulates penalty points per viewport: tables without a responsive
// strategy (heavier on narrow viewports), grids wider than two columns on
// narrow viewports, and interactive nodes with a fixed height under the
// scaffold's minimum touch target.
func AnalyzeResponsive(sc *models.Scaffold) (*ResponsiveResult, error) {
	res := &ResponsiveResult{}
	if sc == nil || sc.Root == nil {
		return res, nil
	}

	visits, err := flow.Walk(sc.Root, true)
	if err != nil {
		return nil, err
	}

	for _, vp := range sc.Settings.Breakpoints {
		penalty := 0.0
		for _, v := range visits {
			n := v.Node
			switch n.Kind {
			case models.KindTable:
				if n.Responsive != "" {
					continue
				}
				if vp.Width < narrowWidth {
					penalty += penaltyTableNoStrategyNarrow
					res.Issues = append(res.Issues, responsiveIssue(v, vp,
						"responsive.table-overflow",
						fmt.Sprintf("table %q has no responsive strategy and will overflow at %dpx", n.ID, vp.Width),
						"no strategy", `"stack", "scroll", or "collapse"`))
				} else if vp.Width < wideWidth {
					penalty += penaltyTableNoStrategyMid
					res.Issues = append(res.Issues, responsiveIssue(v, vp,
						"responsive.table-tight",
						fmt.Sprintf("table %q has no responsive strategy for %dpx", n.ID, vp.Width),
						"no strategy", "a declared responsive strategy"))
				}
			case models.KindGrid:
				if vp.Width < narrowWidth && n.GridColumns > 2 {
					penalty += penaltyWideGridNarrow
					res.Issues = append(res.Issues, responsiveIssue(v, vp,
						"responsive.wide-grid",
						fmt.Sprintf("grid %q keeps %d columns at %dpx", n.ID, n.GridColumns, vp.Width),
						fmt.Sprintf("%d columns", n.GridColumns), "at most 2 columns on narrow viewports"))
				}
			}
			if vp.Width < narrowWidth && n.IsInteractive() {
				if h, ok := fixedPx(n.Sizing.Height); ok && h < sc.Settings.MinTouchTarget {
					penalty += penaltySmallTouchTarget
					res.Issues = append(res.Issues, responsiveIssue(v, vp,
						"responsive.touch-target",
						fmt.Sprintf("%s %q is %dpx tall, under the %dpx touch target", n.Kind, n.ID, h, sc.Settings.MinTouchTarget),
						fmt.Sprintf("%dpx", h), fmt.Sprintf("at least %dpx", sc.Settings.MinTouchTarget)))
				}
			}
		}
		res.Penalties = append(res.Penalties, scoring.ViewportPenalty{
			Viewport: vp.Name,
			Penalty:  penalty,
		})
	}
	return res, nil
}

func responsiveIssue(v flow.Visit, vp models.Viewport, code, msg, found, expected string) models.Issue {
	return models.Issue{
		Severity: models.SeverityError,
		Path:     v.Path,
		Code:     code,
		Source:   sourceResponsive,
		Message:  fmt.Sprintf("[%s] %s", vp.Name, msg),
		Found:    found,
		Expected: expected,
	}
}

// fixedPx parses a fixed sizing value like "40px". Policy values ("hug",
// "fill", empty) report ok=false.
func fixedPx(sizing string) (int, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(sizing), "px")
	if s == sizing || s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
