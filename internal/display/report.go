// Package display renders analysis output for humans: the scorecard report
// and warning boxes. Machine consumers get JSON from the CLI layer instead.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/uigate/internal/analyzer"
	"github.com/harrison/uigate/internal/models"
)

// RenderReport writes the human-readable scorecard for one analysis run:
// verdict banner, category scores, pattern tallies, suggestions, and the
// issue list grouped by severity.
func RenderReport(out io.Writer, rep *analyzer.Report, useColor bool) {
	heading := color.New(color.Bold)
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if !useColor {
		heading.DisableColor()
		pass.DisableColor()
		fail.DisableColor()
	}

	fmt.Fprintf(out, "%s (run %s)\n", heading.Sprintf("Scaffold: %s", rep.Scaffold), rep.RunID)
	fmt.Fprintln(out)

	if rep.Score.Pass {
		fmt.Fprintf(out, "%s  overall %.1f\n", pass.Sprint("PASS"), rep.Score.Overall)
	} else {
		fmt.Fprintf(out, "%s  overall %.1f\n", fail.Sprint("FAIL"), rep.Score.Overall)
		for _, reason := range rep.Score.FailReasons {
			fmt.Fprintf(out, "  - %s\n", reason)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading.Sprint("Category scores"))
	cats := rep.Score.Categories
	fmt.Fprintf(out, "  pattern fidelity     %6.1f\n", cats.PatternFidelity)
	fmt.Fprintf(out, "  flow reachability    %6.1f\n", cats.FlowReachability)
	fmt.Fprintf(out, "  hierarchy/grouping   %6.1f\n", cats.HierarchyGrouping)
	fmt.Fprintf(out, "  responsive behavior  %6.1f\n", cats.ResponsiveBehavior)
	fmt.Fprintln(out)

	if len(rep.Suggestions) > 0 {
		fmt.Fprintln(out, heading.Sprint("Pattern suggestions"))
		for _, sg := range rep.Suggestions {
			fmt.Fprintf(out, "  %-14s %6.1f  %s\n", sg.Pattern, sg.Score, sg.Band)
		}
		fmt.Fprintln(out)
	}

	if len(rep.Patterns.Results) > 0 {
		fmt.Fprintln(out, heading.Sprint("Pattern validation"))
		for _, r := range rep.Patterns.Results {
			fmt.Fprintf(out, "  %-14s MUST %d/%d  SHOULD %d/%d\n",
				r.Pattern,
				r.MustPassed, r.MustPassed+r.MustFailed,
				r.ShouldPassed, r.ShouldPassed+r.ShouldFailed)
		}
		fmt.Fprintln(out)
	}

	renderIssues(out, rep.Issues, useColor)
}

// renderIssues lists issues grouped by severity, critical first.
func renderIssues(out io.Writer, issues []models.Issue, useColor bool) {
	if len(issues) == 0 {
		return
	}
	heading := color.New(color.Bold)
	if !useColor {
		heading.DisableColor()
	}
	fmt.Fprintf(out, "%s (%d)\n", heading.Sprint("Issues"), len(issues))

	for _, sev := range []models.Severity{models.SeverityCritical, models.SeverityError, models.SeverityWarning} {
		for _, is := range issues {
			if is.Severity != sev {
				continue
			}
			fmt.Fprintf(out, "  %s %s at %s: %s\n", severityTag(sev, useColor), is.Code, is.Path, is.Message)
			if is.Found != "" || is.Expected != "" {
				fmt.Fprintf(out, "      found:    %s\n", is.Found)
				fmt.Fprintf(out, "      expected: %s\n", is.Expected)
			}
		}
	}
}

func severityTag(sev models.Severity, useColor bool) string {
	tag := strings.ToUpper(sev.String())
	if !useColor {
		return tag
	}
	switch sev {
	case models.SeverityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(tag)
	case models.SeverityError:
		return color.New(color.FgRed).Sprint(tag)
	default:
		return color.New(color.FgYellow).Sprint(tag)
	}
}
