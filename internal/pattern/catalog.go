package pattern

import (
	"fmt"
	"strings"

	"github.com/harrison/uigate/internal/flow"
	"github.com/harrison/uigate/internal/models"
)

// Pattern source attributions.
const (
	SourceFormBasic   = "nngroup.com/articles/web-form-design"
	SourceGuidedFlow  = "nngroup.com/articles/wizard-flows"
	SourceTableSimple = "inclusive-components.design/data-tables"
)

// Catalog returns the built-in patterns in their canonical order.
// The returned slice is freshly allocated; callers may reorder or filter it.
func Catalog() []Pattern {
	return []Pattern{formBasic(), guidedFlow(), tableSimple()}
}

// Lookup resolves a pattern by name. An unknown name is a configuration
// error, surfaced as *UnknownPatternError rather than silently skipped.
func Lookup(name string) (Pattern, error) {
	for _, p := range Catalog() {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, &UnknownPatternError{Name: name}
}

// visibleVisits walks the visible tree for a rule check. An unrecognized node
// kind is an upstream contract violation; it is reported as a single critical
// issue so the rule tally still accounts for the rule.
func visibleVisits(root *models.Node) ([]flow.Visit, []models.Issue) {
	visits, err := flow.Walk(root, true)
	if err != nil {
		return nil, []models.Issue{{
			Severity: models.SeverityCritical,
			Code:     "pattern.traversal-error",
			Message:  err.Error(),
		}}
	}
	return visits, nil
}

// visitsOf filters a visit sequence to one node kind.
func visitsOf(visits []flow.Visit, kind models.Kind) []flow.Visit {
	var out []flow.Visit
	for _, v := range visits {
		if v.Node.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// navLabels are the button labels treated as wizard navigation.
var navLabels = map[string]bool{
	"next": true, "continue": true, "previous": true, "back": true,
}

func isNavButton(n *models.Node) bool {
	return n.Kind == models.KindButton && navLabels[strings.ToLower(strings.TrimSpace(n.Label))]
}

func isForwardNav(n *models.Node) bool {
	l := strings.ToLower(strings.TrimSpace(n.Label))
	return n.Kind == models.KindButton && (l == "next" || l == "continue")
}

func isBackwardNav(n *models.Node) bool {
	l := strings.ToLower(strings.TrimSpace(n.Label))
	return n.Kind == models.KindButton && (l == "previous" || l == "back")
}

// formBasic checks a single-form screen against basic form-design guidance.
func formBasic() Pattern {
	return Pattern{
		Name:   "Form.Basic",
		Source: SourceFormBasic,
		Must: []Rule{
			NewRule("form.present", LevelMust, "the screen contains at least one visible form", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				if len(visitsOf(visits, models.KindForm)) > 0 {
					return nil
				}
				return []models.Issue{{
					Severity: models.SeverityError,
					Code:     "form.present",
					Source:   SourceFormBasic,
					Message:  "no visible form node in the tree",
					Found:    "0 forms",
					Expected: "at least 1 form",
				}}
			}),
			NewRule("form.has-fields", LevelMust, "every form has at least one field", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindForm) {
					if len(v.Node.Fields) == 0 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "form.has-fields",
							Source:   SourceFormBasic,
							Message:  fmt.Sprintf("form %q has an empty fields slot", v.Node.ID),
							Found:    "0 fields",
							Expected: "at least 1 field",
						})
					}
				}
				return issues
			}),
			NewRule("form.has-actions", LevelMust, "every form has at least one action", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindForm) {
					if len(v.Node.Actions) == 0 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "form.has-actions",
							Source:   SourceFormBasic,
							Message:  fmt.Sprintf("form %q has an empty actions slot", v.Node.ID),
							Found:    "0 actions",
							Expected: "at least 1 action",
						})
					}
				}
				return issues
			}),
			NewRule("form.primary-action", LevelMust, "every form has exactly one primary-role action", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindForm) {
					primaries := 0
					for _, a := range v.Node.Actions {
						if a.Kind == models.KindButton && a.Role == "primary" {
							primaries++
						}
					}
					if primaries != 1 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "form.primary-action",
							Source:   SourceFormBasic,
							Message:  fmt.Sprintf("form %q needs exactly one primary action", v.Node.ID),
							Found:    fmt.Sprintf("%d primary actions", primaries),
							Expected: "1 primary action",
						})
					}
				}
				return issues
			}),
		},
		Should: []Rule{
			NewRule("form.fields-labeled", LevelShould, "every field carries a visible label", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visits {
					if v.Node.Kind == models.KindField && strings.TrimSpace(v.Node.Label) == "" {
						issues = append(issues, models.Issue{
							Severity: models.SeverityWarning,
							Path:     v.Path,
							Code:     "form.fields-labeled",
							Source:   SourceFormBasic,
							Message:  fmt.Sprintf("field %q has no label", v.Node.ID),
							Found:    "empty label",
							Expected: "a visible label",
						})
					}
				}
				return issues
			}),
			NewRule("form.action-count", LevelShould, "forms expose at most three actions", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindForm) {
					if len(v.Node.Actions) > 3 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityWarning,
							Path:     v.Path,
							Code:     "form.action-count",
							Source:   SourceFormBasic,
							Message:  fmt.Sprintf("form %q offers too many actions", v.Node.ID),
							Found:    fmt.Sprintf("%d actions", len(v.Node.Actions)),
							Expected: "at most 3 actions",
						})
					}
				}
				return issues
			}),
			NewRule("form.primary-last", LevelShould, "the primary action comes last in the actions slot", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindForm) {
					actions := v.Node.Actions
					for i, a := range actions {
						if a.Kind == models.KindButton && a.Role == "primary" && i != len(actions)-1 {
							issues = append(issues, models.Issue{
								Severity: models.SeverityWarning,
								Path:     v.Path.Child("actions", i),
								Code:     "form.primary-last",
								Source:   SourceFormBasic,
								Message:  fmt.Sprintf("primary action %q is not the last action", a.ID),
								Found:    fmt.Sprintf("position %d of %d", i+1, len(actions)),
								Expected: "primary action in final position",
							})
						}
					}
				}
				return issues
			}),
		},
	}
}

// guidedFlow checks stepper/wizard screens: forward navigation must exist and
// every navigation control must be keyboard-reachable.
func guidedFlow() Pattern {
	return Pattern{
		Name:   "Guided.Flow",
		Source: SourceGuidedFlow,
		Must: []Rule{
			NewRule("wizard.forward-nav", LevelMust, "a visible Next or Continue button exists", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				for _, v := range visits {
					if isForwardNav(v.Node) {
						return nil
					}
				}
				return []models.Issue{{
					Severity: models.SeverityError,
					Code:     "wizard.forward-nav",
					Source:   SourceGuidedFlow,
					Message:  "no visible Next or Continue button",
					Found:    "no forward navigation",
					Expected: `a button labeled "Next" or "Continue"`,
				}}
			}),
			NewRule("wizard.nav-focusable", LevelMust, "every navigation button is keyboard-focusable", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visits {
					if isNavButton(v.Node) && !flow.IsFocusable(v.Node) {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "wizard.nav-focusable",
							Source:   SourceGuidedFlow,
							Message:  fmt.Sprintf("navigation button %q cannot receive keyboard focus", v.Node.ID),
							Found:    "focusable: false",
							Expected: "focusable navigation",
						})
					}
				}
				return issues
			}),
		},
		Should: []Rule{
			NewRule("wizard.backward-nav", LevelShould, "a Previous or Back button exists", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				for _, v := range visits {
					if isBackwardNav(v.Node) {
						return nil
					}
				}
				return []models.Issue{{
					Severity: models.SeverityWarning,
					Code:     "wizard.backward-nav",
					Source:   SourceGuidedFlow,
					Message:  "no visible Previous or Back button",
					Found:    "no backward navigation",
					Expected: `a button labeled "Previous" or "Back"`,
				}}
			}),
			NewRule("wizard.progress", LevelShould, "a step-progress text is shown", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				for _, v := range visits {
					if v.Node.Kind == models.KindText && strings.Contains(strings.ToLower(v.Node.Label), "step") {
						return nil
					}
				}
				return []models.Issue{{
					Severity: models.SeverityWarning,
					Code:     "wizard.progress",
					Source:   SourceGuidedFlow,
					Message:  "no text node indicating step progress",
					Found:    "no progress indicator",
					Expected: `a text like "Step 2 of 4"`,
				}}
			}),
		},
	}
}

// tableSimple checks data-table screens for columns and a responsive strategy.
func tableSimple() Pattern {
	return Pattern{
		Name:   "Table.Simple",
		Source: SourceTableSimple,
		Must: []Rule{
			NewRule("table.present", LevelMust, "the screen contains at least one visible table", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				if len(visitsOf(visits, models.KindTable)) > 0 {
					return nil
				}
				return []models.Issue{{
					Severity: models.SeverityError,
					Code:     "table.present",
					Source:   SourceTableSimple,
					Message:  "no visible table node in the tree",
					Found:    "0 tables",
					Expected: "at least 1 table",
				}}
			}),
			NewRule("table.columns", LevelMust, "every table defines at least one column", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindTable) {
					if len(v.Node.Columns) == 0 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "table.columns",
							Source:   SourceTableSimple,
							Message:  fmt.Sprintf("table %q defines no columns", v.Node.ID),
							Found:    "0 columns",
							Expected: "at least 1 column",
						})
					}
				}
				return issues
			}),
			NewRule("table.responsive", LevelMust, "every table declares a responsive strategy", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindTable) {
					if v.Node.Responsive == "" {
						issues = append(issues, models.Issue{
							Severity: models.SeverityError,
							Path:     v.Path,
							Code:     "table.responsive",
							Source:   SourceTableSimple,
							Message:  fmt.Sprintf("table %q declares no responsive strategy", v.Node.ID),
							Found:    "no strategy",
							Expected: `"stack", "scroll", or "collapse"`,
						})
					}
				}
				return issues
			}),
		},
		Should: []Rule{
			NewRule("table.caption", LevelShould, "every table carries a caption", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindTable) {
					if strings.TrimSpace(v.Node.Label) == "" {
						issues = append(issues, models.Issue{
							Severity: models.SeverityWarning,
							Path:     v.Path,
							Code:     "table.caption",
							Source:   SourceTableSimple,
							Message:  fmt.Sprintf("table %q has no caption", v.Node.ID),
							Found:    "empty label",
							Expected: "a table caption",
						})
					}
				}
				return issues
			}),
			NewRule("table.column-count", LevelShould, "tables stay readable at six columns or fewer", func(root *models.Node) []models.Issue {
				visits, bad := visibleVisits(root)
				if bad != nil {
					return bad
				}
				var issues []models.Issue
				for _, v := range visitsOf(visits, models.KindTable) {
					if len(v.Node.Columns) > 6 {
						issues = append(issues, models.Issue{
							Severity: models.SeverityWarning,
							Path:     v.Path,
							Code:     "table.column-count",
							Source:   SourceTableSimple,
							Message:  fmt.Sprintf("table %q has too many columns", v.Node.ID),
							Found:    fmt.Sprintf("%d columns", len(v.Node.Columns)),
							Expected: "at most 6 columns",
						})
					}
				}
				return issues
			}),
		},
	}
}
