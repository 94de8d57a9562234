package models

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics from advisory to gating.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalJSON renders the severity as its name rather than its ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PathStep is one segment of a structural pointer into the tree: a slot name
// plus the index within that slot. Box's single child uses index 0.
type PathStep struct {
	Slot  string `json:"slot"`
	Index int    `json:"index"`
}

// Path locates a node as the ordered slot/index steps from the root.
// The empty path is the root itself.
type Path []PathStep

// String renders the path in the form "children[0].fields[2]".
// The root renders as "root".
func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, step := range p {
		parts[i] = fmt.Sprintf("%s[%d]", step.Slot, step.Index)
	}
	return strings.Join(parts, ".")
}

// Child returns a new path extended by one step. The receiver is not modified
// and the result shares no backing array with it, so paths recorded during a
// walk stay stable as the walk continues.
func (p Path) Child(slot string, index int) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, PathStep{Slot: slot, Index: index})
}

// Issue is a single diagnostic: where in the tree, how severe, which check
// produced it, and what was found versus expected. Issues are immutable value
// records; rules and analyses produce them and nothing mutates them after.
type Issue struct {
	Severity Severity `json:"severity"`
	Path     Path     `json:"path"`

	// Code is the machine-readable check identifier, e.g. "form.no-primary-action".
	Code string `json:"code"`

	// Source attributes the check to its origin: a pattern source tag or an
	// analysis stage name.
	Source string `json:"source,omitempty"`

	Message  string `json:"message"`
	Found    string `json:"found,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// String renders the issue in one line for logs and test failures.
func (i Issue) String() string {
	s := fmt.Sprintf("[%s] %s at %s: %s", i.Severity, i.Code, i.Path, i.Message)
	if i.Found != "" || i.Expected != "" {
		s += fmt.Sprintf(" (found %q, expected %q)", i.Found, i.Expected)
	}
	return s
}

// CountSeverity returns how many issues in the list have the given severity.
func CountSeverity(issues []Issue, sev Severity) int {
	n := 0
	for _, is := range issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}
