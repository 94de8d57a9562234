// Package pattern implements the UX pattern catalog, the MUST/SHOULD rule
// engine, and the structural suggestion scorer. Rules are values, not
// subclasses: a pattern is a named bundle of Rule implementations, so rule
// sets can be composed, filtered, and tested in isolation.
package pattern

import (
	"fmt"

	"github.com/harrison/uigate/internal/models"
)

// Level distinguishes blocking rules from advisory ones.
type Level string

const (
	// LevelMust marks a blocking rule: any failure anywhere fails the
	// acceptance gate.
	LevelMust Level = "MUST"

	// LevelShould marks an advisory rule: failures cost score points but
	// never gate.
	LevelShould Level = "SHOULD"
)

// Rule is one conformance check against a scaffold tree. Check must be a
// pure, total function: identical tree in, identical issues out, no shared
// state, no panics escaping (the engine still isolates each rule so one
// misbehaving rule cannot swallow the others' results).
//
// An empty result means the rule passed. A non-empty result counts as exactly
// one failure for the tally regardless of how many issues it carries.
type Rule interface {
	ID() string
	Level() Level
	Describe() string
	Check(root *models.Node) []models.Issue
}

// CheckFunc is the pure function form of a rule check.
type CheckFunc func(root *models.Node) []models.Issue

type funcRule struct {
	id    string
	level Level
	desc  string
	check CheckFunc
}

// NewRule builds a Rule from a check function plus metadata.
func NewRule(id string, level Level, desc string, check CheckFunc) Rule {
	return &funcRule{id: id, level: level, desc: desc, check: check}
}

func (r *funcRule) ID() string       { return r.id }
func (r *funcRule) Level() Level     { return r.level }
func (r *funcRule) Describe() string { return r.desc }

func (r *funcRule) Check(root *models.Node) []models.Issue { return r.check(root) }

// Pattern is a named rule bundle attributed to a UX design source.
type Pattern struct {
	// Name is the catalog identifier, e.g. "Form.Basic".
	Name string

	// Source attributes the pattern's rules, e.g. a design-guideline URL.
	Source string

	Must   []Rule
	Should []Rule
}

// UnknownPatternError is the fatal configuration error for a pattern name
// that is not in the catalog. It is surfaced at lookup time, never silently
// corrected.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern %q: not in the catalog", e.Name)
}
