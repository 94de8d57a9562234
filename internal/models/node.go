// Package models defines the scaffold document model shared by every analysis
// stage: the node tree produced by ingest, the Issue diagnostic record, and
// the errors that mark upstream contract violations. All types here are plain
// values; analysis stages produce them and never mutate them afterwards.
package models

import "fmt"

// Kind identifies the variant of a scaffold node. The set is closed: traversal
// and rule checks switch exhaustively over it, and an unrecognized kind is an
// upstream contract violation, not something to skip over.
type Kind string

// Recognized node kinds.
const (
	KindStack  Kind = "stack"
	KindGrid   Kind = "grid"
	KindBox    Kind = "box"
	KindText   Kind = "text"
	KindButton Kind = "button"
	KindField  Kind = "field"
	KindForm   Kind = "form"
	KindTable  Kind = "table"
)

// KnownKind reports whether k is in the recognized variant set.
func KnownKind(k Kind) bool {
	switch k {
	case KindStack, KindGrid, KindBox, KindText, KindButton, KindField, KindForm, KindTable:
		return true
	}
	return false
}

// Sizing describes a node's sizing policy per axis.
// Values are "hug", "fill", or a fixed pixel count written as "240px".
type Sizing struct {
	Width  string `yaml:"width,omitempty" json:"width,omitempty"`
	Height string `yaml:"height,omitempty" json:"height,omitempty"`
}

// Node is one element of the scaffold tree. A single struct carries the union
// of kind-specific attributes; which fields are meaningful depends on Kind
// (ingest rejects slots used by the wrong kind, so the core can trust that a
// Box never has Children and a Form never has a single Child).
//
// Ownership is strictly tree-shaped: children belong to exactly one parent and
// there are no back-references, so walking declared child slots can never
// revisit a node.
type Node struct {
	// ID is unique across the whole tree. Uniqueness is established by
	// ingest; this core assumes it.
	ID   string `yaml:"id" json:"id"`
	Kind Kind   `yaml:"kind" json:"kind"`

	// Visible defaults to true. An invisible node's entire subtree is
	// excluded from visible traversal.
	Visible bool `yaml:"visible" json:"visible"`

	Sizing Sizing `yaml:"sizing,omitempty" json:"sizing,omitempty"`

	// Label is the visible text of Text, Button, and Field nodes and the
	// caption of Table nodes.
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	// Role is a hint on Button nodes: "primary", "secondary", "danger".
	Role string `yaml:"role,omitempty" json:"role,omitempty"`

	// Focusable is tri-state: nil means "no explicit declaration".
	// Buttons default to focusable, Fields are always focusable, and every
	// other kind is focusable only when this is explicitly true.
	Focusable *bool `yaml:"focusable,omitempty" json:"focusable,omitempty"`

	// TabIndex orders keyboard focus; absent means 0. Consumers sort by
	// this value with a stable tie-break on traversal order.
	TabIndex int `yaml:"tab_index,omitempty" json:"tab_index,omitempty"`

	// Gap is the spacing between children of Stack and Grid nodes, in px.
	Gap int `yaml:"gap,omitempty" json:"gap,omitempty"`

	// GridColumns is the column count of Grid nodes.
	GridColumns int `yaml:"grid_columns,omitempty" json:"grid_columns,omitempty"`

	// Columns names the columns of Table nodes.
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty"`

	// Responsive names the responsive strategy of Table nodes:
	// "stack", "scroll", or "collapse".
	Responsive string `yaml:"responsive,omitempty" json:"responsive,omitempty"`

	// Children is the ordered child list of Stack and Grid nodes.
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`

	// Child is the single optional child of Box nodes.
	Child *Node `yaml:"child,omitempty" json:"child,omitempty"`

	// Fields and Actions are the two ordered slots of Form nodes.
	// Traversal always visits fields before actions.
	Fields  []*Node `yaml:"fields,omitempty" json:"fields,omitempty"`
	Actions []*Node `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// IsInteractive reports whether the node kind accepts user input.
func (n *Node) IsInteractive() bool {
	return n.Kind == KindButton || n.Kind == KindField
}

// IsContainer reports whether the node kind owns child slots.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case KindStack, KindGrid, KindBox, KindForm:
		return true
	}
	return false
}

// Viewport is one breakpoint the responsive analysis evaluates against.
type Viewport struct {
	Name  string `yaml:"name" json:"name"`
	Width int    `yaml:"width" json:"width"`
}

// Settings holds scaffold-level configuration that analyses consult.
type Settings struct {
	// SpacingScale lists the allowed gap values, in px. Gaps off the scale
	// produce spacing-cluster findings.
	SpacingScale []int `yaml:"spacing_scale" json:"spacing_scale"`

	// MinTouchTarget is the minimum interactive element size in px,
	// enforced by the responsive analysis on narrow viewports.
	MinTouchTarget int `yaml:"min_touch_target" json:"min_touch_target"`

	// Breakpoints are the viewports responsive behavior is scored against.
	Breakpoints []Viewport `yaml:"breakpoints" json:"breakpoints"`
}

// Scaffold is the top-level document: one screen's root tree plus settings.
type Scaffold struct {
	Name     string   `yaml:"name" json:"name"`
	Settings Settings `yaml:"settings" json:"settings"`
	Root     *Node    `yaml:"root" json:"root"`
}

// UnknownKindError reports a node whose kind is outside the recognized variant
// set. Traversal surfaces it instead of skipping the node, because a silent
// skip would corrupt the reachability counts the score gate depends on.
type UnknownKindError struct {
	NodeID string
	Kind   Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("node %q has unrecognized kind %q", e.NodeID, e.Kind)
}
