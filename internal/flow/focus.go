package flow

import "github.com/harrison/uigate/internal/models"

// IsFocusable reports whether a node can receive keyboard focus.
// The policy is evaluated in precedence order:
//
//  1. An invisible node is never focusable, regardless of kind.
//  2. A Button is focusable unless it explicitly declares focusable=false.
//  3. A Field is always focusable; there is no override.
//  4. Any other kind is focusable only when it explicitly declares
//     focusable=true.
//
// The predicate is pure and needs no sibling or ancestor context; subtree
// reachability is the traversal's concern, not this one's.
func IsFocusable(n *models.Node) bool {
	if !n.Visible {
		return false
	}
	switch n.Kind {
	case models.KindButton:
		return n.Focusable == nil || *n.Focusable
	case models.KindField:
		return true
	default:
		return n.Focusable != nil && *n.Focusable
	}
}

// TabIndex returns the node's declared tab index, defaulting to 0.
// No uniqueness or ordering validation happens here; consumers sort by this
// value with a stable tie-break on traversal order.
func TabIndex(n *models.Node) int {
	return n.TabIndex
}
