// Package diff compares two normalized scaffolds structurally, reporting
// nodes that were added, removed, or changed, each located by its tree path.
package diff

import (
	"fmt"
	"strings"

	"github.com/harrison/uigate/internal/models"
)

// ChangeType classifies one structural difference.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeKind     ChangeType = "kind-changed"
	ChangeModified ChangeType = "modified"
)

// Change is one structural difference between two trees.
type Change struct {
	Type ChangeType  `json:"type"`
	Path models.Path `json:"path"`

	// NodeID is the id of the node on the side that has it: the new side
	// for additions, the old side otherwise.
	NodeID string `json:"node_id"`

	Detail string `json:"detail"`
}

func (c Change) String() string {
	return fmt.Sprintf("%-12s %s (%s): %s", c.Type, c.Path, c.NodeID, c.Detail)
}

// Compare walks both trees in the shared slot order and collects their
// differences. Position is identity: the node at children[1] of one tree is
// compared against children[1] of the other, whatever their ids, and an id
// change on a matching position reports as a modification.
func Compare(old, new *models.Scaffold) []Change {
	var changes []Change
	var oldRoot, newRoot *models.Node
	if old != nil {
		oldRoot = old.Root
	}
	if new != nil {
		newRoot = new.Root
	}
	compareNodes(oldRoot, newRoot, nil, &changes)
	return changes
}

func compareNodes(old, new *models.Node, path models.Path, out *[]Change) {
	switch {
	case old == nil && new == nil:
		return
	case old == nil:
		*out = append(*out, Change{
			Type: ChangeAdded, Path: path, NodeID: new.ID,
			Detail: fmt.Sprintf("%s added", new.Kind),
		})
		return
	case new == nil:
		*out = append(*out, Change{
			Type: ChangeRemoved, Path: path, NodeID: old.ID,
			Detail: fmt.Sprintf("%s removed", old.Kind),
		})
		return
	}

	if old.Kind != new.Kind {
		*out = append(*out, Change{
			Type: ChangeKind, Path: path, NodeID: old.ID,
			Detail: fmt.Sprintf("%s became %s", old.Kind, new.Kind),
		})
		// Different kinds own different slots; descending further would
		// compare unrelated structures.
		return
	}

	if detail := attrChanges(old, new); detail != "" {
		*out = append(*out, Change{
			Type: ChangeModified, Path: path, NodeID: old.ID, Detail: detail,
		})
	}

	compareSlot(old.Children, new.Children, path, "children", out)
	compareSlot(old.Fields, new.Fields, path, "fields", out)
	compareSlot(old.Actions, new.Actions, path, "actions", out)

	var oldChild, newChild []*models.Node
	if old.Child != nil {
		oldChild = []*models.Node{old.Child}
	}
	if new.Child != nil {
		newChild = []*models.Node{new.Child}
	}
	compareSlot(oldChild, newChild, path, "child", out)
}

func compareSlot(old, new []*models.Node, path models.Path, slot string, out *[]Change) {
	n := len(old)
	if len(new) > n {
		n = len(new)
	}
	for i := 0; i < n; i++ {
		var o, nw *models.Node
		if i < len(old) {
			o = old[i]
		}
		if i < len(new) {
			nw = new[i]
		}
		compareNodes(o, nw, path.Child(slot, i), out)
	}
}

// attrChanges renders the attribute-level differences between two same-kind
// nodes, or "" when none differ.
func attrChanges(old, new *models.Node) string {
	var parts []string
	record := func(name, from, to string) {
		parts = append(parts, fmt.Sprintf("%s %q -> %q", name, from, to))
	}

	if old.ID != new.ID {
		record("id", old.ID, new.ID)
	}
	if old.Label != new.Label {
		record("label", old.Label, new.Label)
	}
	if old.Role != new.Role {
		record("role", old.Role, new.Role)
	}
	if old.Visible != new.Visible {
		record("visible", fmt.Sprint(old.Visible), fmt.Sprint(new.Visible))
	}
	if old.Responsive != new.Responsive {
		record("responsive", old.Responsive, new.Responsive)
	}
	if old.Sizing != new.Sizing {
		record("sizing", fmt.Sprintf("%s/%s", old.Sizing.Width, old.Sizing.Height),
			fmt.Sprintf("%s/%s", new.Sizing.Width, new.Sizing.Height))
	}
	if old.Gap != new.Gap {
		record("gap", fmt.Sprint(old.Gap), fmt.Sprint(new.Gap))
	}
	if old.GridColumns != new.GridColumns {
		record("grid_columns", fmt.Sprint(old.GridColumns), fmt.Sprint(new.GridColumns))
	}
	if old.TabIndex != new.TabIndex {
		record("tab_index", fmt.Sprint(old.TabIndex), fmt.Sprint(new.TabIndex))
	}
	if focusableString(old.Focusable) != focusableString(new.Focusable) {
		record("focusable", focusableString(old.Focusable), focusableString(new.Focusable))
	}
	if strings.Join(old.Columns, ",") != strings.Join(new.Columns, ",") {
		record("columns", strings.Join(old.Columns, ","), strings.Join(new.Columns, ","))
	}
	return strings.Join(parts, "; ")
}

func focusableString(f *bool) string {
	if f == nil {
		return "unset"
	}
	return fmt.Sprint(*f)
}
