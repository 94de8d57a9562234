// Package flow implements the tree-walking contract shared by every analysis
// stage: deterministic pre-order traversal, the keyboard focusability
// classifier, and the reachability analysis whose findings feed the score
// gate.
package flow

import "github.com/harrison/uigate/internal/models"

// Visit pairs a node with its structural path from the root.
type Visit struct {
	Node *models.Node
	Path models.Path
}

// Walk returns the pre-order visit sequence for the tree rooted at root.
// Parents are emitted before descendants; within each slot children are
// visited left to right; Form visits its fields slot before its actions slot.
//
// When visibleOnly is true, a node with visible=false is excluded along with
// its entire subtree: an invisible node's subtree is unreachable, even if a
// descendant is itself marked visible.
//
// A node whose kind is outside the recognized variant set stops the walk with
// *models.UnknownKindError. Skipping it silently would corrupt the
// reachability counts used for scoring, so it is surfaced to the caller.
//
// A nil root yields an empty sequence.
func Walk(root *models.Node, visibleOnly bool) ([]Visit, error) {
	var visits []Visit
	if root == nil {
		return visits, nil
	}
	if err := walk(root, nil, visibleOnly, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func walk(n *models.Node, path models.Path, visibleOnly bool, out *[]Visit) error {
	if visibleOnly && !n.Visible {
		return nil
	}
	*out = append(*out, Visit{Node: n, Path: path})

	switch n.Kind {
	case models.KindStack, models.KindGrid:
		for i, child := range n.Children {
			if err := walk(child, path.Child("children", i), visibleOnly, out); err != nil {
				return err
			}
		}
	case models.KindBox:
		if n.Child != nil {
			if err := walk(n.Child, path.Child("child", 0), visibleOnly, out); err != nil {
				return err
			}
		}
	case models.KindForm:
		for i, child := range n.Fields {
			if err := walk(child, path.Child("fields", i), visibleOnly, out); err != nil {
				return err
			}
		}
		for i, child := range n.Actions {
			if err := walk(child, path.Child("actions", i), visibleOnly, out); err != nil {
				return err
			}
		}
	case models.KindText, models.KindButton, models.KindField, models.KindTable:
		// Leaf kinds own no child slots.
	default:
		return &models.UnknownKindError{NodeID: n.ID, Kind: n.Kind}
	}
	return nil
}

// Traverse returns the pre-order node sequence. See Walk for ordering and
// visibility semantics.
func Traverse(root *models.Node, visibleOnly bool) ([]*models.Node, error) {
	visits, err := Walk(root, visibleOnly)
	if err != nil {
		return nil, err
	}
	nodes := make([]*models.Node, len(visits))
	for i, v := range visits {
		nodes[i] = v.Node
	}
	return nodes, nil
}

// TraverseIDs returns just the node identifiers, preserving traversal order.
func TraverseIDs(root *models.Node, visibleOnly bool) ([]string, error) {
	visits, err := Walk(root, visibleOnly)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(visits))
	for i, v := range visits {
		ids[i] = v.Node.ID
	}
	return ids, nil
}
