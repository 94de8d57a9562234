package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/uigate/internal/models"
)

func wrap(root *models.Node) *models.Scaffold {
	return &models.Scaffold{Name: "test", Root: root}
}

func page(children ...*models.Node) *models.Node {
	return &models.Node{ID: "page", Kind: models.KindStack, Visible: true, Children: children}
}

// TestCompare_Identical verifies equal trees report no changes
func TestCompare_Identical(t *testing.T) {
	build := func() *models.Scaffold {
		return wrap(page(
			&models.Node{ID: "title", Kind: models.KindText, Visible: true, Label: "Orders"},
			&models.Node{ID: "go", Kind: models.KindButton, Visible: true, Label: "Go", Role: "primary"},
		))
	}
	assert.Empty(t, Compare(build(), build()))
}

// TestCompare_AddedAndRemoved verifies trailing slot positions report as
// additions and removals
func TestCompare_AddedAndRemoved(t *testing.T) {
	old := wrap(page(
		&models.Node{ID: "a", Kind: models.KindText, Visible: true},
		&models.Node{ID: "b", Kind: models.KindText, Visible: true},
	))
	new := wrap(page(
		&models.Node{ID: "a", Kind: models.KindText, Visible: true},
	))

	changes := Compare(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeRemoved, changes[0].Type)
	assert.Equal(t, "b", changes[0].NodeID)
	assert.Equal(t, "children[1]", changes[0].Path.String())

	changes = Compare(new, old)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeAdded, changes[0].Type)
	assert.Equal(t, "b", changes[0].NodeID)
}

// TestCompare_KindChangeStopsDescent verifies a kind change reports once and
// does not produce changes for the subtrees
func TestCompare_KindChangeStopsDescent(t *testing.T) {
	old := wrap(page(
		&models.Node{ID: "list", Kind: models.KindStack, Visible: true,
			Children: []*models.Node{{ID: "x", Kind: models.KindText, Visible: true}}},
	))
	new := wrap(page(
		&models.Node{ID: "list", Kind: models.KindTable, Visible: true, Columns: []string{"a"}},
	))

	changes := Compare(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeKind, changes[0].Type)
	assert.Contains(t, changes[0].Detail, "stack became table")
}

// TestCompare_Modified verifies attribute changes on a matching position,
// including an id change, report as one modification
func TestCompare_Modified(t *testing.T) {
	old := wrap(page(
		&models.Node{ID: "submit", Kind: models.KindButton, Visible: true, Label: "Submit", Role: "primary"},
	))
	new := wrap(page(
		&models.Node{ID: "send", Kind: models.KindButton, Visible: true, Label: "Send", Role: "primary"},
	))

	changes := Compare(old, new)
	require.Len(t, changes, 1)
	c := changes[0]
	assert.Equal(t, ChangeModified, c.Type)
	assert.Equal(t, "submit", c.NodeID, "old side carries the id")
	assert.Contains(t, c.Detail, `id "submit" -> "send"`)
	assert.Contains(t, c.Detail, `label "Submit" -> "Send"`)
}

// TestCompare_FocusableTristate verifies unset and explicit focusable are
// distinct values
func TestCompare_FocusableTristate(t *testing.T) {
	f := false
	old := wrap(page(&models.Node{ID: "b", Kind: models.KindButton, Visible: true, Label: "B"}))
	new := wrap(page(&models.Node{ID: "b", Kind: models.KindButton, Visible: true, Label: "B", Focusable: &f}))

	changes := Compare(old, new)
	require.Len(t, changes, 1)
	assert.Contains(t, changes[0].Detail, `focusable "unset" -> "false"`)
}

// TestCompare_FormSlots verifies fields and actions compare independently
func TestCompare_FormSlots(t *testing.T) {
	form := func(fieldLabel string) *models.Node {
		return &models.Node{ID: "login", Kind: models.KindForm, Visible: true,
			Fields: []*models.Node{
				{ID: "email", Kind: models.KindField, Visible: true, Label: fieldLabel},
			},
			Actions: []*models.Node{
				{ID: "submit", Kind: models.KindButton, Visible: true, Label: "Sign in", Role: "primary"},
			}}
	}
	changes := Compare(wrap(page(form("Email"))), wrap(page(form("Work email"))))
	require.Len(t, changes, 1)
	assert.Equal(t, "children[0].fields[0]", changes[0].Path.String())
}

func TestCompare_NilScaffolds(t *testing.T) {
	assert.Empty(t, Compare(nil, nil))

	changes := Compare(nil, wrap(page()))
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeAdded, changes[0].Type)
	assert.Equal(t, "root", changes[0].Path.String())
}
