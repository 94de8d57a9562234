package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/uigate/internal/models"
)

// signInForm is a well-formed Form.Basic tree.
func signInForm() *models.Node {
	return &models.Node{
		ID: "screen", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{
			{ID: "form", Kind: models.KindForm, Visible: true,
				Fields: []*models.Node{
					{ID: "email", Kind: models.KindField, Visible: true, Label: "Email"},
					{ID: "password", Kind: models.KindField, Visible: true, Label: "Password"},
				},
				Actions: []*models.Node{
					{ID: "submit", Kind: models.KindButton, Visible: true, Label: "Sign in", Role: "primary"},
				}},
		},
	}
}

// TestFormBasic_CleanFormPasses verifies a well-formed form passes every rule
func TestFormBasic_CleanFormPasses(t *testing.T) {
	p, err := Lookup("Form.Basic")
	require.NoError(t, err)

	res := ValidatePattern(p, signInForm())
	assert.Zero(t, res.MustFailed, "issues: %v", res.Issues)
	assert.Zero(t, res.ShouldFailed, "issues: %v", res.Issues)
	assert.Equal(t, len(p.Must), res.MustPassed)
	assert.Equal(t, len(p.Should), res.ShouldPassed)
}

// TestFormBasic_MissingPrimaryAction verifies the primary-action MUST rule
func TestFormBasic_MissingPrimaryAction(t *testing.T) {
	tree := signInForm()
	tree.Children[0].Actions[0].Role = "secondary"

	p, err := Lookup("Form.Basic")
	require.NoError(t, err)
	res := ValidatePattern(p, tree)

	assert.Equal(t, 1, res.MustFailed)
	found := false
	for _, is := range res.Issues {
		if is.Code == "form.primary-action" {
			found = true
			assert.Equal(t, "children[0]", is.Path.String())
			assert.Equal(t, "0 primary actions", is.Found)
		}
	}
	assert.True(t, found, "expected a form.primary-action issue")
}

// TestFormBasic_UnlabeledField verifies the SHOULD rule fails without gating
func TestFormBasic_UnlabeledField(t *testing.T) {
	tree := signInForm()
	tree.Children[0].Fields[0].Label = ""

	p, err := Lookup("Form.Basic")
	require.NoError(t, err)
	res := ValidatePattern(p, tree)

	assert.Zero(t, res.MustFailed)
	assert.Equal(t, 1, res.ShouldFailed)
}

// TestFormBasic_InvisibleFormNotCounted verifies rules only see the visible
// tree
func TestFormBasic_InvisibleFormNotCounted(t *testing.T) {
	tree := signInForm()
	tree.Children[0].Visible = false

	p, err := Lookup("Form.Basic")
	require.NoError(t, err)
	res := ValidatePattern(p, tree)

	// With the only form hidden, form.present must fail.
	assert.GreaterOrEqual(t, res.MustFailed, 1)
}

// TestGuidedFlow_NavRules covers forward-nav presence and nav focusability
func TestGuidedFlow_NavRules(t *testing.T) {
	tree := &models.Node{
		ID: "wizard", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{
			{ID: "progress", Kind: models.KindText, Visible: true, Label: "Step 2 of 4"},
			{ID: "back", Kind: models.KindButton, Visible: true, Label: "Back"},
			{ID: "next", Kind: models.KindButton, Visible: true, Label: "Next"},
		},
	}

	p, err := Lookup("Guided.Flow")
	require.NoError(t, err)
	res := ValidatePattern(p, tree)
	assert.Zero(t, res.MustFailed, "issues: %v", res.Issues)
	assert.Zero(t, res.ShouldFailed, "issues: %v", res.Issues)

	// An unfocusable Next button breaks the nav-focusable MUST rule.
	f := false
	tree.Children[2].Focusable = &f
	res = ValidatePattern(p, tree)
	assert.Equal(t, 1, res.MustFailed)
}

// TestTableSimple_Rules covers the table MUST rules
func TestTableSimple_Rules(t *testing.T) {
	table := &models.Node{
		ID: "orders", Kind: models.KindTable, Visible: true, Label: "Orders",
		Columns: []string{"id", "status", "total"}, Responsive: "scroll",
	}
	tree := &models.Node{ID: "root", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{table}}

	p, err := Lookup("Table.Simple")
	require.NoError(t, err)
	res := ValidatePattern(p, tree)
	assert.Zero(t, res.MustFailed, "issues: %v", res.Issues)

	table.Responsive = ""
	table.Columns = nil
	res = ValidatePattern(p, tree)
	assert.Equal(t, 2, res.MustFailed)
}

// TestLookup_UnknownPattern verifies the configuration error type
func TestLookup_UnknownPattern(t *testing.T) {
	_, err := Lookup("Modal.Dialog")
	require.Error(t, err)

	var unknown *UnknownPatternError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Modal.Dialog", unknown.Name)
}

// TestCatalog_Stable verifies catalog order and attributions
func TestCatalog_Stable(t *testing.T) {
	names := []string{}
	for _, p := range Catalog() {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Source, "pattern %s has no source attribution", p.Name)
		assert.NotEmpty(t, p.Must, "pattern %s has no MUST rules", p.Name)
	}
	assert.Equal(t, []string{"Form.Basic", "Guided.Flow", "Table.Simple"}, names)
}
