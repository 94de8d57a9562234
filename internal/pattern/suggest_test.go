package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/uigate/internal/models"
)

func suggestionFor(t *testing.T, suggestions []Suggestion, name string) Suggestion {
	t.Helper()
	for _, sg := range suggestions {
		if sg.Pattern == name {
			return sg
		}
	}
	t.Fatalf("no suggestion for %s", name)
	return Suggestion{}
}

// TestSuggest_FullFormMatch verifies a complete form hits the high band at
// the scale ceiling
func TestSuggest_FullFormMatch(t *testing.T) {
	sg := suggestionFor(t, NewSuggester().Suggest(signInForm()), "Form.Basic")

	assert.Equal(t, 100.0, sg.Score)
	assert.Equal(t, BandHigh, sg.Band)
	assert.Len(t, sg.Indicators, 5)
}

// TestSuggest_ZeroMatch verifies a tree with no indicators scores 0 with
// band low
func TestSuggest_ZeroMatch(t *testing.T) {
	tree := &models.Node{ID: "t", Kind: models.KindText, Visible: true, Label: "hello"}
	sg := suggestionFor(t, NewSuggester().Suggest(tree), "Table.Simple")

	assert.Zero(t, sg.Score)
	assert.Equal(t, BandLow, sg.Band)
	assert.Empty(t, sg.Indicators)
}

// TestSuggest_Monotonic verifies adding a corroborating indicator never
// lowers the score
func TestSuggest_Monotonic(t *testing.T) {
	s := NewSuggester()

	form := &models.Node{ID: "f", Kind: models.KindForm, Visible: true}
	root := &models.Node{ID: "r", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{form}}

	prev := suggestionFor(t, s.Suggest(root), "Form.Basic").Score

	// Add indicators one at a time; the score must never drop.
	form.Fields = []*models.Node{{ID: "name", Kind: models.KindField, Visible: true}}
	score := suggestionFor(t, s.Suggest(root), "Form.Basic").Score
	assert.GreaterOrEqual(t, score, prev)
	prev = score

	form.Actions = []*models.Node{{ID: "go", Kind: models.KindButton, Visible: true}}
	score = suggestionFor(t, s.Suggest(root), "Form.Basic").Score
	assert.GreaterOrEqual(t, score, prev)
	prev = score

	form.Actions[0].Role = "primary"
	score = suggestionFor(t, s.Suggest(root), "Form.Basic").Score
	assert.GreaterOrEqual(t, score, prev)
	prev = score

	form.Fields[0].Label = "Name"
	score = suggestionFor(t, s.Suggest(root), "Form.Basic").Score
	assert.GreaterOrEqual(t, score, prev)
}

// TestSuggest_SingleIndicatorStaysLow verifies a lone indicator cannot reach
// the medium band regardless of weight
func TestSuggest_SingleIndicatorStaysLow(t *testing.T) {
	// A bare form node is one 40-point indicator: above the medium
	// boundary but still low for lack of corroboration.
	root := &models.Node{ID: "r", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{{ID: "f", Kind: models.KindForm, Visible: true}}}

	sg := suggestionFor(t, NewSuggester().Suggest(root), "Form.Basic")
	require.Len(t, sg.Indicators, 1)
	assert.Equal(t, 40.0, sg.Score)
	assert.Equal(t, BandLow, sg.Band)
}

// TestSuggest_MediumBand verifies corroborated partial matches land medium
func TestSuggest_MediumBand(t *testing.T) {
	// Form with fields: 40+15 = 55 points, two indicators.
	root := &models.Node{ID: "r", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{{ID: "f", Kind: models.KindForm, Visible: true,
			Fields: []*models.Node{{ID: "a", Kind: models.KindField, Visible: true}}}}}

	sg := suggestionFor(t, NewSuggester().Suggest(root), "Form.Basic")
	assert.Equal(t, 55.0, sg.Score)
	assert.Equal(t, BandMedium, sg.Band)
}

// TestSuggest_ConfigurableThreshold verifies bands follow the configured
// threshold rather than the compile-time constant
func TestSuggest_ConfigurableThreshold(t *testing.T) {
	root := &models.Node{ID: "r", Kind: models.KindStack, Visible: true,
		Children: []*models.Node{{ID: "f", Kind: models.KindForm, Visible: true,
			Fields: []*models.Node{{ID: "a", Kind: models.KindField, Visible: true}}}}}

	s := NewSuggester()
	s.HighThreshold = 50
	sg := suggestionFor(t, s.Suggest(root), "Form.Basic")
	assert.Equal(t, BandHigh, sg.Band)
}

// TestSuggest_OrderingAndAutoSelect verifies descending score order and
// high-band auto-selection
func TestSuggest_OrderingAndAutoSelect(t *testing.T) {
	suggestions := NewSuggester().Suggest(signInForm())
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Form.Basic", suggestions[0].Pattern)
	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t, suggestions[i].Score, suggestions[i-1].Score)
	}

	assert.Equal(t, []string{"Form.Basic"}, AutoSelect(suggestions))
}

// TestSuggest_NilRoot tolerates an empty tree
func TestSuggest_NilRoot(t *testing.T) {
	for _, sg := range NewSuggester().Suggest(nil) {
		assert.Zero(t, sg.Score)
		assert.Equal(t, BandLow, sg.Band)
	}
}
