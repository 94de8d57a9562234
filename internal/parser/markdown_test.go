package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractScaffoldBlock_FirstFence verifies prose is stripped and only the
// first matching fence is returned
func TestExtractScaffoldBlock_FirstFence(t *testing.T) {
	doc := "# Checkout design\n\nSome prose about the layout.\n\n" +
		"```yaml\nroot:\n  id: page\n  kind: stack\n```\n\n" +
		"```yaml\nroot:\n  id: second\n  kind: stack\n```\n"

	block, err := ExtractScaffoldBlock([]byte(doc))
	require.NoError(t, err)
	assert.Contains(t, string(block), "id: page")
	assert.NotContains(t, string(block), "id: second")
}

// TestExtractScaffoldBlock_Languages verifies which fence info strings count
// as scaffold blocks
func TestExtractScaffoldBlock_Languages(t *testing.T) {
	for _, lang := range []string{"yaml", "yml", "scaffold"} {
		doc := "```" + lang + "\nroot:\n  id: page\n  kind: stack\n```\n"
		block, err := ExtractScaffoldBlock([]byte(doc))
		require.NoError(t, err, "lang %s", lang)
		assert.Contains(t, string(block), "id: page")
	}

	doc := "```json\n{\"root\": {}}\n```\n"
	_, err := ExtractScaffoldBlock([]byte(doc))
	require.Error(t, err)
}

func TestExtractScaffoldBlock_NoFence(t *testing.T) {
	_, err := ExtractScaffoldBlock([]byte("# Just prose\n\nNothing fenced here.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fenced yaml or scaffold block")
}

// TestParseFile_Markdown verifies the end-to-end markdown ingest path
func TestParseFile_Markdown(t *testing.T) {
	doc := "# Sign in\n\nThe scaffold:\n\n```yaml\nroot:\n  id: page\n  kind: stack\n  children:\n    - id: t\n      kind: text\n      label: Hello\n```\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "sign-in.md")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	sc, issues, err := ParseFile(path)
	require.NoError(t, err)
	require.Empty(t, issues)
	assert.Equal(t, "sign-in", sc.Name)
	require.Len(t, sc.Root.Children, 1)
	assert.Equal(t, "Hello", sc.Root.Children[0].Label)
}
