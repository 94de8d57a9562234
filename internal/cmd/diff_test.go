package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunDiff_Identical verifies identical documents diff clean
func TestRunDiff_Identical(t *testing.T) {
	dir := t.TempDir()
	a := writeScaffold(t, dir, "a.yaml", passingScaffold)
	b := writeScaffold(t, dir, "b.yaml", passingScaffold)

	var out bytes.Buffer
	require.NoError(t, runDiff(a, b, &out, false))
	assert.Contains(t, out.String(), "structurally identical")
}

// TestRunDiff_Changes verifies structural changes print and exit non-zero
func TestRunDiff_Changes(t *testing.T) {
	changed := `name: sign-in
root:
  id: screen
  kind: stack
  gap: 16
  children:
    - id: title
      kind: text
      label: Welcome back
    - id: login
      kind: form
      fields:
        - id: email
          kind: field
          label: Email
      actions:
        - id: submit
          kind: button
          label: Sign in
          role: primary
`
	dir := t.TempDir()
	a := writeScaffold(t, dir, "old.yaml", passingScaffold)
	b := writeScaffold(t, dir, "new.yaml", changed)

	var out bytes.Buffer
	err := runDiff(a, b, &out, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 structural change(s)")
	assert.Contains(t, out.String(), `label "Sign in" -> "Welcome back"`)
}

// TestRunDiff_MalformedInput verifies shape failures abort before comparison
func TestRunDiff_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	a := writeScaffold(t, dir, "a.yaml", passingScaffold)
	bad := writeScaffold(t, dir, "bad.yaml", "root:\n  id: page\n  kind: carousel\n")

	var out bytes.Buffer
	err := runDiff(a, bad, &out, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed shape validation")

	err = runDiff(filepath.Join(dir, "missing.yaml"), a, &out, false)
	require.Error(t, err)
}
