// Package parser ingests scaffold documents: YAML files and Markdown design
// docs carrying a fenced scaffold block. It validates raw input shape,
// applies defaults, and hands the analysis core a normalized, well-typed
// tree — or a set of shape-validation Issues when the document is malformed.
package parser

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/uigate/internal/models"
)

const sourceIngest = "ingest"

// rawNode mirrors models.Node with pointer fields where absence matters for
// defaulting, and without any slot/kind coupling so shape errors can be
// reported instead of dropped by the decoder.
type rawNode struct {
	ID          string        `yaml:"id"`
	Kind        string        `yaml:"kind"`
	Visible     *bool         `yaml:"visible"`
	Sizing      models.Sizing `yaml:"sizing"`
	Label       string        `yaml:"label"`
	Role        string        `yaml:"role"`
	Focusable   *bool         `yaml:"focusable"`
	TabIndex    int           `yaml:"tab_index"`
	Gap         int           `yaml:"gap"`
	GridColumns int           `yaml:"grid_columns"`
	Columns     []string      `yaml:"columns"`
	Responsive  string        `yaml:"responsive"`
	Children    []*rawNode    `yaml:"children"`
	Child       *rawNode      `yaml:"child"`
	Fields      []*rawNode    `yaml:"fields"`
	Actions     []*rawNode    `yaml:"actions"`
}

type rawSettings struct {
	SpacingScale   []int             `yaml:"spacing_scale"`
	MinTouchTarget int               `yaml:"min_touch_target"`
	Breakpoints    []models.Viewport `yaml:"breakpoints"`
}

type rawScaffold struct {
	Name     string       `yaml:"name"`
	Settings *rawSettings `yaml:"settings"`
	Root     *rawNode     `yaml:"root"`
}

// DefaultSettings returns the settings applied when a document omits them:
// a small spacing scale, the 44px touch target, and the standard three
// breakpoints.
func DefaultSettings() models.Settings {
	return models.Settings{
		SpacingScale:   []int{4, 8, 12, 16, 24, 32},
		MinTouchTarget: 44,
		Breakpoints: []models.Viewport{
			{Name: "mobile", Width: 375},
			{Name: "tablet", Width: 768},
			{Name: "desktop", Width: 1280},
		},
	}
}

// Parse decodes a YAML scaffold document and normalizes it.
//
// A syntactically invalid document returns an error. A well-formed document
// with shape violations (missing or duplicate ids, unrecognized kinds, slots
// used by the wrong kind) returns a nil scaffold plus the validation Issues.
// Otherwise the returned scaffold is normalized: visible defaults to true and
// settings are filled from DefaultSettings.
func Parse(data []byte) (*models.Scaffold, []models.Issue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawScaffold
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode scaffold: %w", err)
	}
	if raw.Root == nil {
		return nil, []models.Issue{{
			Severity: models.SeverityError,
			Code:     "ingest.missing-root",
			Source:   sourceIngest,
			Message:  "scaffold has no root node",
		}}, nil
	}

	n := &normalizer{seen: map[string]bool{}}
	root := n.node(raw.Root, nil)
	if len(n.issues) > 0 {
		return nil, n.issues, nil
	}

	sc := &models.Scaffold{
		Name:     raw.Name,
		Settings: DefaultSettings(),
		Root:     root,
	}
	if raw.Settings != nil {
		if len(raw.Settings.SpacingScale) > 0 {
			sc.Settings.SpacingScale = raw.Settings.SpacingScale
		}
		if raw.Settings.MinTouchTarget > 0 {
			sc.Settings.MinTouchTarget = raw.Settings.MinTouchTarget
		}
		if len(raw.Settings.Breakpoints) > 0 {
			sc.Settings.Breakpoints = raw.Settings.Breakpoints
		}
	}
	return sc, nil, nil
}

type normalizer struct {
	seen   map[string]bool
	issues []models.Issue
}

func (nz *normalizer) fail(path models.Path, code, msg, found, expected string) {
	nz.issues = append(nz.issues, models.Issue{
		Severity: models.SeverityError,
		Path:     path,
		Code:     code,
		Source:   sourceIngest,
		Message:  msg,
		Found:    found,
		Expected: expected,
	})
}

// node validates one raw node and converts it, recursing through whichever
// slots its kind owns. Slots a kind does not own are shape errors, not data
// to silently carry along.
func (nz *normalizer) node(raw *rawNode, path models.Path) *models.Node {
	kind := models.Kind(strings.ToLower(strings.TrimSpace(raw.Kind)))
	if !models.KnownKind(kind) {
		nz.fail(path, "ingest.unknown-kind",
			fmt.Sprintf("kind %q is not recognized", raw.Kind),
			raw.Kind, "one of stack, grid, box, text, button, field, form, table")
		return nil
	}
	if strings.TrimSpace(raw.ID) == "" {
		nz.fail(path, "ingest.missing-id", "node has no id", "empty id", "a unique node id")
	} else if nz.seen[raw.ID] {
		nz.fail(path, "ingest.duplicate-id",
			fmt.Sprintf("id %q is used by more than one node", raw.ID),
			raw.ID, "ids unique across the tree")
	} else {
		nz.seen[raw.ID] = true
	}

	node := &models.Node{
		ID:          raw.ID,
		Kind:        kind,
		Visible:     raw.Visible == nil || *raw.Visible,
		Sizing:      raw.Sizing,
		Label:       raw.Label,
		Role:        raw.Role,
		Focusable:   raw.Focusable,
		TabIndex:    raw.TabIndex,
		Gap:         raw.Gap,
		GridColumns: raw.GridColumns,
		Columns:     raw.Columns,
		Responsive:  raw.Responsive,
	}

	ownsChildren := kind == models.KindStack || kind == models.KindGrid
	ownsChild := kind == models.KindBox
	ownsForm := kind == models.KindForm

	if len(raw.Children) > 0 && !ownsChildren {
		nz.fail(path, "ingest.wrong-slot",
			fmt.Sprintf("%s %q cannot carry a children slot", kind, raw.ID),
			"children slot", "children only on stack and grid")
	}
	if raw.Child != nil && !ownsChild {
		nz.fail(path, "ingest.wrong-slot",
			fmt.Sprintf("%s %q cannot carry a child slot", kind, raw.ID),
			"child slot", "child only on box")
	}
	if (len(raw.Fields) > 0 || len(raw.Actions) > 0) && !ownsForm {
		nz.fail(path, "ingest.wrong-slot",
			fmt.Sprintf("%s %q cannot carry fields or actions slots", kind, raw.ID),
			"fields/actions slots", "fields and actions only on form")
	}
	if raw.Responsive != "" && !validResponsive(raw.Responsive) {
		nz.fail(path, "ingest.bad-responsive",
			fmt.Sprintf("%q is not a responsive strategy", raw.Responsive),
			raw.Responsive, `"stack", "scroll", or "collapse"`)
	}

	if ownsChildren {
		for i, c := range raw.Children {
			node.Children = append(node.Children, nz.node(c, path.Child("children", i)))
		}
	}
	if ownsChild && raw.Child != nil {
		node.Child = nz.node(raw.Child, path.Child("child", 0))
	}
	if ownsForm {
		for i, c := range raw.Fields {
			node.Fields = append(node.Fields, nz.node(c, path.Child("fields", i)))
		}
		for i, c := range raw.Actions {
			node.Actions = append(node.Actions, nz.node(c, path.Child("actions", i)))
		}
	}
	return node
}

func validResponsive(s string) bool {
	switch s {
	case "stack", "scroll", "collapse":
		return true
	}
	return false
}

// ParseFile loads a scaffold from disk, dispatching on extension: .md and
// .markdown documents go through fenced-block extraction first, everything
// else is treated as plain YAML.
func ParseFile(path string) (*models.Scaffold, []models.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scaffold file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		block, err := ExtractScaffoldBlock(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		data = block
	}
	sc, issues, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc != nil && sc.Name == "" {
		name := filepath.Base(path)
		sc.Name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return sc, issues, nil
}
