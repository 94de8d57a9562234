package flow

import (
	"testing"

	"github.com/harrison/uigate/internal/models"
)

func boolPtr(b bool) *bool { return &b }

// TestIsFocusable covers the precedence order: visibility first, then
// kind-specific defaults, then the explicit declaration
func TestIsFocusable(t *testing.T) {
	tests := []struct {
		name string
		node *models.Node
		want bool
	}{
		{
			name: "visible button defaults to focusable",
			node: &models.Node{Kind: models.KindButton, Visible: true},
			want: true,
		},
		{
			name: "button with explicit focusable false is never focusable",
			node: &models.Node{Kind: models.KindButton, Visible: true, Focusable: boolPtr(false)},
			want: false,
		},
		{
			name: "visible field is always focusable",
			node: &models.Node{Kind: models.KindField, Visible: true},
			want: true,
		},
		{
			name: "field has no opt-out",
			node: &models.Node{Kind: models.KindField, Visible: true, Focusable: boolPtr(false)},
			want: true,
		},
		{
			name: "invisible field is never focusable",
			node: &models.Node{Kind: models.KindField, Visible: false},
			want: false,
		},
		{
			name: "invisible button is never focusable",
			node: &models.Node{Kind: models.KindButton, Visible: false, Focusable: boolPtr(true)},
			want: false,
		},
		{
			name: "text is not focusable by default",
			node: &models.Node{Kind: models.KindText, Visible: true},
			want: false,
		},
		{
			name: "text with explicit focusable true is focusable",
			node: &models.Node{Kind: models.KindText, Visible: true, Focusable: boolPtr(true)},
			want: true,
		},
		{
			name: "stack with explicit focusable false stays unfocusable",
			node: &models.Node{Kind: models.KindStack, Visible: true, Focusable: boolPtr(false)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFocusable(tt.node); got != tt.want {
				t.Errorf("IsFocusable() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTabIndex verifies the zero default
func TestTabIndex(t *testing.T) {
	if got := TabIndex(&models.Node{Kind: models.KindButton}); got != 0 {
		t.Errorf("default tab index: expected 0, got %d", got)
	}
	if got := TabIndex(&models.Node{Kind: models.KindButton, TabIndex: 3}); got != 3 {
		t.Errorf("declared tab index: expected 3, got %d", got)
	}
}
