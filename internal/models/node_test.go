package models

import "testing"

func TestKnownKind(t *testing.T) {
	for _, k := range []Kind{KindStack, KindGrid, KindBox, KindText, KindButton, KindField, KindForm, KindTable} {
		if !KnownKind(k) {
			t.Errorf("KnownKind(%s) = false", k)
		}
	}
	for _, k := range []Kind{"", "carousel", "Stack", "STACK"} {
		if KnownKind(k) {
			t.Errorf("KnownKind(%q) = true", k)
		}
	}
}

func TestNode_IsInteractive(t *testing.T) {
	interactive := map[Kind]bool{
		KindButton: true,
		KindField:  true,
		KindStack:  false,
		KindText:   false,
		KindForm:   false,
		KindTable:  false,
	}
	for kind, want := range interactive {
		n := &Node{Kind: kind}
		if got := n.IsInteractive(); got != want {
			t.Errorf("IsInteractive(%s) = %v, want %v", kind, got, want)
		}
	}
}

func TestNode_IsContainer(t *testing.T) {
	containers := map[Kind]bool{
		KindStack:  true,
		KindGrid:   true,
		KindBox:    true,
		KindForm:   true,
		KindText:   false,
		KindButton: false,
		KindField:  false,
		KindTable:  false,
	}
	for kind, want := range containers {
		n := &Node{Kind: kind}
		if got := n.IsContainer(); got != want {
			t.Errorf("IsContainer(%s) = %v, want %v", kind, got, want)
		}
	}
}

func TestUnknownKindError_Message(t *testing.T) {
	err := &UnknownKindError{NodeID: "hero", Kind: "carousel"}
	want := `node "hero" has unrecognized kind "carousel"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
