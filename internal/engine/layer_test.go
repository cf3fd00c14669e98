package engine

import "testing"

func TestLayerMaskContains(t *testing.T) {
	m := MaskOf(LayerIgnoreRaycast, LayerUI)

	if !m.Contains(LayerIgnoreRaycast) || !m.Contains(LayerUI) {
		t.Error("Mask should contain the layers it was built from")
	}
	if m.Contains(LayerDefault) {
		t.Error("Mask should not contain Default")
	}
}

func TestMaskFromNames(t *testing.T) {
	m, err := MaskFromNames([]string{"UI", "Player"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m != MaskOf(LayerUI, LayerPlayer) {
		t.Errorf("Unexpected mask %b", m)
	}

	if _, err := MaskFromNames([]string{"Nope"}); err == nil {
		t.Error("Expected error for unknown layer")
	}
}

func TestRegisterLayer(t *testing.T) {
	if err := RegisterLayer("Gazeable", 8); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	l, err := NameToLayer("Gazeable")
	if err != nil || l != 8 {
		t.Errorf("Expected layer 8, got %d (%v)", l, err)
	}

	if err := RegisterLayer("Gazeable", 9); err == nil {
		t.Error("Re-registering under another index should fail")
	}
	if err := RegisterLayer("TooHigh", 40); err == nil {
		t.Error("Out of range layer should fail")
	}
}
