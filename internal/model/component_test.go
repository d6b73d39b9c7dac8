package model

import "testing"

func TestComponent_Capability(t *testing.T) {
	tests := []struct {
		typeName   string
		toggleable bool
	}{
		{"Transform", false},
		{"MeshFilter", false},
		{"Rigidbody", false},
		{"Camera", true},
		{"MeshRenderer", true},
		{"BoxCollider", true},
		{"PlayerController", true}, // unknown types are scripts
	}

	for _, test := range tests {
		c := NewComponent(test.typeName)
		if got := c.IsToggleable(); got != test.toggleable {
			t.Errorf("%s.IsToggleable() = %v, expected %v", test.typeName, got, test.toggleable)
		}
		_, ok := AsTogglable(c)
		if ok != test.toggleable {
			t.Errorf("AsTogglable(%s) ok = %v, expected %v", test.typeName, ok, test.toggleable)
		}
	}
}

func TestComponent_NonTogglableStaysEnabled(t *testing.T) {
	c := NewComponent("Transform")
	c.SetEnabled(false)
	if !c.IsEnabled() {
		t.Error("Non-togglable component must always report enabled")
	}
}

func TestComponent_Missing(t *testing.T) {
	c := NewMissingComponent()
	if c.DisplayName() != "Missing Script" {
		t.Errorf("Expected missing display name, got %s", c.DisplayName())
	}
	c.SetEnabled(false)
	if c.IsEnabled() {
		t.Error("Missing scripts should still toggle")
	}
}

func TestLayerLabel(t *testing.T) {
	if got := LayerLabel(8, "Enemies", true); got != "8: Enemies" {
		t.Errorf("Expected '8: Enemies', got %s", got)
	}
	if got := LayerLabel(8, "Enemies", false); got != "Enemies" {
		t.Errorf("Expected 'Enemies', got %s", got)
	}
}
