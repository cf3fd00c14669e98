package engine

import "testing"

type MockComponent struct {
	BaseComponent
	Speed float32
}

func mockFactory(props map[string]any) (Component, error) {
	return &MockComponent{Speed: PropFloat(props, "speed", 1)}, nil
}

func TestRegisterAndCreateComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("Mock", mockFactory)

	c, err := CreateComponent("Mock", map[string]any{"speed": 2.5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mock, ok := c.(*MockComponent)
	if !ok {
		t.Fatalf("Expected *MockComponent, got %T", c)
	}
	if mock.Speed != 2.5 {
		t.Errorf("Expected speed 2.5, got %f", mock.Speed)
	}
}

func TestCreateUnknownComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	if _, err := CreateComponent("Missing", nil); err == nil {
		t.Error("Expected error for unregistered component")
	}
}

func TestRegisterComponentDuplicatePanics(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("Mock", mockFactory)

	defer func() {
		if recover() == nil {
			t.Error("Duplicate registration should panic")
		}
	}()
	RegisterComponent("Mock", mockFactory)
}

func TestGetRegisteredComponentsSorted(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("Zeta", mockFactory)
	RegisterComponent("Alpha", mockFactory)

	names := GetRegisteredComponents()
	if len(names) != 2 || names[0] != "Alpha" || names[1] != "Zeta" {
		t.Errorf("Expected [Alpha Zeta], got %v", names)
	}
}

func TestPropHelpers(t *testing.T) {
	props := map[string]any{
		"size":  []any{1.0, 2.0, 3.0},
		"on":    true,
		"name":  "cube",
		"short": []any{1.0},
	}

	if v := PropVec3(props, "size", [3]float32{}); v != [3]float32{1, 2, 3} {
		t.Errorf("Unexpected vec3 %v", v)
	}
	if v := PropVec3(props, "short", [3]float32{9, 9, 9}); v != [3]float32{9, 9, 9} {
		t.Errorf("Short array should fall back, got %v", v)
	}
	if !PropBool(props, "on", false) {
		t.Error("Expected true")
	}
	if PropString(props, "name", "") != "cube" {
		t.Error("Expected 'cube'")
	}
	if PropFloat(props, "missing", 4) != 4 {
		t.Error("Missing float should fall back")
	}
}
