package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates a Component from scene-file props.
type ComponentFactory func(props map[string]any) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory used by scene loading.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and creates it with the given props.
func CreateComponent(name string, props map[string]any) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return c, nil
}

// GetRegisteredComponents returns a sorted list of all registered component names.
func GetRegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropFloat reads a numeric prop, accepting the float64 encoding/json produces.
func PropFloat(props map[string]any, key string, fallback float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	}
	return fallback
}

// PropVec3 reads a [x, y, z] prop.
func PropVec3(props map[string]any, key string, fallback [3]float32) [3]float32 {
	v, ok := props[key].([]any)
	if !ok || len(v) < 3 {
		return fallback
	}
	var out [3]float32
	for i := range out {
		f, ok := v[i].(float64)
		if !ok {
			return fallback
		}
		out[i] = float32(f)
	}
	return out
}

func PropBool(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

func PropString(props map[string]any, key string, fallback string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return fallback
}
