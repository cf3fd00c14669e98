package world

import (
	"encoding/json"
	"fmt"
	"os"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	// Layers names user layers (index 4 and up) before objects refer to them.
	Layers  map[string]int `json:"layers,omitempty"`
	Objects []ObjectDef    `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Layer      string           `json:"layer,omitempty"`
	Parent     string           `json:"parent,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components"`
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

// LoadSceneData builds objects from scene JSON. Parents must appear before
// their children.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for name, index := range sf.Layers {
		if err := engine.RegisterLayer(name, engine.Layer(index)); err != nil {
			return fmt.Errorf("scene layers: %w", err)
		}
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return fmt.Errorf("object %q: %w", objDef.Name, err)
		}

		if objDef.Parent != "" {
			parent := w.Scene.FindByName(objDef.Parent)
			if parent == nil {
				return fmt.Errorf("object %q: parent %q not found", objDef.Name, objDef.Parent)
			}
			parent.AddChild(g)
		}

		w.AddObject(g)
	}

	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	if def.Layer != "" {
		layer, err := engine.NameToLayer(def.Layer)
		if err != nil {
			return nil, err
		}
		g.Layer = layer
	}
	if def.Active != nil {
		g.Active = *def.Active
	}

	for _, props := range def.Components {
		typeName, _ := props["type"].(string)
		if typeName == "" {
			return nil, fmt.Errorf("component without type")
		}
		c, err := engine.CreateComponent(typeName, props)
		if err != nil {
			return nil, err
		}
		g.AddComponent(c)
	}
	return g, nil
}
