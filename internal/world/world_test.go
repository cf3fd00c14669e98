package world

import (
	"os"
	"path/filepath"
	"testing"
	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gazeScene = `{
  "layers": {"Gazeable": 8},
  "objects": [
    {
      "name": "Player",
      "components": [
        {"type": "HeadTracker", "useMouse": false},
        {"type": "VRInput", "pollHardware": false},
        {"type": "DebugLines"},
        {"type": "GazeRaycaster", "reticle": "Reticle", "exclusionLayers": ["IgnoreRaycast"]}
      ]
    },
    {"name": "Reticle", "components": [{"type": "Reticle"}]},
    {
      "name": "Glass",
      "layer": "IgnoreRaycast",
      "position": [0, 1.7, -3],
      "components": [{"type": "BoxCollider", "size": [2, 2, 0.1]}]
    },
    {
      "name": "Button",
      "layer": "Gazeable",
      "tags": ["button"],
      "position": [0, 1.7, -5],
      "components": [
        {"type": "BoxCollider"},
        {"type": "MeshRenderer", "color": "Gray"},
        {"type": "InteractiveItem"},
        {"type": "GazeHighlighter", "overColor": "Yellow"}
      ]
    },
    {
      "name": "Label",
      "parent": "Button",
      "position": [0, 1, 0],
      "components": [{"type": "MeshRenderer", "mesh": "plane", "size": [1, 0.2, 1]}]
    }
  ]
}`

func loadGazeWorld(t *testing.T) *World {
	t.Helper()
	w := New()
	require.NoError(t, w.LoadSceneData([]byte(gazeScene)))
	return w
}

func TestLoadSceneData(t *testing.T) {
	w := loadGazeWorld(t)

	assert.Len(t, w.Scene.GameObjects, 5)
	assert.Len(t, w.GetCollidableObjects(), 2, "only objects with colliders reach physics")

	button := w.Scene.FindByName("Button")
	require.NotNil(t, button)
	assert.Equal(t, engine.Layer(8), button.Layer)
	assert.True(t, button.HasTag("button"))
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, button.Transform.Scale)

	label := w.Scene.FindByName("Label")
	require.NotNil(t, label)
	assert.Same(t, button, label.Parent)
	assert.InDelta(t, 2.7, label.WorldPosition().Y, 1e-5)

	glass := w.Scene.FindByName("Glass")
	assert.Equal(t, engine.LayerIgnoreRaycast, glass.Layer)
}

func TestLoadSceneFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(gazeScene), 0o644))

	w := New()
	require.NoError(t, w.LoadScene(path))
	assert.NotNil(t, w.Scene.FindByName("Player"))
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{"objects": [`, "parse scene"},
		{"no type", `{"objects": [{"name": "A", "components": [{}]}]}`, "component without type"},
		{"unknown component", `{"objects": [{"name": "A", "components": [{"type": "Nope"}]}]}`, "Nope"},
		{"unknown layer", `{"objects": [{"name": "A", "layer": "Nowhere"}]}`, "Nowhere"},
		{"missing parent", `{"objects": [{"name": "A", "parent": "B"}]}`, `parent "B" not found`},
		{"bad color", `{"objects": [{"name": "A", "components": [{"type": "MeshRenderer", "color": "nope"}]}]}`, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().LoadSceneData([]byte(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	err := New().LoadScene(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scene")
}

func TestRaycastSkipsExcludedLayer(t *testing.T) {
	w := loadGazeWorld(t)
	origin := rl.Vector3{Y: 1.7}
	forward := rl.Vector3{Z: -1}

	hit, ok := w.Raycast(origin, forward, 100, 0)
	require.True(t, ok)
	assert.Equal(t, "Glass", hit.GameObject.Name)

	hit, ok = w.Raycast(origin, forward, 100, engine.MaskOf(engine.LayerIgnoreRaycast))
	require.True(t, ok)
	assert.Equal(t, "Button", hit.GameObject.Name)
	assert.InDelta(t, 4.5, hit.Distance, 1e-4)

	_, ok = w.Raycast(origin, forward, 4, engine.MaskOf(engine.LayerIgnoreRaycast))
	assert.False(t, ok, "button lies beyond the ray length")
}

func TestInitializeWiresGaze(t *testing.T) {
	w := loadGazeWorld(t)
	require.NoError(t, w.Initialize())

	casters := w.GazeRaycasters()
	require.Len(t, casters, 1)
	caster := casters[0]
	require.NotNil(t, caster.Raycaster())
	assert.True(t, caster.Raycaster().Active())

	button := w.Scene.FindByName("Button")
	item := engine.GetComponent[*components.InteractiveItem](button)
	renderer := engine.GetComponent[*components.MeshRenderer](button)

	w.Update(1.0 / 60)

	assert.True(t, item.IsOver())
	assert.Same(t, item, caster.CurrentTarget())
	assert.Equal(t, rl.Yellow, renderer.Color)

	reticle := engine.GetComponent[*components.Reticle](w.Scene.FindByName("Reticle"))
	assert.True(t, reticle.HasTarget)
	assert.InDelta(t, -4.5, reticle.Position.Z, 1e-4)

	input := engine.GetComponent[*components.VRInput](w.Scene.FindByName("Player"))
	input.Process(true, 1)
	assert.True(t, item.IsDown())
	input.Process(false, 1.1)
	assert.False(t, item.IsDown())

	highlighter := engine.GetComponent[*components.GazeHighlighter](button)
	assert.Equal(t, 1, highlighter.Clicks)
}

func TestInitializeReportsMissingCollaborators(t *testing.T) {
	w := New()
	require.NoError(t, w.LoadSceneData([]byte(`{"objects": [
		{"name": "Player", "components": [{"type": "GazeRaycaster", "viewpoint": "Head", "input": "Head"}]}
	]}`)))

	err := w.Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Player")
	assert.Contains(t, err.Error(), `"Head" not found`)
}

func TestInitializeWithoutInputFails(t *testing.T) {
	w := New()
	require.NoError(t, w.LoadSceneData([]byte(`{"objects": [
		{"name": "Player", "components": [{"type": "HeadTracker", "useMouse": false}, {"type": "GazeRaycaster"}]}
	]}`)))

	err := w.Initialize()
	require.Error(t, err)
	assert.Nil(t, w.GazeRaycasters()[0].Raycaster())
}

func TestBundledSceneInitializes(t *testing.T) {
	w := New()
	require.NoError(t, w.LoadScene(filepath.Join("..", "..", "assets", "scenes", "gaze.json")))

	// No window in tests, so keep the hardware-driven components quiet.
	player := w.Scene.FindByName("Player")
	engine.GetComponent[*components.HeadTracker](player).UseMouse = false
	engine.GetComponent[*components.VRInput](player).PollHardware = false

	require.NoError(t, w.Initialize())

	menu := w.Scene.FindByName("Menu")
	require.NotNil(t, menu)
	manager := engine.GetComponent[*components.GazeTriggerManager](menu)
	require.NotNil(t, manager)
	assert.Len(t, manager.Triggers(), 2)

	w.Update(1.0 / 60)
	assert.Nil(t, w.GazeRaycasters()[0].CurrentTarget(), "nothing sits straight ahead of the player")
}
