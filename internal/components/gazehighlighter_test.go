package components

import (
	"testing"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazeHighlighterTints(t *testing.T) {
	obj := engine.NewGameObject("Cube")
	item := NewInteractiveItem()
	renderer := NewMeshRenderer(MeshCube, rl.Red, rl.Vector3{X: 1, Y: 1, Z: 1})
	h := NewGazeHighlighter()
	obj.AddComponent(item)
	obj.AddComponent(renderer)
	obj.AddComponent(h)
	require.NoError(t, h.Init())

	item.Over()
	assert.Equal(t, h.OverColor, renderer.Color)
	item.Down()
	assert.Equal(t, h.PressedColor, renderer.Color)
	item.Up()
	assert.Equal(t, h.OverColor, renderer.Color)
	item.Click()
	assert.Equal(t, 1, h.Clicks)
	item.DoubleClick()
	assert.Equal(t, h.ClickColor, renderer.Color)
	item.Out()
	assert.Equal(t, rl.Red, renderer.Color)
}

func TestGazeHighlighterNeedsCollaborators(t *testing.T) {
	obj := engine.NewGameObject("Bare")
	h := NewGazeHighlighter()
	obj.AddComponent(h)

	assert.ErrorContains(t, h.Init(), "needs InteractiveItem and MeshRenderer")
}
