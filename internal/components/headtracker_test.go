package components

import (
	"testing"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHeadTrackerForward(t *testing.T) {
	h := NewHeadTracker()
	h.Yaw = 0
	h.Pitch = 0

	fwd := h.Forward()
	assert.InDelta(t, 1, fwd.X, 1e-6)
	assert.InDelta(t, 0, fwd.Y, 1e-6)
	assert.InDelta(t, 0, fwd.Z, 1e-6)

	h.Yaw = -90
	fwd = h.Forward()
	assert.InDelta(t, -1, fwd.Z, 1e-6)

	h.Pitch = 89
	assert.InDelta(t, 1, rl.Vector3Length(h.Forward()), 1e-5)
}

func TestHeadTrackerLookClampsPitch(t *testing.T) {
	h := NewHeadTracker()
	h.LookSpeed = 1

	h.Look(0, -500)
	assert.Equal(t, float32(89), h.Pitch)

	h.Look(0, 1000)
	assert.Equal(t, float32(-89), h.Pitch)

	h.Look(10, 0)
	assert.Equal(t, float32(-80), h.Yaw)
}

func TestHeadTrackerPositionAddsEyeHeight(t *testing.T) {
	obj := engine.NewGameObject("Head")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 2}
	h := NewHeadTracker()
	h.EyeHeight = 1.5
	obj.AddComponent(h)

	assert.Equal(t, rl.Vector3{X: 1, Y: 1.5, Z: 2}, h.Position())
}
