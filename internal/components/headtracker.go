package components

import (
	"math"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("HeadTracker", func(props map[string]any) (engine.Component, error) {
		h := NewHeadTracker()
		h.Yaw = engine.PropFloat(props, "yaw", h.Yaw)
		h.Pitch = engine.PropFloat(props, "pitch", h.Pitch)
		h.LookSpeed = engine.PropFloat(props, "lookSpeed", h.LookSpeed)
		h.EyeHeight = engine.PropFloat(props, "eyeHeight", h.EyeHeight)
		h.UseMouse = engine.PropBool(props, "useMouse", h.UseMouse)
		return h, nil
	})
}

// HeadTracker is the tracked viewpoint. On desktop the mouse stands in for
// the headset orientation.
type HeadTracker struct {
	engine.BaseComponent
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees, clamped to ±89
	LookSpeed float32
	EyeHeight float32
	UseMouse  bool
}

func NewHeadTracker() *HeadTracker {
	return &HeadTracker{
		Yaw:       -90,
		Pitch:     0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
		UseMouse:  true,
	}
}

func (h *HeadTracker) Update(deltaTime float32) {
	if !h.UseMouse {
		return
	}
	delta := rl.GetMouseDelta()
	h.Look(delta.X, delta.Y)
}

// Look applies a raw look delta, as produced by mouse motion.
func (h *HeadTracker) Look(dx, dy float32) {
	h.Yaw += dx * h.LookSpeed
	h.Pitch -= dy * h.LookSpeed

	if h.Pitch > 89 {
		h.Pitch = 89
	}
	if h.Pitch < -89 {
		h.Pitch = -89
	}
	if h.Yaw > 360 || h.Yaw < -360 {
		h.Yaw = float32(math.Mod(float64(h.Yaw), 360))
	}
}

// Position is the eye position in world space.
func (h *HeadTracker) Position() rl.Vector3 {
	g := h.GetGameObject()
	if g == nil {
		return rl.Vector3{Y: h.EyeHeight}
	}
	pos := g.WorldPosition()
	pos.Y += h.EyeHeight
	return pos
}

// Forward is the unit look direction.
func (h *HeadTracker) Forward() rl.Vector3 {
	yaw := float64(h.Yaw) * math.Pi / 180
	pitch := float64(h.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Sin(yaw) * math.Cos(pitch)),
	}
}

// Camera builds the raylib camera that renders what the head sees.
func (h *HeadTracker) Camera(fovy float32) rl.Camera3D {
	eye := h.Position()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, h.Forward()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}
