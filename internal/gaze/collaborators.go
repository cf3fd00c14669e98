package gaze

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewpoint is the tracked eye the gaze ray starts from.
type Viewpoint interface {
	Position() rl.Vector3
	Forward() rl.Vector3
}

// SceneQuery returns the nearest surface along a ray, ignoring objects on
// excluded layers. ok is false on a miss.
type SceneQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (hit engine.RaycastResult, ok bool)
}

// InputEvents carries the four discrete input signals. None has a payload.
type InputEvents struct {
	OnDown        engine.Event
	OnUp          engine.Event
	OnClick       engine.Event
	OnDoubleClick engine.Event
}

// InputSource produces press/release/click/double-click notifications.
type InputSource interface {
	InputEvents() *InputEvents
}

// ReticleSink receives the gaze hit point for visual feedback.
type ReticleSink interface {
	SetPosition(hit engine.RaycastResult)
	// ResetPosition is called when nothing is hit.
	ResetPosition()
}

// DebugDrawer draws diagnostic lines. It has no effect on interaction.
type DebugDrawer interface {
	DrawRay(origin, direction rl.Vector3, color rl.Color, duration float32)
}
