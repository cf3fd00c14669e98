package components

import (
	"math"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("VRInput", func(props map[string]any) (engine.Component, error) {
		v := NewVRInput()
		v.DoubleClickTime = float64(engine.PropFloat(props, "doubleClickTime", float32(v.DoubleClickTime)))
		v.PollHardware = engine.PropBool(props, "pollHardware", v.PollHardware)
		return v, nil
	})
}

// VRInput turns one physical button into press, release, click and
// double-click signals. The left mouse button and the space key both count.
type VRInput struct {
	engine.BaseComponent

	// Seconds between two releases for the second to count as a double click.
	DoubleClickTime float64
	MouseButton     rl.MouseButton
	Key             int32
	// PollHardware reads the mouse and keyboard in Update. Turn it off to
	// drive the component through Process only.
	PollHardware    bool

	events     gaze.InputEvents
	wasDown    bool
	lastUpTime float64
	lastDownAt float64
}

func NewVRInput() *VRInput {
	return &VRInput{
		DoubleClickTime: 0.3,
		MouseButton:     rl.MouseButtonLeft,
		Key:             rl.KeySpace,
		PollHardware:    true,
		lastUpTime:      math.Inf(-1),
	}
}

func (v *VRInput) InputEvents() *gaze.InputEvents {
	return &v.events
}

func (v *VRInput) Update(deltaTime float32) {
	if !v.PollHardware {
		return
	}
	down := rl.IsMouseButtonDown(v.MouseButton) || rl.IsKeyDown(v.Key)
	v.Process(down, rl.GetTime())
}

// Process feeds the current button state sampled at time now (seconds).
// Signals fire on edges only.
func (v *VRInput) Process(down bool, now float64) {
	switch {
	case down && !v.wasDown:
		v.lastDownAt = now
		v.events.OnDown.Invoke()
	case !down && v.wasDown:
		if now-v.lastUpTime < v.DoubleClickTime {
			v.events.OnDoubleClick.Invoke()
			// A third release starts a fresh click rather than another double.
			v.lastUpTime = math.Inf(-1)
		} else {
			v.events.OnClick.Invoke()
			v.lastUpTime = now
		}
		v.events.OnUp.Invoke()
	}
	v.wasDown = down
}

// HeldFor returns how long the button has been held, or 0 when released.
func (v *VRInput) HeldFor(now float64) float64 {
	if !v.wasDown {
		return 0
	}
	return now - v.lastDownAt
}
