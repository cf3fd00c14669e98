package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("DebugLines", func(props map[string]any) (engine.Component, error) {
		return NewDebugLines(), nil
	})
}

type debugLine struct {
	start, end rl.Vector3
	color      rl.Color
	remaining  float32
}

// DebugLines keeps diagnostic lines on screen for a set duration, like a
// debug draw ray that outlives the frame it was requested in.
type DebugLines struct {
	engine.BaseComponent
	lines []debugLine
}

func NewDebugLines() *DebugLines {
	return &DebugLines{}
}

// DrawRay queues a line from origin to origin+direction.
func (d *DebugLines) DrawRay(origin, direction rl.Vector3, color rl.Color, duration float32) {
	d.lines = append(d.lines, debugLine{
		start:     origin,
		end:       rl.Vector3Add(origin, direction),
		color:     color,
		remaining: duration,
	})
}

// Update ages lines and drops expired ones.
func (d *DebugLines) Update(deltaTime float32) {
	kept := d.lines[:0]
	for _, l := range d.lines {
		l.remaining -= deltaTime
		if l.remaining > 0 {
			kept = append(kept, l)
		}
	}
	d.lines = kept
}

func (d *DebugLines) Count() int {
	return len(d.lines)
}

func (d *DebugLines) Draw() {
	for _, l := range d.lines {
		rl.DrawLine3D(l.start, l.end, l.color)
	}
}
