package components

import (
	"math"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Reticle", func(props map[string]any) (engine.Component, error) {
		r := NewReticle(nil)
		r.DefaultDistance = engine.PropFloat(props, "defaultDistance", r.DefaultDistance)
		r.Size = engine.PropFloat(props, "size", r.Size)
		r.NormalAligned = engine.PropBool(props, "normalAligned", r.NormalAligned)
		color, err := engine.PropColor(props, "color", r.Color)
		if err != nil {
			return nil, err
		}
		r.Color = color
		return r, nil
	})
}

// Reticle marks where the gaze lands. It scales with distance so it keeps
// the same apparent size.
type Reticle struct {
	engine.BaseComponent

	// Viewpoint places the reticle when nothing is hit.
	Viewpoint       gaze.Viewpoint
	DefaultDistance float32
	Size            float32
	NormalAligned   bool
	Color           rl.Color

	Position  rl.Vector3
	Normal    rl.Vector3
	Scale     float32
	HasTarget bool
}

func NewReticle(viewpoint gaze.Viewpoint) *Reticle {
	return &Reticle{
		Viewpoint:       viewpoint,
		DefaultDistance: 5,
		Size:            0.01,
		Color:           rl.White,
		Scale:           1,
	}
}

// SetPosition moves the reticle onto the struck surface.
func (r *Reticle) SetPosition(hit engine.RaycastResult) {
	r.Position = hit.Point
	r.Normal = hit.Normal
	r.Scale = hit.Distance
	r.HasTarget = true
	r.syncTransform()
}

// ResetPosition parks the reticle at DefaultDistance along the view.
func (r *Reticle) ResetPosition() {
	r.HasTarget = false
	r.Normal = rl.Vector3{}
	r.Scale = r.DefaultDistance
	if r.Viewpoint != nil {
		r.Position = rl.Vector3Add(r.Viewpoint.Position(), rl.Vector3Scale(rl.Vector3Normalize(r.Viewpoint.Forward()), r.DefaultDistance))
	}
	r.syncTransform()
}

func (r *Reticle) syncTransform() {
	if g := r.GetGameObject(); g != nil && g.Parent == nil {
		g.Transform.Position = r.Position
	}
}

func (r *Reticle) Radius() float32 {
	return r.Size * r.Scale
}

func (r *Reticle) Draw() {
	if r.NormalAligned && r.HasTarget && rl.Vector3Length(r.Normal) > 0 {
		axis, angle := rotationFromZ(r.Normal)
		// Lift slightly off the surface to avoid z-fighting
		center := rl.Vector3Add(r.Position, rl.Vector3Scale(r.Normal, 0.01))
		rl.DrawCircle3D(center, r.Radius(), axis, angle, r.Color)
		return
	}
	rl.DrawSphere(r.Position, r.Radius(), r.Color)
}

// rotationFromZ returns the axis/angle (degrees) turning +Z onto n, the
// orientation DrawCircle3D expects.
func rotationFromZ(n rl.Vector3) (rl.Vector3, float32) {
	n = rl.Vector3Normalize(n)
	z := rl.Vector3{Z: 1}
	axis := rl.Vector3CrossProduct(z, n)
	if rl.Vector3Length(axis) < 1e-6 {
		if n.Z < 0 {
			return rl.Vector3{Y: 1}, 180
		}
		return rl.Vector3{Y: 1}, 0
	}
	dot := rl.Vector3DotProduct(z, n)
	angle := float32(math.Acos(float64(rl.Clamp(dot, -1, 1)))) * rl.Rad2deg
	return rl.Vector3Normalize(axis), angle
}
