package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("SphereCollider", func(props map[string]any) (engine.Component, error) {
		offset := engine.PropVec3(props, "offset", [3]float32{})
		s := NewSphereCollider(engine.PropFloat(props, "radius", 0.5))
		s.Offset = rl.Vector3{X: offset[0], Y: offset[1], Z: offset[2]}
		return s, nil
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := max(abs(sc.X), abs(sc.Y), abs(sc.Z))
	return s.Radius * m
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
