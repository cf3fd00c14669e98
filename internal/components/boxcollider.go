package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func(props map[string]any) (engine.Component, error) {
		size := engine.PropVec3(props, "size", [3]float32{1, 1, 1})
		offset := engine.PropVec3(props, "offset", [3]float32{})
		b := NewBoxCollider(rl.Vector3{X: size[0], Y: size[1], Z: size[2]})
		b.Offset = rl.Vector3{X: offset[0], Y: offset[1], Z: offset[2]}
		return b, nil
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}
