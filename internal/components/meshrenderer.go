package components

import (
	"fmt"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func(props map[string]any) (engine.Component, error) {
		var meshType MeshType
		switch mesh := engine.PropString(props, "mesh", "cube"); mesh {
		case "cube":
			meshType = MeshCube
		case "sphere":
			meshType = MeshSphere
		case "plane":
			meshType = MeshPlane
		default:
			return nil, fmt.Errorf("unknown mesh %q", mesh)
		}
		color, err := engine.PropColor(props, "color", rl.White)
		if err != nil {
			return nil, err
		}
		size := engine.PropVec3(props, "size", [3]float32{1, 1, 1})
		return NewMeshRenderer(meshType, color, rl.Vector3{X: size[0], Y: size[1], Z: size[2]}), nil
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	// BaseColor is the colour the renderer was created with, so tints can be undone.
	BaseColor rl.Color
	Size      rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType:  meshType,
		Color:     color,
		BaseColor: color,
		Size:      size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, m.Size, m.Color)
		rl.DrawCubeWiresV(pos, m.Size, rl.DarkGray)
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
}
