package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// Same order as the engine transforms: X, Y, Z
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2},
		Axes:     axes,
	}
}

// RayIntersect moves the ray into the box's local frame and reuses the
// AABB slab test there. The returned normal is in world space.
func (b OBB) RayIntersect(origin, direction rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	rel := rl.Vector3Subtract(origin, b.Center)
	localOrigin := rl.Vector3{
		X: rl.Vector3DotProduct(rel, b.Axes[0]),
		Y: rl.Vector3DotProduct(rel, b.Axes[1]),
		Z: rl.Vector3DotProduct(rel, b.Axes[2]),
	}
	localDir := rl.Vector3{
		X: rl.Vector3DotProduct(direction, b.Axes[0]),
		Y: rl.Vector3DotProduct(direction, b.Axes[1]),
		Z: rl.Vector3DotProduct(direction, b.Axes[2]),
	}

	local := AABB{Min: rl.Vector3Negate(b.HalfSize), Max: b.HalfSize}
	t, ok := local.RayIntersect(localOrigin, localDir, maxDistance)
	if !ok {
		return 0, rl.Vector3{}, false
	}

	ln := local.FaceNormal(rl.Vector3Add(localOrigin, rl.Vector3Scale(localDir, t)))
	normal := rl.Vector3Add(
		rl.Vector3Add(rl.Vector3Scale(b.Axes[0], ln.X), rl.Vector3Scale(b.Axes[1], ln.Y)),
		rl.Vector3Scale(b.Axes[2], ln.Z),
	)
	return t, normal, true
}
