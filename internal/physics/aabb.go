package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// RayIntersect runs the slab test and returns the entry distance along
// direction. A ray starting inside the box reports the exit distance.
func (a AABB) RayIntersect(origin, direction rl.Vector3, maxDistance float32) (float32, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			// Parallel to this slab: miss unless the origin lies within it
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return 0, false
	}
	return t, true
}

// FaceNormal returns the outward normal of the face closest to p.
func (a AABB) FaceNormal(p rl.Vector3) rl.Vector3 {
	best := abs(p.X - a.Min.X)
	normal := rl.Vector3{X: -1}

	candidates := []struct {
		dist   float32
		normal rl.Vector3
	}{
		{abs(p.X - a.Max.X), rl.Vector3{X: 1}},
		{abs(p.Y - a.Min.Y), rl.Vector3{Y: -1}},
		{abs(p.Y - a.Max.Y), rl.Vector3{Y: 1}},
		{abs(p.Z - a.Min.Z), rl.Vector3{Z: -1}},
		{abs(p.Z - a.Max.Z), rl.Vector3{Z: 1}},
	}
	for _, c := range candidates {
		if c.dist < best {
			best = c.dist
			normal = c.normal
		}
	}
	return normal
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
