package physics

import (
	"math"
	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit = engine.RaycastResult

// PhysicsWorld holds every object that can be struck by a ray.
type PhysicsWorld struct {
	Objects []*engine.GameObject
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{}
}

func (p *PhysicsWorld) AddObject(obj *engine.GameObject) {
	for _, o := range p.Objects {
		if o == obj {
			return
		}
	}
	p.Objects = append(p.Objects, obj)
}

func (p *PhysicsWorld) RemoveObject(obj *engine.GameObject) {
	for i, o := range p.Objects {
		if o == obj {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
}

func (p *PhysicsWorld) GetCollidableObjects() []*engine.GameObject {
	return p.Objects
}

// Raycast returns the closest hit among active colliders whose layer is not
// in exclude. Equal distances resolve to the object with the lower UID.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	hit := false

	for _, obj := range p.Objects {
		if !obj.Active || exclude.Contains(obj.Layer) {
			continue
		}

		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok {
				if !hit || closer(hitInfo.Distance, obj, closestHit) {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, maxDistance); ok {
				if !hit || closer(hitInfo.Distance, obj, closestHit) {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

func closer(dist float32, obj *engine.GameObject, best RaycastHit) bool {
	if dist != best.Distance {
		return dist < best.Distance
	}
	return obj.UID < best.GameObject.UID
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	g := box.GetGameObject()
	obb := NewOBB(box.GetCenter(), box.GetWorldSize(), g.WorldRotation())

	t, normal, ok := obb.RayIntersect(origin, direction, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
