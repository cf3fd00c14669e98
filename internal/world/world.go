package world

import (
	"vrgaze/internal/components"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"
	"vrgaze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

var (
	_ engine.WorldAccess = (*World)(nil)
	_ gaze.SceneQuery    = (*World)(nil)
)

// World owns the scene and the physics world the gaze ray is cast into.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	ShowFloor    bool
}

func New() *World {
	return &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		ShowFloor:    true,
	}
}

// AddObject adds g to the scene, and to physics when it has a collider.
func (w *World) AddObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if engine.GetComponent[*components.BoxCollider](g) != nil || engine.GetComponent[*components.SphereCollider](g) != nil {
		w.PhysicsWorld.AddObject(g)
	}
}

// Initialize wires every GazeRaycaster to this world, then validates and
// starts the scene. Wiring errors from all components come back together.
func (w *World) Initialize() error {
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if gr, ok := c.(*components.GazeRaycaster); ok && gr.Query == nil {
				gr.Query = w
			}
		}
	}
	if err := w.Scene.Init(); err != nil {
		return err
	}
	w.Scene.Start()
	return nil
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Raycast implements engine.WorldAccess and gaze.SceneQuery.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (engine.RaycastResult, bool) {
	return w.PhysicsWorld.Raycast(origin, direction, maxDistance, exclude)
}

func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.PhysicsWorld.GetCollidableObjects()
}

// GazeRaycasters returns every raycaster component in the scene.
func (w *World) GazeRaycasters() []*components.GazeRaycaster {
	var result []*components.GazeRaycaster
	for _, g := range w.Scene.GameObjects {
		if gr := engine.GetComponent[*components.GazeRaycaster](g); gr != nil {
			result = append(result, gr)
		}
	}
	return result
}

// Draw renders the scene. Call between BeginMode3D and EndMode3D.
func (w *World) Draw() {
	if w.ShowFloor {
		rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: FloorSize, Y: FloorSize}, rl.LightGray)
		rl.DrawGrid(int32(FloorSize), 1)
	}
	w.Scene.Draw()
}
