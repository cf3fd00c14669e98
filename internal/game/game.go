package game

import (
	"fmt"
	"time"
	"vrgaze/internal/components"
	"vrgaze/internal/config"
	"vrgaze/internal/engine"
	"vrgaze/internal/logging"
	"vrgaze/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const fovy = 70

type Game struct {
	World     *world.World
	Head      *components.HeadTracker
	DebugMode bool

	log       zerolog.Logger
	mouseLook bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New() *Game {
	return &Game{
		World:     world.New(),
		DebugMode: false,
		log:       logging.For("game"),
		mouseLook: true,
	}
}

// Load builds the scene named in config and pushes the config values onto
// its components. The scene is not initialized yet.
func (g *Game) Load() error {
	if err := g.World.LoadScene(config.GetString("scene")); err != nil {
		return err
	}
	if err := ApplySettings(g.World); err != nil {
		return err
	}
	for _, obj := range g.World.Scene.GameObjects {
		if h := engine.GetComponent[*components.HeadTracker](obj); h != nil {
			g.Head = h
			break
		}
	}
	if g.Head == nil {
		return fmt.Errorf("scene has no HeadTracker")
	}
	return nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Gaze Demo")
	defer rl.CloseWindow()

	rl.SetTargetFPS(90)
	rl.DisableCursor()
	initRayguiStyle()

	if err := g.Load(); err != nil {
		return err
	}
	// Collaborator errors surface here, before the first frame.
	if err := g.World.Initialize(); err != nil {
		return fmt.Errorf("initialize scene: %w", err)
	}
	g.log.Info().
		Int("objects", len(g.World.Scene.GameObjects)).
		Int("raycasters", len(g.World.GazeRaycasters())).
		Msg("scene ready")

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	// Tab frees the cursor so the debug panel can be used.
	if rl.IsKeyPressed(rl.KeyTab) {
		g.mouseLook = !g.mouseLook
		if g.mouseLook {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
	}
	g.Head.UseMouse = g.mouseLook

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.Head.Camera(fovy)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Mouse to look, click or Space to select", 10, 10, 20, rl.DarkGray)
	rl.DrawText("F1 debug panel, Tab frees the cursor", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		g.drawDebugPanel()
	}
}

// TargetName names whatever the first raycaster is looking at.
func (g *Game) TargetName() string {
	for _, caster := range g.World.GazeRaycasters() {
		item, ok := caster.CurrentTarget().(*components.InteractiveItem)
		if ok && item.GetGameObject() != nil {
			return item.GetGameObject().Name
		}
		if caster.CurrentTarget() != nil {
			return "(interactive)"
		}
	}
	return "-"
}
