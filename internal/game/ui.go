package game

import (
	"fmt"
	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (g *Game) drawDebugPanel() {
	const panelW, panelH = 300, 200
	x := float32(rl.GetScreenWidth() - panelW - 10)
	y := float32(10)

	rl.DrawRectangle(int32(x), int32(y), panelW, panelH, colorBgPanel)
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 8, Width: panelW - 20, Height: 20}, "Gaze")

	casters := g.World.GazeRaycasters()
	showRay := false
	for _, c := range casters {
		if r := c.Raycaster(); r != nil && r.Config().ShowDebugRay {
			showRay = true
		}
	}
	toggled := gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 36, Width: 16, Height: 16}, "Debug ray", showRay)
	if toggled != showRay {
		for _, c := range casters {
			if r := c.Raycaster(); r != nil {
				r.SetShowDebugRay(toggled)
			}
		}
	}

	var triggers []*components.GazeTrigger
	for _, obj := range g.World.Scene.GameObjects {
		if t := engine.GetComponent[*components.GazeTrigger](obj); t != nil {
			triggers = append(triggers, t)
		}
	}
	if len(triggers) > 0 {
		dwell := triggers[0].DwellTime
		sliderBounds := rl.Rectangle{X: x + 90, Y: y + 62, Width: panelW - 150, Height: 16}
		newDwell := gui.Slider(sliderBounds, "Dwell", fmt.Sprintf("%.1fs", dwell), dwell, 0.2, 5)
		if newDwell != dwell {
			for _, t := range triggers {
				t.DwellTime = newDwell
			}
		}
	}

	gui.Label(rl.Rectangle{X: x + 10, Y: y + 90, Width: panelW - 20, Height: 20}, "Target: "+g.TargetName())
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 140, Width: panelW - 20, Height: 20}, fmt.Sprintf("Update: %.2f ms", g.updateMs))
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 160, Width: panelW - 20, Height: 20}, fmt.Sprintf("Draw:   %.2f ms", g.drawMs))
}
