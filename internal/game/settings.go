package game

import (
	"vrgaze/internal/components"
	"vrgaze/internal/config"
	"vrgaze/internal/world"
)

// ApplySettings copies the loaded config onto every gaze-related component
// in w. It must run before w.Initialize.
func ApplySettings(w *world.World) error {
	gazeCfg, err := config.Gaze()
	if err != nil {
		return err
	}

	for _, obj := range w.Scene.GameObjects {
		for _, c := range obj.Components() {
			switch comp := c.(type) {
			case *components.GazeRaycaster:
				comp.Config = gazeCfg
			case *components.VRInput:
				comp.DoubleClickTime = float64(config.GetFloat("input.doubleClickTime"))
			case *components.Reticle:
				comp.DefaultDistance = config.GetFloat("reticle.defaultDistance")
				comp.NormalAligned = config.GetBool("reticle.normalAligned")
			case *components.GazeTrigger:
				comp.DwellTime = config.GetFloat("trigger.dwellTime")
			}
		}
	}
	return nil
}
