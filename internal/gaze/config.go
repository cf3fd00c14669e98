package gaze

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config is fixed when the Raycaster is built and never changes mid-tick.
type Config struct {
	RayLength       float32
	ExclusionLayers engine.LayerMask

	ShowHitLog       bool
	ShowDebugRay     bool
	DebugRayColor    rl.Color
	DebugRayLength   float32
	DebugRayDuration float32
}

func DefaultConfig() Config {
	return Config{
		RayLength:        500,
		ExclusionLayers:  engine.MaskOf(engine.LayerIgnoreRaycast),
		DebugRayColor:    rl.Blue,
		DebugRayLength:   5,
		DebugRayDuration: 0.1,
	}
}
