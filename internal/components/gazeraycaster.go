package components

import (
	"fmt"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"
	"vrgaze/internal/logging"
)

func init() {
	engine.RegisterComponent("GazeRaycaster", func(props map[string]any) (engine.Component, error) {
		cfg := gaze.DefaultConfig()
		cfg.RayLength = engine.PropFloat(props, "rayLength", cfg.RayLength)
		cfg.ShowHitLog = engine.PropBool(props, "showHitLog", cfg.ShowHitLog)
		cfg.ShowDebugRay = engine.PropBool(props, "showDebugRay", cfg.ShowDebugRay)
		cfg.DebugRayLength = engine.PropFloat(props, "debugRayLength", cfg.DebugRayLength)
		cfg.DebugRayDuration = engine.PropFloat(props, "debugRayDuration", cfg.DebugRayDuration)
		color, err := engine.PropColor(props, "debugRayColor", cfg.DebugRayColor)
		if err != nil {
			return nil, err
		}
		cfg.DebugRayColor = color
		if raw, ok := props["exclusionLayers"].([]any); ok {
			names := make([]string, 0, len(raw))
			for _, v := range raw {
				if s, ok := v.(string); ok {
					names = append(names, s)
				}
			}
			mask, err := engine.MaskFromNames(names)
			if err != nil {
				return nil, err
			}
			cfg.ExclusionLayers = mask
		}

		g := NewGazeRaycaster(cfg)
		g.ViewpointObject = engine.PropString(props, "viewpoint", "")
		g.InputObject = engine.PropString(props, "input", "")
		g.ReticleObject = engine.PropString(props, "reticle", "")
		return g, nil
	})
}

// GazeRaycaster hosts a gaze.Raycaster on a GameObject. Collaborators are
// found by object name in the scene, or on this object when no name is set.
type GazeRaycaster struct {
	engine.BaseComponent

	Config          gaze.Config
	ViewpointObject string
	InputObject     string
	ReticleObject   string

	// Query must be set before Init; the world does this when loading.
	Query  gaze.SceneQuery
	Lookup gaze.Lookup

	core *gaze.Raycaster
}

func NewGazeRaycaster(cfg gaze.Config) *GazeRaycaster {
	return &GazeRaycaster{Config: cfg}
}

// Init resolves collaborators and activates the raycaster. A missing
// viewpoint or input source fails here rather than on the first frame.
func (g *GazeRaycaster) Init() error {
	if g.core != nil && g.core.Active() {
		return nil
	}
	owner := g.GetGameObject()
	name := "GazeRaycaster"
	if owner != nil {
		name = owner.Name
	}

	viewpoint, err := resolve[gaze.Viewpoint](owner, g.ViewpointObject)
	if err != nil {
		return fmt.Errorf("%s: viewpoint: %w", name, err)
	}
	input, err := resolve[gaze.InputSource](owner, g.InputObject)
	if err != nil {
		return fmt.Errorf("%s: input: %w", name, err)
	}
	// The reticle is optional; a bad name only costs the visual feedback.
	reticle, err := resolve[gaze.ReticleSink](owner, g.ReticleObject)
	if err != nil {
		log := logging.For("gaze")
		log.Warn().Err(err).Str("object", name).Msg("reticle disabled")
	}

	core := gaze.NewRaycaster(g.Config, viewpoint, g.Query, input)
	core.SetLogger(logging.For("gaze").With().Str("object", name).Logger())
	core.SetLookup(g.Lookup)
	if reticle != nil {
		core.SetReticle(reticle)
		if r, ok := reticle.(*Reticle); ok && r.Viewpoint == nil {
			r.Viewpoint = viewpoint
		}
	}
	if owner != nil {
		if d := engine.FindComponent[gaze.DebugDrawer](owner); d != nil {
			core.SetDebugDrawer(d)
		}
	}

	if err := core.Activate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	g.core = core
	return nil
}

// resolve finds a T-capable component on the named object, or on owner
// when name is empty. A nil result with nil error means nothing was asked for.
func resolve[T any](owner *engine.GameObject, name string) (T, error) {
	var zero T
	target := owner
	if name != "" {
		if owner == nil || owner.Scene == nil {
			return zero, fmt.Errorf("object %q: not in a scene", name)
		}
		target = owner.Scene.FindByName(name)
		if target == nil {
			return zero, fmt.Errorf("object %q not found", name)
		}
	}
	found := engine.FindComponent[T](target)
	if any(found) == nil && name != "" {
		return zero, fmt.Errorf("object %q has no suitable component", name)
	}
	return found, nil
}

func (g *GazeRaycaster) Update(deltaTime float32) {
	if g.core != nil {
		g.core.Tick()
	}
}

func (g *GazeRaycaster) OnEnable() {
	if g.core == nil {
		return
	}
	if err := g.core.Activate(); err != nil {
		log := logging.For("gaze")
		log.Error().Err(err).Msg("reactivate failed")
	}
}

func (g *GazeRaycaster) OnDisable() {
	if g.core != nil {
		g.core.Deactivate()
	}
}

// Raycaster exposes the underlying state machine, nil before Init.
func (g *GazeRaycaster) Raycaster() *gaze.Raycaster {
	return g.core
}

func (g *GazeRaycaster) CurrentTarget() gaze.Interactable {
	if g.core == nil {
		return nil
	}
	return g.core.CurrentTarget()
}
