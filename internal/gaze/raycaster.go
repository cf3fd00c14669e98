package gaze

import (
	"errors"
	"fmt"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

var (
	ErrNoViewpoint = errors.New("no tracked viewpoint")
	ErrNoInput     = errors.New("no input source")
	ErrNoScene     = errors.New("no scene query")
)

// Raycaster casts a ray from the viewpoint every tick, keeps track of which
// Interactable is under the gaze and forwards input to it.
//
// All methods must be called from the thread that drives Tick.
type Raycaster struct {
	// OnRaycastHit fires on every tick that strikes a surface. Misses are silent.
	OnRaycastHit engine.EventWithArg[engine.RaycastResult]

	cfg       Config
	viewpoint Viewpoint
	scene     SceneQuery
	input     InputSource
	lookup    Lookup
	reticle   ReticleSink
	debug     DebugDrawer
	log       zerolog.Logger

	current Interactable
	last    Interactable

	active bool
	subs   subscriptions
}

type subscriptions struct {
	events      *InputEvents
	down        engine.ListenerID
	up          engine.ListenerID
	click       engine.ListenerID
	doubleClick engine.ListenerID
}

func NewRaycaster(cfg Config, viewpoint Viewpoint, scene SceneQuery, input InputSource) *Raycaster {
	return &Raycaster{
		cfg:       cfg,
		viewpoint: viewpoint,
		scene:     scene,
		input:     input,
		lookup:    ComponentLookup,
		log:       zerolog.Nop(),
	}
}

// SetLookup replaces the default component-based capability lookup.
func (r *Raycaster) SetLookup(l Lookup) {
	if l == nil {
		l = ComponentLookup
	}
	r.lookup = l
}

// SetReticle sets the feedback sink. nil disables reticle updates.
func (r *Raycaster) SetReticle(s ReticleSink) { r.reticle = s }

func (r *Raycaster) SetDebugDrawer(d DebugDrawer) { r.debug = d }

func (r *Raycaster) SetLogger(l zerolog.Logger) { r.log = l }

func (r *Raycaster) Config() Config { return r.cfg }

// SetShowDebugRay toggles the diagnostic line between ticks.
func (r *Raycaster) SetShowDebugRay(show bool) { r.cfg.ShowDebugRay = show }

func (r *Raycaster) CurrentTarget() Interactable { return r.current }

func (r *Raycaster) LastTarget() Interactable { return r.last }

func (r *Raycaster) Active() bool { return r.active }

// Activate validates the required collaborators and subscribes to the input
// signals. Calling it again while active does nothing.
func (r *Raycaster) Activate() error {
	if r.active {
		return nil
	}
	if r.viewpoint == nil {
		return fmt.Errorf("activate gaze raycaster: %w", ErrNoViewpoint)
	}
	if r.input == nil || r.input.InputEvents() == nil {
		return fmt.Errorf("activate gaze raycaster: %w", ErrNoInput)
	}
	if r.scene == nil {
		return fmt.Errorf("activate gaze raycaster: %w", ErrNoScene)
	}

	events := r.input.InputEvents()
	r.subs = subscriptions{
		events:      events,
		down:        events.OnDown.AddListener(r.handleDown),
		up:          events.OnUp.AddListener(r.handleUp),
		click:       events.OnClick.AddListener(r.handleClick),
		doubleClick: events.OnDoubleClick.AddListener(r.handleDoubleClick),
	}
	r.active = true
	r.log.Debug().Msg("gaze raycaster activated")
	return nil
}

// Deactivate removes exactly the listeners Activate added.
func (r *Raycaster) Deactivate() {
	if !r.active {
		return
	}
	events := r.subs.events
	events.OnDown.RemoveListener(r.subs.down)
	events.OnUp.RemoveListener(r.subs.up)
	events.OnClick.RemoveListener(r.subs.click)
	events.OnDoubleClick.RemoveListener(r.subs.doubleClick)
	r.subs = subscriptions{}
	r.active = false
	r.log.Debug().Msg("gaze raycaster deactivated")
}

// Tick runs one gaze resolution step. It does nothing while inactive.
func (r *Raycaster) Tick() {
	if !r.active {
		return
	}

	origin := r.viewpoint.Position()
	direction := rl.Vector3Normalize(r.viewpoint.Forward())

	if r.cfg.ShowDebugRay && r.debug != nil {
		r.debug.DrawRay(origin, rl.Vector3Scale(direction, r.cfg.DebugRayLength), r.cfg.DebugRayColor, r.cfg.DebugRayDuration)
	}

	hit, ok := r.scene.Raycast(origin, direction, r.cfg.RayLength, r.cfg.ExclusionLayers)
	if !ok {
		r.current = nil
		r.deactivateLast()
		if r.reticle != nil {
			r.reticle.ResetPosition()
		}
		return
	}

	if r.cfg.ShowHitLog && hit.GameObject != nil {
		r.log.Debug().Str("object", hit.GameObject.Name).Float32("distance", hit.Distance).Msg("gaze hit")
	}

	item := r.lookup.AsInteractable(hit.GameObject)
	r.current = item

	if item != r.last {
		r.deactivateLast()
		if item != nil {
			item.Over()
		}
	}
	r.last = item

	if r.reticle != nil {
		r.reticle.SetPosition(hit)
	}
	r.OnRaycastHit.Invoke(hit)
}

func (r *Raycaster) deactivateLast() {
	if r.last == nil {
		return
	}
	r.last.Out()
	r.last = nil
}

func (r *Raycaster) handleDown() {
	if r.current != nil {
		r.current.Down()
	}
}

func (r *Raycaster) handleUp() {
	if r.current != nil {
		r.current.Up()
	}
}

func (r *Raycaster) handleClick() {
	if r.current != nil {
		r.current.Click()
	}
}

func (r *Raycaster) handleDoubleClick() {
	if r.current != nil {
		r.current.DoubleClick()
	}
}
