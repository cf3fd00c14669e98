package components

import (
	"errors"
	"fmt"
	"vrgaze/internal/engine"
	"vrgaze/internal/logging"
)

func init() {
	engine.RegisterComponent("GazeTrigger", func(props map[string]any) (engine.Component, error) {
		t := NewGazeTrigger(engine.PropFloat(props, "dwellTime", 1.5))
		t.Repeat = engine.PropBool(props, "repeat", false)
		return t, nil
	})
	engine.RegisterComponent("GazeTriggerManager", func(props map[string]any) (engine.Component, error) {
		return NewGazeTriggerManager(), nil
	})
}

// GazeTrigger fires OnTriggered once the gaze has rested on its
// InteractiveItem for DwellTime seconds without leaving.
type GazeTrigger struct {
	engine.BaseComponent

	DwellTime   float32
	// Repeat re-arms the trigger every DwellTime while the gaze stays.
	Repeat      bool
	OnTriggered engine.Event

	item    *InteractiveItem
	elapsed float32
	fired   bool
	outID   engine.ListenerID
}

func NewGazeTrigger(dwellTime float32) *GazeTrigger {
	return &GazeTrigger{DwellTime: dwellTime}
}

// Init binds the trigger to the InteractiveItem on the same object.
func (t *GazeTrigger) Init() error {
	if t.item != nil {
		return nil
	}
	g := t.GetGameObject()
	if g == nil {
		return errors.New("gaze trigger: not attached")
	}
	if t.DwellTime <= 0 {
		return fmt.Errorf("gaze trigger %s: dwell time must be positive", g.Name)
	}
	item := engine.GetComponent[*InteractiveItem](g)
	if item == nil {
		return fmt.Errorf("gaze trigger %s: no InteractiveItem", g.Name)
	}
	t.item = item
	t.outID = item.OnOut.AddListener(t.Reset)
	return nil
}

// Advance accumulates dwell time while the item is gazed at. The manager
// drives this; triggers do not advance themselves.
func (t *GazeTrigger) Advance(deltaTime float32) {
	if t.item == nil || !t.item.IsOver() {
		return
	}
	if t.fired && !t.Repeat {
		return
	}
	t.elapsed += deltaTime
	if t.elapsed < t.DwellTime {
		return
	}
	t.fired = true
	if t.Repeat {
		t.elapsed -= t.DwellTime
	}
	if g := t.GetGameObject(); g != nil {
		log := logging.For("trigger")
		log.Debug().Str("object", g.Name).Msg("gaze trigger fired")
	}
	t.OnTriggered.Invoke()
}

// Reset clears accumulated dwell and re-arms the trigger.
func (t *GazeTrigger) Reset() {
	t.elapsed = 0
	t.fired = false
}

// Progress is the fraction of DwellTime accumulated, in [0, 1].
func (t *GazeTrigger) Progress() float32 {
	if t.fired && !t.Repeat {
		return 1
	}
	if t.DwellTime <= 0 {
		return 0
	}
	return min(t.elapsed/t.DwellTime, 1)
}

func (t *GazeTrigger) Fired() bool { return t.fired }

// GazeTriggerManager collects the GazeTriggers below it and advances them
// each frame.
type GazeTriggerManager struct {
	engine.BaseComponent
	triggers    []*GazeTrigger
	currentTime float32
}

func NewGazeTriggerManager() *GazeTriggerManager {
	return &GazeTriggerManager{}
}

func (m *GazeTriggerManager) Start() {
	m.triggers = engine.FindComponentsInChildren[*GazeTrigger](m.GetGameObject())
}

func (m *GazeTriggerManager) Update(deltaTime float32) {
	m.currentTime += deltaTime
	for _, t := range m.triggers {
		t.Advance(deltaTime)
	}
}

func (m *GazeTriggerManager) Triggers() []*GazeTrigger {
	return m.triggers
}

// Elapsed is the time the manager has been running.
func (m *GazeTriggerManager) Elapsed() float32 {
	return m.currentTime
}
