package components

import "vrgaze/internal/engine"

func init() {
	engine.RegisterComponent("InteractiveItem", func(props map[string]any) (engine.Component, error) {
		return NewInteractiveItem(), nil
	})
}

// InteractiveItem makes its GameObject gaze-interactable. Scripts subscribe
// to the events instead of implementing gaze.Interactable themselves.
type InteractiveItem struct {
	engine.BaseComponent

	OnOver        engine.Event
	OnOut         engine.Event
	OnDown        engine.Event
	OnUp          engine.Event
	OnClick       engine.Event
	OnDoubleClick engine.Event

	isOver bool
	isDown bool
}

func NewInteractiveItem() *InteractiveItem {
	return &InteractiveItem{}
}

func (i *InteractiveItem) IsOver() bool { return i.isOver }

// IsDown reports whether a press arrived with no matching release yet.
func (i *InteractiveItem) IsDown() bool { return i.isDown }

func (i *InteractiveItem) Over() {
	i.isOver = true
	i.OnOver.Invoke()
}

func (i *InteractiveItem) Out() {
	i.isOver = false
	i.isDown = false
	i.OnOut.Invoke()
}

func (i *InteractiveItem) Down() {
	i.isDown = true
	i.OnDown.Invoke()
}

func (i *InteractiveItem) Up() {
	i.isDown = false
	i.OnUp.Invoke()
}

func (i *InteractiveItem) Click() {
	i.OnClick.Invoke()
}

func (i *InteractiveItem) DoubleClick() {
	i.OnDoubleClick.Invoke()
}
