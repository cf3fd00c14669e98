package components

import (
	"fmt"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("GazeHighlighter", func(props map[string]any) (engine.Component, error) {
		h := NewGazeHighlighter()
		var err error
		if h.OverColor, err = engine.PropColor(props, "overColor", h.OverColor); err != nil {
			return nil, err
		}
		if h.PressedColor, err = engine.PropColor(props, "pressedColor", h.PressedColor); err != nil {
			return nil, err
		}
		if h.ClickColor, err = engine.PropColor(props, "clickColor", h.ClickColor); err != nil {
			return nil, err
		}
		return h, nil
	})
}

// GazeHighlighter tints the MeshRenderer on its object in response to the
// InteractiveItem events.
type GazeHighlighter struct {
	engine.BaseComponent
	OverColor    rl.Color
	PressedColor rl.Color
	ClickColor   rl.Color

	Clicks int

	item     *InteractiveItem
	renderer *MeshRenderer
}

func NewGazeHighlighter() *GazeHighlighter {
	return &GazeHighlighter{
		OverColor:    rl.Gold,
		PressedColor: rl.Orange,
		ClickColor:   rl.Lime,
	}
}

func (h *GazeHighlighter) Init() error {
	if h.item != nil {
		return nil
	}
	g := h.GetGameObject()
	if g == nil {
		return fmt.Errorf("gaze highlighter: not attached")
	}
	h.item = engine.GetComponent[*InteractiveItem](g)
	h.renderer = engine.GetComponent[*MeshRenderer](g)
	if h.item == nil || h.renderer == nil {
		h.item = nil
		return fmt.Errorf("gaze highlighter %s: needs InteractiveItem and MeshRenderer", g.Name)
	}

	h.item.OnOver.AddListener(func() { h.renderer.Color = h.OverColor })
	h.item.OnOut.AddListener(func() { h.renderer.Color = h.renderer.BaseColor })
	h.item.OnDown.AddListener(func() { h.renderer.Color = h.PressedColor })
	h.item.OnUp.AddListener(func() {
		if h.item.IsOver() {
			h.renderer.Color = h.OverColor
		}
	})
	h.item.OnClick.AddListener(func() { h.Clicks++ })
	h.item.OnDoubleClick.AddListener(func() { h.renderer.Color = h.ClickColor })
	return nil
}
