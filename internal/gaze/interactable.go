package gaze

import "vrgaze/internal/engine"

// Interactable is implemented by anything that wants gaze interaction.
// Every method is a notification; implementations must tolerate being
// called repeatedly or out of order (Up without a prior Down, etc).
type Interactable interface {
	Over()
	Out()
	Down()
	Up()
	Click()
	DoubleClick()
}

// Lookup resolves the object owning a struck surface to its Interactable.
// A nil result means the object has no interaction capability.
type Lookup interface {
	AsInteractable(obj *engine.GameObject) Interactable
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(obj *engine.GameObject) Interactable

func (f LookupFunc) AsInteractable(obj *engine.GameObject) Interactable {
	return f(obj)
}

// ComponentLookup finds the first component on the object that implements
// Interactable.
var ComponentLookup Lookup = LookupFunc(func(obj *engine.GameObject) Interactable {
	if obj == nil {
		return nil
	}
	return engine.FindComponent[Interactable](obj)
})
