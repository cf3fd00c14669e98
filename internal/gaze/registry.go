package gaze

import (
	"errors"
	"fmt"
	"vrgaze/internal/engine"
)

var ErrAlreadyRegistered = errors.New("interactable already registered")

// Registry maps GameObject identity to an Interactable explicitly, for
// objects whose interaction handler is not one of their components.
type Registry struct {
	items map[uint64]Interactable
	// Fallback is consulted when the object has no registration.
	Fallback Lookup
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[uint64]Interactable)}
}

func (r *Registry) Register(obj *engine.GameObject, item Interactable) error {
	if obj == nil || item == nil {
		return errors.New("register: nil object or interactable")
	}
	if _, exists := r.items[obj.UID]; exists {
		return fmt.Errorf("%w: %s (uid %d)", ErrAlreadyRegistered, obj.Name, obj.UID)
	}
	r.items[obj.UID] = item
	return nil
}

func (r *Registry) Unregister(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	delete(r.items, obj.UID)
}

func (r *Registry) Len() int {
	return len(r.items)
}

func (r *Registry) AsInteractable(obj *engine.GameObject) Interactable {
	if obj == nil {
		return nil
	}
	if item, ok := r.items[obj.UID]; ok {
		return item
	}
	if r.Fallback != nil {
		return r.Fallback.AsInteractable(obj)
	}
	return nil
}
