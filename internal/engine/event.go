package engine

// ListenerID identifies a registered callback so it can be removed later.
// Zero is never handed out.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Event is a Unity-style multi-cast event system.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	inner EventWithArg[struct{}]
}

// AddListener adds a callback to be invoked when the event fires.
// The returned ID can be passed to RemoveListener.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

// RemoveListener removes the callback registered under id.
// Returns false if no such listener exists.
func (e *Event) RemoveListener(id ListenerID) bool {
	return e.inner.RemoveListener(id)
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.inner.RemoveAllListeners()
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return e.inner.GetListenerCount()
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			// Copy so an Invoke already ranging over the old slice is unaffected.
			next := make([]listener[T], 0, len(e.listeners)-1)
			next = append(next, e.listeners[:i]...)
			e.listeners = append(next, e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
