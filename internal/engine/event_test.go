package engine

import "testing"

func TestEventInvokesListenersInOrder(t *testing.T) {
	var e Event
	var calls []int

	e.AddListener(func() { calls = append(calls, 1) })
	e.AddListener(func() { calls = append(calls, 2) })
	e.Invoke()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected [1 2], got %v", calls)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	count := 0

	id := e.AddListener(func() { count++ })
	e.AddListener(func() { count += 10 })

	if !e.RemoveListener(id) {
		t.Fatal("RemoveListener should report success")
	}
	if e.RemoveListener(id) {
		t.Error("Removing twice should report failure")
	}

	e.Invoke()
	if count != 10 {
		t.Errorf("Expected only second listener to fire, count=%d", count)
	}
	if e.GetListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", e.GetListenerCount())
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e Event
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Expected zero ID for nil listener, got %d", id)
	}
	if e.GetListenerCount() != 0 {
		t.Error("Nil listener should not be registered")
	}
	e.Invoke()
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event
	count := 0
	var second ListenerID

	e.AddListener(func() {
		count++
		e.RemoveListener(second)
	})
	second = e.AddListener(func() { count++ })

	e.Invoke()
	if count != 2 {
		t.Errorf("Listeners snapshot at Invoke should all run, count=%d", count)
	}

	e.Invoke()
	if count != 3 {
		t.Errorf("Removed listener should not run on next Invoke, count=%d", count)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got string

	e.AddListener(func(s string) { got = s })
	e.Invoke("hit")

	if got != "hit" {
		t.Errorf("Expected 'hit', got %q", got)
	}

	e.RemoveAllListeners()
	e.Invoke("miss")
	if got != "hit" {
		t.Error("No listener should fire after RemoveAllListeners")
	}
}
