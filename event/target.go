package event

import "sync"

// Listener is a callback invoked when an event of a subscribed type is
// dispatched.
type Listener func(Event)

// Handle identifies a registered listener so it can be removed.
// Go functions are not comparable, so removal is by handle rather than by
// listener identity.
type Handle struct {
	eventType string
	id        int
}

// registration pairs a listener with its handle id.
type registration struct {
	id       int
	listener Listener
}

// Target manages event listeners for a single dispatch target, typically the
// editable surface.
type Target struct {
	mu        sync.RWMutex
	listeners map[string][]registration
	nextID    int
}

// NewTarget creates a new Target.
func NewTarget() *Target {
	return &Target{
		listeners: make(map[string][]registration),
	}
}

// AddEventListener registers a listener for the given event type and returns
// a handle for later removal. Listeners run in registration order.
func (t *Target) AddEventListener(eventType string, fn Listener) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	t.listeners[eventType] = append(t.listeners[eventType], registration{
		id:       t.nextID,
		listener: fn,
	})
	return Handle{eventType: eventType, id: t.nextID}
}

// RemoveEventListener unregisters the listener identified by the handle.
// Removing an unknown handle is a no-op.
func (t *Target) RemoveEventListener(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	regs := t.listeners[h.eventType]
	for i, reg := range regs {
		if reg.id == h.id {
			t.listeners[h.eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers the event to all listeners registered for its type, in
// registration order, stopping early if propagation is stopped.
// Returns true if the event's default action should proceed.
func (t *Target) Dispatch(ev Event) bool {
	t.mu.RLock()
	regs := make([]registration, len(t.listeners[ev.Type()]))
	copy(regs, t.listeners[ev.Type()])
	t.mu.RUnlock()

	for _, reg := range regs {
		reg.listener(ev)
		if ev.PropagationStopped() {
			break
		}
	}

	return !ev.DefaultPrevented()
}

// HasEventListeners returns true if there are any listeners for the event type.
func (t *Target) HasEventListeners(eventType string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.listeners[eventType]) > 0
}
