// Package event models the input events an editable surface receives:
// focus/blur, keyboard, and clipboard events with preventDefault semantics,
// plus the EventTarget used to install and remove listeners.
package event

// Event is the interface implemented by all dispatchable events.
type Event interface {
	// Type returns the event type, e.g. "keydown" or "paste".
	Type() string
	// Cancelable returns true if the event's default action can be prevented.
	Cancelable() bool
	// PreventDefault marks the default action as suppressed.
	// It has no effect on non-cancelable events.
	PreventDefault()
	// DefaultPrevented returns true if PreventDefault was called.
	DefaultPrevented() bool
	// StopPropagation prevents any remaining listeners from running.
	StopPropagation()
	// PropagationStopped returns true if StopPropagation was called.
	PropagationStopped() bool
	// Target returns the object the event was dispatched to, if set.
	Target() any
	// SetTarget records the dispatch target.
	SetTarget(any)
}

// BaseEvent is the common implementation backing every event type.
type BaseEvent struct {
	typ                string
	cancelable         bool
	defaultPrevented   bool
	propagationStopped bool
	target             any
}

// New creates a new event of the given type.
func New(typ string, cancelable bool) *BaseEvent {
	return &BaseEvent{typ: typ, cancelable: cancelable}
}

// Type returns the event type.
func (e *BaseEvent) Type() string {
	return e.typ
}

// Cancelable returns true if the event's default action can be prevented.
func (e *BaseEvent) Cancelable() bool {
	return e.cancelable
}

// PreventDefault marks the default action as suppressed.
func (e *BaseEvent) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented returns true if PreventDefault was called.
func (e *BaseEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents any remaining listeners from running.
func (e *BaseEvent) StopPropagation() {
	e.propagationStopped = true
}

// PropagationStopped returns true if StopPropagation was called.
func (e *BaseEvent) PropagationStopped() bool {
	return e.propagationStopped
}

// Target returns the object the event was dispatched to, if set.
func (e *BaseEvent) Target() any {
	return e.target
}

// SetTarget records the dispatch target.
func (e *BaseEvent) SetTarget(t any) {
	e.target = t
}

// KeyboardEvent represents a keydown or keyup event.
type KeyboardEvent struct {
	BaseEvent

	// Key holds the key value per the UI Events spec, e.g. "a", "Tab",
	// "Backspace".
	Key string
}

// NewKeyboardEvent creates a cancelable keyboard event of the given type
// ("keydown" or "keyup") and key.
func NewKeyboardEvent(typ, key string) *KeyboardEvent {
	return &KeyboardEvent{
		BaseEvent: BaseEvent{typ: typ, cancelable: true},
		Key:       key,
	}
}

// ClipboardEvent represents a paste event carrying a DataTransfer payload.
type ClipboardEvent struct {
	BaseEvent

	clipboardData *DataTransfer
}

// NewClipboardEvent creates a cancelable clipboard event of the given type
// with the given payload. The payload may be nil.
func NewClipboardEvent(typ string, data *DataTransfer) *ClipboardEvent {
	return &ClipboardEvent{
		BaseEvent:     BaseEvent{typ: typ, cancelable: true},
		clipboardData: data,
	}
}

// ClipboardData returns the event's payload, or nil.
func (e *ClipboardEvent) ClipboardData() *DataTransfer {
	return e.clipboardData
}
