package event

import (
	"testing"
)

func TestDispatchOrder(t *testing.T) {
	target := NewTarget()
	var order []int
	target.AddEventListener("keydown", func(Event) { order = append(order, 1) })
	target.AddEventListener("keydown", func(Event) { order = append(order, 2) })
	target.AddEventListener("keyup", func(Event) { order = append(order, 99) })

	target.Dispatch(NewKeyboardEvent("keydown", "a"))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Listeners should run in registration order for the dispatched type, got %v", order)
	}
}

func TestDispatchReturnsFalseWhenPrevented(t *testing.T) {
	target := NewTarget()
	target.AddEventListener("keydown", func(ev Event) { ev.PreventDefault() })

	if target.Dispatch(NewKeyboardEvent("keydown", "Backspace")) {
		t.Error("Dispatch should return false after preventDefault")
	}
	if target.Dispatch(NewKeyboardEvent("keyup", "Backspace")) != true {
		t.Error("Dispatch with no listeners should return true")
	}
}

func TestPreventDefaultRequiresCancelable(t *testing.T) {
	ev := New("focus", false)
	ev.PreventDefault()
	if ev.DefaultPrevented() {
		t.Error("A non-cancelable event must not report defaultPrevented")
	}

	kev := NewKeyboardEvent("keydown", "Tab")
	if !kev.Cancelable() {
		t.Error("Keyboard events should be cancelable")
	}
	kev.PreventDefault()
	if !kev.DefaultPrevented() {
		t.Error("A cancelable event should report defaultPrevented")
	}
}

func TestStopPropagation(t *testing.T) {
	target := NewTarget()
	var ran []int
	target.AddEventListener("keydown", func(ev Event) {
		ran = append(ran, 1)
		ev.StopPropagation()
	})
	target.AddEventListener("keydown", func(Event) { ran = append(ran, 2) })

	target.Dispatch(NewKeyboardEvent("keydown", "a"))

	if len(ran) != 1 {
		t.Errorf("Listeners after stopPropagation should not run, got %v", ran)
	}
}

func TestRemoveEventListener(t *testing.T) {
	target := NewTarget()
	calls := 0
	keep := func(Event) { calls++ }
	h := target.AddEventListener("keydown", func(Event) { t.Error("Removed listener ran") })
	target.AddEventListener("keydown", keep)

	target.RemoveEventListener(h)
	target.Dispatch(NewKeyboardEvent("keydown", "a"))

	if calls != 1 {
		t.Errorf("Remaining listener should still run, got %d calls", calls)
	}

	// Removing twice is a no-op.
	target.RemoveEventListener(h)
	if target.HasEventListeners("keydown") != true {
		t.Error("The remaining listener should still be registered")
	}
}

func TestEventTarget(t *testing.T) {
	ev := NewKeyboardEvent("keydown", "a")
	if ev.Target() != nil {
		t.Error("A fresh event should have no target")
	}
	ev.SetTarget("surface")
	if ev.Target() != "surface" {
		t.Error("Target should return what SetTarget recorded")
	}
}

func TestClipboardEventData(t *testing.T) {
	dt := NewDataTransfer()
	dt.SetData("text/plain", "hello")
	ev := NewClipboardEvent("paste", dt)

	if ev.ClipboardData() != dt {
		t.Error("ClipboardData should return the payload")
	}
	if NewClipboardEvent("paste", nil).ClipboardData() != nil {
		t.Error("A nil payload should stay nil")
	}
}

func TestDataTransferNormalizesLegacyFormats(t *testing.T) {
	dt := NewDataTransfer()
	dt.SetData("text", "hello")

	if got := dt.GetData("text/plain"); got != "hello" {
		t.Errorf("'text' should store under text/plain, got %q", got)
	}
	if got := dt.GetData("text"); got != "hello" {
		t.Errorf("'text' should also read back under the legacy name, got %q", got)
	}

	types := dt.Types()
	if len(types) != 1 || types[0] != "text/plain" {
		t.Errorf("Types should report the normalized format, got %v", types)
	}
}

func TestDataTransferReplacesExistingFlavor(t *testing.T) {
	dt := NewDataTransfer()
	dt.SetData("text/plain", "first")
	dt.SetData("text/html", "<p>x</p>")
	dt.SetData("text/plain", "second")

	if got := dt.GetData("text/plain"); got != "second" {
		t.Errorf("SetData should replace, got %q", got)
	}
	types := dt.Types()
	if len(types) != 2 || types[0] != "text/plain" || types[1] != "text/html" {
		t.Errorf("Replacing should not duplicate or reorder types, got %v", types)
	}
}
