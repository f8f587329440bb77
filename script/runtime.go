// Package script exposes an editor instance to JavaScript so scenarios can
// be driven programmatically. It uses the goja JavaScript engine (pure Go
// ES5.1+ implementation).
//
// The runtime plays the host: when an intercepted event's default action is
// not prevented, it emulates what a browser's editable surface would have
// done (character insertion, backspace deletion) so scripted sessions behave
// like live ones.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/sectioned/editor"
	"github.com/chrisuehlinger/sectioned/event"
)

// Runtime wraps a goja runtime bound to a single editor controller.
type Runtime struct {
	vm   *goja.Runtime
	ctrl *editor.Controller
}

// New creates a runtime and installs the `editor` global.
func New(ctrl *editor.Controller) *Runtime {
	r := &Runtime{
		vm:   goja.New(),
		ctrl: ctrl,
	}
	r.setupEditor()
	r.setupPrint()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Run executes JavaScript code, then flushes the editor's event loop so all
// deferred active-section resolutions have settled before the caller reads
// state.
func (r *Runtime) Run(code string) (result goja.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
		}
	}()

	result, err = r.vm.RunString(code)
	r.ctrl.Loop().Flush()
	return result, err
}

// setupPrint installs a minimal print function for scenario output.
func (r *Runtime) setupPrint() {
	r.vm.Set("print", func(call goja.FunctionCall) goja.Value {
		args := make([]any, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = a.String()
		}
		fmt.Println(args...)
		return goja.Undefined()
	})
}

// setupEditor installs the `editor` global object.
func (r *Runtime) setupEditor() {
	vm := r.vm
	obj := vm.NewObject()

	obj.DefineAccessorProperty("text",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(r.ctrl.Text())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("state", func(call goja.FunctionCall) goja.Value {
		r.ctrl.Loop().Flush()
		return vm.ToValue(r.ctrl.State().String())
	})

	obj.Set("sectionCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(len(r.ctrl.Sections()))
	})

	obj.Set("focus", func(call goja.FunctionCall) goja.Value {
		r.dispatch(event.New("focus", false))
		return goja.Undefined()
	})

	obj.Set("blur", func(call goja.FunctionCall) goja.Value {
		r.dispatch(event.New("blur", false))
		return goja.Undefined()
	})

	obj.Set("press", func(call goja.FunctionCall) goja.Value {
		key := call.Argument(0).String()
		return vm.ToValue(r.pressKey(key))
	})

	obj.Set("release", func(call goja.FunctionCall) goja.Value {
		key := call.Argument(0).String()
		return vm.ToValue(r.dispatch(event.NewKeyboardEvent("keyup", key)))
	})

	obj.Set("typeText", func(call goja.FunctionCall) goja.Value {
		for _, ch := range call.Argument(0).String() {
			r.pressKey(string(ch))
		}
		return goja.Undefined()
	})

	obj.Set("paste", func(call goja.FunctionCall) goja.Value {
		dt := event.NewDataTransfer()
		if arg := call.Argument(0); !goja.IsUndefined(arg) {
			if text := arg.String(); text != "" {
				dt.SetData("text/plain", text)
			}
		}
		if markup := call.Argument(1); !goja.IsUndefined(markup) {
			dt.SetData("text/html", markup.String())
		}
		return vm.ToValue(r.dispatch(event.NewClipboardEvent("paste", dt)))
	})

	obj.Set("flush", func(call goja.FunctionCall) goja.Value {
		r.ctrl.Loop().Flush()
		return goja.Undefined()
	})

	vm.Set("editor", obj)
}

// dispatch delivers an event to the surface and flushes deferred work, the
// way a browser completes its render pass between input events.
func (r *Runtime) dispatch(ev event.Event) bool {
	ev.SetTarget(r.ctrl.Surface())
	proceed := r.ctrl.EventTarget().Dispatch(ev)
	r.ctrl.Loop().Flush()
	return proceed
}

// pressKey dispatches keydown/keyup for key and emulates the default edit
// action between them when the keydown was not prevented. Returns true if
// the default action ran.
func (r *Runtime) pressKey(key string) bool {
	proceed := r.dispatch(event.NewKeyboardEvent("keydown", key))
	if proceed {
		r.applyDefaultAction(key)
	}
	r.dispatch(event.NewKeyboardEvent("keyup", key))
	return proceed
}

// applyDefaultAction emulates the browser's default handling of a key in an
// editable surface: printable keys insert themselves at the caret, Backspace
// deletes backwards, Enter is ignored (paragraph splitting is host-level
// behavior this harness does not model).
func (r *Runtime) applyDefaultAction(key string) {
	switch key {
	case "Backspace":
		r.applyBackspace()
	case "Enter", "Tab", "Shift", "Control", "Alt", "Meta":
		// Non-printable; nothing to emulate.
	default:
		if len(key) > 0 && len([]rune(key)) == 1 {
			r.insertAtCaret(key)
		}
	}
}

// insertAtCaret splices text into the caret's text node, creating one inside
// the active section when it is placeholder-empty.
func (r *Runtime) insertAtCaret(text string) {
	active := r.ctrl.ActiveSection()
	if active == nil {
		return
	}
	doc := r.ctrl.Document()
	sel := doc.GetSelection()
	secNode := active.Element().AsNode()

	rng, err := sel.GetRangeAt(0)
	if err == nil && secNode.Contains(rng.StartContainer()) {
		if t := rng.StartContainer().AsText(); t != nil {
			if t.InsertData(rng.StartOffset(), text) == nil {
				_ = sel.Collapse(rng.StartContainer(), rng.StartOffset()+len(text))
			}
			return
		}
		if !active.IsEmpty() {
			// Element boundary inside a non-empty section: the child offset
			// picks the insertion point.
			textNode := doc.CreateTextNode(text)
			if rng.InsertNode(textNode) == nil {
				_ = sel.Collapse(textNode, len(text))
			}
			return
		}
	}

	// Placeholder-empty section: replace the <br> with a text node.
	if active.IsEmpty() {
		for secNode.FirstChild() != nil {
			secNode.RemoveChild(secNode.FirstChild())
		}
	}
	textNode := doc.CreateTextNode(text)
	secNode.AppendChild(textNode)
	_ = sel.Collapse(textNode, len(text))
}

// applyBackspace deletes one character before the caret, or removes an empty
// section when more than one remains.
func (r *Runtime) applyBackspace() {
	active := r.ctrl.ActiveSection()
	if active == nil {
		return
	}
	doc := r.ctrl.Document()
	sel := doc.GetSelection()
	secNode := active.Element().AsNode()

	rng, err := sel.GetRangeAt(0)
	if err == nil && secNode.Contains(rng.StartContainer()) {
		if t := rng.StartContainer().AsText(); t != nil && rng.StartOffset() > 0 {
			if t.DeleteData(rng.StartOffset()-1, 1) == nil {
				_ = sel.Collapse(rng.StartContainer(), rng.StartOffset()-1)
			}
			return
		}
	}

	if active.IsEmpty() && len(r.ctrl.Sections()) > 1 {
		prev := previousSection(r.ctrl, active)
		r.ctrl.Surface().AsNode().RemoveChild(secNode)
		if prev != nil {
			prev.PlaceCaretAtEnd(sel)
		}
	}
}

// previousSection returns the section before sec in document order, or nil.
func previousSection(ctrl *editor.Controller, sec *editor.Section) *editor.Section {
	sections := ctrl.Sections()
	for i, s := range sections {
		if s.Element() == sec.Element() && i > 0 {
			return sections[i-1]
		}
	}
	return nil
}
