package editor

import (
	"github.com/rs/zerolog"

	"github.com/chrisuehlinger/sectioned/dom"
	"github.com/chrisuehlinger/sectioned/event"
	"github.com/chrisuehlinger/sectioned/eventloop"
)

// State describes where the editor is in its focus lifecycle.
type State int

const (
	// StateBlurred means the surface does not have focus; no section is active.
	StateBlurred State = iota
	// StateFocusedNoActive is the transient state between an event and its
	// deferred active-section resolution.
	StateFocusedNoActive
	// StateFocusedActive means the surface has focus and one section is active.
	StateFocusedActive
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateBlurred:
		return "blurred"
	case StateFocusedNoActive:
		return "focused-no-active"
	case StateFocusedActive:
		return "focused-active"
	default:
		return "unknown"
	}
}

// Options configures a Controller. It is read once at construction, the way
// a host reads its attributes at mount.
type Options struct {
	// Editable controls whether the surface accepts input. A non-editable
	// surface mounts as inert: no sections are created and no listeners are
	// installed.
	Editable bool

	// Text seeds the initial section contents via SplitForDisplay when the
	// surface holds no sections at mount.
	Text string

	// OnTextChange, when non-nil, observes the bound text value after every
	// mutating event that changed it.
	OnTextChange func(string)

	// Logger receives structured event traces. Nil means no logging.
	Logger *zerolog.Logger
}

// Controller orchestrates the editing core in response to surface events and
// republishes the synchronized text value. One Controller owns one surface;
// nothing is shared between editor instances.
type Controller struct {
	doc     *dom.Document
	surface *dom.Element
	events  *event.Target
	loop    *eventloop.Loop

	store    *SectionStore
	resolver *SelectionResolver
	tracker  *ActiveSectionTracker
	sync     *TextSynchronizer
	policy   *InputPolicyEngine

	editable bool
	text     string
	focused  bool
	mounted  bool
	handles  []event.Handle
	log      zerolog.Logger
}

// NewController creates a controller over the given surface. The target is
// the surface's event stream; the loop is the host's UI event loop.
func NewController(doc *dom.Document, surface *dom.Element, target *event.Target, loop *eventloop.Loop, opts Options) *Controller {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	c := &Controller{
		doc:      doc,
		surface:  surface,
		events:   target,
		loop:     loop,
		editable: opts.Editable,
		text:     opts.Text,
		log:      log,
	}

	c.store = NewSectionStore(doc, surface)
	c.resolver = NewSelectionResolver(doc, c.store)
	c.tracker = NewActiveSectionTracker(doc, c.store, c.resolver, loop, log)
	c.sync = NewTextSynchronizer(c.store, opts.OnTextChange)
	c.policy = NewInputPolicyEngine(doc, c.store, c.tracker, log)
	return c
}

// Mount prepares an editable surface for input: seeds sections from the
// configured text when the surface holds none, guarantees at least one
// section exists, installs the event listeners, and focuses the last section
// with the caret at the end of its content. Non-editable surfaces mount as
// inert.
func (c *Controller) Mount() {
	if !c.editable || c.mounted {
		return
	}

	c.surface.SetAttribute("contenteditable", "true")

	if c.store.Len() == 0 && c.text != "" {
		c.sync.Seed(c.text)
	}
	if c.store.Len() == 0 {
		c.store.Append(nil)
	}

	c.attach()

	last := c.store.Last()
	c.store.clearActive()
	last.markActive()
	last.PlaceCaretAtEnd(c.doc.GetSelection())
	c.focused = true

	c.sync.UpdateText()
	c.mounted = true
	c.log.Debug().Int("sections", c.store.Len()).Msg("editor mounted")
}

// Unmount removes the listeners and clears the active mark.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.detach()
	c.tracker.Deactivate()
	c.focused = false
	c.mounted = false
	c.log.Debug().Msg("editor unmounted")
}

// attach installs the six surface listeners.
func (c *Controller) attach() {
	c.handles = []event.Handle{
		c.events.AddEventListener("focus", c.onFocus),
		c.events.AddEventListener("mousedown", c.onFocus),
		c.events.AddEventListener("blur", c.onBlur),
		c.events.AddEventListener("keydown", c.onKeyDown),
		c.events.AddEventListener("keyup", c.onKeyUp),
		c.events.AddEventListener("paste", c.onPaste),
	}
}

func (c *Controller) detach() {
	for _, h := range c.handles {
		c.events.RemoveEventListener(h)
	}
	c.handles = nil
}

func (c *Controller) onFocus(ev event.Event) {
	c.focused = true
	c.tracker.ScheduleActivate()
	c.sync.UpdateText()
}

func (c *Controller) onBlur(ev event.Event) {
	c.focused = false
	c.tracker.Deactivate()
	c.sync.UpdateText()
}

func (c *Controller) onKeyDown(ev event.Event) {
	kev, ok := ev.(*event.KeyboardEvent)
	if !ok {
		return
	}
	c.focused = true
	// Active-section resolution must be scheduled before the policy checks;
	// the policies read whichever section is marked now, the deferred
	// resolution re-derives it for the next event.
	c.tracker.ScheduleActivate()
	c.policy.GuardBackspace(kev)
	c.policy.InsertTabSpaces(kev)
	c.sync.UpdateText()
}

func (c *Controller) onKeyUp(ev event.Event) {
	kev, ok := ev.(*event.KeyboardEvent)
	if !ok {
		return
	}
	c.tracker.ScheduleActivate()
	c.policy.GuardBackspace(kev)
	c.sync.UpdateText()
}

func (c *Controller) onPaste(ev event.Event) {
	cev, ok := ev.(*event.ClipboardEvent)
	if !ok {
		return
	}
	c.policy.HandlePaste(cev)
	c.sync.UpdateText()
}

// Text returns the current bound text value.
func (c *Controller) Text() string {
	return c.sync.Text()
}

// Sections returns the live sections in document order.
func (c *Controller) Sections() []*Section {
	return c.store.Sections()
}

// ActiveSection returns the section currently receiving input, or nil.
func (c *Controller) ActiveSection() *Section {
	return c.tracker.Active()
}

// State derives the current lifecycle state from focus and the live active
// mark.
func (c *Controller) State() State {
	if !c.focused {
		return StateBlurred
	}
	if c.tracker.Active() == nil {
		return StateFocusedNoActive
	}
	return StateFocusedActive
}

// Document returns the document hosting the surface.
func (c *Controller) Document() *dom.Document {
	return c.doc
}

// Surface returns the editable surface element.
func (c *Controller) Surface() *dom.Element {
	return c.surface
}

// EventTarget returns the surface's event stream.
func (c *Controller) EventTarget() *event.Target {
	return c.events
}

// Loop returns the event loop deferred work is queued on.
func (c *Controller) Loop() *eventloop.Loop {
	return c.loop
}
