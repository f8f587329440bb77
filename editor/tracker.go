package editor

import (
	"github.com/rs/zerolog"

	"github.com/chrisuehlinger/sectioned/dom"
	"github.com/chrisuehlinger/sectioned/eventloop"
)

// ActiveSectionTracker maintains the single section currently receiving
// input. Activation is deferred to after the current render pass so the host
// has finished applying the triggering event's effect on the selection;
// deferred activations from successive events run in event arrival order.
type ActiveSectionTracker struct {
	doc      *dom.Document
	store    *SectionStore
	resolver *SelectionResolver
	loop     *eventloop.Loop
	log      zerolog.Logger
}

// NewActiveSectionTracker creates a tracker over the given store.
func NewActiveSectionTracker(doc *dom.Document, store *SectionStore, resolver *SelectionResolver, loop *eventloop.Loop, log zerolog.Logger) *ActiveSectionTracker {
	return &ActiveSectionTracker{
		doc:      doc,
		store:    store,
		resolver: resolver,
		loop:     loop,
		log:      log,
	}
}

// ScheduleActivate queues active-section resolution on the after-render
// queue. Each call queues exactly one task; tasks are never coalesced.
func (t *ActiveSectionTracker) ScheduleActivate() {
	t.loop.QueueAfterRender(t.activate)
}

// activate re-resolves the active section from the live selection. When the
// selection resolves to no section, the first section in document order is
// activated and the caret placed at the end of its content, restoring the
// one-active-section invariant.
func (t *ActiveSectionTracker) activate() {
	t.store.clearActive()

	if sec := t.resolver.Resolve(); sec != nil {
		sec.markActive()
		t.log.Debug().Str("content", sec.Content()).Msg("section activated from selection")
		return
	}

	// Recovery: selection landed outside any section.
	first := t.store.First()
	if first == nil {
		return
	}
	first.markActive()
	first.PlaceCaretAtEnd(t.doc.GetSelection())
	t.log.Debug().Msg("selection outside any section, recovered to first")
}

// Deactivate synchronously clears the active mark without picking a
// replacement. Used on blur.
func (t *ActiveSectionTracker) Deactivate() {
	t.store.clearActive()
}

// Active returns the currently active section, scanned from the live
// surface, or nil.
func (t *ActiveSectionTracker) Active() *Section {
	for _, sec := range t.store.Sections() {
		if sec.IsActive() {
			return sec
		}
	}
	return nil
}
