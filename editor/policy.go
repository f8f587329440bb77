package editor

import (
	"github.com/rs/zerolog"

	"github.com/chrisuehlinger/sectioned/dom"
	"github.com/chrisuehlinger/sectioned/event"
	"github.com/chrisuehlinger/sectioned/plaintext"
)

// tabSpaces is what a Tab key press inserts at the caret.
const tabSpaces = "  "

// InputPolicyEngine intercepts key and paste events against the live section
// sequence and active section. Three independent policies: tab inserts two
// spaces, backspace may not delete the sole empty section, paste is
// plain-text only.
type InputPolicyEngine struct {
	doc     *dom.Document
	store   *SectionStore
	tracker *ActiveSectionTracker
	log     zerolog.Logger
}

// NewInputPolicyEngine creates a policy engine over the given store and tracker.
func NewInputPolicyEngine(doc *dom.Document, store *SectionStore, tracker *ActiveSectionTracker, log zerolog.Logger) *InputPolicyEngine {
	return &InputPolicyEngine{doc: doc, store: store, tracker: tracker, log: log}
}

// GuardBackspace suppresses the default deletion when the document is down
// to a single empty section, preserving the non-empty-document invariant.
// With more than one section, default deletion proceeds untouched.
func (p *InputPolicyEngine) GuardBackspace(ev *event.KeyboardEvent) {
	if ev.Key != "Backspace" {
		return
	}
	if p.tracker.Active() == nil {
		return
	}

	sections := p.store.Sections()
	if len(sections) != 1 {
		return
	}
	if sections[0].IsEmpty() {
		ev.PreventDefault()
		p.log.Debug().Msg("backspace on sole empty section suppressed")
	}
}

// InsertTabSpaces suppresses the default Tab action and inserts two literal
// space characters at the caret position of the active section.
func (p *InputPolicyEngine) InsertTabSpaces(ev *event.KeyboardEvent) {
	if ev.Key != "Tab" {
		return
	}
	active := p.tracker.Active()
	if active == nil {
		return
	}

	ev.PreventDefault()
	p.insertAtCaret(active, tabSpaces)
}

// HandlePaste always suppresses the default paste action and inserts the
// payload's plain-text flavor at the caret. A payload carrying only rich
// markup is reduced to its rendered text; a payload with no usable text
// inserts nothing.
func (p *InputPolicyEngine) HandlePaste(ev *event.ClipboardEvent) {
	ev.PreventDefault()

	data := ev.ClipboardData()
	if data == nil {
		return
	}

	text := data.GetData("text/plain")
	if text == "" {
		if markup := data.GetData("text/html"); markup != "" {
			text = plaintext.FromHTML(markup)
		}
	}
	if text == "" {
		return
	}

	active := p.tracker.Active()
	if active == nil {
		return
	}
	p.insertAtCaret(active, text)
	p.log.Debug().Int("chars", len(text)).Msg("plain text pasted")
}

// insertAtCaret inserts text at the caret inside sec, moving the caret to
// the end of the insertion. A caret outside the section is first moved to
// the end of the section's content.
func (p *InputPolicyEngine) insertAtCaret(sec *Section, text string) {
	sel := p.doc.GetSelection()

	r, err := sel.GetRangeAt(0)
	if err != nil || !sec.Element().AsNode().Contains(r.StartContainer()) {
		sec.PlaceCaretAtEnd(sel)
		r, err = sel.GetRangeAt(0)
		if err != nil {
			return
		}
	}

	container := r.StartContainer()
	if t := container.AsText(); t != nil {
		if err := t.InsertData(r.StartOffset(), text); err != nil {
			return
		}
		_ = sel.Collapse(container, r.StartOffset()+len(text))
		return
	}

	// Element container: a placeholder-empty section materializes a text
	// node in place of its <br>; otherwise the boundary's child offset picks
	// the insertion point.
	textNode := p.doc.CreateTextNode(text)
	if sec.IsEmpty() {
		secNode := sec.Element().AsNode()
		for secNode.FirstChild() != nil {
			secNode.RemoveChild(secNode.FirstChild())
		}
		secNode.AppendChild(textNode)
	} else if err := r.InsertNode(textNode); err != nil {
		return
	}
	_ = sel.Collapse(textNode, len(text))
}
