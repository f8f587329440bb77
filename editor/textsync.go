package editor

import (
	"strings"
)

// TextSynchronizer keeps the bound text value -- the newline-joined
// serialization of every section's content -- consistent with the live
// surface. The section sequence is authoritative; the bound value is derived
// and recomputed after every mutating event.
type TextSynchronizer struct {
	store    *SectionStore
	text     string
	onChange func(string)
}

// NewTextSynchronizer creates a synchronizer over the given store.
// onChange, when non-nil, is invoked each time UpdateText produces a value
// different from the previous one.
func NewTextSynchronizer(store *SectionStore, onChange func(string)) *TextSynchronizer {
	return &TextSynchronizer{store: store, onChange: onChange}
}

// Text returns the current bound text value.
func (ts *TextSynchronizer) Text() string {
	return ts.text
}

// UpdateText enumerates the live sections in document order, joins their
// contents with a newline separator, and stores the result as the bound text
// value. Calling it twice without an intervening edit yields the same value.
func (ts *TextSynchronizer) UpdateText() {
	sections := ts.store.Sections()
	parts := make([]string, len(sections))
	for i, sec := range sections {
		parts[i] = sec.Content()
	}
	joined := strings.Join(parts, "\n")

	changed := joined != ts.text
	ts.text = joined
	if changed && ts.onChange != nil {
		ts.onChange(joined)
	}
}

// SplitForDisplay splits text on newlines into per-section display strings.
// Empty lines are replaced with the line-break placeholder marker so an
// empty paragraph remains visually present and focusable.
func SplitForDisplay(text string) []string {
	lines := strings.Split(text, "\n")
	display := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			display[i] = LineBreakPlaceholder
		} else {
			display[i] = line
		}
	}
	return display
}

// Seed builds one section per display line of text under the surface. It is
// used only to seed initial rendering from an externally supplied value at
// construction time; live edits flow through the live section content.
func (ts *TextSynchronizer) Seed(text string) {
	doc := ts.store.doc
	surfaceNode := ts.store.Surface().AsNode()

	for _, line := range SplitForDisplay(text) {
		el := doc.CreateElement("div")
		el.SetAttribute(sectionAttr, "")
		if line == LineBreakPlaceholder {
			el.AsNode().AppendChild(doc.CreateElement("br").AsNode())
		} else {
			el.AsNode().AppendChild(doc.CreateTextNode(line))
		}
		surfaceNode.AppendChild(el.AsNode())
	}

	ts.text = text
}
