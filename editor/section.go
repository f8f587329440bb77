// Package editor implements the editing core of a paragraph-structured
// editor hosted on an editable surface: the section model, active-section
// tracking, text synchronization, and the input policies applied to keyboard
// and paste events.
package editor

import (
	"github.com/chrisuehlinger/sectioned/dom"
)

const (
	// sectionAttr tags an element as a section boundary.
	sectionAttr = "data-section"
	// activeAttr marks the section currently receiving input.
	activeAttr = "data-active"
)

// LineBreakPlaceholder is the marker SplitForDisplay substitutes for an empty
// line. The store renders it as a <br> element so an empty section stays
// visually present and focusable.
const LineBreakPlaceholder = "<br>"

// Section is one paragraph-level editable block within the document.
type Section struct {
	el *dom.Element
}

// newSection wraps an existing section element.
func newSection(el *dom.Element) *Section {
	return &Section{el: el}
}

// Element returns the element rendering this section.
func (s *Section) Element() *dom.Element {
	return s.el
}

// Content returns the section's visible text. The line-break placeholder of
// an empty section contributes nothing.
func (s *Section) Content() string {
	return s.el.TextContent()
}

// IsEmpty returns true if the section has no visible text.
func (s *Section) IsEmpty() bool {
	return s.Content() == ""
}

// IsActive returns true if this section is the current input target.
func (s *Section) IsActive() bool {
	return s.el.HasAttribute(activeAttr)
}

func (s *Section) markActive() {
	s.el.SetAttribute(activeAttr, "true")
}

func (s *Section) clearActive() {
	s.el.RemoveAttribute(activeAttr)
}

// lastTextNode returns the last text node under the section in document
// order, or nil for a placeholder-empty section.
func (s *Section) lastTextNode() *dom.Node {
	return lastTextDescendant(s.el.AsNode())
}

func lastTextDescendant(n *dom.Node) *dom.Node {
	for child := n.LastChild(); child != nil; child = child.PreviousSibling() {
		switch child.NodeType() {
		case dom.TextNode:
			return child
		case dom.ElementNode:
			if t := lastTextDescendant(child); t != nil {
				return t
			}
		}
	}
	return nil
}

// PlaceCaretAtEnd collapses the selection at the end of the section's
// content: after the last character of its last text node, or at offset 0
// inside a placeholder-empty section.
func (s *Section) PlaceCaretAtEnd(sel *dom.Selection) {
	if t := s.lastTextNode(); t != nil {
		_ = sel.Collapse(t, len(t.NodeValue()))
		return
	}
	_ = sel.Collapse(s.el.AsNode(), 0)
}

// isSectionElement reports whether the node is tagged as a section boundary.
func isSectionElement(n *dom.Node) bool {
	el := n.AsElement()
	return el != nil && el.HasAttribute(sectionAttr)
}
