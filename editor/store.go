package editor

import (
	"github.com/chrisuehlinger/sectioned/dom"
)

// SectionStore owns the ordered sequence of section elements backing the
// document. It never caches: every query walks the live surface, so
// structural changes made outside the store are always visible.
type SectionStore struct {
	doc     *dom.Document
	surface *dom.Element
}

// NewSectionStore creates a store over the given surface element.
func NewSectionStore(doc *dom.Document, surface *dom.Element) *SectionStore {
	return &SectionStore{doc: doc, surface: surface}
}

// Surface returns the surface element the store enumerates.
func (st *SectionStore) Surface() *dom.Element {
	return st.surface
}

// Sections returns the current sections in document order, queried from the
// live surface at call time.
func (st *SectionStore) Sections() []*Section {
	var sections []*Section
	for child := st.surface.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		if isSectionElement(child) {
			sections = append(sections, newSection(child.AsElement()))
		}
	}
	return sections
}

// Len returns the current number of sections.
func (st *SectionStore) Len() int {
	count := 0
	for child := st.surface.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		if isSectionElement(child) {
			count++
		}
	}
	return count
}

// First returns the first section in document order, or nil.
func (st *SectionStore) First() *Section {
	for child := st.surface.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		if isSectionElement(child) {
			return newSection(child.AsElement())
		}
	}
	return nil
}

// Last returns the last section in document order, or nil.
func (st *SectionStore) Last() *Section {
	for child := st.surface.AsNode().LastChild(); child != nil; child = child.PreviousSibling() {
		if isSectionElement(child) {
			return newSection(child.AsElement())
		}
	}
	return nil
}

// Append creates a new empty section, inserts it immediately after `after`
// when given (else as the surface's last child), marks it active after
// clearing any previous active mark, and returns it. The new section renders
// a single line-break placeholder so it remains focusable while empty.
func (st *SectionStore) Append(after *Section) *Section {
	el := st.newSectionElement()

	if after != nil {
		st.surface.AsNode().InsertBefore(el.AsNode(), after.Element().AsNode().NextSibling())
	} else {
		st.surface.AsNode().AppendChild(el.AsNode())
	}

	sec := newSection(el)
	st.clearActive()
	sec.markActive()
	return sec
}

// newSectionElement builds an empty section: a div tagged as a section
// boundary with a <br> placeholder child.
func (st *SectionStore) newSectionElement() *dom.Element {
	el := st.doc.CreateElement("div")
	el.SetAttribute(sectionAttr, "")
	el.AsNode().AppendChild(st.doc.CreateElement("br").AsNode())
	return el
}

// clearActive removes the active mark from every section.
func (st *SectionStore) clearActive() {
	for _, sec := range st.Sections() {
		sec.clearActive()
	}
}
