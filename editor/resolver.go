package editor

import (
	"github.com/chrisuehlinger/sectioned/dom"
)

// SelectionResolver maps the document's current selection anchor back to the
// section that owns it.
type SelectionResolver struct {
	doc   *dom.Document
	store *SectionStore
}

// NewSelectionResolver creates a resolver over the given document and store.
func NewSelectionResolver(doc *dom.Document, store *SectionStore) *SelectionResolver {
	return &SelectionResolver{doc: doc, store: store}
}

// Resolve reads the selection anchor and walks its ancestor chain, inclusive,
// until a section boundary under this store's surface is found. Returns nil
// when there is no selection, or when the walk exits the surface without
// meeting a section. Resolution is pure with respect to the DOM state at call
// time.
func (r *SelectionResolver) Resolve() *Section {
	anchor := r.doc.GetSelection().AnchorNode()
	if anchor == nil {
		return nil
	}

	surface := r.store.Surface().AsNode()
	for n := anchor; n != nil; n = n.ParentNode() {
		if n == surface {
			return nil
		}
		if isSectionElement(n) {
			if !surface.Contains(n) {
				return nil
			}
			return newSection(n.AsElement())
		}
	}
	return nil
}
