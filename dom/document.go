package dom

import "strings"

// Document represents a document node, the root of a DOM tree.
type Document Node

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	n := newNode(DocumentNode, "#document", nil)
	n.documentData = &documentData{}
	doc := (*Document)(n)
	n.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// CreateElement creates a new element with the given tag name.
func (d *Document) CreateElement(tagName string) *Element {
	lower := strings.ToLower(tagName)
	n := newNode(ElementNode, strings.ToUpper(tagName), d)
	n.elementData = &elementData{
		localName: lower,
		tagName:   strings.ToUpper(tagName),
	}
	return (*Element)(n)
}

// CreateTextNode creates a new text node with the given data.
func (d *Document) CreateTextNode(data string) *Node {
	n := newNode(TextNode, "#text", d)
	n.characterData = &data
	return n
}

// CreateRange creates a new Range with both boundary points at the start of
// the document.
func (d *Document) CreateRange() *Range {
	return NewRange(d)
}

// GetSelection returns the document's Selection object, creating it on first use.
func (d *Document) GetSelection() *Selection {
	data := d.AsNode().documentData
	if data.selection == nil {
		data.selection = NewSelection(d)
	}
	return data.selection
}
