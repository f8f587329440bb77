package dom

import "strings"

// Attr represents a single attribute on an Element.
type Attr struct {
	Name  string
	Value string
}

// Element represents an element node in the DOM.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// NodeName returns the tag name in uppercase.
func (e *Element) NodeName() string {
	return e.nodeName
}

// TagName returns the tag name of the element in uppercase.
func (e *Element) TagName() string {
	if e.elementData != nil {
		return e.elementData.tagName
	}
	return e.nodeName
}

// LocalName returns the lowercase tag name of the element.
func (e *Element) LocalName() string {
	if e.elementData != nil {
		return e.elementData.localName
	}
	return strings.ToLower(e.nodeName)
}

// GetAttribute returns the value of the named attribute, or the empty string
// if the attribute is not present.
func (e *Element) GetAttribute(name string) string {
	if e.elementData == nil {
		return ""
	}
	for _, a := range e.elementData.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttribute sets the value of the named attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	if e.elementData == nil {
		return
	}
	for i, a := range e.elementData.attrs {
		if a.Name == name {
			e.elementData.attrs[i].Value = value
			return
		}
	}
	e.elementData.attrs = append(e.elementData.attrs, Attr{Name: name, Value: value})
}

// HasAttribute returns true if the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	if e.elementData == nil {
		return false
	}
	for _, a := range e.elementData.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	if e.elementData == nil {
		return
	}
	for i, a := range e.elementData.attrs {
		if a.Name == name {
			e.elementData.attrs = append(e.elementData.attrs[:i], e.elementData.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the element's attributes in document order.
func (e *Element) Attributes() []Attr {
	if e.elementData == nil {
		return nil
	}
	attrs := make([]Attr, len(e.elementData.attrs))
	copy(attrs, e.elementData.attrs)
	return attrs
}

// TextContent returns the text content of the element and its descendants.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces the element's children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.AsNode().SetTextContent(text)
}
