package dom

// Text represents a text node in the DOM.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData sets the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (t *Text) Length() int {
	return len(t.Data())
}

// InsertData inserts text at the given offset.
// Returns an error if the offset is out of bounds.
func (t *Text) InsertData(offset int, data string) error {
	existing := t.Data()
	if offset < 0 || offset > len(existing) {
		return ErrIndexSize("The offset is out of bounds.")
	}
	t.SetData(existing[:offset] + data + existing[offset:])
	return nil
}

// DeleteData removes count characters starting at the given offset.
// Returns an error if the offset is out of bounds.
func (t *Text) DeleteData(offset, count int) error {
	existing := t.Data()
	if offset < 0 || offset > len(existing) {
		return ErrIndexSize("The offset is out of bounds.")
	}
	end := offset + count
	if end > len(existing) {
		end = len(existing)
	}
	t.SetData(existing[:offset] + existing[end:])
	return nil
}
