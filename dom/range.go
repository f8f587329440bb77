package dom

import "strings"

// Range represents a contiguous part of a document, delimited by a start and
// an end boundary point. A collapsed range models the caret.
type Range struct {
	ownerDocument *Document

	startContainer *Node
	startOffset    int
	endContainer   *Node
	endOffset      int
}

// NewRange creates a new Range with both boundary points at the start of the
// given document.
func NewRange(doc *Document) *Range {
	return &Range{
		ownerDocument:  doc,
		startContainer: doc.AsNode(),
		startOffset:    0,
		endContainer:   doc.AsNode(),
		endOffset:      0,
	}
}

// StartContainer returns the node within which the range starts.
func (r *Range) StartContainer() *Node {
	return r.startContainer
}

// StartOffset returns the offset within the start container.
func (r *Range) StartOffset() int {
	return r.startOffset
}

// EndContainer returns the node within which the range ends.
func (r *Range) EndContainer() *Node {
	return r.endContainer
}

// EndOffset returns the offset within the end container.
func (r *Range) EndOffset() int {
	return r.endOffset
}

// Collapsed returns true if the range's start and end points are at the same position.
func (r *Range) Collapsed() bool {
	return r.startContainer == r.endContainer && r.startOffset == r.endOffset
}

// SetStart sets the start boundary point of the range.
// If the new start is after the current end, the range is collapsed to the start.
func (r *Range) SetStart(node *Node, offset int) error {
	if node == nil {
		return ErrNotFound("Node is null")
	}
	if offset < 0 || offset > nodeLength(node) {
		return ErrIndexSize("The offset is out of bounds.")
	}
	r.startContainer = node
	r.startOffset = offset
	if r.isStartAfterEnd() {
		r.endContainer = node
		r.endOffset = offset
	}
	return nil
}

// SetEnd sets the end boundary point of the range.
// If the new end is before the current start, the range is collapsed to the end.
func (r *Range) SetEnd(node *Node, offset int) error {
	if node == nil {
		return ErrNotFound("Node is null")
	}
	if offset < 0 || offset > nodeLength(node) {
		return ErrIndexSize("The offset is out of bounds.")
	}
	r.endContainer = node
	r.endOffset = offset
	if r.isStartAfterEnd() {
		r.startContainer = node
		r.startOffset = offset
	}
	return nil
}

// isStartAfterEnd reports whether the start boundary point orders after the end.
// Boundary points in disconnected trees are treated as unordered.
func (r *Range) isStartAfterEnd() bool {
	if r.startContainer == r.endContainer {
		return r.startOffset > r.endOffset
	}
	return false
}

// Collapse collapses the range to one of its boundary points.
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.endContainer = r.startContainer
		r.endOffset = r.startOffset
	} else {
		r.startContainer = r.endContainer
		r.startOffset = r.endOffset
	}
}

// SelectNodeContents sets the range to contain the contents of the given node.
func (r *Range) SelectNodeContents(node *Node) error {
	if node == nil {
		return ErrNotFound("Node is null")
	}
	r.startContainer = node
	r.startOffset = 0
	r.endContainer = node
	r.endOffset = nodeLength(node)
	return nil
}

// InsertNode inserts a node at the start of the range, splitting a text
// container when the start offset falls inside it.
func (r *Range) InsertNode(node *Node) error {
	if node == nil {
		return ErrNotFound("Node is null")
	}

	if r.startContainer.nodeType == TextNode {
		parent := r.startContainer.parentNode
		if parent == nil {
			return ErrHierarchyRequest("Cannot insert into an orphan text node")
		}
		if r.startOffset > 0 && r.startOffset < len(r.startContainer.NodeValue()) {
			text := r.startContainer.NodeValue()
			r.startContainer.SetNodeValue(text[:r.startOffset])
			newText := r.ownerDocument.CreateTextNode(text[r.startOffset:])
			parent.InsertBefore(newText, r.startContainer.nextSibling)
		}
		parent.InsertBefore(node, r.startContainer.nextSibling)
		return nil
	}

	refChild := r.startContainer.firstChild
	for i := 0; i < r.startOffset && refChild != nil; i++ {
		refChild = refChild.nextSibling
	}
	r.startContainer.InsertBefore(node, refChild)
	return nil
}

// CloneRange returns a new range with the same boundary points.
func (r *Range) CloneRange() *Range {
	return &Range{
		ownerDocument:  r.ownerDocument,
		startContainer: r.startContainer,
		startOffset:    r.startOffset,
		endContainer:   r.endContainer,
		endOffset:      r.endOffset,
	}
}

// ToString returns the text content covered by the range.
// Only same-container ranges and simple subtree spans are supported.
func (r *Range) ToString() string {
	if r.Collapsed() {
		return ""
	}

	if r.startContainer == r.endContainer {
		if r.startContainer.nodeType == TextNode {
			data := r.startContainer.NodeValue()
			start, end := r.startOffset, r.endOffset
			if start > len(data) {
				start = len(data)
			}
			if end > len(data) {
				end = len(data)
			}
			return data[start:end]
		}
		var sb strings.Builder
		i := 0
		for child := r.startContainer.firstChild; child != nil; child = child.nextSibling {
			if i >= r.startOffset && i < r.endOffset {
				sb.WriteString(child.TextContent())
			}
			i++
		}
		return sb.String()
	}

	// Different containers: concatenate the tail of the start container, any
	// nodes between, and the head of the end container.
	var sb strings.Builder
	if r.startContainer.nodeType == TextNode {
		data := r.startContainer.NodeValue()
		if r.startOffset < len(data) {
			sb.WriteString(data[r.startOffset:])
		}
	}
	if r.endContainer.nodeType == TextNode {
		data := r.endContainer.NodeValue()
		end := r.endOffset
		if end > len(data) {
			end = len(data)
		}
		sb.WriteString(data[:end])
	}
	return sb.String()
}
