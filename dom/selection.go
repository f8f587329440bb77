package dom

// Selection represents a user's selection of text in the document.
// Per the Selection API specification, each Document has an associated
// Selection object. Most browsers only support a single range; so does this.
type Selection struct {
	// The document this selection belongs to
	document *Document

	// The ranges that make up this selection.
	ranges []*Range
}

// NewSelection creates a new Selection for the given document.
func NewSelection(doc *Document) *Selection {
	return &Selection{
		document: doc,
		ranges:   make([]*Range, 0),
	}
}

// AnchorNode returns the node in which the selection begins.
// Returns nil if the selection is empty.
func (s *Selection) AnchorNode() *Node {
	if len(s.ranges) == 0 {
		return nil
	}
	return s.ranges[0].StartContainer()
}

// AnchorOffset returns the offset within the anchor node where the selection starts.
func (s *Selection) AnchorOffset() int {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[0].StartOffset()
}

// FocusNode returns the node in which the selection ends.
// Returns nil if the selection is empty.
func (s *Selection) FocusNode() *Node {
	if len(s.ranges) == 0 {
		return nil
	}
	return s.ranges[0].EndContainer()
}

// FocusOffset returns the offset within the focus node where the selection ends.
func (s *Selection) FocusOffset() int {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[0].EndOffset()
}

// IsCollapsed returns true if the selection's start and end points are at the same position.
func (s *Selection) IsCollapsed() bool {
	if len(s.ranges) == 0 {
		return true
	}
	return s.ranges[0].Collapsed()
}

// RangeCount returns the number of ranges in the selection.
func (s *Selection) RangeCount() int {
	return len(s.ranges)
}

// Type returns the type of the current selection.
// Returns "None", "Caret", or "Range".
func (s *Selection) Type() string {
	if len(s.ranges) == 0 {
		return "None"
	}
	if s.ranges[0].Collapsed() {
		return "Caret"
	}
	return "Range"
}

// GetRangeAt returns the range at the given index.
// Returns nil and an error if the index is out of bounds.
func (s *Selection) GetRangeAt(index int) (*Range, error) {
	if index < 0 || index >= len(s.ranges) {
		return nil, ErrIndexSize("Index out of range")
	}
	return s.ranges[index], nil
}

// AddRange adds a Range to the selection. If a range already exists, the
// addition is ignored, matching single-range browser behavior.
func (s *Selection) AddRange(r *Range) {
	if r == nil {
		return
	}
	if len(s.ranges) == 0 {
		s.ranges = append(s.ranges, r)
	}
}

// RemoveAllRanges removes all ranges from the selection.
func (s *Selection) RemoveAllRanges() {
	s.ranges = s.ranges[:0]
}

// Collapse collapses the selection to a single point.
// A nil node clears the selection.
func (s *Selection) Collapse(node *Node, offset int) error {
	if node == nil {
		s.RemoveAllRanges()
		return nil
	}

	r := NewRange(s.document)
	if err := r.SetStart(node, offset); err != nil {
		return err
	}
	r.Collapse(true)

	s.ranges = []*Range{r}
	return nil
}

// CollapseToEnd collapses the selection to the end of the last range.
func (s *Selection) CollapseToEnd() error {
	if len(s.ranges) == 0 {
		return ErrInvalidState("No ranges in selection")
	}
	lastRange := s.ranges[len(s.ranges)-1]
	return s.Collapse(lastRange.EndContainer(), lastRange.EndOffset())
}

// ToString returns a string representing the text content of the selection.
func (s *Selection) ToString() string {
	if len(s.ranges) == 0 {
		return ""
	}
	var result string
	for _, r := range s.ranges {
		result += r.ToString()
	}
	return result
}
