package dom

import (
	"testing"
)

func TestGetSelectionIsStable(t *testing.T) {
	doc := NewDocument()
	if doc.GetSelection() != doc.GetSelection() {
		t.Error("GetSelection should return the same object every time")
	}
}

func TestSelectionEmpty(t *testing.T) {
	doc := NewDocument()
	sel := doc.GetSelection()

	if sel.AnchorNode() != nil {
		t.Error("An empty selection has no anchor node")
	}
	if sel.AnchorOffset() != 0 {
		t.Error("An empty selection's anchor offset is 0")
	}
	if sel.FocusNode() != nil {
		t.Error("An empty selection has no focus node")
	}
	if sel.FocusOffset() != 0 {
		t.Error("An empty selection's focus offset is 0")
	}
	if !sel.IsCollapsed() {
		t.Error("An empty selection is collapsed")
	}
	if sel.Type() != "None" {
		t.Errorf("Expected type 'None', got %s", sel.Type())
	}
	if _, err := sel.GetRangeAt(0); err == nil {
		t.Error("GetRangeAt on an empty selection should fail")
	}
}

func TestSelectionCollapse(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello")
	sel := doc.GetSelection()

	if err := sel.Collapse(text, 3); err != nil {
		t.Fatalf("Collapse failed: %v", err)
	}

	if sel.AnchorNode() != text {
		t.Error("Anchor node should be the collapse target")
	}
	if sel.AnchorOffset() != 3 {
		t.Errorf("Expected anchor offset 3, got %d", sel.AnchorOffset())
	}
	if sel.FocusNode() != text || sel.FocusOffset() != 3 {
		t.Error("A caret's focus point should coincide with its anchor")
	}
	if sel.Type() != "Caret" {
		t.Errorf("Expected type 'Caret', got %s", sel.Type())
	}
	if sel.RangeCount() != 1 {
		t.Errorf("Expected 1 range, got %d", sel.RangeCount())
	}
}

func TestSelectionCollapseNilClears(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello")
	sel := doc.GetSelection()
	sel.Collapse(text, 1)

	if err := sel.Collapse(nil, 0); err != nil {
		t.Fatalf("Collapse(nil) failed: %v", err)
	}
	if sel.RangeCount() != 0 {
		t.Error("Collapsing to nil should clear the selection")
	}
}

func TestSelectionCollapseOutOfBounds(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hi")
	sel := doc.GetSelection()

	if err := sel.Collapse(text, 99); err == nil {
		t.Error("Expected error for an out-of-bounds offset")
	}
	if sel.RangeCount() != 0 {
		t.Error("A failed collapse should not leave a range behind")
	}
}

func TestSelectionAddRangeSingleRange(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello")
	sel := doc.GetSelection()

	first := doc.CreateRange()
	first.SetStart(text, 0)
	first.SetEnd(text, 2)
	second := doc.CreateRange()
	second.SetStart(text, 3)
	second.SetEnd(text, 5)

	sel.AddRange(first)
	sel.AddRange(second)

	if sel.RangeCount() != 1 {
		t.Fatalf("Only one range is supported, got %d", sel.RangeCount())
	}
	r, err := sel.GetRangeAt(0)
	if err != nil {
		t.Fatalf("GetRangeAt failed: %v", err)
	}
	if r != first {
		t.Error("The first added range should win")
	}
	if sel.Type() != "Range" {
		t.Errorf("Expected type 'Range', got %s", sel.Type())
	}
	if sel.AnchorOffset() != 0 || sel.FocusOffset() != 2 {
		t.Errorf("Anchor and focus should be the range boundaries, got [%d,%d)",
			sel.AnchorOffset(), sel.FocusOffset())
	}
}

func TestSelectionCollapseToEnd(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello")
	sel := doc.GetSelection()

	r := doc.CreateRange()
	r.SetStart(text, 1)
	r.SetEnd(text, 4)
	sel.AddRange(r)

	if err := sel.CollapseToEnd(); err != nil {
		t.Fatalf("CollapseToEnd failed: %v", err)
	}
	if !sel.IsCollapsed() || sel.AnchorOffset() != 4 {
		t.Errorf("Expected caret at offset 4, got offset %d", sel.AnchorOffset())
	}

	sel.RemoveAllRanges()
	if err := sel.CollapseToEnd(); err == nil {
		t.Error("CollapseToEnd on an empty selection should fail")
	}
}

func TestSelectionToString(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello world")
	sel := doc.GetSelection()

	r := doc.CreateRange()
	r.SetStart(text, 0)
	r.SetEnd(text, 5)
	sel.AddRange(r)

	if got := sel.ToString(); got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
}
