package editor

import (
	"testing"
)

func TestUpdateTextJoinsSections(t *testing.T) {
	doc, surface := newSurface()
	store := NewSectionStore(doc, surface)
	sync := NewTextSynchronizer(store, nil)
	sync.Seed("alpha\nbeta")

	sync.UpdateText()

	if got := sync.Text(); got != "alpha\nbeta" {
		t.Errorf("Expected 'alpha\\nbeta', got %q", got)
	}
}

func TestUpdateTextEmptySectionContributesEmptyLine(t *testing.T) {
	doc, surface := newSurface()
	store := NewSectionStore(doc, surface)
	sync := NewTextSynchronizer(store, nil)
	sync.Seed("alpha\n\nbeta")

	if store.Len() != 3 {
		t.Fatalf("Expected 3 sections, got %d", store.Len())
	}
	if !store.Sections()[1].IsEmpty() {
		t.Error("Middle section should be empty")
	}

	sync.UpdateText()
	if got := sync.Text(); got != "alpha\n\nbeta" {
		t.Errorf("Expected 'alpha\\n\\nbeta', got %q", got)
	}
}

func TestUpdateTextNotifiesOnlyOnChange(t *testing.T) {
	doc, surface := newSurface()
	store := NewSectionStore(doc, surface)

	calls := 0
	var last string
	sync := NewTextSynchronizer(store, func(text string) {
		calls++
		last = text
	})
	sync.Seed("alpha")

	sync.UpdateText()
	sync.UpdateText()
	if calls != 0 {
		t.Errorf("Unchanged text should not notify, got %d calls", calls)
	}

	sec := store.First()
	textNode := sec.Element().AsNode().FirstChild().AsText()
	if err := textNode.InsertData(5, "!"); err != nil {
		t.Fatalf("InsertData failed: %v", err)
	}

	sync.UpdateText()
	if calls != 1 {
		t.Fatalf("Expected 1 notification after an edit, got %d", calls)
	}
	if last != "alpha!" {
		t.Errorf("Expected callback value 'alpha!', got %q", last)
	}

	sync.UpdateText()
	if calls != 1 {
		t.Errorf("A second update without an edit should not re-notify, got %d calls", calls)
	}
}

func TestSplitForDisplay(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"", []string{LineBreakPlaceholder}},
		{"alpha", []string{"alpha"}},
		{"alpha\nbeta", []string{"alpha", "beta"}},
		{"alpha\n\nbeta", []string{"alpha", LineBreakPlaceholder, "beta"}},
		{"\n", []string{LineBreakPlaceholder, LineBreakPlaceholder}},
	}

	for _, c := range cases {
		got := SplitForDisplay(c.text)
		if len(got) != len(c.want) {
			t.Errorf("SplitForDisplay(%q): expected %d lines, got %d", c.text, len(c.want), len(got))
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("SplitForDisplay(%q)[%d]: expected %q, got %q", c.text, i, c.want[i], got[i])
			}
		}
	}
}

func TestSeedRoundTrip(t *testing.T) {
	for _, text := range []string{"", "alpha", "alpha\nbeta", "alpha\n\nbeta", "\n\n"} {
		doc, surface := newSurface()
		store := NewSectionStore(doc, surface)
		sync := NewTextSynchronizer(store, nil)

		sync.Seed(text)
		sync.UpdateText()

		if got := sync.Text(); got != text {
			t.Errorf("Seed then UpdateText should round-trip %q, got %q", text, got)
		}
	}
}
