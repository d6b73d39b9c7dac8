package model

import "testing"

func buildFamily() (root, a, b, c *Item) {
	root = NewItem("root", "Root")
	a = NewItem("a", "A")
	b = NewItem("b", "B")
	c = NewItem("c", "C")
	root.AddChild(a)
	root.AddChild(b)
	b.AddChild(c)
	return
}

func TestItem_SiblingsAndDepth(t *testing.T) {
	root, a, b, c := buildFamily()

	tests := []struct {
		item      *Item
		index     int
		lastChild bool
		depth     int
	}{
		{root, -1, false, 0},
		{a, 0, false, 1},
		{b, 1, true, 1},
		{c, 0, true, 2},
	}

	for _, test := range tests {
		if got := test.item.SiblingIndex(); got != test.index {
			t.Errorf("%s.SiblingIndex() = %d, expected %d", test.item.Name, got, test.index)
		}
		if got := test.item.IsLastChild(); got != test.lastChild {
			t.Errorf("%s.IsLastChild() = %v, expected %v", test.item.Name, got, test.lastChild)
		}
		if got := test.item.Depth(); got != test.depth {
			t.Errorf("%s.Depth() = %d, expected %d", test.item.Name, got, test.depth)
		}
	}
}

func TestItem_Toggle(t *testing.T) {
	item := NewItem("x", "X")
	if !item.IsEnabled() {
		t.Fatal("New items should be enabled")
	}
	item.SetEnabled(false)
	if item.IsEnabled() {
		t.Error("Item should be disabled after SetEnabled(false)")
	}
	if item.Tag != DefaultTag {
		t.Errorf("Expected tag %s, got %s", DefaultTag, item.Tag)
	}
}

func TestItem_Walk(t *testing.T) {
	root, _, _, _ := buildFamily()
	var names []string
	root.Walk(func(it *Item) { names = append(names, it.Name) })

	expected := []string{"Root", "A", "B", "C"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Walk order %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}
