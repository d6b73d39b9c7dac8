package model

// DefaultTag is the tag every item starts with
const DefaultTag = "Untagged"

// Item is one object of the scene tree
type Item struct {
	ID         string
	Name       string
	Tag        string
	Layer      int
	Icon       string // optional custom icon name
	Parent     *Item
	Children   []*Item
	Components []*Component

	active bool
}

// NewItem creates an active item with the default tag
func NewItem(id, name string) *Item {
	return &Item{
		ID:     id,
		Name:   name,
		Tag:    DefaultTag,
		active: true,
	}
}

// IsEnabled reports the item's own active flag
func (it *Item) IsEnabled() bool {
	return it.active
}

// SetEnabled sets the item's own active flag
func (it *Item) SetEnabled(enabled bool) {
	it.active = enabled
}

// AddChild appends child and points it back at the receiver
func (it *Item) AddChild(child *Item) {
	child.Parent = it
	it.Children = append(it.Children, child)
}

// AddComponent attaches c to the item
func (it *Item) AddComponent(c *Component) {
	c.Owner = it
	it.Components = append(it.Components, c)
}

// HasChildren reports whether the item has at least one child
func (it *Item) HasChildren() bool {
	return len(it.Children) > 0
}

// SiblingIndex returns the position of the item among its parent's children,
// or -1 for root items.
func (it *Item) SiblingIndex() int {
	if it.Parent == nil {
		return -1
	}
	for i, sibling := range it.Parent.Children {
		if sibling == it {
			return i
		}
	}
	return -1
}

// IsLastChild reports whether the item is the final child of its parent.
// Root items are never a last child.
func (it *Item) IsLastChild() bool {
	if it.Parent == nil {
		return false
	}
	return it.SiblingIndex() == len(it.Parent.Children)-1
}

// Depth returns the number of ancestors between the item and the tree root
func (it *Item) Depth() int {
	depth := 0
	for p := it.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// CompareTag reports whether the item carries tag
func (it *Item) CompareTag(tag string) bool {
	return it.Tag == tag
}

// Walk visits the item and its descendants depth first
func (it *Item) Walk(fn func(*Item)) {
	fn(it)
	for _, child := range it.Children {
		child.Walk(fn)
	}
}
