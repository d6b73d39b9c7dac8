package scene

import "github.com/hierarchyplus/hierarchy-plus/internal/model"

// Provider exposes the item tree in stable order
type Provider interface {
	Roots() []*model.Item
	ItemByID(id string) (*model.Item, bool)
	Children(it *model.Item) []*model.Item
	Components(it *model.Item) []*model.Component
	Tags() []string
	LayerName(index int) string
}

// Mutator changes items and records each change as an undoable edit
type Mutator interface {
	SetEnabled(target model.Togglable, enabled bool, label string)
	SetLayer(it *model.Item, layer int)
	SetTag(it *model.Item, tag string)
	BeginGroup(label string) func()
}

// Editor is the full scene editing surface used by the UI
type Editor interface {
	Provider
	Mutator
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	Dirty() bool
	SetUpdateCallback(func())
}
