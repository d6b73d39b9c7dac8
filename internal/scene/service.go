package scene

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
	"github.com/hierarchyplus/hierarchy-plus/internal/platform"
)

// Scene constants
const (
	ItemIDPrefix     = "obj-"
	SampleSceneName  = "Sample"
	MaxUndoSteps     = 256
	ToggleEditLabel  = "[H+] Toggle"
	LayerEditLabel   = "Change Layer"
	TagEditLabel     = "Change Tag"
	UnnamedItemLabel = "GameObject"
)

//go:embed sample.yaml
var sampleScene []byte

// edit is one undoable change
type edit struct {
	label  string
	apply  func()
	revert func()
}

// Service holds the loaded scene and its edit history
type Service struct {
	name   string
	path   string
	roots  []*model.Item
	index  map[string]*model.Item
	tags   []string
	layers map[int]string

	undo  []edit
	redo  []edit
	group *edit
	depth int
	dirty bool

	onUpdate func() // callback for UI updates
}

// NewService creates an empty scene
func NewService() *Service {
	s := &Service{}
	s.reset(SampleSceneName)
	return s
}

// SetUpdateCallback sets the function called after every change
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Name returns the scene name
func (s *Service) Name() string {
	return s.name
}

// Path returns the file the scene was loaded from or saved to
func (s *Service) Path() string {
	return s.path
}

// LoadSample loads the scene bundled with the application
func (s *Service) LoadSample() error {
	if err := s.LoadBytes(sampleScene); err != nil {
		return err
	}
	s.path = ""
	return nil
}

// Load reads a scene file
func (s *Service) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	if err := s.LoadBytes(data); err != nil {
		return err
	}
	s.path = path
	return nil
}

// LoadBytes replaces the scene with a parsed document. History is cleared.
func (s *Service) LoadBytes(data []byte) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	s.apply(doc)
	s.notifyUpdate()
	return nil
}

// Save writes the scene to path, or to the file it was loaded from when path
// is empty.
func (s *Service) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return fmt.Errorf("scene has no file path")
	}

	data, err := s.Document().Marshal()
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to save scene: %w", err)
	}

	s.path = path
	s.dirty = false
	logging.Infof("Saved scene %s to %s", s.name, path)
	s.notifyUpdate()
	return nil
}

// Document converts the current scene back to its on-disk form
func (s *Service) Document() *Document {
	doc := &Document{Name: s.name}

	for _, tag := range s.tags {
		if !slices.Contains(model.DefaultTags, tag) {
			doc.Tags = append(doc.Tags, tag)
		}
	}
	for index, name := range s.layers {
		if model.DefaultLayerNames[index] != name {
			if doc.Layers == nil {
				doc.Layers = make(map[int]string)
			}
			doc.Layers[index] = name
		}
	}
	for _, root := range s.roots {
		doc.Items = append(doc.Items, itemToDoc(root))
	}
	return doc
}

// Roots returns the top level items
func (s *Service) Roots() []*model.Item {
	return s.roots
}

// ItemByID looks an item up by identifier
func (s *Service) ItemByID(id string) (*model.Item, bool) {
	it, ok := s.index[id]
	return it, ok
}

// Children returns the children of it in sibling order
func (s *Service) Children(it *model.Item) []*model.Item {
	return it.Children
}

// Components returns the components of it in attachment order
func (s *Service) Components(it *model.Item) []*model.Component {
	return it.Components
}

// Tags returns every tag available in the scene
func (s *Service) Tags() []string {
	return s.tags
}

// LayerName returns the name of a layer slot, or "" when it is unnamed
func (s *Service) LayerName(index int) string {
	return s.layers[index]
}

// Count returns the number of items in the scene
func (s *Service) Count() int {
	return len(s.index)
}

// SetEnabled changes the enabled flag of an item or component
func (s *Service) SetEnabled(target model.Togglable, enabled bool, label string) {
	prev := target.IsEnabled()
	if prev == enabled {
		return
	}
	if label == "" {
		label = ToggleEditLabel
	}
	s.record(edit{
		label:  label,
		apply:  func() { target.SetEnabled(enabled) },
		revert: func() { target.SetEnabled(prev) },
	})
}

// SetLayer moves an item to another layer
func (s *Service) SetLayer(it *model.Item, layer int) {
	if layer < 0 || layer >= model.MaxLayers || it.Layer == layer {
		return
	}
	prev := it.Layer
	s.record(edit{
		label:  LayerEditLabel,
		apply:  func() { it.Layer = layer },
		revert: func() { it.Layer = prev },
	})
}

// SetTag changes an item's tag
func (s *Service) SetTag(it *model.Item, tag string) {
	if it.Tag == tag {
		return
	}
	prev := it.Tag
	s.record(edit{
		label:  TagEditLabel,
		apply:  func() { it.Tag = tag },
		revert: func() { it.Tag = prev },
	})
}

// BeginGroup collapses every edit until the returned function is called into
// a single undo step. Groups nest.
func (s *Service) BeginGroup(label string) func() {
	s.depth++
	if s.depth == 1 {
		s.group = &edit{label: label}
	}

	ended := false
	return func() {
		if ended {
			return
		}
		ended = true
		s.depth--
		if s.depth > 0 {
			return
		}
		g := s.group
		s.group = nil
		if g.apply != nil {
			s.push(*g)
		}
	}
}

// Undo reverts the most recent edit
func (s *Service) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	e := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	e.revert()
	s.redo = append(s.redo, e)
	s.dirty = true
	s.notifyUpdate()
	return true
}

// Redo re-applies the most recently undone edit
func (s *Service) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	e := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	e.apply()
	s.undo = append(s.undo, e)
	s.dirty = true
	s.notifyUpdate()
	return true
}

// CanUndo reports whether there is an edit to undo
func (s *Service) CanUndo() bool {
	return len(s.undo) > 0
}

// CanRedo reports whether there is an edit to redo
func (s *Service) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoLabel returns the label of the next undo step
func (s *Service) UndoLabel() string {
	if len(s.undo) == 0 {
		return ""
	}
	return s.undo[len(s.undo)-1].label
}

// Dirty reports whether the scene has unsaved changes
func (s *Service) Dirty() bool {
	return s.dirty
}

// record applies e and adds it to the history
func (s *Service) record(e edit) {
	e.apply()
	s.dirty = true

	if s.group != nil {
		s.group.apply = chain(s.group.apply, e.apply)
		s.group.revert = chain(e.revert, s.group.revert)
	} else {
		s.push(e)
	}
	s.notifyUpdate()
}

func (s *Service) push(e edit) {
	s.undo = append(s.undo, e)
	if len(s.undo) > MaxUndoSteps {
		s.undo = s.undo[len(s.undo)-MaxUndoSteps:]
	}
	s.redo = nil
}

// chain runs first then second; either may be nil
func chain(first, second func()) func() {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return func() {
		first()
		second()
	}
}

func (s *Service) reset(name string) {
	s.name = name
	s.roots = nil
	s.index = make(map[string]*model.Item)
	s.tags = slices.Clone(model.DefaultTags)
	s.layers = make(map[int]string, len(model.DefaultLayerNames))
	for index, layer := range model.DefaultLayerNames {
		s.layers[index] = layer
	}
	s.undo = nil
	s.redo = nil
	s.group = nil
	s.depth = 0
	s.dirty = false
}

func (s *Service) apply(doc *Document) {
	name := doc.Name
	if name == "" {
		name = SampleSceneName
	}
	s.reset(name)

	for _, tag := range doc.Tags {
		if !slices.Contains(s.tags, tag) {
			s.tags = append(s.tags, tag)
		}
	}
	for index, layer := range doc.Layers {
		if index < 0 || index >= model.MaxLayers {
			logging.Warnf("Ignoring layer %d (%s): index out of range", index, layer)
			continue
		}
		s.layers[index] = layer
	}

	for _, itemDoc := range doc.Items {
		s.roots = append(s.roots, s.buildItem(itemDoc, nil))
	}
}

func (s *Service) buildItem(doc ItemDoc, parent *model.Item) *model.Item {
	id := doc.ID
	if id == "" || s.index[id] != nil {
		id = generateItemID()
	}
	name := doc.Name
	if name == "" {
		name = UnnamedItemLabel
	}

	it := model.NewItem(id, name)
	if doc.Active != nil {
		it.SetEnabled(*doc.Active)
	}
	if doc.Tag != "" {
		it.Tag = doc.Tag
		if !slices.Contains(s.tags, doc.Tag) {
			s.tags = append(s.tags, doc.Tag)
		}
	}
	if doc.Layer >= 0 && doc.Layer < model.MaxLayers {
		it.Layer = doc.Layer
	}
	it.Icon = doc.Icon

	if len(doc.Components) == 0 {
		it.AddComponent(model.NewComponent("Transform"))
	}
	for _, cd := range doc.Components {
		it.AddComponent(buildComponent(cd))
	}

	if parent != nil {
		parent.AddChild(it)
	}
	s.index[id] = it

	for _, childDoc := range doc.Children {
		s.buildItem(childDoc, it)
	}
	return it
}

func buildComponent(doc ComponentDoc) *model.Component {
	var c *model.Component
	if doc.Missing {
		c = model.NewMissingComponent()
	} else {
		c = model.NewComponent(doc.Type)
	}
	if doc.Kind != "" {
		if kind, ok := model.ParseKind(doc.Kind); ok {
			c.SetKind(kind)
		} else {
			logging.Warnf("Unknown component kind %q for %s", doc.Kind, doc.Type)
		}
	}
	if doc.Enabled != nil {
		c.SetEnabled(*doc.Enabled)
	}
	return c
}

func itemToDoc(it *model.Item) ItemDoc {
	doc := ItemDoc{
		ID:    it.ID,
		Name:  it.Name,
		Layer: it.Layer,
		Icon:  it.Icon,
	}
	if !it.IsEnabled() {
		inactive := false
		doc.Active = &inactive
	}
	if it.Tag != model.DefaultTag {
		doc.Tag = it.Tag
	}
	for _, c := range it.Components {
		doc.Components = append(doc.Components, componentToDoc(c))
	}
	for _, child := range it.Children {
		doc.Children = append(doc.Children, itemToDoc(child))
	}
	return doc
}

func componentToDoc(c *model.Component) ComponentDoc {
	if c.Missing {
		doc := ComponentDoc{Missing: true}
		if !c.IsEnabled() {
			disabled := false
			doc.Enabled = &disabled
		}
		return doc
	}

	doc := ComponentDoc{Type: c.Type}
	if c.Kind() != model.LookupKind(c.Type) {
		doc.Kind = string(c.Kind())
	}
	if !c.IsEnabled() {
		disabled := false
		doc.Enabled = &disabled
	}
	return doc
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// generateItemID generates a unique, time ordered item ID
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}
