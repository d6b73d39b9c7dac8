package hierarchy

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
	"github.com/hierarchyplus/hierarchy-plus/internal/toggle"
)

// Edit labels used by context menu actions
const (
	ComponentToggleLabel = "[H+] Toggle Component"
	layerMenuSize        = model.MaxLayers - 1
)

// ActionKind tells the view what a pointer event resulted in
type ActionKind int

const (
	NoAction ActionKind = iota
	Toggled
	ComponentMenu
	LayerMenu
	TagMenu
)

func (k ActionKind) String() string {
	switch k {
	case NoAction:
		return "none"
	case Toggled:
		return "toggled"
	case ComponentMenu:
		return "component-menu"
	case LayerMenu:
		return "layer-menu"
	case TagMenu:
		return "tag-menu"
	}
	panic("hierarchy: unknown action kind")
}

// MenuEntry is one context menu item
type MenuEntry struct {
	Label   string
	Checked bool
	Apply   func()
}

// Action is the result of a pointer event
type Action struct {
	Kind      ActionKind
	Row       *RowPlan
	Component *model.Component
	Entries   []MenuEntry
}

// HandlePointer routes a pointer event to the rows planned in the last pass.
// Primary presses and moves go to the toggle controller through every icon
// slot; secondary presses open context menus.
func (p *Pipeline) HandlePointer(ev toggle.Event) Action {
	if ev.Kind == toggle.Release {
		p.controller.Release()
		return Action{}
	}

	if ev.Secondary {
		if ev.Kind != toggle.Press {
			return Action{}
		}
		return p.contextMenu(ev.X, ev.Y)
	}

	toggled := false
	for i := range p.plans {
		for _, icon := range p.plans[i].Icons {
			if icon.Ellipsis {
				continue
			}
			if p.controller.HandleIcon(ev, icon.Rect, icon.Target) {
				toggled = true
			}
		}
	}
	if toggled {
		return Action{Kind: Toggled}
	}
	return Action{}
}

// LostFocus takes the pointer capture away from any running gesture
func (p *Pipeline) LostFocus() {
	p.capture.Steal()
}

func (p *Pipeline) contextMenu(x, y float32) Action {
	s := p.store.Get()
	for i := range p.plans {
		row := &p.plans[i]
		if s.EnableContextClick.Get() {
			if icon, ok := row.IconAt(x, y); ok && !icon.Ellipsis && icon.Component != nil {
				return Action{
					Kind:      ComponentMenu,
					Row:       row,
					Component: icon.Component,
					Entries:   p.componentEntries(s, icon.Component),
				}
			}
		}

		if !s.EnableLabelContextClick.Get() {
			continue
		}
		if row.Layer.Visible && row.Layer.Rect.Contains(x, y) {
			return Action{Kind: LayerMenu, Row: row, Entries: p.layerEntries(row.Item)}
		}
		if row.Tag.Visible && row.Tag.Rect.Contains(x, y) {
			return Action{Kind: TagMenu, Row: row, Entries: p.tagEntries(row.Item)}
		}
	}
	return Action{}
}

func (p *Pipeline) componentEntries(s *config.Settings, c *model.Component) []MenuEntry {
	var entries []MenuEntry
	if t, ok := model.AsTogglable(c); ok {
		label := "Disable"
		if !t.IsEnabled() {
			label = "Enable"
		}
		entries = append(entries, MenuEntry{
			Label: label,
			Apply: func() { p.host.SetEnabled(t, !t.IsEnabled(), ComponentToggleLabel) },
		})
	}
	if !c.Missing {
		entries = append(entries, MenuEntry{
			Label: "Hide " + c.Type + " Icons",
			Apply: func() { s.HideType(c.Type) },
		})
	}
	return entries
}

func (p *Pipeline) layerEntries(it *model.Item) []MenuEntry {
	var entries []MenuEntry
	for i := 0; i < layerMenuSize; i++ {
		name := p.host.LayerName(i)
		if name == "" {
			continue
		}
		layer := i
		entries = append(entries, MenuEntry{
			Label:   model.LayerLabel(i, name, true),
			Checked: it.Layer == i,
			Apply:   func() { p.host.SetLayer(it, layer) },
		})
	}
	return entries
}

func (p *Pipeline) tagEntries(it *model.Item) []MenuEntry {
	var entries []MenuEntry
	for _, tag := range p.host.Tags() {
		if tag == "" {
			continue
		}
		entries = append(entries, MenuEntry{
			Label:   tag,
			Checked: it.CompareTag(tag),
			Apply:   func() { p.host.SetTag(it, tag) },
		})
	}
	return entries
}
