package hierarchy

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/guides"
	"github.com/hierarchyplus/hierarchy-plus/internal/icons"
	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// RowInput is what the view knows about a row before it is planned
type RowInput struct {
	Item      *model.Item
	Rect      layout.Rect
	NameWidth float32
}

// RowPlan is everything drawn for one row
type RowPlan struct {
	Item *model.Item
	Rect layout.Rect

	NameColor      config.Color
	NameBackground config.Color
	HasFoldout     bool

	// Decorated is false when colours and icons are both off
	Decorated bool

	Gutter     layout.Rect
	Band       *Band
	Lines      []guides.Segment
	LinesColor config.Color

	Icons []IconPlan
	Layer LabelPlan
	Tag   LabelPlan
}

// Band is a row colour band
type Band struct {
	Rect   layout.Rect
	Color  config.Color
	Parity guides.Parity
}

// IconPlan is one icon slot of a row
type IconPlan struct {
	Rect     layout.Rect
	Ellipsis bool

	Descriptor *icons.Descriptor
	// Component is nil for the item's own icon
	Component *model.Component
	// Target is nil when the icon cannot be toggled
	Target model.Togglable

	Faded      bool
	Tint       config.Color
	Background *config.Color
	LinkCursor bool
}

// LabelPlan is a tag or layer label
type LabelPlan struct {
	Visible    bool
	Rect       layout.Rect
	Text       string
	Background config.Color
	Foreground config.Color
}

// IconAt returns the icon slot under the point
func (p *RowPlan) IconAt(x, y float32) (*IconPlan, bool) {
	for i := range p.Icons {
		if p.Icons[i].Rect.Contains(x, y) {
			return &p.Icons[i], true
		}
	}
	return nil, false
}
