package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/guides"
	"github.com/hierarchyplus/hierarchy-plus/internal/hierarchy"
	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
	"github.com/hierarchyplus/hierarchy-plus/internal/scene"
	"github.com/hierarchyplus/hierarchy-plus/internal/toggle"
)

var (
	_ desktop.Mouseable  = (*HierarchyView)(nil)
	_ desktop.Hoverable  = (*HierarchyView)(nil)
	_ desktop.Cursorable = (*HierarchyView)(nil)
	_ fyne.Draggable     = (*HierarchyView)(nil)
	_ fyne.Scrollable    = (*HierarchyView)(nil)
	_ fyne.Focusable     = (*HierarchyView)(nil)
)

// visibleRow is one open item of the flattened tree
type visibleRow struct {
	item  *model.Item
	depth int
}

// HierarchyView draws the item tree through the row pipeline. Row
// rectangles are planned in content coordinates; the scroll offset is only
// applied when drawing and when reading pointer positions.
type HierarchyView struct {
	widget.BaseWidget

	pipeline  *hierarchy.Pipeline
	provider  scene.Provider
	collapsed map[string]bool
	rows      []visibleRow
	offset    float32
	rowHeight float32

	gestures  *GestureHandler
	touching  bool
	hoverRow  int
	hoverLink bool
	hoverTip  string

	// OnHover receives the tooltip of the icon under the pointer
	OnHover func(tooltip string)
	// OnChanged runs after a toggle or a context menu edit
	OnChanged func()
}

// NewHierarchyView creates a view over provider. Every item starts expanded.
func NewHierarchyView(pipeline *hierarchy.Pipeline, provider scene.Provider, rowHeight float32) *HierarchyView {
	v := &HierarchyView{
		pipeline:  pipeline,
		provider:  provider,
		collapsed: make(map[string]bool),
		rowHeight: rowHeight,
		hoverRow:  -1,
	}
	v.gestures = NewGestureHandler(v.onGesture)
	v.ExtendBaseWidget(v)
	v.flatten()
	return v
}

// Reload rebuilds the visible rows after the tree changed
func (v *HierarchyView) Reload() {
	v.flatten()
	v.offset = v.clampOffset(v.offset)
	v.Refresh()
}

// RowCount returns the number of open rows
func (v *HierarchyView) RowCount() int {
	return len(v.rows)
}

// Offset returns the scroll offset in pixels
func (v *HierarchyView) Offset() float32 {
	return v.offset
}

// IsCollapsed reports whether the children of it are hidden
func (v *HierarchyView) IsCollapsed(it *model.Item) bool {
	return v.collapsed[it.ID]
}

// ToggleFoldout opens or closes the children of it
func (v *HierarchyView) ToggleFoldout(it *model.Item) {
	if v.collapsed[it.ID] {
		delete(v.collapsed, it.ID)
	} else {
		v.collapsed[it.ID] = true
	}
	v.Reload()
}

// ExpandAll opens every item
func (v *HierarchyView) ExpandAll() {
	clear(v.collapsed)
	v.Reload()
}

// CollapseAll closes every item that has children
func (v *HierarchyView) CollapseAll() {
	for _, root := range v.provider.Roots() {
		root.Walk(func(it *model.Item) {
			if it.HasChildren() {
				v.collapsed[it.ID] = true
			}
		})
	}
	v.Reload()
}

// ScrollTo moves the view to offset, clamped to the content
func (v *HierarchyView) ScrollTo(offset float32) {
	offset = v.clampOffset(offset)
	if offset == v.offset {
		return
	}
	v.offset = offset
	v.Refresh()
}

// ScrollBy moves the view by delta pixels
func (v *HierarchyView) ScrollBy(delta float32) {
	v.ScrollTo(v.offset + delta)
}

// Scrolled handles the mouse wheel
func (v *HierarchyView) Scrolled(ev *fyne.ScrollEvent) {
	v.ScrollBy(-ev.Scrolled.DY)
}

// MouseDown starts a toggle gesture or opens a context menu
func (v *HierarchyView) MouseDown(ev *desktop.MouseEvent) {
	v.requestFocus()
	x, y := v.toContent(ev.Position)
	secondary := ev.Button == desktop.MouseButtonSecondary
	if !secondary {
		if it, ok := v.foldoutAt(x, y); ok {
			v.ToggleFoldout(it)
			return
		}
	}
	v.dispatch(toggle.Event{Kind: toggle.Press, X: x, Y: y, Secondary: secondary}, ev.AbsolutePosition)
}

// MouseUp ends the running gesture
func (v *HierarchyView) MouseUp(ev *desktop.MouseEvent) {
	x, y := v.toContent(ev.Position)
	v.dispatch(toggle.Event{Kind: toggle.Release, X: x, Y: y}, ev.AbsolutePosition)
}

// Dragged extends a toggle gesture, or scrolls while a touch is down
func (v *HierarchyView) Dragged(ev *fyne.DragEvent) {
	if v.touching {
		v.gestures.Moved()
		v.ScrollBy(-ev.Dragged.DY)
		return
	}
	x, y := v.toContent(ev.Position)
	v.dispatch(toggle.Event{Kind: toggle.Move, X: x, Y: y}, ev.AbsolutePosition)
}

// DragEnd ends the running gesture
func (v *HierarchyView) DragEnd() {
	v.dispatch(toggle.Event{Kind: toggle.Release}, fyne.Position{})
}

// MouseIn updates the hover state
func (v *HierarchyView) MouseIn(ev *desktop.MouseEvent) {
	v.hover(ev.Position)
}

// MouseMoved updates the hover state
func (v *HierarchyView) MouseMoved(ev *desktop.MouseEvent) {
	v.hover(ev.Position)
}

// MouseOut clears the hover state
func (v *HierarchyView) MouseOut() {
	v.setHover(-1, nil)
}

// Cursor shows a pointer over icons when the link cursor is enabled
func (v *HierarchyView) Cursor() desktop.Cursor {
	if v.hoverLink {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// FocusGained is part of fyne.Focusable
func (v *HierarchyView) FocusGained() {}

// FocusLost takes the pointer capture away from a running gesture
func (v *HierarchyView) FocusLost() {
	v.pipeline.LostFocus()
}

// TypedRune is part of fyne.Focusable
func (v *HierarchyView) TypedRune(rune) {}

// TypedKey scrolls the view
func (v *HierarchyView) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyUp:
		v.ScrollBy(-v.rowHeight * ScrollRows)
	case fyne.KeyDown:
		v.ScrollBy(v.rowHeight * ScrollRows)
	case fyne.KeyPageUp:
		v.ScrollBy(-v.Size().Height)
	case fyne.KeyPageDown:
		v.ScrollBy(v.Size().Height)
	case fyne.KeyHome:
		v.ScrollTo(0)
	case fyne.KeyEnd:
		v.ScrollTo(v.maxOffset())
	case fyne.KeyEscape:
		v.pipeline.LostFocus()
	}
}

// CreateRenderer is part of fyne.Widget
func (v *HierarchyView) CreateRenderer() fyne.WidgetRenderer {
	r := &hierarchyRenderer{view: v}
	r.rebuild()
	return r
}

func (v *HierarchyView) flatten() {
	v.rows = v.rows[:0]
	var walk func(items []*model.Item, depth int)
	walk = func(items []*model.Item, depth int) {
		for _, it := range items {
			v.rows = append(v.rows, visibleRow{item: it, depth: depth})
			if it.HasChildren() && !v.collapsed[it.ID] {
				walk(v.provider.Children(it), depth+1)
			}
		}
	}
	walk(v.provider.Roots(), 0)
}

func (v *HierarchyView) maxOffset() float32 {
	content := float32(len(v.rows)) * v.rowHeight
	return max(0, content-v.Size().Height)
}

func (v *HierarchyView) clampOffset(offset float32) float32 {
	return min(max(offset, 0), v.maxOffset())
}

func (v *HierarchyView) toContent(pos fyne.Position) (float32, float32) {
	return pos.X, pos.Y + v.offset
}

func (v *HierarchyView) rowRect(index, depth int, width float32) layout.Rect {
	x := RowLeftMargin + guides.IndentWidth*float32(depth)
	return layout.Rect{X: x, Y: float32(index) * v.rowHeight, W: width - x, H: v.rowHeight}
}

func (v *HierarchyView) rowAt(y float32) int {
	if y < 0 {
		return -1
	}
	i := int(y / v.rowHeight)
	if i >= len(v.rows) {
		return -1
	}
	return i
}

func (v *HierarchyView) foldoutAt(x, y float32) (*model.Item, bool) {
	i := v.rowAt(y)
	if i < 0 || !v.rows[i].item.HasChildren() {
		return nil, false
	}
	rect := v.rowRect(i, v.rows[i].depth, v.Size().Width)
	if x < rect.X-FoldoutWidth || x >= rect.X {
		return nil, false
	}
	return v.rows[i].item, true
}

func (v *HierarchyView) dispatch(ev toggle.Event, abs fyne.Position) {
	if len(v.rows) == 0 && ev.Kind != toggle.Release {
		return
	}
	action := v.pipeline.HandlePointer(ev)
	switch action.Kind {
	case hierarchy.Toggled:
		v.changed()
	case hierarchy.ComponentMenu, hierarchy.LayerMenu, hierarchy.TagMenu:
		v.showMenu(action.Entries, abs)
	}
}

func (v *HierarchyView) showMenu(entries []hierarchy.MenuEntry, abs fyne.Position) {
	if len(entries) == 0 {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(v)
	if c == nil {
		return
	}
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, e := range entries {
		apply := e.Apply
		item := fyne.NewMenuItem(e.Label, func() {
			apply()
			v.changed()
		})
		item.Checked = e.Checked
		items = append(items, item)
	}
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), c, abs)
}

func (v *HierarchyView) changed() {
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func (v *HierarchyView) requestFocus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		c.Focus(v)
	}
}

func (v *HierarchyView) hover(pos fyne.Position) {
	x, y := v.toContent(pos)
	var icon *hierarchy.IconPlan
	plans := v.pipeline.Plans()
	for i := range plans {
		if ic, ok := plans[i].IconAt(x, y); ok {
			icon = ic
			break
		}
	}
	v.setHover(v.rowAt(y), icon)
}

func (v *HierarchyView) setHover(row int, icon *hierarchy.IconPlan) {
	tip := ""
	link := false
	if icon != nil && !icon.Ellipsis {
		link = icon.LinkCursor
		if icon.Descriptor != nil {
			tip = icon.Descriptor.Tooltip
		}
	}
	v.hoverLink = link
	if tip != v.hoverTip {
		v.hoverTip = tip
		if v.OnHover != nil {
			v.OnHover(tip)
		}
	}
	if row != v.hoverRow {
		v.hoverRow = row
		v.Refresh()
	}
}

// activeInHierarchy reports whether it and all of its parents are active
func activeInHierarchy(it *model.Item) bool {
	for ; it != nil; it = it.Parent {
		if !it.IsEnabled() {
			return false
		}
	}
	return true
}

// hierarchyRenderer redraws every visible row from its plan on each refresh
type hierarchyRenderer struct {
	view    *HierarchyView
	objects []fyne.CanvasObject
}

func (r *hierarchyRenderer) Layout(fyne.Size) {
	r.rebuild()
}

func (r *hierarchyRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RowLeftMargin*4, r.view.rowHeight*3)
}

func (r *hierarchyRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.view)
}

func (r *hierarchyRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *hierarchyRenderer) Destroy() {}

func (r *hierarchyRenderer) rebuild() {
	v := r.view
	size := v.Size()

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	bg.Resize(size)
	objects := []fyne.CanvasObject{bg}

	h := v.rowHeight
	if len(v.rows) == 0 || size.Width <= 0 || size.Height <= 0 {
		r.objects = objects
		return
	}

	fg := config.FromColor(theme.Color(theme.ColorNameForeground))
	guide := config.FromColor(theme.Color(ColorNameGuide))

	first := int(v.offset / h)
	last := min(first+int(math.Ceil(float64(size.Height/h)))+1, len(v.rows))
	for i := first; i < last; i++ {
		row := v.rows[i]
		plan := v.pipeline.Row(hierarchy.RowInput{
			Item:      row.item,
			Rect:      v.rowRect(i, row.depth, size.Width),
			NameWidth: nameWidth(row.item.Name),
		})
		if i == v.hoverRow {
			hl := layout.Rect{X: 0, Y: plan.Rect.Y, W: size.Width, H: h}
			objects = append(objects, filled(hl, -v.offset, config.FromColor(theme.Color(ColorNameRowHover))))
		}
		objects = r.appendRow(objects, &plan, fg, guide)
	}
	v.pipeline.EndPass()
	r.objects = objects
}

func (r *hierarchyRenderer) appendRow(objects []fyne.CanvasObject, plan *hierarchy.RowPlan, fg, guide config.Color) []fyne.CanvasObject {
	dy := -r.view.offset
	rect := plan.Rect

	if plan.Band != nil {
		objects = append(objects, filled(plan.Band.Rect, dy, plan.Band.Color))
	}
	lineColor := guide.Mul(plan.LinesColor)
	for _, seg := range plan.Lines {
		line := canvas.NewLine(lineColor.NRGBA())
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(seg.X1, seg.Y1+dy)
		line.Position2 = fyne.NewPos(seg.X2, seg.Y2+dy)
		objects = append(objects, line)
	}

	nameColor := fg.Mul(plan.NameColor)
	if !activeInHierarchy(plan.Item) {
		nameColor.A *= 0.5
	}
	if plan.HasFoldout {
		glyph := GlyphExpanded
		if r.view.collapsed[plan.Item.ID] {
			glyph = GlyphCollapsed
		}
		objects = append(objects, placeText(glyph, nameColor, NameTextSize, rect.X-FoldoutWidth, rect.Y+dy, rect.H))
	}
	if !plan.NameBackground.Approx(config.White) {
		bg := layout.Rect{X: rect.X, Y: rect.Y, W: nameWidth(plan.Item.Name), H: rect.H}
		objects = append(objects, filled(bg, dy, plan.NameBackground))
	}
	objects = append(objects, placeText(plan.Item.Name, nameColor, NameTextSize, rect.X, rect.Y+dy, rect.H))

	for i := range plan.Icons {
		objects = appendIcon(objects, &plan.Icons[i], fg, dy)
	}
	objects = appendLabel(objects, plan.Layer, dy)
	return appendLabel(objects, plan.Tag, dy)
}

func appendIcon(objects []fyne.CanvasObject, icon *hierarchy.IconPlan, fg config.Color, dy float32) []fyne.CanvasObject {
	if icon.Background != nil {
		objects = append(objects, filled(icon.Rect, dy, *icon.Background))
	}
	if icon.Ellipsis {
		return append(objects, placeText(GlyphEllipsis, fg, NameTextSize, icon.Rect.X, icon.Rect.Y+dy, icon.Rect.H))
	}
	if icon.Descriptor == nil || icon.Descriptor.Image == nil {
		return objects
	}
	img := canvas.NewImageFromResource(icon.Descriptor.Image)
	img.FillMode = canvas.ImageFillContain
	img.Translucency = float64(1 - icon.Tint.A)
	img.Move(fyne.NewPos(icon.Rect.X+IconInset, icon.Rect.Y+dy+IconInset))
	img.Resize(fyne.NewSize(icon.Rect.W-2*IconInset, icon.Rect.H-2*IconInset))
	return append(objects, img)
}

func appendLabel(objects []fyne.CanvasObject, label hierarchy.LabelPlan, dy float32) []fyne.CanvasObject {
	if !label.Visible {
		return objects
	}
	objects = append(objects, filled(label.Rect, dy, label.Background))
	txt := fitText(label.Text, label.Rect.W-2*IconInset, LabelTextSize)
	w := fyne.MeasureText(txt, LabelTextSize, fyne.TextStyle{}).Width
	x := label.Rect.X + (label.Rect.W-w)/2
	return append(objects, placeText(txt, label.Foreground, LabelTextSize, x, label.Rect.Y+dy, label.Rect.H))
}

func nameWidth(name string) float32 {
	return fyne.MeasureText(name, NameTextSize, fyne.TextStyle{}).Width
}

// placeText creates a text object vertically centred in a row of height h
func placeText(s string, c config.Color, size, x, y, h float32) *canvas.Text {
	t := canvas.NewText(s, c.NRGBA())
	t.TextSize = size
	ms := t.MinSize()
	t.Move(fyne.NewPos(x, y+(h-ms.Height)/2))
	t.Resize(ms)
	return t
}

func filled(rect layout.Rect, dy float32, c config.Color) *canvas.Rectangle {
	fill := canvas.NewRectangle(c.NRGBA())
	fill.Move(fyne.NewPos(rect.X, rect.Y+dy))
	fill.Resize(fyne.NewSize(rect.W, rect.H))
	return fill
}

// fitText shortens s with an ellipsis until it fits width
func fitText(s string, width, size float32) string {
	style := fyne.TextStyle{}
	if fyne.MeasureText(s, size, style).Width <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + "…"
		if fyne.MeasureText(candidate, size, style).Width <= width {
			return candidate
		}
	}
	return ""
}
