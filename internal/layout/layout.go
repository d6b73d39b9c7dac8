package layout

// Slot and spacing constants
const (
	// SlotWidth is the width of one icon slot
	SlotWidth float32 = 18
	// DotsOnlyWidth is the remaining width under which icons collapse to an
	// ellipsis
	DotsOnlyWidth = 2 * SlotWidth
	// MinLabelWidth is the narrowest label that is still drawn
	MinLabelWidth float32 = 10
	// RightPadding is kept free at the right edge of every row
	RightPadding float32 = 32
	// NamePadding separates the item name from the icon area
	NamePadding float32 = 18
	// LabelGap separates the layer label from the tag label
	LabelGap float32 = 18
)

// SlotKind tells the renderer what to draw in an icon slot
type SlotKind int

const (
	SlotIcon SlotKind = iota
	SlotEllipsis
)

// Flags are the configuration switches that change the layout
type Flags struct {
	AlwaysShowIcons       bool
	BackgroundEnabled     bool
	BackgroundOverlapOnly bool
	XOffset               float32
}

// LabelRequest describes which labels the row wants and how wide they are
type LabelRequest struct {
	ShowLayer  bool
	LayerWidth float32
	ShowTag    bool
	TagWidth   float32
}

// Input is everything Compute needs for one row
type Input struct {
	Row          Rect
	NameWidth    float32
	IconCount    int
	LastMaxIcons int
	Labels       LabelRequest
	Flags        Flags
}

// IconSlot is the placement of one icon candidate
type IconSlot struct {
	Rect       Rect
	Kind       SlotKind
	Background bool
}

// Label is the placement of a tag or layer label
type Label struct {
	Rect    Rect
	Visible bool
}

// Result is the computed layout of a row
type Result struct {
	Base  Rect
	Icons []IconSlot
	Layer Label
	Tag   Label
}

// BaseRect returns the region right of the item name that icons and labels
// share.
func BaseRect(row Rect, nameWidth, xOffset float32) Rect {
	adjust := nameWidth + NamePadding
	base := row
	base.W = row.W - RightPadding + xOffset - adjust
	base.X += adjust
	return base
}

// Compute lays out one row
func Compute(in Input) Result {
	base := BaseRect(in.Row, in.NameWidth, in.Flags.XOffset)
	res := Result{Base: base}
	res.Icons = iconSlots(base, in.IconCount, in.Flags)
	res.Layer, res.Tag = labelSlots(base, in.LastMaxIcons, in.Labels)
	return res
}

// iconSlots walks the icon strip from the right edge. Every candidate uses up
// one slot of available width; an ellipsis does not move the drawing position
// so later candidates land on the same spot.
func iconSlots(base Rect, count int, flags Flags) []IconSlot {
	if count <= 0 {
		return nil
	}

	slots := make([]IconSlot, 0, count)
	available := base.W
	slot := Rect{X: base.XMax() - SlotWidth, Y: base.Y, W: SlotWidth, H: base.H}

	for i := 0; i < count; i++ {
		dotsOnly := available < DotsOnlyWidth
		overlapping := available < SlotWidth
		drawIcon := flags.AlwaysShowIcons || (!dotsOnly && !overlapping)
		available -= SlotWidth

		if !drawIcon {
			slots = append(slots, IconSlot{Rect: slot, Kind: SlotEllipsis})
			continue
		}

		slots = append(slots, IconSlot{
			Rect:       slot,
			Kind:       SlotIcon,
			Background: flags.BackgroundEnabled && (overlapping || !flags.BackgroundOverlapOnly),
		})
		slot.X -= SlotWidth
	}
	return slots
}

// labelSlots reserves room for last pass's widest icon strip, then places the
// layer label and the tag label right to left.
func labelSlots(base Rect, lastMaxIcons int, req LabelRequest) (layer, tag Label) {
	area := base
	area.W -= SlotWidth * float32(lastMaxIcons+1)

	if req.ShowLayer {
		layer = clampedLabel(&area, req.LayerWidth)
	} else {
		area.UseEnd(req.LayerWidth)
	}

	if req.ShowTag {
		area.UseEnd(LabelGap)
		tag = clampedLabel(&area, req.TagWidth)
	}
	return layer, tag
}

// clampedLabel takes width w from the end of area, shrinking it to what was
// actually left and right aligning it in its slot.
func clampedLabel(area *Rect, w float32) Label {
	maxWidth := area.W
	r := area.UseEnd(w)
	r.W = clamp(r.W, 0, max(0, maxWidth))
	r.X += w - r.W
	return Label{Rect: r, Visible: r.W > MinLabelWidth}
}
