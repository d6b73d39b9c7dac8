package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/hierarchyplus/hierarchy-plus/internal/toggle"
)

var _ mobile.Touchable = (*HierarchyView)(nil)

// TouchDown starts gesture tracking. Dragging while touching scrolls.
func (v *HierarchyView) TouchDown(event *mobile.TouchEvent) {
	v.touching = true
	v.gestures.TouchDown(event)
}

// TouchUp finishes the gesture started by TouchDown
func (v *HierarchyView) TouchUp(event *mobile.TouchEvent) {
	v.touching = false
	v.gestures.TouchUp(event)
}

// TouchCancel drops the gesture and any pointer capture
func (v *HierarchyView) TouchCancel(event *mobile.TouchEvent) {
	v.touching = false
	v.gestures.TouchCancel(event)
	v.pipeline.LostFocus()
}

// onGesture maps touch gestures onto pointer events. A tap is a press and
// release, a long press is a secondary press, and horizontal swipes open or
// close the foldout of the row they started on.
func (v *HierarchyView) onGesture(gesture GestureType, pos fyne.Position) {
	x, y := v.toContent(pos)
	abs := pos
	if d := fyne.CurrentApp().Driver(); d != nil {
		abs = d.AbsolutePositionForObject(v).Add(pos)
	}

	switch gesture {
	case GestureTap:
		if it, ok := v.foldoutAt(x, y); ok {
			v.ToggleFoldout(it)
			return
		}
		v.dispatch(toggle.Event{Kind: toggle.Press, X: x, Y: y}, abs)
		v.dispatch(toggle.Event{Kind: toggle.Release, X: x, Y: y}, abs)
	case GestureLongPress:
		v.dispatch(toggle.Event{Kind: toggle.Press, X: x, Y: y, Secondary: true}, abs)
	case GestureSwipeRight, GestureSwipeLeft:
		i := v.rowAt(y)
		if i < 0 || !v.rows[i].item.HasChildren() {
			return
		}
		it := v.rows[i].item
		if v.IsCollapsed(it) == (gesture == GestureSwipeRight) {
			v.ToggleFoldout(it)
		}
	}
}
