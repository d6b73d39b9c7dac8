package toggle

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/layout"
	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// GroupLabel names the undo step of one toggle gesture
const GroupLabel = "[H+] Toggle"

// State of the gesture
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// EventKind is the pointer phase
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
)

// Event is a pointer event in row coordinates
type Event struct {
	Kind      EventKind
	X, Y      float32
	Secondary bool
}

// Mutator applies toggles as undoable edits
type Mutator interface {
	SetEnabled(target model.Togglable, enabled bool, label string)
	BeginGroup(label string) func()
}

// Controller runs the toggle gesture
type Controller struct {
	capture     *Capture
	mutator     Mutator
	dragEnabled func() bool

	id       string
	state    State
	target   bool
	visited  map[model.Togglable]struct{}
	order    []model.Togglable
	endGroup func()
}

// NewController creates a controller. dragEnabled is consulted on every press.
func NewController(capture *Capture, mutator Mutator, dragEnabled func() bool) *Controller {
	if dragEnabled == nil {
		dragEnabled = func() bool { return true }
	}
	return &Controller{
		capture:     capture,
		mutator:     mutator,
		dragEnabled: dragEnabled,
		visited:     make(map[model.Togglable]struct{}),
	}
}

// HandleIcon offers a pointer event to one icon slot. It returns true when
// the event toggled target.
func (c *Controller) HandleIcon(ev Event, slot layout.Rect, target model.Togglable) bool {
	c.checkCapture()

	switch ev.Kind {
	case Press:
		if ev.Secondary || target == nil || !slot.Contains(ev.X, ev.Y) {
			return false
		}
		c.start(!target.IsEnabled())
		c.apply(target)
		if c.state != Dragging {
			c.finish()
		}
		return true

	case Move:
		if c.state != Dragging || target == nil || !slot.Contains(ev.X, ev.Y) {
			return false
		}
		if _, seen := c.visited[target]; seen {
			return false
		}
		c.apply(target)
		return true

	case Release:
		c.Release()
	}
	return false
}

// Release ends the current gesture
func (c *Controller) Release() {
	if c.state == Dragging {
		c.capture.Release(c.id)
	}
	c.id = ""
	c.state = Idle
	c.finish()
}

// State returns the gesture state after checking the capture
func (c *Controller) State() State {
	c.checkCapture()
	return c.state
}

// Target returns the enabled state the current gesture applies
func (c *Controller) Target() bool {
	return c.target
}

// Visited returns the items toggled by the current gesture in order
func (c *Controller) Visited() []model.Togglable {
	out := make([]model.Togglable, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Controller) start(target bool) {
	if c.state == Dragging {
		c.Release()
	}
	clear(c.visited)
	c.order = c.order[:0]
	c.target = target

	if c.dragEnabled() {
		c.id = c.capture.Acquire()
		c.state = Dragging
	}
	c.endGroup = c.mutator.BeginGroup(GroupLabel)
}

func (c *Controller) apply(target model.Togglable) {
	c.mutator.SetEnabled(target, c.target, GroupLabel)
	c.visited[target] = struct{}{}
	c.order = append(c.order, target)
}

// checkCapture drops back to idle once somebody else took the capture
func (c *Controller) checkCapture() {
	if c.state != Dragging || c.capture.HeldBy(c.id) {
		return
	}
	logging.Infof("Toggle gesture lost pointer capture after %d items", len(c.order))
	c.id = ""
	c.state = Idle
	c.finish()
}

func (c *Controller) finish() {
	clear(c.visited)
	c.order = c.order[:0]
	if c.endGroup != nil {
		end := c.endGroup
		c.endGroup = nil
		end()
	}
}
