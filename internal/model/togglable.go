package model

// Togglable is implemented by anything whose enabled state can be flipped
// from the hierarchy view.
type Togglable interface {
	IsEnabled() bool
	SetEnabled(enabled bool)
}

// AsTogglable returns the component as a Togglable when its kind supports
// enabling and disabling.
func AsTogglable(c *Component) (Togglable, bool) {
	if c == nil || !c.IsToggleable() {
		return nil, false
	}
	return c, true
}
