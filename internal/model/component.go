package model

// Component is a sub-item attached to an Item
type Component struct {
	Type    string
	Owner   *Item
	Missing bool // script reference could not be resolved

	kind    Kind
	enabled bool
}

// NewComponent creates an enabled component whose kind is looked up once in
// the kind table.
func NewComponent(typeName string) *Component {
	return &Component{
		Type:    typeName,
		kind:    LookupKind(typeName),
		enabled: true,
	}
}

// NewMissingComponent creates a placeholder for a component whose script is
// gone. It keeps a togglable script kind so it still shows a toggle.
func NewMissingComponent() *Component {
	return &Component{
		Missing: true,
		kind:    KindBehaviour,
		enabled: true,
	}
}

// Kind returns the component's capability class
func (c *Component) Kind() Kind {
	return c.kind
}

// SetKind overrides the kind resolved from the kind table
func (c *Component) SetKind(kind Kind) {
	c.kind = kind
}

// IsToggleable reports whether the component exposes an enabled flag
func (c *Component) IsToggleable() bool {
	return c.kind.Toggleable()
}

// IsEnabled returns the enabled flag. Non-togglable components are always
// enabled.
func (c *Component) IsEnabled() bool {
	if !c.IsToggleable() {
		return true
	}
	return c.enabled
}

// SetEnabled changes the enabled flag of togglable components and is a no-op
// for everything else.
func (c *Component) SetEnabled(enabled bool) {
	if !c.IsToggleable() {
		return
	}
	c.enabled = enabled
}

// DisplayName returns the type name, or a marker for missing scripts
func (c *Component) DisplayName() string {
	if c.Missing {
		return "Missing Script"
	}
	return c.Type
}
