package icons

import "fyne.io/fyne/v2"

// Descriptor is a resolved icon
type Descriptor struct {
	Key     string
	Image   fyne.Resource
	Tooltip string
}

// withTooltip returns a copy of d carrying tooltip
func (d *Descriptor) withTooltip(key, tooltip string) *Descriptor {
	return &Descriptor{Key: key, Image: d.Image, Tooltip: tooltip}
}
