package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "hierarchy-plus.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AppIconResource returns the application icon, falling back to the theme's
// list icon when the logo file is not shipped next to the binary.
func AppIconResource() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.ListIcon()
}
