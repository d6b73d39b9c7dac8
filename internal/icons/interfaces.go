package icons

import (
	"fyne.io/fyne/v2"

	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// ThumbnailProvider supplies the built-in images for component types
type ThumbnailProvider interface {
	// TypeThumbnail returns the default image for a type name
	TypeThumbnail(typeName string) fyne.Resource
	// ObjectThumbnail returns the image for a specific component, or nil
	ObjectThumbnail(c *model.Component) fyne.Resource
	// Sentinels lists the generic images that mean "no real icon"
	Sentinels() []fyne.Resource
}

// CustomIconSource enumerates named images supplied by the user
type CustomIconSource interface {
	Icons() (map[string]fyne.Resource, error)
	Location() string
}
