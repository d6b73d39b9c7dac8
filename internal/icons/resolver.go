package icons

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// Special custom icon names
const (
	DefaultIconName    = "Default"
	MissingIconName    = "Missing"
	GameObjectIconName = "GameObject"

	MissingScriptTooltip = "Missing Script"
	ScriptTypeName       = "MonoScript"

	customIconsWarnKey = "icons.custom"
)

// Resolver maps items and components to icons and caches the results.
// It is used from the UI goroutine only.
type Resolver struct {
	thumbs ThumbnailProvider
	source CustomIconSource

	custom      map[string]*Descriptor
	types       map[string]*Descriptor
	generic     map[string]*Descriptor
	objectIcons map[string]*Descriptor
	sentinels   map[string]struct{}

	defaultIcon *Descriptor
	missing     *Descriptor
	object      *Descriptor
}

// NewResolver creates a resolver backed by thumbs. Custom icons are off until
// RegisterCustomIcons is called.
func NewResolver(thumbs ThumbnailProvider) *Resolver {
	r := &Resolver{thumbs: thumbs}
	r.Refresh()
	return r
}

// RegisterCustomIcons installs the custom icon source and reloads every cache.
// A nil source turns custom icons off.
func (r *Resolver) RegisterCustomIcons(src CustomIconSource) {
	r.source = src
	logging.ResetOnceKey(customIconsWarnKey)
	r.Refresh()
}

// Refresh clears the type and fallback caches, rescans custom icons and re-resolves the
// special icons.
func (r *Resolver) Refresh() {
	r.types = make(map[string]*Descriptor)
	r.generic = make(map[string]*Descriptor)
	r.objectIcons = make(map[string]*Descriptor)
	r.sentinels = make(map[string]struct{})
	for _, res := range r.thumbs.Sentinels() {
		if res != nil {
			r.sentinels[res.Name()] = struct{}{}
		}
	}

	r.loadCustomIcons()
	r.initSpecialIcons()
}

// Resolve returns the icon for a component. Missing components get the
// missing-script icon.
func (r *Resolver) Resolve(c *model.Component) *Descriptor {
	if c == nil || c.Missing {
		return r.missing
	}

	typeName := c.Type
	if d, ok := r.custom[typeName]; ok {
		return d
	}
	if d, ok := r.types[typeName]; ok {
		return d
	}

	res := r.thumbs.ObjectThumbnail(c)
	if res == nil || r.isSentinel(res) {
		// only the fallback is kept, the thumbnail lookup stays uncached
		d, ok := r.generic[typeName]
		if !ok {
			d = r.defaultIcon.withTooltip(typeName, typeName)
			r.generic[typeName] = d
		}
		return d
	}

	d := &Descriptor{Key: typeName, Image: res, Tooltip: typeName}
	r.types[typeName] = d
	return d
}

// ResolveItem returns the icon for an item. With useCustom set, an item that
// names a known custom icon shows it instead of the generic object icon.
func (r *Resolver) ResolveItem(it *model.Item, useCustom bool) *Descriptor {
	if !useCustom || it == nil || it.Icon == "" {
		return r.object
	}
	if d, ok := r.objectIcons[it.Icon]; ok {
		return d
	}
	custom, ok := r.custom[it.Icon]
	if !ok {
		return r.object
	}
	d := custom.withTooltip(GameObjectIconName+":"+it.Icon, r.object.Tooltip)
	r.objectIcons[it.Icon] = d
	return d
}

// Default returns the icon used for scripts without a real icon
func (r *Resolver) Default() *Descriptor {
	return r.defaultIcon
}

// Missing returns the icon for components whose script is gone
func (r *Resolver) Missing() *Descriptor {
	return r.missing
}

// Object returns the generic item icon
func (r *Resolver) Object() *Descriptor {
	return r.object
}

// CustomIcon looks up a custom icon by name
func (r *Resolver) CustomIcon(name string) (*Descriptor, bool) {
	d, ok := r.custom[name]
	return d, ok
}

// CustomIconCount returns the number of loaded custom icons
func (r *Resolver) CustomIconCount() int {
	return len(r.custom)
}

func (r *Resolver) isSentinel(res interface{ Name() string }) bool {
	_, ok := r.sentinels[res.Name()]
	return ok
}

func (r *Resolver) loadCustomIcons() {
	r.custom = make(map[string]*Descriptor)
	if r.source == nil {
		return
	}

	icons, err := r.source.Icons()
	if err != nil {
		logging.WarnOnce(customIconsWarnKey, "Custom icons couldn't be loaded from %s. Custom Icons are disabled.\n%v", r.source.Location(), err)
		return
	}
	for name, res := range icons {
		r.custom[name] = &Descriptor{Key: name, Image: res, Tooltip: name}
	}
}

func (r *Resolver) initSpecialIcons() {
	if d, ok := r.custom[GameObjectIconName]; ok {
		r.object = d.withTooltip(GameObjectIconName, GameObjectIconName)
	} else {
		r.object = &Descriptor{
			Key:     GameObjectIconName,
			Image:   r.thumbs.TypeThumbnail(GameObjectIconName),
			Tooltip: GameObjectIconName,
		}
	}

	if d, ok := r.custom[DefaultIconName]; ok {
		r.defaultIcon = d
	} else {
		r.defaultIcon = &Descriptor{
			Key:   DefaultIconName,
			Image: r.thumbs.TypeThumbnail(ScriptTypeName),
		}
	}

	if d, ok := r.custom[MissingIconName]; ok {
		r.missing = d.withTooltip(MissingIconName, MissingScriptTooltip)
	} else {
		r.missing = r.defaultIcon.withTooltip(MissingIconName, MissingScriptTooltip)
	}
}
