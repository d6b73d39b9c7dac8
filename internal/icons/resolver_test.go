package icons

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

var (
	scriptGlyph = fyne.NewStaticResource("script.svg", []byte("<svg/>"))
	binaryGlyph = fyne.NewStaticResource("binary.svg", []byte("<svg/>"))
	cameraIcon  = fyne.NewStaticResource("camera.svg", []byte("<svg/>"))
	objectIcon  = fyne.NewStaticResource("object.svg", []byte("<svg/>"))
)

// countingThumbnails records how often each type is looked up
type countingThumbnails struct {
	calls map[string]int
}

func newCountingThumbnails() *countingThumbnails {
	return &countingThumbnails{calls: make(map[string]int)}
}

func (c *countingThumbnails) TypeThumbnail(typeName string) fyne.Resource {
	if typeName == GameObjectIconName {
		return objectIcon
	}
	return scriptGlyph
}

func (c *countingThumbnails) ObjectThumbnail(comp *model.Component) fyne.Resource {
	c.calls[comp.Type]++
	switch comp.Type {
	case "Camera":
		return cameraIcon
	case "Rigidbody":
		return binaryGlyph
	case "Nothing":
		return nil
	default:
		// a fresh resource with the sentinel's name
		return fyne.NewStaticResource(scriptGlyph.Name(), nil)
	}
}

func (c *countingThumbnails) Sentinels() []fyne.Resource {
	return []fyne.Resource{scriptGlyph, binaryGlyph}
}

type fakeSource struct {
	icons map[string]fyne.Resource
	err   error
	scans int
}

func (f *fakeSource) Icons() (map[string]fyne.Resource, error) {
	f.scans++
	return f.icons, f.err
}

func (f *fakeSource) Location() string { return "/fake/icons" }

func TestResolve_CacheIdempotence(t *testing.T) {
	thumbs := newCountingThumbnails()
	r := NewResolver(thumbs)

	first := r.Resolve(model.NewComponent("Camera"))
	second := r.Resolve(model.NewComponent("Camera"))

	if first != second {
		t.Error("Expected the identical cached descriptor")
	}
	if thumbs.calls["Camera"] != 1 {
		t.Errorf("Expected provider to be queried once, got %d", thumbs.calls["Camera"])
	}
	if first.Image != cameraIcon || first.Tooltip != "Camera" {
		t.Errorf("Unexpected descriptor: %+v", first)
	}

	r.Refresh()
	third := r.Resolve(model.NewComponent("Camera"))
	if third == first {
		t.Error("Refresh should force a new resolution")
	}
	if thumbs.calls["Camera"] != 2 {
		t.Errorf("Expected a second provider query after refresh, got %d", thumbs.calls["Camera"])
	}
}

func TestResolve_SentinelFallsBackToDefault(t *testing.T) {
	thumbs := newCountingThumbnails()
	r := NewResolver(thumbs)

	tests := []string{"PlayerController", "Rigidbody", "Nothing"}
	for _, typeName := range tests {
		d := r.Resolve(model.NewComponent(typeName))
		if d.Image != r.Default().Image {
			t.Errorf("%s: expected default image", typeName)
		}
		if d.Tooltip != typeName {
			t.Errorf("%s: expected tooltip %s, got %s", typeName, typeName, d.Tooltip)
		}
	}

	// generic thumbnails are not cached, but the fallback descriptor is reused
	first := r.Resolve(model.NewComponent("PlayerController"))
	second := r.Resolve(model.NewComponent("PlayerController"))
	if thumbs.calls["PlayerController"] != 3 {
		t.Errorf("Expected sentinel lookups to hit the provider again, got %d", thumbs.calls["PlayerController"])
	}
	if first != second {
		t.Error("Expected the same fallback descriptor for repeated resolves")
	}
	r.Refresh()
	if r.Resolve(model.NewComponent("PlayerController")) == first {
		t.Error("Expected Refresh to drop the fallback descriptors")
	}
	if r.Default().Tooltip != "" {
		t.Error("Fallback should not mutate the shared default descriptor")
	}
}

func TestResolve_Missing(t *testing.T) {
	r := NewResolver(newCountingThumbnails())

	if d := r.Resolve(nil); d != r.Missing() {
		t.Error("Nil component should resolve to the missing icon")
	}
	d := r.Resolve(model.NewMissingComponent())
	if d.Tooltip != MissingScriptTooltip {
		t.Errorf("Expected tooltip %q, got %q", MissingScriptTooltip, d.Tooltip)
	}
	if d.Image != r.Default().Image {
		t.Error("Without a custom Missing icon the default image is used")
	}
}

func TestResolve_CustomIconsWin(t *testing.T) {
	thumbs := newCountingThumbnails()
	customCamera := fyne.NewStaticResource("Camera.png", []byte{1})
	customDefault := fyne.NewStaticResource("Default.png", []byte{2})
	customMissing := fyne.NewStaticResource("Missing.png", []byte{3})
	src := &fakeSource{icons: map[string]fyne.Resource{
		"Camera":         customCamera,
		DefaultIconName:  customDefault,
		MissingIconName:  customMissing,
		"PlayerSilhouet": objectIcon,
	}}

	r := NewResolver(thumbs)
	r.RegisterCustomIcons(src)

	if d := r.Resolve(model.NewComponent("Camera")); d.Image != customCamera {
		t.Error("Custom icon should take precedence over the thumbnail")
	}
	if thumbs.calls["Camera"] != 0 {
		t.Error("Provider should not be queried for custom icons")
	}
	if r.Default().Image != customDefault {
		t.Error("Custom Default icon should replace the script glyph")
	}
	if m := r.Missing(); m.Image != customMissing || m.Tooltip != MissingScriptTooltip {
		t.Errorf("Unexpected missing descriptor: %+v", m)
	}
	if r.CustomIconCount() != 4 {
		t.Errorf("Expected 4 custom icons, got %d", r.CustomIconCount())
	}

	r.Refresh()
	if src.scans != 2 {
		t.Errorf("Refresh should rescan the source, got %d scans", src.scans)
	}
}

func TestResolveItem(t *testing.T) {
	player := fyne.NewStaticResource("Player.png", []byte{1})
	r := NewResolver(newCountingThumbnails())
	r.RegisterCustomIcons(&fakeSource{icons: map[string]fyne.Resource{"Player": player}})

	plain := model.NewItem("a", "A")
	if d := r.ResolveItem(plain, true); d != r.Object() {
		t.Error("Items without an icon use the object icon")
	}

	hero := model.NewItem("b", "Hero")
	hero.Icon = "Player"
	d := r.ResolveItem(hero, true)
	if d.Image != player || d.Tooltip != GameObjectIconName {
		t.Errorf("Unexpected custom item descriptor: %+v", d)
	}
	if r.ResolveItem(hero, true) != d {
		t.Error("Custom item icons should be cached")
	}
	if r.ResolveItem(hero, false) != r.Object() {
		t.Error("useCustom=false should ignore the item icon")
	}

	hero.Icon = "Unknown"
	if r.ResolveItem(hero, true) != r.Object() {
		t.Error("Unknown custom icon names fall back to the object icon")
	}
	if r.Object().Image != objectIcon {
		t.Error("Object icon should come from the GameObject type thumbnail")
	}
}

func TestRegisterCustomIcons_FailureDisables(t *testing.T) {
	r := NewResolver(newCountingThumbnails())
	r.RegisterCustomIcons(&fakeSource{err: errors.New("no folder")})

	if r.CustomIconCount() != 0 {
		t.Error("A failing source should leave custom icons disabled")
	}
	if d := r.Resolve(model.NewComponent("Camera")); d.Image != cameraIcon {
		t.Error("Resolution should keep working without custom icons")
	}
}
