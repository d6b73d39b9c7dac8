package icons

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/hierarchyplus/hierarchy-plus/internal/model"
)

// ThemeThumbnails draws component icons from the current Fyne theme. Types it
// does not know get the generic script or binary glyph.
type ThemeThumbnails struct {
	byType map[string]func() fyne.Resource
}

// NewThemeThumbnails creates the theme backed provider
func NewThemeThumbnails() *ThemeThumbnails {
	return &ThemeThumbnails{byType: map[string]func() fyne.Resource{
		GameObjectIconName: theme.ListIcon,
		ScriptTypeName:     theme.FileTextIcon,

		"Transform":     theme.ZoomFitIcon,
		"RectTransform": theme.ViewFullScreenIcon,

		"Camera":          theme.MediaVideoIcon,
		"Light":           theme.VisibilityIcon,
		"AudioSource":     theme.VolumeUpIcon,
		"AudioListener":   theme.MediaMusicIcon,
		"Animator":        theme.MediaPlayIcon,
		"Animation":       theme.MediaReplayIcon,
		"Canvas":          theme.DesktopIcon,
		"CanvasScaler":    theme.ZoomInIcon,
		"CanvasRenderer":  theme.ColorAchromaticIcon,
		"EventSystem":     theme.ComputerIcon,
		"ParticleSystem":  theme.ColorChromaticIcon,
		"Rigidbody":       theme.MoveDownIcon,
		"Rigidbody2D":     theme.MoveDownIcon,
		"MeshFilter":      theme.GridIcon,
		"NavMeshAgent":    theme.NavigateNextIcon,
		"Terrain":         theme.HomeIcon,
		"ReflectionProbe": theme.ViewRefreshIcon,
		"CharacterJoint":  theme.MoreVerticalIcon,

		"MeshRenderer":        theme.ColorPaletteIcon,
		"SkinnedMeshRenderer": theme.AccountIcon,
		"SpriteRenderer":      theme.FileImageIcon,
		"LineRenderer":        theme.MoreHorizontalIcon,
		"TrailRenderer":       theme.MoreHorizontalIcon,

		"BoxCollider":         theme.CheckButtonIcon,
		"BoxCollider2D":       theme.CheckButtonIcon,
		"SphereCollider":      theme.RadioButtonIcon,
		"CircleCollider2D":    theme.RadioButtonIcon,
		"CapsuleCollider":     theme.RadioButtonFillIcon,
		"MeshCollider":        theme.GridIcon,
		"TerrainCollider":     theme.HomeIcon,
		"CharacterController": theme.AccountIcon,
	}}
}

// TypeThumbnail returns the theme icon for a type, or the script glyph
func (t *ThemeThumbnails) TypeThumbnail(typeName string) fyne.Resource {
	if fn, ok := t.byType[typeName]; ok {
		return fn()
	}
	return theme.FileTextIcon()
}

// ObjectThumbnail returns the theme icon for a component. Unknown scripts get
// the text file glyph, unknown data types the application glyph.
func (t *ThemeThumbnails) ObjectThumbnail(c *model.Component) fyne.Resource {
	if c == nil || c.Type == "" {
		return nil
	}
	if fn, ok := t.byType[c.Type]; ok {
		return fn()
	}
	if c.Kind() == model.KindData {
		return theme.FileApplicationIcon()
	}
	return theme.FileTextIcon()
}

// Sentinels returns the glyphs that mean "no real icon"
func (t *ThemeThumbnails) Sentinels() []fyne.Resource {
	return []fyne.Resource{theme.FileTextIcon(), theme.FileApplicationIcon()}
}
