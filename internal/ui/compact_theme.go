package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme colour names used by the hierarchy view
const (
	ColorNameRowHover fyne.ThemeColorName = "hierarchyRowHover"
	ColorNameGuide    fyne.ThemeColorName = "hierarchyGuide"
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameRowHover:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 12}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 12}
	case ColorNameGuide:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 140, G: 140, B: 140, A: 255}
		}
		return color.NRGBA{R: 110, G: 110, B: 110, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 44, G: 93, B: 135, A: 255} // Selection blue
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 56, G: 56, B: 56, A: 255} // Dark hierarchy panel
		}
		return color.RGBA{R: 200, G: 200, B: 200, A: 255} // Light hierarchy panel
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 210, G: 210, B: 210, A: 255}
		}
		return color.RGBA{R: 20, G: 20, B: 20, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
