package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Glyphs drawn as text
const (
	GlyphEllipsis  = "..."
	GlyphExpanded  = "▾"
	GlyphCollapsed = "▸"
)

// Hierarchy view sizing
const (
	RowHeight       float32 = 18
	MobileRowHeight float32 = 32

	// RowLeftMargin leaves room for the gutter of root rows
	RowLeftMargin float32 = 40
	FoldoutWidth  float32 = 14

	NameTextSize  float32 = 12
	LabelTextSize float32 = 10
	IconInset     float32 = 1

	ScrollRows = 3
)

// Window sizing
const (
	SettingsWindowWidth  float32 = 520
	SettingsWindowHeight float32 = 640
	ColorSwatchSize      float32 = 18
)

// Settings ranges
const (
	MinXOffset     = -200
	MaxXOffset     = 200
	MinLabelWidth  = 20
	MaxLabelWidth  = 300
	SliderStepSize = 1
)

// Status bar behavior
const (
	StatusAutoClear = 4 * time.Second
)

// File dialogs
const (
	SceneFileExtension = ".yaml"
)
