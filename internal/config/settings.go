package config

import (
	"github.com/hierarchyplus/hierarchy-plus/internal/pattern"
)

// Label widths and offsets
const (
	DefaultLabelWidth = 75
	DefaultGUIXOffset = 0
)

// Settings is the persisted configuration of the hierarchy overlay. Field
// names in JSON are part of the stored format.
type Settings struct {
	HiddenIconTypes Value[[]pattern.Comparison] `json:"hiddenIconTypes"`

	RowOddColor        Value[Color] `json:"rowOddColor"`
	RowEvenColor       Value[Color] `json:"rowEvenColor"`
	ColorOne           Value[Color] `json:"colorOne"`
	ColorTwo           Value[Color] `json:"colorTwo"`
	ColorThree         Value[Color] `json:"colorThree"`
	GuideLinesColor    Value[Color] `json:"guideLinesColor"`
	IconTintColor      Value[Color] `json:"iconTintColor"`
	IconFadedTintColor Value[Color] `json:"iconFadedTintColor"`
	IconBackground     Value[Color] `json:"iconBackgroundColor"`

	Enabled                    Value[bool] `json:"enabled"`
	ColorsEnabled              Value[bool] `json:"colorsEnabled"`
	IconsEnabled               Value[bool] `json:"iconsEnabled"`
	EnableContextClick         Value[bool] `json:"enableContextClick"`
	EnableDragToggle           Value[bool] `json:"enableDragToggle"`
	ColorOneEnabled            Value[bool] `json:"colorOneEnabled"`
	ColorTwoEnabled            Value[bool] `json:"colorTwoEnabled"`
	ColorThreeEnabled          Value[bool] `json:"colorThreeEnabled"`
	GuideLinesEnabled          Value[bool] `json:"guideLinesEnabled"`
	RowColoringOddEnabled      Value[bool] `json:"rowColoringOddEnabled"`
	RowColoringEvenEnabled     Value[bool] `json:"rowColoringEvenEnabled"`
	ShowGameObjectIcon         Value[bool] `json:"showGameObjectIcon"`
	UseCustomGameObjectIcon    Value[bool] `json:"useCustomGameObjectIcon"`
	ShowTransformIcon          Value[bool] `json:"showTransformIcon"`
	ShowNonBehaviourIcons      Value[bool] `json:"showNonBehaviourIcons"`
	LinkCursorOnHover          Value[bool] `json:"linkCursorOnHover"`
	AlwaysShowIcons            Value[bool] `json:"alwaysShowIcons"`
	IconBackgroundColorEnabled Value[bool] `json:"iconBackgroundColorEnabled"`
	IconBackgroundOverlapOnly  Value[bool] `json:"iconBackgroundOverlapOnly"`
	LabelsEnabled              Value[bool] `json:"labelsEnabled"`
	EnableLabelContextClick    Value[bool] `json:"enableLabelContextClick"`
	TagLabelEnabled            Value[bool] `json:"tagLabelEnabled"`
	DisplayUntaggedLabel       Value[bool] `json:"displayUntaggedLabel"`
	LayerLabelEnabled          Value[bool] `json:"layerLabelEnabled"`
	DisplayLayerIndex          Value[bool] `json:"displayLayerIndex"`
	DisplayDefaultLayerLabel   Value[bool] `json:"displayDefaultLayerLabel"`

	GUIXOffset      Value[float32] `json:"guiXOffset"`
	TagLabelWidth   Value[float32] `json:"tagLabelWidth"`
	LayerLabelWidth Value[float32] `json:"layerLabelWidth"`
}

// DefaultSettings returns a fresh Settings holding every default
func DefaultSettings() *Settings {
	return &Settings{
		HiddenIconTypes: NewComparisons(pattern.New(pattern.EqualsTo, "MeshFilter", true)),

		RowOddColor:        NewColor(RGBA(0.5, 0.5, 1, 0.07)),
		RowEvenColor:       NewColor(RGBA(0, 0, 0, 0.07)),
		ColorOne:           NewColor(White),
		ColorTwo:           NewColor(White),
		ColorThree:         NewColor(White),
		GuideLinesColor:    NewColor(White),
		IconTintColor:      NewColor(White),
		IconFadedTintColor: NewColor(RGBA(1, 1, 1, 0.5)),
		IconBackground:     NewColor(RGBA(0.22, 0.22, 0.22, 1)),

		Enabled:                    NewValue(true),
		ColorsEnabled:              NewValue(true),
		IconsEnabled:               NewValue(true),
		EnableContextClick:         NewValue(true),
		EnableDragToggle:           NewValue(true),
		ColorOneEnabled:            NewValue(false),
		ColorTwoEnabled:            NewValue(false),
		ColorThreeEnabled:          NewValue(false),
		GuideLinesEnabled:          NewValue(true),
		RowColoringOddEnabled:      NewValue(false),
		RowColoringEvenEnabled:     NewValue(true),
		ShowGameObjectIcon:         NewValue(true),
		UseCustomGameObjectIcon:    NewValue(true),
		ShowTransformIcon:          NewValue(false),
		ShowNonBehaviourIcons:      NewValue(true),
		LinkCursorOnHover:          NewValue(false),
		AlwaysShowIcons:            NewValue(false),
		IconBackgroundColorEnabled: NewValue(true),
		IconBackgroundOverlapOnly:  NewValue(true),
		LabelsEnabled:              NewValue(true),
		EnableLabelContextClick:    NewValue(true),
		TagLabelEnabled:            NewValue(true),
		DisplayUntaggedLabel:       NewValue(false),
		LayerLabelEnabled:          NewValue(true),
		DisplayLayerIndex:          NewValue(false),
		DisplayDefaultLayerLabel:   NewValue(false),

		GUIXOffset:      NewFloat(DefaultGUIXOffset),
		TagLabelWidth:   NewFloat(DefaultLabelWidth),
		LayerLabelWidth: NewFloat(DefaultLabelWidth),
	}
}

// ColorsActive reports whether guide lines, banding and color scopes apply
func (s *Settings) ColorsActive() bool {
	return s.Enabled.Get() && s.ColorsEnabled.Get()
}

// IconsActive reports whether component icons are drawn
func (s *Settings) IconsActive() bool {
	return s.Enabled.Get() && s.IconsEnabled.Get()
}

// LabelsActive reports whether tag and layer labels are drawn
func (s *Settings) LabelsActive() bool {
	return s.Enabled.Get() && s.LabelsEnabled.Get()
}

// RowColoringActive reports whether either row band color is enabled
func (s *Settings) RowColoringActive() bool {
	return s.RowColoringOddEnabled.Get() || s.RowColoringEvenEnabled.Get()
}

// IsHiddenType reports whether icons of typeName are filtered out
func (s *Settings) IsHiddenType(typeName string) bool {
	return pattern.MatchesAny(s.HiddenIconTypes.Get(), typeName)
}

// AddHiddenType appends an empty comparison to the hidden type list
func (s *Settings) AddHiddenType() {
	list := s.HiddenIconTypes.Get()
	updated := make([]pattern.Comparison, len(list), len(list)+1)
	copy(updated, list)
	s.HiddenIconTypes.Set(append(updated, pattern.Comparison{}))
}

// HideType appends an exact, case sensitive match for typeName to the hidden
// type list unless it is already hidden.
func (s *Settings) HideType(typeName string) {
	if typeName == "" || s.IsHiddenType(typeName) {
		return
	}
	list := s.HiddenIconTypes.Get()
	updated := make([]pattern.Comparison, len(list), len(list)+1)
	copy(updated, list)
	s.HiddenIconTypes.Set(append(updated, pattern.New(pattern.EqualsTo, typeName, true)))
}

// SetHiddenType replaces entry i of the hidden type list
func (s *Settings) SetHiddenType(i int, c pattern.Comparison) {
	list := s.HiddenIconTypes.Get()
	if i < 0 || i >= len(list) {
		return
	}
	updated := make([]pattern.Comparison, len(list))
	copy(updated, list)
	updated[i] = c
	s.HiddenIconTypes.Set(updated)
}

// RemoveHiddenType deletes entry i of the hidden type list
func (s *Settings) RemoveHiddenType(i int) {
	list := s.HiddenIconTypes.Get()
	if i < 0 || i >= len(list) {
		return
	}
	updated := make([]pattern.Comparison, 0, len(list)-1)
	updated = append(updated, list[:i]...)
	updated = append(updated, list[i+1:]...)
	s.HiddenIconTypes.Set(updated)
}

// values lists every persisted value for binding
func (s *Settings) values() []binder {
	return []binder{
		&s.HiddenIconTypes,
		&s.RowOddColor, &s.RowEvenColor,
		&s.ColorOne, &s.ColorTwo, &s.ColorThree,
		&s.GuideLinesColor, &s.IconTintColor, &s.IconFadedTintColor, &s.IconBackground,
		&s.Enabled, &s.ColorsEnabled, &s.IconsEnabled,
		&s.EnableContextClick, &s.EnableDragToggle,
		&s.ColorOneEnabled, &s.ColorTwoEnabled, &s.ColorThreeEnabled,
		&s.GuideLinesEnabled, &s.RowColoringOddEnabled, &s.RowColoringEvenEnabled,
		&s.ShowGameObjectIcon, &s.UseCustomGameObjectIcon, &s.ShowTransformIcon,
		&s.ShowNonBehaviourIcons, &s.LinkCursorOnHover, &s.AlwaysShowIcons,
		&s.IconBackgroundColorEnabled, &s.IconBackgroundOverlapOnly,
		&s.LabelsEnabled, &s.EnableLabelContextClick,
		&s.TagLabelEnabled, &s.DisplayUntaggedLabel,
		&s.LayerLabelEnabled, &s.DisplayLayerIndex, &s.DisplayDefaultLayerLabel,
		&s.GUIXOffset, &s.TagLabelWidth, &s.LayerLabelWidth,
	}
}

func (s *Settings) bind(sink changeSink) {
	for _, v := range s.values() {
		v.bind(sink)
	}
}
