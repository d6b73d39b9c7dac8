package ui

import (
	"fmt"
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/pattern"
)

// SettingsWindow edits the overlay settings. Every control writes through a
// change scope, so one edit is one save.
type SettingsWindow struct {
	app    fyne.App
	store  *config.Store
	prefs  *config.Preferences
	loc    *Localization
	window fyne.Window

	hiddenList *fyne.Container

	// OnChanged runs after any setting changed
	OnChanged func()
	// OnIconFolder runs after the custom icon folder changed
	OnIconFolder func(dir string)
	// OnWatchFiles runs after file watching was switched on or off
	OnWatchFiles func(watch bool)
}

// NewSettingsWindow creates the settings editor. The window itself is only
// created by Show.
func NewSettingsWindow(app fyne.App, store *config.Store, prefs *config.Preferences, loc *Localization) *SettingsWindow {
	sw := &SettingsWindow{
		app:   app,
		store: store,
		prefs: prefs,
		loc:   loc,
	}
	store.OnClear(sw.rebuild)
	return sw
}

// Show opens the window, or focuses it when already open
func (sw *SettingsWindow) Show() {
	if sw.window != nil {
		sw.window.RequestFocus()
		return
	}
	w := sw.app.NewWindow(sw.loc.GetText(KeySettings))
	sw.window = w
	w.SetContent(sw.build())
	w.SetOnClosed(func() {
		if sw.window == w {
			sw.window = nil
			sw.hiddenList = nil
		}
	})
	w.Resize(fyne.NewSize(SettingsWindowWidth, SettingsWindowHeight))
	w.Show()
}

// IsOpen reports whether the window is showing
func (sw *SettingsWindow) IsOpen() bool {
	return sw.window != nil
}

// Close closes the window if it is open
func (sw *SettingsWindow) Close() {
	w := sw.window
	if w == nil {
		return
	}
	sw.window = nil
	sw.hiddenList = nil
	w.Close()
}

// rebuild recreates the controls so they show the current settings
func (sw *SettingsWindow) rebuild() {
	if sw.window != nil {
		sw.window.SetContent(sw.build())
	}
	sw.changed()
}

func (sw *SettingsWindow) build() fyne.CanvasObject {
	tabs := container.NewAppTabs(
		container.NewTabItem(sw.loc.GetText(KeySectionGeneral), container.NewVScroll(sw.generalSection())),
		container.NewTabItem(sw.loc.GetText(KeySectionColors), container.NewVScroll(sw.colorsSection())),
		container.NewTabItem(sw.loc.GetText(KeySectionComponents), container.NewVScroll(sw.componentsSection())),
		container.NewTabItem(sw.loc.GetText(KeySectionLabels), container.NewVScroll(sw.labelsSection())),
	)
	return tabs
}

func (sw *SettingsWindow) generalSection() fyne.CanvasObject {
	s := sw.store.Get()

	folderEntry := widget.NewEntry()
	folderEntry.SetText(sw.prefs.GetIconFolder())
	folderEntry.OnSubmitted = sw.setIconFolder
	browseBtn := widget.NewButtonWithIcon(sw.loc.GetText(KeyBrowse), theme.FolderOpenIcon(), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			folderEntry.SetText(uri.Path())
			sw.setIconFolder(uri.Path())
		}, sw.parent())
	})
	folderRow := container.NewBorder(nil, nil, nil, browseBtn, folderEntry)

	watchCheck := widget.NewCheck(sw.loc.GetText(KeyWatchFiles), nil)
	watchCheck.Checked = sw.prefs.GetWatchFiles()
	watchCheck.OnChanged = func(watch bool) {
		sw.prefs.SetWatchFiles(watch)
		if sw.OnWatchFiles != nil {
			sw.OnWatchFiles(watch)
		}
	}

	clearBtn := widget.NewButtonWithIcon(sw.loc.GetText(KeyClearSettings), theme.DeleteIcon(), func() {
		dialog.ShowConfirm(sw.loc.GetText(KeyClearSettings), sw.loc.GetText(KeyClearSettingsAsk), func(ok bool) {
			if ok {
				sw.store.Clear()
			}
		}, sw.parent())
	})
	clearBtn.Importance = widget.DangerImportance

	return container.NewVBox(
		sw.check(KeyEnabled, &s.Enabled),
		widget.NewSeparator(),
		widget.NewLabel(sw.loc.GetText(KeyIconFolder)),
		folderRow,
		watchCheck,
		widget.NewSeparator(),
		sw.slider(KeyGUIXOffset, &s.GUIXOffset, MinXOffset, MaxXOffset),
		widget.NewSeparator(),
		clearBtn,
	)
}

func (sw *SettingsWindow) colorsSection() fyne.CanvasObject {
	s := sw.store.Get()
	return container.NewVBox(
		sw.check(KeyColorsEnabled, &s.ColorsEnabled),
		widget.NewSeparator(),
		sw.colorRow(KeyGuideLines, &s.GuideLinesEnabled, &s.GuideLinesColor),
		sw.colorRow(KeyRowColoringOdd, &s.RowColoringOddEnabled, &s.RowOddColor),
		sw.colorRow(KeyRowColoringEven, &s.RowColoringEvenEnabled, &s.RowEvenColor),
		widget.NewSeparator(),
		sw.colorRow(KeyColorOne, &s.ColorOneEnabled, &s.ColorOne),
		sw.colorRow(KeyColorTwo, &s.ColorTwoEnabled, &s.ColorTwo),
		sw.colorRow(KeyColorThree, &s.ColorThreeEnabled, &s.ColorThree),
	)
}

func (sw *SettingsWindow) componentsSection() fyne.CanvasObject {
	s := sw.store.Get()

	sw.hiddenList = container.NewVBox()
	sw.fillHiddenTypes()
	addBtn := widget.NewButtonWithIcon(sw.loc.GetText(KeyAddHiddenType), theme.ContentAddIcon(), func() {
		sw.apply(s.AddHiddenType)
		sw.fillHiddenTypes()
	})

	return container.NewVBox(
		sw.check(KeyIconsEnabled, &s.IconsEnabled),
		sw.check(KeyDragToggle, &s.EnableDragToggle),
		sw.check(KeyContextClick, &s.EnableContextClick),
		sw.check(KeyShowObjectIcon, &s.ShowGameObjectIcon),
		sw.check(KeyCustomObjectIcon, &s.UseCustomGameObjectIcon),
		sw.check(KeyShowTransformIcon, &s.ShowTransformIcon),
		sw.check(KeyShowNonBehaviour, &s.ShowNonBehaviourIcons),
		sw.check(KeyLinkCursor, &s.LinkCursorOnHover),
		sw.check(KeyAlwaysShowIcons, &s.AlwaysShowIcons),
		widget.NewSeparator(),
		sw.colorRow(KeyIconTint, nil, &s.IconTintColor),
		sw.colorRow(KeyIconFadedTint, nil, &s.IconFadedTintColor),
		sw.colorRow(KeyIconBackground, &s.IconBackgroundColorEnabled, &s.IconBackground),
		sw.check(KeyIconBackgroundOnly, &s.IconBackgroundOverlapOnly),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel(sw.loc.GetText(KeyHiddenTypes)), addBtn),
		sw.hiddenList,
	)
}

func (sw *SettingsWindow) labelsSection() fyne.CanvasObject {
	s := sw.store.Get()
	return container.NewVBox(
		sw.check(KeyLabelsEnabled, &s.LabelsEnabled),
		sw.check(KeyLabelContextClick, &s.EnableLabelContextClick),
		widget.NewSeparator(),
		sw.check(KeyLayerLabel, &s.LayerLabelEnabled),
		sw.check(KeyDefaultLayerLabel, &s.DisplayDefaultLayerLabel),
		sw.check(KeyLayerIndex, &s.DisplayLayerIndex),
		sw.slider(KeyLayerLabelWidth, &s.LayerLabelWidth, MinLabelWidth, MaxLabelWidth),
		widget.NewSeparator(),
		sw.check(KeyTagLabel, &s.TagLabelEnabled),
		sw.check(KeyUntaggedLabel, &s.DisplayUntaggedLabel),
		sw.slider(KeyTagLabelWidth, &s.TagLabelWidth, MinLabelWidth, MaxLabelWidth),
	)
}

// fillHiddenTypes lays out one editor row per hidden type comparison
func (sw *SettingsWindow) fillHiddenTypes() {
	if sw.hiddenList == nil {
		return
	}
	list := sw.store.Get().HiddenIconTypes.Get()
	rows := make([]fyne.CanvasObject, 0, len(list))
	for i := range list {
		rows = append(rows, sw.hiddenTypeRow(i, list[i]))
	}
	sw.hiddenList.Objects = rows
	sw.hiddenList.Refresh()
}

func (sw *SettingsWindow) hiddenTypeRow(i int, c pattern.Comparison) fyne.CanvasObject {
	s := sw.store.Get()
	current := c

	names := make([]string, 0, len(pattern.Types()))
	for _, t := range pattern.Types() {
		names = append(names, t.String())
	}

	entry := widget.NewEntry()
	entry.SetText(current.Pattern)
	entry.Validator = func(text string) error {
		if current.Type == pattern.Regex && !pattern.IsValid(text) {
			return fmt.Errorf("%s: %w", sw.loc.GetText(KeyInvalidPattern), pattern.ErrInvalidPattern)
		}
		return nil
	}
	entry.OnChanged = func(text string) {
		if err := current.SetPattern(text); err != nil {
			return
		}
		sw.apply(func() { s.SetHiddenType(i, current) })
	}

	caseCheck := widget.NewCheck(sw.loc.GetText(KeyCaseSensitive), nil)
	caseCheck.Checked = current.CaseSensitive
	caseCheck.OnChanged = func(on bool) {
		current.CaseSensitive = on
		sw.apply(func() { s.SetHiddenType(i, current) })
	}

	typeSelect := widget.NewSelect(names, nil)
	typeSelect.Selected = current.Type.String()
	typeSelect.OnChanged = func(name string) {
		idx := slices.Index(names, name)
		if idx < 0 {
			return
		}
		t := pattern.Types()[idx]
		if current.Type == pattern.Regex && t != pattern.Regex {
			current.ExitRegexMode()
		}
		current.SetType(t)
		sw.apply(func() { s.SetHiddenType(i, current) })
		sw.fillHiddenTypes()
	}

	removeBtn := widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		sw.apply(func() { s.RemoveHiddenType(i) })
		sw.fillHiddenTypes()
	})
	removeBtn.Importance = widget.LowImportance

	left := container.NewHBox(typeSelect, caseCheck)
	return container.NewBorder(nil, nil, left, removeBtn, entry)
}

func (sw *SettingsWindow) check(key string, v *config.Value[bool]) *widget.Check {
	c := widget.NewCheck(sw.loc.GetText(key), nil)
	c.Checked = v.Get()
	c.OnChanged = func(on bool) {
		sw.apply(func() { v.Set(on) })
	}
	return c
}

func (sw *SettingsWindow) slider(key string, v *config.Value[float32], lo, hi float64) fyne.CanvasObject {
	value := widget.NewLabel(formatSliderValue(v.Get()))
	s := widget.NewSlider(lo, hi)
	s.Step = SliderStepSize
	s.Value = float64(v.Get())
	s.OnChanged = func(f float64) {
		value.SetText(formatSliderValue(float32(f)))
	}
	s.OnChangeEnded = func(f float64) {
		sw.apply(func() { v.Set(float32(f)) })
	}
	reset := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		sw.apply(v.Reset)
		s.SetValue(float64(v.Get()))
	})
	reset.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, widget.NewLabel(sw.loc.GetText(key)), value)
	return container.NewVBox(header, container.NewBorder(nil, nil, nil, reset, s))
}

// colorRow shows an optional enable check, a swatch, a picker and a reset
// button for one colour setting.
func (sw *SettingsWindow) colorRow(key string, enabled *config.Value[bool], v *config.Value[config.Color]) fyne.CanvasObject {
	swatch := canvas.NewRectangle(v.Get().NRGBA())
	swatch.SetMinSize(fyne.NewSize(ColorSwatchSize*2, ColorSwatchSize))
	swatch.StrokeColor = theme.Color(theme.ColorNameForeground)
	swatch.StrokeWidth = 1

	setColor := func(c config.Color) {
		sw.apply(func() { v.Set(c) })
		swatch.FillColor = v.Get().NRGBA()
		swatch.Refresh()
	}

	pick := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker(sw.loc.GetText(key), "", func(c color.Color) {
			setColor(config.FromColor(c))
		}, sw.parent())
		picker.Advanced = true
		picker.SetColor(v.Get().NRGBA())
		picker.Show()
	})
	pick.Importance = widget.LowImportance

	reset := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		setColor(v.Default())
	})
	reset.Importance = widget.LowImportance

	var label fyne.CanvasObject = widget.NewLabel(sw.loc.GetText(key))
	if enabled != nil {
		label = sw.check(key, enabled)
	}
	return container.NewBorder(nil, nil, label, container.NewHBox(swatch, pick, reset))
}

func (sw *SettingsWindow) setIconFolder(dir string) {
	if dir == sw.prefs.GetIconFolder() {
		return
	}
	sw.prefs.SetIconFolder(dir)
	if sw.OnIconFolder != nil {
		sw.OnIconFolder(dir)
	}
}

func (sw *SettingsWindow) apply(fn func()) {
	sw.store.ChangeScope(fn, sw.changed)
}

func (sw *SettingsWindow) changed() {
	if sw.OnChanged != nil {
		sw.OnChanged()
	}
}

func (sw *SettingsWindow) parent() fyne.Window {
	if sw.window != nil {
		return sw.window
	}
	if windows := sw.app.Driver().AllWindows(); len(windows) > 0 {
		return windows[0]
	}
	return nil
}

func formatSliderValue(v float32) string {
	return fmt.Sprintf("%.0f", v)
}
