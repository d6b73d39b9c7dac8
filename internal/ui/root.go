package ui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/hierarchy"
	"github.com/hierarchyplus/hierarchy-plus/internal/icons"
	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
	"github.com/hierarchyplus/hierarchy-plus/internal/platform"
	"github.com/hierarchyplus/hierarchy-plus/internal/scene"
)

// SelfWriteGrace is how long file events are ignored after saving the scene
const SelfWriteGrace = time.Second

// RootUI represents the main UI structure
type RootUI struct {
	app    fyne.App
	window fyne.Window

	scene    *scene.Service
	store    *config.Store
	prefs    *config.Preferences
	resolver *icons.Resolver
	pipeline *hierarchy.Pipeline

	localization *Localization
	mobile       *MobileUI
	view         *HierarchyView
	settings     *SettingsWindow
	toolbar      *widget.Toolbar
	status       *widget.Label

	watcher      *scene.Watcher
	watchedScene string
	iconFolder   string
	lastSave     time.Time

	// Status line auto clear
	statusMu    sync.Mutex
	statusTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sceneSvc *scene.Service, store *config.Store, prefs *config.Preferences, resolver *icons.Resolver) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(prefs.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		scene:        sceneSvc,
		store:        store,
		prefs:        prefs,
		resolver:     resolver,
		pipeline:     hierarchy.NewPipeline(store, resolver, sceneSvc, nil),
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	watcher, err := scene.NewWatcher(func(fn func()) { fyne.Do(fn) })
	if err != nil {
		logging.Warnf("File watching is unavailable: %v", err)
	} else {
		ui.watcher = watcher
	}

	ui.setupUI()
	ui.scene.SetUpdateCallback(ui.onSceneUpdate)
	ui.setIconFolder(prefs.GetIconFolder())
	ui.openInitialScene()

	logging.Infof("UI setup completed successfully")
	return ui
}

// View returns the hierarchy view
func (ui *RootUI) View() *HierarchyView {
	return ui.view
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.view = NewHierarchyView(ui.pipeline, ui.scene, ui.mobile.RowHeight())
	ui.view.OnHover = ui.showTooltip
	ui.view.OnChanged = ui.updateTitle

	ui.settings = NewSettingsWindow(ui.app, ui.store, ui.prefs, ui.localization)
	ui.settings.OnChanged = ui.view.Refresh
	ui.settings.OnIconFolder = ui.setIconFolder
	ui.settings.OnWatchFiles = ui.onWatchFilesChanged

	ui.status = widget.NewLabel("")
	ui.status.Truncation = fyne.TextTruncateEllipsis

	ui.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), ui.onOpenScene),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), ui.onSaveScene),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), ui.onUndo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), ui.onRedo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), ui.onRefreshIcons),
		widget.NewToolbarAction(theme.SettingsIcon(), ui.settings.Show),
	)

	content := container.NewBorder(
		ui.mobile.WrapToolbar(ui.toolbar, ui.status), // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		ui.view, // center
	)
	ui.window.SetContent(content)

	ui.createMenu()
	ui.addShortcuts()
	ui.window.SetCloseIntercept(ui.onClose)
	ui.updateTitle()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyOpenScene), ui.onOpenScene),
		fyne.NewMenuItem(l.GetText(KeyLoadSample), ui.onLoadSample),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySaveScene), ui.onSaveScene),
		fyne.NewMenuItem(l.GetText(KeySaveSceneAs), ui.onSaveSceneAs),
		fyne.NewMenuItem(l.GetText(KeyOpenInEditor), ui.onOpenInEditor),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyRevealIconFolder), ui.onRevealIconFolder),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.settings.Show),
	)

	undoText := l.GetText(KeyUndo)
	if label := ui.scene.UndoLabel(); label != "" {
		undoText += " " + label
	}
	undoItem := fyne.NewMenuItem(undoText, ui.onUndo)
	undoItem.Disabled = !ui.scene.CanUndo()
	redoItem := fyne.NewMenuItem(l.GetText(KeyRedo), ui.onRedo)
	redoItem.Disabled = !ui.scene.CanRedo()
	editMenu := fyne.NewMenu(l.GetText(KeyEdit), undoItem, redoItem)

	viewMenu := fyne.NewMenu(l.GetText(KeyView),
		fyne.NewMenuItem(l.GetText(KeyExpandAll), ui.view.ExpandAll),
		fyne.NewMenuItem(l.GetText(KeyCollapseAll), ui.view.CollapseAll),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyRefreshIcons), ui.onRefreshIcons),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, languageMenu))
}

// addShortcuts binds the usual editor keys
func (ui *RootUI) addShortcuts() {
	bind := func(key fyne.KeyName, mod fyne.KeyModifier, fn func()) {
		ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			fn()
		})
	}
	bind(fyne.KeyO, fyne.KeyModifierShortcutDefault, ui.onOpenScene)
	bind(fyne.KeyS, fyne.KeyModifierShortcutDefault, ui.onSaveScene)
	bind(fyne.KeyS, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, ui.onSaveSceneAs)
	bind(fyne.KeyZ, fyne.KeyModifierShortcutDefault, ui.onUndo)
	bind(fyne.KeyZ, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, ui.onRedo)
	bind(fyne.KeyY, fyne.KeyModifierShortcutDefault, ui.onRedo)
	bind(fyne.KeyComma, fyne.KeyModifierShortcutDefault, ui.settings.Show)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.prefs.SetLanguage(langCode)

	// Recreate menu to update checkmarks
	ui.createMenu()
	ui.updateTitle()

	// Reopen the settings window so its labels follow
	if ui.settings.IsOpen() {
		ui.settings.Close()
		ui.settings.Show()
	}
}

// openInitialScene reopens the last scene, falling back to the sample
func (ui *RootUI) openInitialScene() {
	if last := ui.prefs.GetLastScenePath(); last != "" {
		err := ui.scene.Load(last)
		if err == nil {
			ui.watchScene(last)
			return
		}
		logging.Warnf("Could not reopen %s: %v", last, err)
	}
	if err := ui.scene.LoadSample(); err != nil {
		logging.Errorf("Failed to load the sample scene: %v", err)
	}
}

// onSceneUpdate runs after every scene change
func (ui *RootUI) onSceneUpdate() {
	ui.view.Reload()
	ui.updateTitle()
	ui.createMenu()
}

// updateTitle shows the scene name and a dirty marker
func (ui *RootUI) updateTitle() {
	title := ui.localization.GetText(KeyAppTitle)
	if name := ui.scene.Name(); name != "" {
		title = fmt.Sprintf("%s - %s", title, name)
	}
	if ui.scene.Dirty() {
		title += " *"
	}
	ui.window.SetTitle(title)
}

// confirmDiscard runs fn directly when the scene is clean, otherwise after
// the user agreed to drop the changes.
func (ui *RootUI) confirmDiscard(fn func()) {
	if !ui.scene.Dirty() {
		fn()
		return
	}
	dialog.ShowConfirm(
		ui.localization.GetText(KeyUnsavedChanges),
		ui.localization.GetText(KeyDiscardChanges),
		func(ok bool) {
			if ok {
				fn()
			}
		},
		ui.window,
	)
}

// onOpenScene asks for a scene file and loads it
func (ui *RootUI) onOpenScene() {
	ui.confirmDiscard(func() {
		open := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				ui.showError(KeyErrorOpenScene, err)
				return
			}
			if rc == nil {
				return
			}
			path := rc.URI().Path()
			if cerr := rc.Close(); cerr != nil {
				logging.Warnf("Failed to close %s: %v", path, cerr)
			}
			ui.openScene(path)
		}, ui.window)
		open.SetFilter(storage.NewExtensionFileFilter([]string{SceneFileExtension, ".yml"}))
		if dir, err := platform.GetDefaultSceneDir(); err == nil {
			if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
				open.SetLocation(lister)
			}
		}
		open.Show()
	})
}

// openScene loads path and starts watching it
func (ui *RootUI) openScene(path string) {
	if err := ui.scene.Load(path); err != nil {
		ui.showError(KeyErrorOpenScene, err)
		return
	}
	ui.prefs.SetLastScenePath(path)
	ui.watchScene(path)
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySceneLoaded), ui.scene.Name(), ui.scene.Count()))
}

// onLoadSample replaces the scene with the bundled sample
func (ui *RootUI) onLoadSample() {
	ui.confirmDiscard(func() {
		ui.unwatchScene()
		if err := ui.scene.LoadSample(); err != nil {
			ui.showError(KeyErrorOpenScene, err)
			return
		}
		ui.prefs.SetLastScenePath("")
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySceneLoaded), ui.scene.Name(), ui.scene.Count()))
	})
}

// onSaveScene writes the scene back to its file
func (ui *RootUI) onSaveScene() {
	if ui.scene.Path() == "" {
		ui.onSaveSceneAs()
		return
	}
	ui.saveScene(ui.scene.Path())
}

// onSaveSceneAs asks for a target file and saves there
func (ui *RootUI) onSaveSceneAs() {
	save := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showError(KeyErrorSaveScene, err)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		if cerr := wc.Close(); cerr != nil {
			logging.Warnf("Failed to close %s: %v", path, cerr)
		}
		ui.saveScene(path)
		ui.prefs.SetLastScenePath(path)
		ui.watchScene(path)
	}, ui.window)
	save.SetFileName(ui.scene.Name() + SceneFileExtension)
	save.Show()
}

func (ui *RootUI) saveScene(path string) {
	ui.lastSave = time.Now()
	if err := ui.scene.Save(path); err != nil {
		ui.showError(KeyErrorSaveScene, err)
		return
	}
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySceneSaved), path))
}

// onUndo reverts the last edit group
func (ui *RootUI) onUndo() {
	if !ui.scene.Undo() {
		ui.setStatus(ui.localization.GetText(KeyNothingToUndo))
	}
}

// onRedo reapplies the last undone edit group
func (ui *RootUI) onRedo() {
	ui.scene.Redo()
}

// onRefreshIcons rescans the custom icon folder
func (ui *RootUI) onRefreshIcons() {
	ui.resolver.Refresh()
	ui.view.Refresh()
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyIconsLoaded), ui.resolver.CustomIconCount()))
}

// onRevealIconFolder opens the custom icon folder in the file manager
func (ui *RootUI) onRevealIconFolder() {
	if ui.iconFolder == "" {
		return
	}
	if err := platform.CreateDirectoryIfNotExists(ui.iconFolder); err != nil {
		logging.Warnf("Failed to create icon folder %s: %v", ui.iconFolder, err)
	}
	if err := platform.OpenFolderInManager(ui.iconFolder); err != nil {
		logging.Errorf("Error revealing folder %s: %v", ui.iconFolder, err)
		widget.ShowPopUp(widget.NewLabel(err.Error()), ui.window.Canvas())
	}
}

// onOpenInEditor opens the scene file in the system's default application.
// The embedded sample has no file yet, so it goes through Save As first.
func (ui *RootUI) onOpenInEditor() {
	path := ui.scene.Path()
	if path == "" {
		ui.onSaveSceneAs()
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.showError(KeyErrorOpenScene, err)
	}
}

// setIconFolder switches the custom icon source to dir
func (ui *RootUI) setIconFolder(dir string) {
	if ui.watcher != nil && ui.iconFolder != "" {
		ui.watcher.Unwatch(ui.iconFolder)
	}
	ui.iconFolder = dir
	if dir == "" {
		ui.resolver.RegisterCustomIcons(nil)
	} else {
		ui.resolver.RegisterCustomIcons(icons.NewFolderSource(dir))
		ui.watchIconFolder()
	}
	ui.view.Refresh()
}

func (ui *RootUI) watchIconFolder() {
	if ui.watcher == nil || ui.iconFolder == "" || !ui.prefs.GetWatchFiles() {
		return
	}
	if err := ui.watcher.WatchDir(ui.iconFolder, ui.onRefreshIcons); err != nil {
		logging.Warnf("Cannot watch icon folder: %v", err)
	}
}

func (ui *RootUI) watchScene(path string) {
	if ui.watcher == nil || !ui.prefs.GetWatchFiles() {
		return
	}
	ui.unwatchScene()
	if err := ui.watcher.WatchFile(path, ui.onSceneFileChanged); err != nil {
		logging.Warnf("Cannot watch scene file: %v", err)
		return
	}
	ui.watchedScene = path
}

func (ui *RootUI) unwatchScene() {
	if ui.watcher != nil && ui.watchedScene != "" {
		ui.watcher.Unwatch(ui.watchedScene)
	}
	ui.watchedScene = ""
}

// onWatchFilesChanged starts or stops all file watches
func (ui *RootUI) onWatchFilesChanged(watch bool) {
	if ui.watcher == nil {
		return
	}
	if !watch {
		ui.unwatchScene()
		if ui.iconFolder != "" {
			ui.watcher.Unwatch(ui.iconFolder)
		}
		return
	}
	if path := ui.scene.Path(); path != "" {
		ui.watchScene(path)
	}
	ui.watchIconFolder()
}

// onSceneFileChanged reloads the scene after an external edit
func (ui *RootUI) onSceneFileChanged() {
	if time.Since(ui.lastSave) < SelfWriteGrace {
		return
	}
	path := ui.scene.Path()
	if path == "" {
		return
	}
	ui.confirmDiscard(func() {
		if err := ui.scene.Load(path); err != nil {
			ui.showError(KeyErrorOpenScene, err)
			return
		}
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySceneReloaded), ui.scene.Name()))
	})
}

// onClose asks about unsaved changes and stops the watcher
func (ui *RootUI) onClose() {
	ui.confirmDiscard(func() {
		ui.settings.Close()
		if ui.watcher != nil {
			if err := ui.watcher.Close(); err != nil {
				logging.Warnf("Failed to stop file watcher: %v", err)
			}
		}
		ui.window.Close()
	})
}

// showTooltip mirrors the hovered icon's tooltip in the status line
func (ui *RootUI) showTooltip(tip string) {
	ui.status.SetText(tip)
}

// setStatus shows message in the status line and clears it after a while
func (ui *RootUI) setStatus(message string) {
	ui.status.SetText(message)

	ui.statusMu.Lock()
	defer ui.statusMu.Unlock()
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() {
			if ui.status.Text == message {
				ui.status.SetText("")
			}
		})
	})
}

// showError logs err and shows it in a dialog titled by key
func (ui *RootUI) showError(key string, err error) {
	logging.Errorf("%s: %v", ui.localization.GetText(key), err)
	dialog.ShowError(errors.Join(errors.New(ui.localization.GetText(key)), err), ui.window)
}
