package config

import (
	"fyne.io/fyne/v2"
	"github.com/hierarchyplus/hierarchy-plus/internal/platform"
)

// Preference keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyLastScenePath = "last_scene_path"
	KeyIconFolder    = "custom_icon_folder"
	KeyWatchFiles    = "watch_files"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultWatchFiles = true
)

// Preferences manages application level options that live outside the
// settings blob
type Preferences struct {
	app fyne.App
}

// NewPreferences creates a new preferences manager
func NewPreferences(app fyne.App) *Preferences {
	return &Preferences{app: app}
}

// Store returns the settings store backed by the app's preferences
func (p *Preferences) Store() *Store {
	return NewStore(p.app.Preferences())
}

// GetIconFolder returns the folder scanned for custom icons
func (p *Preferences) GetIconFolder() string {
	dir := p.app.Preferences().String(KeyIconFolder)
	if dir == "" {
		defaultDir, err := platform.GetDefaultIconFolder()
		if err != nil {
			return ""
		}
		p.SetIconFolder(defaultDir)
		return defaultDir
	}
	return dir
}

// SetIconFolder sets the custom icon folder
func (p *Preferences) SetIconFolder(dir string) {
	p.app.Preferences().SetString(KeyIconFolder, dir)
}

// GetLastScenePath returns the scene opened most recently, if any
func (p *Preferences) GetLastScenePath() string {
	return p.app.Preferences().String(KeyLastScenePath)
}

// SetLastScenePath remembers the scene file to reopen on start
func (p *Preferences) SetLastScenePath(path string) {
	p.app.Preferences().SetString(KeyLastScenePath, path)
}

// GetWatchFiles returns whether scene and icon files are watched for changes
func (p *Preferences) GetWatchFiles() bool {
	return p.app.Preferences().BoolWithFallback(KeyWatchFiles, DefaultWatchFiles)
}

// SetWatchFiles sets whether scene and icon files are watched
func (p *Preferences) SetWatchFiles(watch bool) {
	p.app.Preferences().SetBool(KeyWatchFiles, watch)
}

// GetLanguage returns the configured language
func (p *Preferences) GetLanguage() string {
	lang := p.app.Preferences().String(KeyLanguage)
	if lang == "" {
		p.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (p *Preferences) SetLanguage(lang string) {
	p.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (p *Preferences) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
