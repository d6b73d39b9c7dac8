package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hierarchyplus/hierarchy-plus/internal/compress"
	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
)

// KeySettingsBlob is the single key the settings blob is stored under
const KeySettingsBlob = "HierarchyPlusSettingsJSON"

// KeyValueStore is the persistence primitive. fyne.Preferences satisfies it.
type KeyValueStore interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
}

// Store owns the Settings instance and its persistence. It is used from the
// UI goroutine only.
type Store struct {
	kv    KeyValueStore
	codec compress.Codec
	data  *Settings

	pauseDepth   int
	pendingSave  bool
	saveDisabled bool
	revision     uint64

	onClear []func()
}

// NewStore creates a store backed by kv. Settings are loaded on first Get.
func NewStore(kv KeyValueStore) *Store {
	return &Store{
		kv:    kv,
		codec: compress.NewService(),
	}
}

// Get returns the settings, loading them on first use
func (s *Store) Get() *Settings {
	if s.data == nil {
		s.load()
	}
	return s.data
}

// Reload drops the in-memory settings so the next Get reads the store again
func (s *Store) Reload() {
	s.data = nil
}

// SetSaveDisabled turns physical writes off, for read-only sessions
func (s *Store) SetSaveDisabled(disabled bool) {
	s.saveDisabled = disabled
}

// SavePaused reports whether saves are currently deferred
func (s *Store) SavePaused() bool {
	return s.pauseDepth > 0
}

// Save writes the settings unless saving is paused, in which case the write
// is deferred until the last pause scope is resumed.
func (s *Store) Save() {
	s.pendingSave = false
	if s.pauseDepth > 0 {
		s.pendingSave = true
		return
	}
	if s.saveDisabled {
		return
	}

	blob, err := Encode(s.codec, s.Get())
	if err != nil {
		logging.Warnf("Failed to save settings: %v", err)
		return
	}
	s.kv.SetString(KeySettingsBlob, blob)
}

// Clear resets every setting to its default, notifies OnClear listeners and
// saves.
func (s *Store) Clear() {
	s.setData(DefaultSettings())
	for _, fn := range s.onClear {
		fn()
	}
	s.Save()
}

// OnClear registers fn to run after Clear resets the settings
func (s *Store) OnClear(fn func()) {
	s.onClear = append(s.onClear, fn)
}

// PauseScope defers saves until Resume is called
type PauseScope struct {
	store    *Store
	released bool
}

// PauseSaves starts a pause scope. Scopes nest; only the outermost Resume
// flushes a pending save.
func (s *Store) PauseSaves() *PauseScope {
	s.pauseDepth++
	return &PauseScope{store: s}
}

// Resume ends the scope. Calling it more than once has no effect.
func (p *PauseScope) Resume() {
	if p.released {
		return
	}
	p.released = true

	s := p.store
	s.pauseDepth--
	if s.pauseDepth == 0 && s.pendingSave {
		s.Save()
	}
}

// ChangeScope runs fn with saving paused. If any setting changed during fn,
// onChange runs and exactly one save is issued. It reports whether anything
// changed.
func (s *Store) ChangeScope(fn func(), onChange func()) bool {
	scope := s.PauseSaves()
	defer scope.Resume()

	start := s.revision
	fn()
	if s.revision == start {
		return false
	}

	if onChange != nil {
		onChange()
	}
	s.Save()
	return true
}

func (s *Store) valueChanged() {
	s.revision++
	s.Save()
}

func (s *Store) setData(data *Settings) {
	data.bind(s)
	s.data = data
}

func (s *Store) load() {
	blob := s.kv.StringWithFallback(KeySettingsBlob, "")
	if strings.TrimSpace(blob) == "" {
		s.setData(DefaultSettings())
		return
	}

	data, err := Decode(s.codec, blob)
	if err != nil {
		logging.Warnf("There was an error loading settings. Settings have been reset.\n\n%v", err)
		data = DefaultSettings()
	}
	s.setData(data)
}

// terminatorEscaper rewrites the zero width space used by the section
// terminator into its JSON escape, so no string value can close a section
var terminatorEscaper = strings.NewReplacer("\u200b", `\u200b`)

// Encode produces the stored blob for data
func Encode(codec compress.Codec, data *Settings) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	text := terminatorEscaper.Replace(string(payload))
	blob, err := codec.Compress(WrapSection(MainSection, text))
	if err != nil {
		return "", fmt.Errorf("failed to compress settings: %w", err)
	}
	return blob, nil
}

// Decode parses a stored blob. A blob without a MAIN section decodes to the
// defaults.
func Decode(codec compress.Codec, blob string) (*Settings, error) {
	sections, err := DecodeSections(codec, blob)
	if err != nil {
		return nil, err
	}

	data := DefaultSettings()
	main, ok := sections[MainSection]
	if !ok {
		return data, nil
	}
	if err := json.Unmarshal([]byte(main), data); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return data, nil
}

// DecodeSections inflates a blob and returns its raw sections
func DecodeSections(codec compress.Codec, blob string) (map[string]string, error) {
	text, err := codec.Decompress(strings.TrimSpace(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress settings: %w", err)
	}
	return ParseSections(text)
}
