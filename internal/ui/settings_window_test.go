package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/pattern"
)

func newTestSettingsWindow(t *testing.T) (*SettingsWindow, *config.Store, *int) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	store := config.NewStore(app.Preferences())
	sw := NewSettingsWindow(app, store, config.NewPreferences(app), NewLocalization())
	changes := 0
	sw.OnChanged = func() { changes++ }
	return sw, store, &changes
}

func TestSettingsWindowCheck(t *testing.T) {
	sw, store, changes := newTestSettingsWindow(t)
	s := store.Get()

	check := sw.check(KeyEnabled, &s.Enabled)
	if !check.Checked {
		t.Fatal("Expected the check to start from the stored value")
	}

	test.Tap(check)
	if s.Enabled.Get() {
		t.Error("Expected tapping the check to disable the overlay")
	}
	if *changes != 1 {
		t.Errorf("Expected 1 change notification, got %d", *changes)
	}
}

func TestSettingsWindowHiddenTypes(t *testing.T) {
	sw, store, _ := newTestSettingsWindow(t)
	sw.Show()
	t.Cleanup(sw.Close)
	s := store.Get()

	if got := len(sw.hiddenList.Objects); got != 1 {
		t.Fatalf("Expected 1 hidden type row, got %d", got)
	}

	sw.apply(s.AddHiddenType)
	sw.fillHiddenTypes()
	if got := len(sw.hiddenList.Objects); got != 2 {
		t.Errorf("Expected 2 hidden type rows, got %d", got)
	}

	sw.apply(func() { s.SetHiddenType(1, pattern.New(pattern.StartsWith, "Audio", false)) })
	if !s.IsHiddenType("audiosource") {
		t.Error("Expected AudioSource to be hidden")
	}
}

func TestSettingsWindowClearRebuilds(t *testing.T) {
	sw, store, changes := newTestSettingsWindow(t)
	sw.Show()
	t.Cleanup(sw.Close)

	store.Get().GuideLinesEnabled.Set(false)
	before := sw.hiddenList
	store.Clear()

	if !store.Get().GuideLinesEnabled.Get() {
		t.Error("Expected Clear to restore defaults")
	}
	if sw.hiddenList == before {
		t.Error("Expected the window to be rebuilt after Clear")
	}
	if *changes == 0 {
		t.Error("Expected Clear to notify listeners")
	}
}

func TestSettingsWindowShowTwice(t *testing.T) {
	sw, _, _ := newTestSettingsWindow(t)
	sw.Show()
	first := sw.window
	sw.Show()
	if sw.window != first {
		t.Error("Expected a second Show to reuse the window")
	}
	sw.Close()
	if sw.IsOpen() {
		t.Error("Expected the window to be closed")
	}
}
