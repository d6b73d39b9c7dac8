// Package config persists configuration. Preferences wraps plain Fyne
// preference keys; Store holds the hierarchy Settings aggregate and writes it
// as one compressed blob under a single key, with pausable saves, change
// scopes and tolerant loading.
package config
