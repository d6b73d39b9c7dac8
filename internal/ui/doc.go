// Package ui contains the Fyne-based desktop user interface for the application.
// It shows the scene hierarchy through the row pipeline, wires toolbar and menu
// actions to the scene service, and hosts the settings window. All UI strings
// are localized via Localization.
package ui
