package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app    fyne.App
	device func() fyne.Device
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app, device: fyne.CurrentDevice}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device().IsMobile()
}

// RowHeight returns the hierarchy row height for the current device.
// Touch targets need taller rows.
func (m *MobileUI) RowHeight() float32 {
	if m.IsMobileDevice() {
		return MobileRowHeight
	}
	return RowHeight
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.device().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// WrapToolbar lays the toolbar out for the device. On phones held upright the
// status line moves under the toolbar instead of sharing its row.
func (m *MobileUI) WrapToolbar(toolbar *widget.Toolbar, status fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return container.NewVBox(toolbar, container.NewPadded(status))
	}
	return container.NewBorder(nil, nil, toolbar, nil, status)
}
