package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
	"github.com/hierarchyplus/hierarchy-plus/internal/icons"
	"github.com/hierarchyplus/hierarchy-plus/internal/logging"
	"github.com/hierarchyplus/hierarchy-plus/internal/scene"
	"github.com/hierarchyplus/hierarchy-plus/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.hierarchyplus.hierarchy-plus"
	AppName = "Hierarchy Plus"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	logging.Infof("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource())
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	prefs := config.NewPreferences(myApp)
	store := prefs.Store()
	resolver := icons.NewResolver(icons.NewThemeThumbnails())
	sceneSvc := scene.NewService()

	ui.NewRootUI(myWindow, myApp, sceneSvc, store, prefs, resolver)

	myWindow.ShowAndRun()
}
