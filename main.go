package main

import (
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/connection"
	"github.com/inkwave/inkwave/internal/imaging"
	"github.com/inkwave/inkwave/internal/model"
	"github.com/inkwave/inkwave/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.inkwave.inkwave"
	AppName = "Inkwave"

	WindowWidth  = 420
	WindowHeight = 640

	EnvFile = ".env"
)

func main() {
	// Log version information
	fmt.Printf("Inkwave v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	settings.ApplyEnvOverrides(EnvFile)

	styles := config.NewStyleList()
	if dir := settings.GetStyleDirectory(); dir != "" {
		if err := styles.LoadDirectory(dir); err != nil {
			log.Printf("style presets unavailable: %v", err)
		}
	}

	conn := connection.New()

	// Create and setup UI
	panel := ui.NewRootPanel(myWindow, settings, styles, conn)
	panel.SetOnConnect(func() {
		conn.Begin()
		// No protocol client in this build; connecting reports the
		// configured URL as unreachable.
		conn.Fail(fmt.Sprintf("no backend at %s", settings.GetServerURL()))
	})
	panel.SetModel(model.New(newScratchDocument(), styles))
	myWindow.SetContent(panel)

	// Show and run
	myWindow.ShowAndRun()
}

// scratchDocument is the in-memory document used when the app runs outside
// a host editor.
type scratchDocument struct {
	extent imaging.Extent
	layers []model.Layer
}

func newScratchDocument() *scratchDocument {
	return &scratchDocument{
		extent: imaging.Extent{Width: 512, Height: 512},
		layers: []model.Layer{{ID: "background", Name: "Background"}},
	}
}

func (d *scratchDocument) Extent() imaging.Extent { return d.extent }
func (d *scratchDocument) Layers() []model.Layer  { return d.layers }

func (d *scratchDocument) AddLayer(name string, img image.Image) error {
	d.layers = append([]model.Layer{{ID: name, Name: name}}, d.layers...)
	log.Printf("document: added layer %q (%s)", name, imaging.ExtentOf(img))
	return nil
}
