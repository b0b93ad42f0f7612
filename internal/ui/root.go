package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/connection"
	"github.com/inkwave/inkwave/internal/model"
)

// RootPanel is the whole plugin surface: a welcome page while disconnected,
// and the workspace pages once a backend is available. It attaches to one
// document model at a time; switching documents rebinds every page.
type RootPanel struct {
	widget.BaseWidget

	window   fyne.Window
	settings *config.Settings
	styles   *config.StyleList
	conn     *connection.Connection

	current *model.Model

	workspaceSelect *WorkspaceSelect
	settingsBtn     *widget.Button
	generation      *GenerationView
	upscale         *UpscaleView
	live            *LiveView
	welcome         *WelcomeView

	workspacePage *fyne.Container
	pages         *fyne.Container

	settingsDialog *SettingsDialog

	// group holds the bindings against the current model.
	group binding.Group

	onConnect func()
}

// NewRootPanel builds the panel and its pages. Call SetOnConnect to wire
// the connect action, then SetModel when a document opens.
func NewRootPanel(window fyne.Window, settings *config.Settings, styles *config.StyleList, conn *connection.Connection) *RootPanel {
	rp := &RootPanel{
		window:   window,
		settings: settings,
		styles:   styles,
		conn:     conn,
	}
	rp.ExtendBaseWidget(rp)

	rp.settingsDialog = NewSettingsDialog(settings, window)

	rp.workspaceSelect = NewWorkspaceSelect()
	rp.settingsBtn = widget.NewButton(IconSettings, func() {
		rp.settingsDialog.Show()
	})

	rp.generation = NewGenerationView()
	rp.upscale = NewUpscaleView()
	rp.live = NewLiveView()
	rp.welcome = NewWelcomeView(conn, func() {
		if rp.onConnect != nil {
			rp.onConnect()
		}
	}, func() {
		rp.settingsDialog.Show()
	})

	header := container.NewBorder(nil, nil, nil, rp.settingsBtn, rp.workspaceSelect.Select)
	stack := container.NewStack(rp.generation, rp.upscale, rp.live)
	rp.workspacePage = container.NewBorder(header, nil, nil, nil, stack)
	rp.pages = container.NewStack(rp.welcome, rp.workspacePage)

	conn.State.Listen(func(state connection.State) error {
		rp.showConnectionState(state)
		return nil
	})
	settings.Changed.Listen(func(key string) error {
		rp.applySettings(key)
		return nil
	})

	rp.showConnectionState(conn.State.Get())
	rp.applySettings("")
	rp.showWorkspace(model.WorkspaceGeneration)
	return rp
}

// SetOnConnect wires the welcome page's connect action.
func (rp *RootPanel) SetOnConnect(fn func()) {
	rp.onConnect = fn
}

// Model returns the currently attached model.
func (rp *RootPanel) Model() *model.Model {
	return rp.current
}

// SetModel detaches the panel from its previous model and binds every page
// to m. Bindings against the old model are gone before the first new one is
// made, so no stale propagation survives the switch.
func (rp *RootPanel) SetModel(m *model.Model) {
	if err := rp.group.Disconnect(); err != nil {
		log.Printf("root panel: teardown: %v", err)
	}
	rp.current = m

	rp.generation.SetStyles(rp.conn.FilterSupportedStyles(rp.styles.All()))
	rp.generation.SetModel(m)
	rp.upscale.SetModel(m)
	rp.live.SetModel(m)
	if m == nil {
		return
	}

	workspaceLink, err := rp.workspaceSelect.BindTo(m.Workspace)
	if err != nil {
		log.Printf("root panel: workspace binding: %v", err)
	}
	rp.group.Add(
		workspaceLink,
		m.Workspace.Listen(func(w model.Workspace) error {
			rp.showWorkspace(w)
			return nil
		}),
	)
	rp.showWorkspace(m.Workspace.Get())

	if client, ok := rp.conn.ClientIfConnected(); ok {
		rp.upscale.SetUpscalers(client.Upscalers())
	}
	log.Printf("root panel: attached model for document %s", m.Document().Extent())
}

func (rp *RootPanel) showWorkspace(w model.Workspace) {
	rp.generation.Hide()
	rp.upscale.Hide()
	rp.live.Hide()
	switch w {
	case model.WorkspaceUpscaling:
		rp.upscale.Show()
	case model.WorkspaceLive:
		rp.live.Show()
	default:
		rp.generation.Show()
	}
}

func (rp *RootPanel) showConnectionState(state connection.State) {
	if state == connection.StateConnected {
		rp.welcome.Hide()
		rp.workspacePage.Show()
		if client, ok := rp.conn.ClientIfConnected(); ok {
			rp.upscale.SetUpscalers(client.Upscalers())
		}
		rp.generation.SetStyles(rp.conn.FilterSupportedStyles(rp.styles.All()))
	} else {
		rp.workspacePage.Hide()
		rp.welcome.Show()
	}
}

// applySettings pushes the stored settings into the pages. An empty key
// reapplies everything.
func (rp *RootPanel) applySettings(key string) {
	all := key == ""

	if all || key == config.KeyPromptLineCount {
		rp.generation.SetPromptLineCount(rp.settings.GetPromptLineCount())
	}
	if all || key == config.KeyShowNegativePrompt {
		rp.generation.SetShowNegativePrompt(rp.settings.GetShowNegativePrompt())
	}
	if all || key == config.KeyHistoryLimit {
		if rp.current != nil {
			rp.current.Jobs.Trim(rp.settings.GetHistoryLimit())
		}
	}
	if all || key == config.KeyStyleDirectory {
		dir := rp.settings.GetStyleDirectory()
		if dir == "" {
			return
		}
		if err := rp.styles.LoadDirectory(dir); err != nil {
			log.Printf("root panel: style reload: %v", err)
			return
		}
		rp.generation.SetStyles(rp.conn.FilterSupportedStyles(rp.styles.All()))
	}
}

// CreateRenderer implements fyne.Widget.
func (rp *RootPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rp.pages)
}
