package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/connection"
)

// WelcomeView covers the panel while no backend connection exists. It shows
// the connection state and offers connect and settings actions.
type WelcomeView struct {
	widget.BaseWidget

	statusLabel *widget.Label
	errorLabel  *widget.Label
	connectBtn  *widget.Button
	settingsBtn *widget.Button

	onConnect  func()
	onSettings func()
}

// NewWelcomeView creates the welcome panel observing conn. The subscription
// lives as long as the panel; the welcome view is never rebound.
func NewWelcomeView(conn *connection.Connection, onConnect, onSettings func()) *WelcomeView {
	wv := &WelcomeView{
		onConnect:  onConnect,
		onSettings: onSettings,
	}
	wv.ExtendBaseWidget(wv)

	wv.statusLabel = widget.NewLabel("")
	wv.statusLabel.Alignment = fyne.TextAlignCenter
	wv.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	wv.errorLabel = widget.NewLabel("")
	wv.errorLabel.Alignment = fyne.TextAlignCenter
	wv.errorLabel.Importance = widget.DangerImportance
	wv.errorLabel.Wrapping = fyne.TextWrapWord
	wv.errorLabel.Hide()

	wv.connectBtn = widget.NewButton("Connect", func() {
		if wv.onConnect != nil {
			wv.onConnect()
		}
	})
	wv.connectBtn.Importance = widget.HighImportance

	wv.settingsBtn = widget.NewButton(IconSettings+" Settings", func() {
		if wv.onSettings != nil {
			wv.onSettings()
		}
	})

	conn.State.Listen(func(state connection.State) error {
		wv.showState(state, conn.LastError.Get())
		return nil
	})
	conn.LastError.Listen(func(message string) error {
		wv.showState(conn.State.Get(), message)
		return nil
	})
	wv.showState(conn.State.Get(), conn.LastError.Get())
	return wv
}

func (wv *WelcomeView) showState(state connection.State, lastError string) {
	switch state {
	case connection.StateDisconnected:
		wv.statusLabel.SetText("Not connected")
		wv.connectBtn.Enable()
	case connection.StateConnecting:
		wv.statusLabel.SetText("Connecting...")
		wv.connectBtn.Disable()
	case connection.StateConnected:
		wv.statusLabel.SetText("Connected")
		wv.connectBtn.Disable()
	case connection.StateError:
		wv.statusLabel.SetText("Connection failed")
		wv.connectBtn.Enable()
	default:
		log.Printf("welcome view: unknown connection state %q", state)
	}

	wv.errorLabel.SetText(lastError)
	if lastError == "" {
		wv.errorLabel.Hide()
	} else {
		wv.errorLabel.Show()
	}
}

// CreateRenderer implements fyne.Widget.
func (wv *WelcomeView) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		widget.NewLabel(""),
		wv.statusLabel,
		wv.errorLabel,
		wv.connectBtn,
		wv.settingsBtn,
	)
	return widget.NewSimpleRenderer(container.NewCenter(content))
}
