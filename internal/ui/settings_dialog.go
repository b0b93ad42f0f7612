package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	serverURLEntry    *widget.Entry
	lineCountEntry    *widget.Entry
	negativeCheck     *widget.Check
	historyLimitEntry *widget.Entry
	styleDirEntry     *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.lineCountEntry = widget.NewEntry()
	sd.lineCountEntry.SetPlaceHolder("1-10")

	sd.negativeCheck = widget.NewCheck("Show negative prompt", nil)

	sd.historyLimitEntry = widget.NewEntry()
	sd.historyLimitEntry.SetPlaceHolder("Finished jobs to keep")

	// Style directory selection
	sd.styleDirEntry = widget.NewEntry()
	sd.styleDirEntry.SetPlaceHolder("Style preset directory")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	styleDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.styleDirEntry)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Server Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Server URL:"),
		sd.serverURLEntry,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Prompt Lines:"),
		sd.lineCountEntry,

		sd.negativeCheck,

		widget.NewLabel("History Limit:"),
		sd.historyLimitEntry,

		widget.NewLabel("Style Directory:"),
		styleDirRow,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.lineCountEntry.SetText(strconv.Itoa(sd.settings.GetPromptLineCount()))
	sd.negativeCheck.SetChecked(sd.settings.GetShowNegativePrompt())
	sd.historyLimitEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
	sd.styleDirEntry.SetText(sd.settings.GetStyleDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.styleDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if sd.lineCountEntry.Text != "" {
		if lines, err := strconv.Atoi(sd.lineCountEntry.Text); err == nil {
			sd.settings.SetPromptLineCount(lines)
		}
	}

	sd.settings.SetShowNegativePrompt(sd.negativeCheck.Checked)

	if sd.historyLimitEntry.Text != "" {
		if limit, err := strconv.Atoi(sd.historyLimitEntry.Text); err == nil {
			sd.settings.SetHistoryLimit(limit)
		}
	}

	if sd.styleDirEntry.Text != "" {
		sd.settings.SetStyleDirectory(sd.styleDirEntry.Text)
	}
}
