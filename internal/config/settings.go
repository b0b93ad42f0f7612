package config

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"

	"github.com/inkwave/inkwave/internal/binding"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyPromptLineCount    = "prompt_line_count"
	KeyShowNegativePrompt = "show_negative_prompt"
	KeyHistoryLimit       = "history_limit"
	KeyStyleDirectory     = "style_directory"
)

// Environment variable overrides, read from the process environment or a
// developer .env file
const (
	EnvServerURL = "INKWAVE_SERVER_URL"
	EnvStyleDir  = "INKWAVE_STYLE_DIR"
)

// Default values
const (
	DefaultServerURL          = "http://127.0.0.1:8188"
	DefaultPromptLineCount    = 2
	DefaultShowNegativePrompt = false
	DefaultHistoryLimit       = 50
)

// Settings manages application configuration. Every setter broadcasts the
// written key on Changed, so a widget observing a setting subscribes once
// and stays current without polling a global.
type Settings struct {
	app fyne.App

	// Changed fires with the key of the setting that was written.
	Changed *binding.Signal[string]
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App) *Settings {
	return &Settings{
		app:     app,
		Changed: binding.NewSignal[string](),
	}
}

// ApplyEnvOverrides loads a developer .env file if present and copies any
// recognized variables into the preferences. A missing file is not an error.
func (s *Settings) ApplyEnvOverrides(path string) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		log.Printf("settings: ignoring unreadable env file %s: %v", path, err)
	}
	if url := os.Getenv(EnvServerURL); url != "" {
		s.SetServerURL(url)
	}
	if dir := os.Getenv(EnvStyleDir); dir != "" {
		s.SetStyleDirectory(dir)
	}
}

// GetServerURL returns the generation backend URL.
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the generation backend URL.
func (s *Settings) SetServerURL(url string) {
	s.app.Preferences().SetString(KeyServerURL, url)
	s.Changed.Emit(KeyServerURL)
}

// GetPromptLineCount returns the height of the prompt field in text lines.
func (s *Settings) GetPromptLineCount() int {
	value := s.app.Preferences().Int(KeyPromptLineCount)
	if value <= 0 {
		return DefaultPromptLineCount
	}
	return value
}

// SetPromptLineCount sets the prompt field height, clamped to 1-10 lines.
func (s *Settings) SetPromptLineCount(count int) {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}
	s.app.Preferences().SetInt(KeyPromptLineCount, count)
	s.Changed.Emit(KeyPromptLineCount)
}

// GetShowNegativePrompt returns whether the negative prompt field is shown.
func (s *Settings) GetShowNegativePrompt() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowNegativePrompt, DefaultShowNegativePrompt)
}

// SetShowNegativePrompt sets whether the negative prompt field is shown.
func (s *Settings) SetShowNegativePrompt(show bool) {
	s.app.Preferences().SetBool(KeyShowNegativePrompt, show)
	s.Changed.Emit(KeyShowNegativePrompt)
}

// GetHistoryLimit returns how many finished generations the history keeps.
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets the history size, with a minimum of 1.
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	s.app.Preferences().SetInt(KeyHistoryLimit, limit)
	s.Changed.Emit(KeyHistoryLimit)
}

// GetStyleDirectory returns the directory style presets are loaded from.
// Empty means the built-in default style only.
func (s *Settings) GetStyleDirectory() string {
	return s.app.Preferences().String(KeyStyleDirectory)
}

// SetStyleDirectory sets the style preset directory.
func (s *Settings) SetStyleDirectory(dir string) {
	s.app.Preferences().SetString(KeyStyleDirectory, dir)
	s.Changed.Emit(KeyStyleDirectory)
}
