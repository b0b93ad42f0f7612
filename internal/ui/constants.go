package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconGenerate = "✦"
	IconCancel   = "×"
	IconAdd      = "+"
	IconRemove   = "🗑"
	IconApply    = "✓"
	IconLive     = "●"
)

// Text fragments
const (
	PercentLabelFormat = "%d%%"
	DashPlaceholder    = "—"
)

// Strength slider range. Values are stored as 0..1 fractions and displayed
// as whole percent.
const (
	StrengthSliderMin  float64 = 0
	StrengthSliderMax  float64 = 100
	StrengthSliderStep float64 = 1
)

// Layout sizing
const (
	StrengthEntryWidth float32 = 64
	PromptMinRows              = 2
	PromptMaxRows              = 10

	HistoryThumbnailSide         = 96
	HistoryItemSize      float32 = 104

	LivePreviewMinSize float32 = 328

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Upscale factor presets shown in the upscale panel.
var UpscaleFactorPresets = []float64{1.0, 1.5, 2.0, 4.0}
