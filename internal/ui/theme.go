package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colors used by status labels and the live indicator.
var (
	ColorActiveGreen   = color.RGBA{R: 0x33, G: 0xbb, B: 0x33, A: 255}
	ColorWarningYellow = color.RGBA{R: 0xcc, G: 0xcc, B: 0x33, A: 255}
	ColorErrorRed      = color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 255}
	ColorInactiveGrey  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	ColorHighlight     = color.RGBA{R: 0x88, G: 0xdd, B: 0xff, A: 255}
)

// CompactTheme defines a compact theme for the panel with reduced padding
// and font sizes, so it stays usable as a narrow docker.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorActiveGreen
	case theme.ColorNameError:
		return ColorErrorRed
	case theme.ColorNameWarning:
		return ColorWarningYellow
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0x53, G: 0x72, B: 0x8e, A: 255} // Muted blue for active jobs
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	}

	return theme.DefaultTheme().Size(name)
}
