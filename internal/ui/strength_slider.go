package ui

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
)

// StrengthSlider edits a 0..1 strength fraction as whole percent, with a
// slider for coarse moves and an entry for typing an exact value. The
// canonical state lives in Value; both controls follow it.
type StrengthSlider struct {
	widget.BaseWidget

	// Value is the strength as a fraction in [0, 1].
	Value *binding.Property[float64]

	slider *widget.Slider
	entry  *widget.Entry

	// updating breaks the feedback loop between Value and the controls.
	updating bool
}

// NewStrengthSlider creates a strength slider starting at the given fraction.
func NewStrengthSlider(initial float64) *StrengthSlider {
	ss := &StrengthSlider{
		Value: binding.NewProperty(clampFraction(initial)),
	}
	ss.ExtendBaseWidget(ss)

	ss.slider = widget.NewSlider(StrengthSliderMin, StrengthSliderMax)
	ss.slider.Step = StrengthSliderStep
	ss.slider.OnChanged = func(raw float64) {
		if ss.updating {
			return
		}
		ss.Value.Set(math.Round(raw) / 100)
	}

	ss.entry = widget.NewEntry()
	ss.entry.OnSubmitted = ss.onEntrySubmitted

	ss.refreshControls(ss.Value.Get())
	ss.Value.Listen(func(v float64) error {
		ss.refreshControls(v)
		return nil
	})
	return ss
}

// Percent returns the current value as a whole percent.
func (ss *StrengthSlider) Percent() int {
	return int(math.Round(ss.Value.Get() * 100))
}

func (ss *StrengthSlider) onEntrySubmitted(text string) {
	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	percent, err := strconv.Atoi(text)
	if err != nil {
		log.Printf("strength entry: not a percent value: %q", text)
		ss.refreshControls(ss.Value.Get())
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	ss.Value.Set(float64(percent) / 100)
	// Re-render even when the value did not change, so "82%" replaces a
	// raw "82" in the entry.
	ss.refreshControls(ss.Value.Get())
}

func (ss *StrengthSlider) refreshControls(v float64) {
	ss.updating = true
	defer func() { ss.updating = false }()

	percent := int(math.Round(v * 100))
	ss.slider.SetValue(float64(percent))
	ss.entry.SetText(fmt.Sprintf(PercentLabelFormat, percent))
}

// CreateRenderer implements fyne.Widget.
func (ss *StrengthSlider) CreateRenderer() fyne.WidgetRenderer {
	entryBox := container.NewGridWrap(fyne.NewSize(StrengthEntryWidth, ss.entry.MinSize().Height), ss.entry)
	row := container.NewBorder(nil, nil, nil, entryBox, ss.slider)
	return widget.NewSimpleRenderer(row)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
