package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
)

// PromptField is a text entry backed by an observable Text property.
// Pressing Enter publishes the text and fires Activated, which views hook
// up to the generate action.
type PromptField struct {
	widget.BaseWidget

	// Text is the current prompt text.
	Text *binding.Property[string]

	// Activated fires when the user submits the field.
	Activated *binding.Signal[struct{}]

	entry *widget.Entry
}

// NewPromptField creates the positive prompt field.
func NewPromptField() *PromptField {
	return newPromptField("Describe the content you want to see...")
}

// NewNegativePromptField creates the negative prompt field.
func NewNegativePromptField() *PromptField {
	return newPromptField("Describe content you want to avoid...")
}

func newPromptField(placeholder string) *PromptField {
	pf := &PromptField{
		Text:      binding.NewProperty(""),
		Activated: binding.NewSignal[struct{}](),
	}
	pf.ExtendBaseWidget(pf)

	pf.entry = widget.NewEntry()
	pf.entry.SetPlaceHolder(placeholder)
	pf.entry.OnChanged = func(text string) {
		pf.Text.Set(text)
	}
	pf.entry.OnSubmitted = func(text string) {
		pf.Text.Set(text)
		pf.Activated.Emit(struct{}{})
	}

	// Entry's OnChanged fires on SetText too, but with the same text the
	// property write is a no-op, so no loop forms.
	pf.Text.Listen(func(text string) error {
		if pf.entry.Text != text {
			pf.entry.SetText(text)
		}
		return nil
	})
	return pf
}

// SetLineCount switches between a single-line field and a multi-line one
// showing the given number of rows.
func (pf *PromptField) SetLineCount(lines int) {
	if lines < PromptMinRows {
		pf.entry.MultiLine = false
	} else {
		if lines > PromptMaxRows {
			lines = PromptMaxRows
		}
		pf.entry.MultiLine = true
		pf.entry.Wrapping = fyne.TextWrapWord
		pf.entry.SetMinRowsVisible(lines)
	}
	pf.entry.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (pf *PromptField) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pf.entry)
}
