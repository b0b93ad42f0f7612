package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/model"
)

// GenerationView is the main workspace panel: style and prompts in, queued
// jobs and result history out. Every binding it makes against a model lives
// in its group, so SetModel can swap documents atomically.
type GenerationView struct {
	widget.BaseWidget

	current *model.Model

	styleSelect *StyleSelect
	prompt      *PromptField
	negative    *PromptField
	strength    *StrengthSlider
	controls    *ControlList
	generateBtn *widget.Button
	queueBtn    *QueueButton
	progress    *widget.ProgressBar
	errorLabel  *widget.Label
	history     *HistoryList
	applyBtn    *widget.Button

	group binding.Group
}

// NewGenerationView creates the generation workspace panel.
func NewGenerationView() *GenerationView {
	gv := &GenerationView{}
	gv.ExtendBaseWidget(gv)

	gv.styleSelect = NewStyleSelect()
	gv.prompt = NewPromptField()
	gv.negative = NewNegativePromptField()
	gv.strength = NewStrengthSlider(1.0)
	gv.controls = NewControlList()
	gv.queueBtn = NewQueueButton()
	gv.history = NewHistoryList()

	gv.generateBtn = widget.NewButton(IconGenerate+" Generate", gv.onGenerate)
	gv.generateBtn.Importance = widget.HighImportance

	gv.applyBtn = widget.NewButton(IconApply+" Apply", gv.onApply)
	gv.applyBtn.Disable()

	gv.progress = widget.NewProgressBar()
	gv.errorLabel = widget.NewLabel("")
	gv.errorLabel.Importance = widget.DangerImportance
	gv.errorLabel.Wrapping = fyne.TextWrapWord
	gv.errorLabel.Hide()

	gv.prompt.Activated.Listen(func(struct{}) error {
		gv.onGenerate()
		return nil
	})
	return gv
}

// SetStyles replaces the style options and rebinds the style drop-down.
// Call again after a style reload or a connection change.
func (gv *GenerationView) SetStyles(styles []*config.Style) {
	gv.styleSelect.SetStyles(styles)
	if gv.current != nil {
		// The old style link maps into stale options; replace the whole
		// binding set.
		gv.SetModel(gv.current)
	}
}

// SetModel detaches the panel from its previous model and binds it to m.
func (gv *GenerationView) SetModel(m *model.Model) {
	if err := gv.group.Disconnect(); err != nil {
		log.Printf("generation view: teardown: %v", err)
	}
	gv.current = m
	gv.controls.SetModel(m)
	gv.queueBtn.SetModel(m)
	gv.history.SetModel(m)
	if m == nil {
		return
	}

	styleLink, err := gv.styleSelect.BindTo(m.Style)
	if err != nil {
		log.Printf("generation view: style binding: %v", err)
	}
	promptLink, err := binding.Bind(m.Prompt, gv.prompt.Text, binding.TwoWay)
	if err != nil {
		log.Printf("generation view: prompt binding: %v", err)
	}
	negativeLink, err := binding.Bind(m.NegativePrompt, gv.negative.Text, binding.TwoWay)
	if err != nil {
		log.Printf("generation view: negative prompt binding: %v", err)
	}
	strengthLink, err := binding.Bind(m.Strength, gv.strength.Value, binding.TwoWay)
	if err != nil {
		log.Printf("generation view: strength binding: %v", err)
	}
	gv.group.Add(
		styleLink,
		promptLink,
		negativeLink,
		strengthLink,
		m.Progress.Listen(func(v float64) error {
			gv.progress.SetValue(v)
			return nil
		}),
		m.Error.Listen(func(message string) error {
			gv.showError(message)
			return nil
		}),
		m.CanApplyResult.Listen(func(ok bool) error {
			gv.setCanApply(ok)
			return nil
		}),
	)

	gv.progress.SetValue(m.Progress.Get())
	gv.showError(m.Error.Get())
	gv.setCanApply(m.CanApplyResult.Get())
}

// SetPromptLineCount forwards the configured prompt height to both fields.
func (gv *GenerationView) SetPromptLineCount(lines int) {
	gv.prompt.SetLineCount(lines)
	gv.negative.SetLineCount(lines)
}

// SetShowNegativePrompt shows or hides the negative prompt field.
func (gv *GenerationView) SetShowNegativePrompt(show bool) {
	if show {
		gv.negative.Show()
	} else {
		gv.negative.Hide()
	}
}

func (gv *GenerationView) onGenerate() {
	if gv.current == nil {
		return
	}
	job, err := gv.current.Generate()
	if err != nil {
		log.Printf("generation view: generate: %v", err)
		return
	}
	log.Printf("generation view: queued job %s", job.ID)
}

func (gv *GenerationView) onApply() {
	if gv.current == nil {
		return
	}
	if err := gv.current.ApplyCurrentResult(); err != nil {
		log.Printf("generation view: apply result: %v", err)
	}
}

func (gv *GenerationView) showError(message string) {
	gv.errorLabel.SetText(message)
	if message == "" {
		gv.errorLabel.Hide()
	} else {
		gv.errorLabel.Show()
	}
}

func (gv *GenerationView) setCanApply(ok bool) {
	if ok {
		gv.applyBtn.Enable()
	} else {
		gv.applyBtn.Disable()
	}
}

// CreateRenderer implements fyne.Widget.
func (gv *GenerationView) CreateRenderer() fyne.WidgetRenderer {
	top := container.NewVBox(
		gv.styleSelect.Select,
		gv.prompt,
		gv.negative,
		container.NewBorder(nil, nil, widget.NewLabel("Strength"), nil, gv.strength),
		gv.controls,
		container.NewBorder(nil, nil, nil, gv.queueBtn, gv.generateBtn),
		gv.progress,
		gv.errorLabel,
	)
	bottom := container.NewVBox(widget.NewSeparator(), gv.applyBtn)
	return widget.NewSimpleRenderer(container.NewBorder(top, bottom, nil, nil, container.NewScroll(gv.history)))
}
