package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/imaging"
	"github.com/inkwave/inkwave/internal/model"
)

// UpscaleView is the upscaling workspace panel: pick a model and a factor,
// optionally refine with diffusion, and run.
type UpscaleView struct {
	widget.BaseWidget

	current *model.Model

	upscalerSelect *widget.Select
	factorSelect   *FactorSelect
	targetLabel    *widget.Label
	diffusionCheck *widget.Check
	strength       *StrengthSlider
	upscaleBtn     *widget.Button
	queueBtn       *QueueButton
	progress       *widget.ProgressBar
	errorLabel     *widget.Label

	group binding.Group
}

// FactorSelect is the factor drop-down over the preset multipliers.
type FactorSelect struct {
	*widget.Select

	// Changed fires the newly selected index.
	Changed *binding.Signal[int]
}

// NewFactorSelect creates the factor drop-down.
func NewFactorSelect() *FactorSelect {
	fs := &FactorSelect{Changed: binding.NewSignal[int]()}
	names := make([]string, 0, len(UpscaleFactorPresets))
	for _, f := range UpscaleFactorPresets {
		names = append(names, fmt.Sprintf("%.1fx", f))
	}
	fs.Select = widget.NewSelect(names, func(string) {
		fs.Changed.Emit(fs.SelectedIndex())
	})
	return fs
}

// BindTo links the drop-down to the factor property both ways. A factor
// between presets leaves the drop-down unselected.
func (fs *FactorSelect) BindTo(p *binding.Property[float64]) (*binding.Link, error) {
	return binding.BindCombo(p, UpscaleFactorPresets, fs.Changed, func(i int) {
		if i < 0 {
			fs.ClearSelected()
			return
		}
		fs.SetSelectedIndex(i)
	})
}

// NewUpscaleView creates the upscale workspace panel.
func NewUpscaleView() *UpscaleView {
	uv := &UpscaleView{}
	uv.ExtendBaseWidget(uv)

	uv.upscalerSelect = widget.NewSelect(nil, func(name string) {
		if uv.current == nil {
			return
		}
		uv.current.Upscale.Upscaler.Set(name)
	})
	uv.upscalerSelect.PlaceHolder = "Default upscaler"

	uv.factorSelect = NewFactorSelect()
	uv.targetLabel = widget.NewLabel(DashPlaceholder)
	uv.diffusionCheck = widget.NewCheck("Refine with diffusion", func(on bool) {
		if uv.current == nil {
			return
		}
		uv.current.Upscale.UseDiffusion.Set(on)
	})
	uv.strength = NewStrengthSlider(0.3)
	uv.queueBtn = NewQueueButton()

	uv.upscaleBtn = widget.NewButton(IconGenerate+" Upscale", uv.onUpscale)
	uv.upscaleBtn.Importance = widget.HighImportance

	uv.progress = widget.NewProgressBar()
	uv.errorLabel = widget.NewLabel("")
	uv.errorLabel.Importance = widget.DangerImportance
	uv.errorLabel.Wrapping = fyne.TextWrapWord
	uv.errorLabel.Hide()
	return uv
}

// SetUpscalers replaces the available upscale model names.
func (uv *UpscaleView) SetUpscalers(names []string) {
	uv.upscalerSelect.Options = names
	uv.upscalerSelect.Refresh()
}

// SetModel detaches the panel from its previous model and binds it to m.
func (uv *UpscaleView) SetModel(m *model.Model) {
	if err := uv.group.Disconnect(); err != nil {
		log.Printf("upscale view: teardown: %v", err)
	}
	uv.current = m
	uv.queueBtn.SetModel(m)
	if m == nil {
		return
	}

	factorLink, err := uv.factorSelect.BindTo(m.Upscale.Factor)
	if err != nil {
		log.Printf("upscale view: factor binding: %v", err)
	}
	strengthLink, err := binding.Bind(m.Upscale.Strength, uv.strength.Value, binding.TwoWay)
	if err != nil {
		log.Printf("upscale view: strength binding: %v", err)
	}
	uv.group.Add(
		factorLink,
		strengthLink,
		m.Upscale.TargetChanged.Listen(func(target imaging.Extent) error {
			uv.targetLabel.SetText("Target: " + target.String())
			return nil
		}),
		m.Upscale.UseDiffusion.Listen(func(on bool) error {
			uv.diffusionCheck.SetChecked(on)
			return nil
		}),
		m.Progress.Listen(func(v float64) error {
			uv.progress.SetValue(v)
			return nil
		}),
		m.Error.Listen(func(message string) error {
			uv.showError(message)
			return nil
		}),
	)

	uv.upscalerSelect.SetSelected(m.Upscale.Upscaler.Get())
	uv.diffusionCheck.SetChecked(m.Upscale.UseDiffusion.Get())
	uv.targetLabel.SetText("Target: " + m.Upscale.TargetExtent().String())
	uv.progress.SetValue(m.Progress.Get())
	uv.showError(m.Error.Get())
}

func (uv *UpscaleView) onUpscale() {
	if uv.current == nil {
		return
	}
	job, err := uv.current.UpscaleImage()
	if err != nil {
		log.Printf("upscale view: upscale: %v", err)
		return
	}
	log.Printf("upscale view: queued job %s", job.ID)
}

func (uv *UpscaleView) showError(message string) {
	uv.errorLabel.SetText(message)
	if message == "" {
		uv.errorLabel.Hide()
	} else {
		uv.errorLabel.Show()
	}
}

// CreateRenderer implements fyne.Widget.
func (uv *UpscaleView) CreateRenderer() fyne.WidgetRenderer {
	form := container.NewVBox(
		widget.NewLabel("Upscaler:"),
		uv.upscalerSelect,
		container.NewBorder(nil, nil, widget.NewLabel("Factor"), uv.targetLabel, uv.factorSelect.Select),
		uv.diffusionCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Strength"), nil, uv.strength),
		container.NewBorder(nil, nil, nil, uv.queueBtn, uv.upscaleBtn),
		uv.progress,
		uv.errorLabel,
	)
	return widget.NewSimpleRenderer(form)
}
