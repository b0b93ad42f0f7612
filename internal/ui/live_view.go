package ui

import (
	"image"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/model"
)

// LiveView is the live preview workspace panel: a start/stop toggle, the
// preview parameters, and the latest preview image with an apply button.
type LiveView struct {
	widget.BaseWidget

	current *model.Model

	toggleBtn *widget.Button
	strength  *StrengthSlider
	seedEntry *widget.Entry
	seedBtn   *widget.Button
	preview   *canvas.Image
	applyBtn  *widget.Button

	group binding.Group
}

// NewLiveView creates the live workspace panel.
func NewLiveView() *LiveView {
	lv := &LiveView{}
	lv.ExtendBaseWidget(lv)

	lv.toggleBtn = widget.NewButton(IconLive+" Start", func() {
		if lv.current == nil {
			return
		}
		lv.current.Live.Toggle()
	})

	lv.strength = NewStrengthSlider(0.3)

	lv.seedEntry = widget.NewEntry()
	lv.seedEntry.OnSubmitted = func(text string) {
		if lv.current == nil {
			return
		}
		seed, err := strconv.Atoi(text)
		if err != nil || seed < 0 || seed > model.MaxSeed {
			log.Printf("live view: not a valid seed: %q", text)
			lv.seedEntry.SetText(strconv.Itoa(lv.current.Live.Seed.Get()))
			return
		}
		lv.current.Live.Seed.Set(seed)
	}
	lv.seedBtn = widget.NewButton("New seed", func() {
		if lv.current == nil {
			return
		}
		lv.current.Live.GenerateSeed()
	})

	lv.preview = canvas.NewImageFromImage(nil)
	lv.preview.FillMode = canvas.ImageFillContain
	lv.preview.SetMinSize(fyne.NewSize(LivePreviewMinSize, LivePreviewMinSize))

	lv.applyBtn = widget.NewButton(IconApply+" Apply", func() {
		if lv.current == nil {
			return
		}
		if err := lv.current.AddLiveResult(); err != nil {
			log.Printf("live view: apply result: %v", err)
		}
	})
	lv.applyBtn.Disable()
	return lv
}

// SetModel detaches the panel from its previous model and binds it to m.
func (lv *LiveView) SetModel(m *model.Model) {
	if err := lv.group.Disconnect(); err != nil {
		log.Printf("live view: teardown: %v", err)
	}
	lv.current = m
	if m == nil {
		return
	}

	strengthLink, err := binding.Bind(m.Live.Strength, lv.strength.Value, binding.TwoWay)
	if err != nil {
		log.Printf("live view: strength binding: %v", err)
	}
	lv.group.Add(
		strengthLink,
		m.Live.IsActive.Listen(func(active bool) error {
			lv.showActive(active)
			return nil
		}),
		m.Live.Seed.Listen(func(seed int) error {
			lv.seedEntry.SetText(strconv.Itoa(seed))
			return nil
		}),
		m.Live.HasResult.Listen(func(has bool) error {
			lv.setHasResult(has)
			return nil
		}),
		m.Live.ResultAvailable.Listen(func(img image.Image) error {
			lv.preview.Image = img
			lv.preview.Refresh()
			return nil
		}),
	)

	lv.showActive(m.Live.IsActive.Get())
	lv.seedEntry.SetText(strconv.Itoa(m.Live.Seed.Get()))
	lv.setHasResult(m.Live.HasResult.Get())
	if img, ok := m.Live.Result(); ok {
		lv.preview.Image = img
		lv.preview.Refresh()
	}
}

func (lv *LiveView) showActive(active bool) {
	if active {
		lv.toggleBtn.SetText(IconLive + " Stop")
		lv.toggleBtn.Importance = widget.SuccessImportance
	} else {
		lv.toggleBtn.SetText(IconLive + " Start")
		lv.toggleBtn.Importance = widget.MediumImportance
	}
	lv.toggleBtn.Refresh()
}

func (lv *LiveView) setHasResult(has bool) {
	if has {
		lv.applyBtn.Enable()
	} else {
		lv.applyBtn.Disable()
	}
}

// CreateRenderer implements fyne.Widget.
func (lv *LiveView) CreateRenderer() fyne.WidgetRenderer {
	top := container.NewVBox(
		lv.toggleBtn,
		container.NewBorder(nil, nil, widget.NewLabel("Strength"), nil, lv.strength),
		container.NewBorder(nil, nil, widget.NewLabel("Seed"), lv.seedBtn, lv.seedEntry),
	)
	bottom := container.NewVBox(widget.NewSeparator(), lv.applyBtn)
	return widget.NewSimpleRenderer(container.NewBorder(top, bottom, nil, nil, lv.preview))
}
