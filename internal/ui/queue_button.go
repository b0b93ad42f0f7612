package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/jobs"
	"github.com/inkwave/inkwave/internal/model"
)

// QueueButton shows how many jobs are waiting and opens a cancel menu when
// tapped. It follows the attached model's job queue.
type QueueButton struct {
	widget.BaseWidget

	current *model.Model
	button  *widget.Button

	group binding.Group
}

// NewQueueButton creates a queue button with no model attached.
func NewQueueButton() *QueueButton {
	qb := &QueueButton{}
	qb.ExtendBaseWidget(qb)
	qb.button = widget.NewButton(DashPlaceholder, qb.showMenu)
	qb.updateCount(0)
	return qb
}

// SetModel detaches from the previous model's queue and follows m's.
func (qb *QueueButton) SetModel(m *model.Model) {
	if err := qb.group.Disconnect(); err != nil {
		log.Printf("queue button: teardown: %v", err)
	}
	qb.current = m
	if m == nil {
		qb.updateCount(0)
		return
	}

	qb.group.Add(m.Jobs.CountChanged.Listen(func(count int) error {
		qb.updateCount(count)
		return nil
	}))
	qb.updateCount(m.Jobs.Count(jobs.StateQueued))
}

func (qb *QueueButton) updateCount(count int) {
	if count == 0 {
		qb.button.SetText("Queue empty")
		qb.button.Importance = widget.LowImportance
	} else {
		qb.button.SetText(fmt.Sprintf("%d in queue %s", count, IconCancel))
		qb.button.Importance = widget.MediumImportance
	}
	qb.button.Refresh()
}

func (qb *QueueButton) showMenu() {
	if qb.current == nil {
		return
	}
	queue := qb.current.Jobs

	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Cancel active", func() {
			queue.CancelActive()
		}),
		fyne.NewMenuItem("Cancel queued", func() {
			queue.CancelQueued()
		}),
		fyne.NewMenuItem("Cancel all", func() {
			queue.CancelAll()
		}),
	)

	cnv := fyne.CurrentApp().Driver().CanvasForObject(qb)
	if cnv == nil {
		log.Printf("queue button: no canvas, cancel menu not shown")
		return
	}
	popup := widget.NewPopUpMenu(menu, cnv)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(qb)
	popup.ShowAtPosition(pos.AddXY(0, qb.Size().Height))
}

// CreateRenderer implements fyne.Widget.
func (qb *QueueButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(qb.button)
}
