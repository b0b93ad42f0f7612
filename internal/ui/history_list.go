package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/imaging"
	"github.com/inkwave/inkwave/internal/jobs"
	"github.com/inkwave/inkwave/internal/model"
)

// historyEntry is one result image of a finished job.
type historyEntry struct {
	jobID  string
	index  int
	prompt string
	thumb  image.Image
}

// HistoryList shows thumbnails of finished generations. Picking one selects
// the result on the job queue, which in turn enables apply; selection made
// elsewhere is reflected back into the grid.
type HistoryList struct {
	widget.BaseWidget

	current *model.Model
	entries []historyEntry
	grid    *widget.GridWrap

	group binding.Group

	// updating suppresses the grid callback while the grid itself is being
	// synced from the queue selection.
	updating bool
}

// NewHistoryList creates an empty history list.
func NewHistoryList() *HistoryList {
	hl := &HistoryList{}
	hl.ExtendBaseWidget(hl)

	hl.grid = widget.NewGridWrap(
		func() int { return len(hl.entries) },
		func() fyne.CanvasObject {
			img := canvas.NewImageFromImage(nil)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(HistoryItemSize, HistoryItemSize))
			return img
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(hl.entries) {
				return
			}
			img := obj.(*canvas.Image)
			img.Image = hl.entries[id].thumb
			img.Refresh()
		},
	)
	hl.grid.OnSelected = func(id widget.GridWrapItemID) {
		if hl.updating || hl.current == nil {
			return
		}
		if id < 0 || id >= len(hl.entries) {
			return
		}
		entry := hl.entries[id]
		hl.current.Jobs.SelectResult(entry.jobID, entry.index)
	}
	hl.grid.OnUnselected = func(widget.GridWrapItemID) {
		if hl.updating || hl.current == nil {
			return
		}
		hl.current.Jobs.Deselect()
	}
	return hl
}

// SetModel detaches from the previous model's queue and rebuilds the grid
// from m's finished jobs.
func (hl *HistoryList) SetModel(m *model.Model) {
	if err := hl.group.Disconnect(); err != nil {
		log.Printf("history list: teardown: %v", err)
	}
	hl.current = m
	hl.entries = nil
	if m == nil {
		hl.grid.Refresh()
		return
	}

	hl.rebuild()
	hl.group.Add(
		m.Jobs.JobFinished.Listen(func(job *jobs.Job) error {
			hl.appendJob(job)
			hl.grid.Refresh()
			return nil
		}),
		m.Jobs.Trimmed.Listen(func(int) error {
			hl.rebuild()
			return nil
		}),
		m.Jobs.Selection.Listen(func(sel jobs.Selection) error {
			hl.showSelection(sel)
			return nil
		}),
	)
}

// rebuild re-derives the grid content from the queue's finished jobs.
func (hl *HistoryList) rebuild() {
	hl.entries = nil
	for _, job := range hl.current.Jobs.All() {
		if job.State == jobs.StateFinished {
			hl.appendJob(job)
		}
	}
	hl.grid.Refresh()
	hl.showSelection(hl.current.Jobs.Selection.Get())
}

func (hl *HistoryList) appendJob(job *jobs.Job) {
	for i, img := range job.Results {
		hl.entries = append(hl.entries, historyEntry{
			jobID:  job.ID,
			index:  i,
			prompt: job.DisplayPrompt(),
			thumb:  imaging.Thumbnail(img, HistoryThumbnailSide),
		})
	}
}

func (hl *HistoryList) showSelection(sel jobs.Selection) {
	hl.updating = true
	defer func() { hl.updating = false }()

	if !sel.IsValid() {
		hl.grid.UnselectAll()
		return
	}
	for i, entry := range hl.entries {
		if entry.jobID == sel.JobID && entry.index == sel.Index {
			hl.grid.Select(i)
			return
		}
	}
	hl.grid.UnselectAll()
}

// Len returns the number of thumbnails shown.
func (hl *HistoryList) Len() int {
	return len(hl.entries)
}

// CreateRenderer implements fyne.Widget.
func (hl *HistoryList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(hl.grid)
}
