package model

import (
	"errors"
	"fmt"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/config"
	"github.com/inkwave/inkwave/internal/jobs"
)

// ErrNoDocument is returned by operations that need an open document.
var ErrNoDocument = errors.New("model: no document")

// Model is the generation state of one open document. Widgets bind to its
// properties; the connection's client consumes its job queue.
type Model struct {
	Workspace      *binding.Property[Workspace]
	Style          *binding.Property[*config.Style]
	Prompt         *binding.Property[string]
	NegativePrompt *binding.Property[string]
	Strength       *binding.Property[float64]
	Progress       *binding.Property[float64]
	Error          *binding.Property[string]
	HasError       *binding.Property[bool]
	CanApplyResult *binding.Property[bool]

	Control *ControlLayerList
	Upscale *UpscaleParams
	Live    *LiveParams
	Jobs    *jobs.Queue

	doc Document
}

// New creates the model for a document, starting from the default style.
func New(doc Document, styles *config.StyleList) *Model {
	queue := jobs.NewQueue()
	m := &Model{
		Workspace:      binding.NewProperty(WorkspaceGeneration),
		Style:          binding.NewProperty(styles.Default()),
		Prompt:         binding.NewProperty(""),
		NegativePrompt: binding.NewProperty(""),
		Strength:       binding.NewProperty(1.0),
		Progress:       binding.NewProperty(0.0),
		Error:          binding.NewProperty(""),
		HasError:       binding.NewProperty(false),
		CanApplyResult: binding.NewProperty(false),
		Control:        newControlLayerList(doc, queue),
		Upscale:        newUpscaleParams(doc),
		Live:           newLiveParams(),
		Jobs:           queue,
		doc:            doc,
	}

	// Derived properties stay in sync with their sources for the model's
	// whole lifetime; the subscriptions are never torn down individually.
	m.Error.Listen(func(message string) error {
		return m.HasError.Set(message != "")
	})
	m.Jobs.Selection.Listen(func(sel jobs.Selection) error {
		return m.CanApplyResult.Set(sel.IsValid())
	})

	return m
}

// Document returns the host document this model drives.
func (m *Model) Document() Document {
	return m.doc
}

// Generate enqueues a diffusion job for the current prompt and style.
func (m *Model) Generate() (*jobs.Job, error) {
	if m.doc == nil {
		return nil, ErrNoDocument
	}
	m.ClearError()
	m.Progress.Set(0)
	job := m.Jobs.Add(jobs.KindDiffusion, m.Prompt.Get(), m.doc.Extent())
	return job, nil
}

// UpscaleImage enqueues an upscale job for the current factor and upscaler.
func (m *Model) UpscaleImage() (*jobs.Job, error) {
	if m.doc == nil {
		return nil, ErrNoDocument
	}
	m.ClearError()
	m.Progress.Set(0)
	job := m.Jobs.Add(jobs.KindUpscale, m.Prompt.Get(), m.Upscale.TargetExtent())
	return job, nil
}

// ApplyCurrentResult inserts the selected history result into the document
// as a new layer.
func (m *Model) ApplyCurrentResult() error {
	if m.doc == nil {
		return ErrNoDocument
	}
	img, ok := m.Jobs.SelectedResult()
	if !ok {
		return errors.New("model: no result selected")
	}
	sel := m.Jobs.Selection.Get()
	job, _ := m.Jobs.Find(sel.JobID)
	name := fmt.Sprintf("Generated: %s", job.DisplayPrompt())
	if err := m.doc.AddLayer(name, img); err != nil {
		m.ReportError(fmt.Sprintf("Failed to apply result: %v", err))
		return err
	}
	return nil
}

// AddLiveResult inserts the current live preview into the document.
func (m *Model) AddLiveResult() error {
	if m.doc == nil {
		return ErrNoDocument
	}
	img, ok := m.Live.Result()
	if !ok {
		return errors.New("model: no live result")
	}
	return m.doc.AddLayer("Live preview", img)
}

// ReportProgress stores backend progress for the active job, 0.0 to 1.0.
func (m *Model) ReportProgress(value float64) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	m.Progress.Set(value)
}

// ReportError surfaces a backend failure to the panel.
func (m *Model) ReportError(message string) {
	m.Error.Set(message)
}

// ClearError resets the error display.
func (m *Model) ClearError() {
	m.Error.Set("")
}
