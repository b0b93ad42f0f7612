package model

import (
	"github.com/google/uuid"

	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/jobs"
)

// ControlLayer conditions the generation on one layer of the document, in a
// given control mode. Every attribute a widget edits is an observable
// property.
type ControlLayer struct {
	ID string

	Mode         *binding.Property[ControlMode]
	LayerID      *binding.Property[string]
	Strength     *binding.Property[float64]
	End          *binding.Property[float64]
	HasActiveJob *binding.Property[bool]
	IsSupported  *binding.Property[bool]
	ErrorText    *binding.Property[string]

	queue *jobs.Queue
	doc   Document
}

func newControlLayer(doc Document, queue *jobs.Queue, layerID string) *ControlLayer {
	return &ControlLayer{
		ID:           uuid.NewString(),
		Mode:         binding.NewProperty(ControlScribble),
		LayerID:      binding.NewProperty(layerID),
		Strength:     binding.NewProperty(1.0),
		End:          binding.NewProperty(1.0),
		HasActiveJob: binding.NewProperty(false),
		IsSupported:  binding.NewProperty(true),
		ErrorText:    binding.NewProperty(""),
		queue:        queue,
		doc:          doc,
	}
}

// Generate enqueues a job that derives this layer's conditioning image from
// the current canvas.
func (c *ControlLayer) Generate() *jobs.Job {
	job := c.queue.Add(jobs.KindControl, c.Mode.Get().String(), c.doc.Extent())
	c.HasActiveJob.Set(true)
	return job
}

// JobDone clears the active-job flag once the backend reports completion.
func (c *ControlLayer) JobDone() {
	c.HasActiveJob.Set(false)
}

// SetUnsupported flags the layer as unusable with the connected backend,
// with a message naming the missing models.
func (c *ControlLayer) SetUnsupported(message string) {
	c.ErrorText.Set(message)
	c.IsSupported.Set(message == "")
}

// ControlLayerList owns the control layers of one model and notifies the UI
// as layers come and go.
type ControlLayerList struct {
	layers []*ControlLayer

	// Added and Removed fire with the layer in question.
	Added   *binding.Signal[*ControlLayer]
	Removed *binding.Signal[*ControlLayer]

	queue *jobs.Queue
	doc   Document
}

func newControlLayerList(doc Document, queue *jobs.Queue) *ControlLayerList {
	return &ControlLayerList{
		Added:   binding.NewSignal[*ControlLayer](),
		Removed: binding.NewSignal[*ControlLayer](),
		queue:   queue,
		doc:     doc,
	}
}

// All returns the layers in creation order.
func (l *ControlLayerList) All() []*ControlLayer {
	result := make([]*ControlLayer, len(l.layers))
	copy(result, l.layers)
	return result
}

// Len returns the number of control layers.
func (l *ControlLayerList) Len() int {
	return len(l.layers)
}

// Add creates a control layer bound to the topmost document layer.
func (l *ControlLayerList) Add() *ControlLayer {
	layerID := ""
	if docLayers := l.doc.Layers(); len(docLayers) > 0 {
		layerID = docLayers[0].ID
	}
	layer := newControlLayer(l.doc, l.queue, layerID)
	l.layers = append(l.layers, layer)
	l.Added.Emit(layer)
	return layer
}

// Remove detaches a control layer.
func (l *ControlLayerList) Remove(layer *ControlLayer) {
	for i, el := range l.layers {
		if el == layer {
			l.layers = append(l.layers[:i], l.layers[i+1:]...)
			l.Removed.Emit(layer)
			return
		}
	}
}

// Contains returns true if the layer is part of this list.
func (l *ControlLayerList) Contains(layer *ControlLayer) bool {
	for _, el := range l.layers {
		if el == layer {
			return true
		}
	}
	return false
}
