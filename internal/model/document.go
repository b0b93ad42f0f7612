package model

import (
	"image"

	"github.com/inkwave/inkwave/internal/imaging"
)

// Layer is one paint layer of the host document.
type Layer struct {
	ID   string
	Name string
}

// Document is the host application's image document. The host integration
// provides the real implementation; the model only needs canvas geometry,
// the layer stack, and a way to insert results.
type Document interface {
	// Extent returns the canvas size in pixels.
	Extent() imaging.Extent

	// Layers returns the layer stack, topmost first.
	Layers() []Layer

	// AddLayer inserts an image as a new layer above the current selection.
	AddLayer(name string, img image.Image) error
}
