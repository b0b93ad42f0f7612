package model

import (
	"github.com/inkwave/inkwave/internal/binding"
	"github.com/inkwave/inkwave/internal/imaging"
)

// Upscale factor bounds
const (
	MinUpscaleFactor = 1.0
	MaxUpscaleFactor = 4.0
)

// UpscaleParams holds the settings of the upscale workspace.
type UpscaleParams struct {
	// Upscaler is the model file used for the raster upscale pass.
	Upscaler *binding.Property[string]

	// Factor is the scale multiplier, 1.0 to 4.0.
	Factor *binding.Property[float64]

	// UseDiffusion enables the refinement pass over the upscaled image.
	UseDiffusion *binding.Property[bool]

	// Strength is the refinement strength, 0.0 to 1.0.
	Strength *binding.Property[float64]

	// TargetChanged fires with the new target size whenever the factor
	// changes.
	TargetChanged *binding.Signal[imaging.Extent]

	doc Document
}

func newUpscaleParams(doc Document) *UpscaleParams {
	p := &UpscaleParams{
		Upscaler:      binding.NewProperty(""),
		Factor:        binding.NewProperty(2.0),
		UseDiffusion:  binding.NewProperty(true),
		Strength:      binding.NewProperty(0.3),
		TargetChanged: binding.NewSignal[imaging.Extent](),
		doc:           doc,
	}
	p.Factor.Listen(func(float64) error {
		return p.TargetChanged.Emit(p.TargetExtent())
	})
	return p
}

// SetFactor stores a clamped scale factor.
func (p *UpscaleParams) SetFactor(factor float64) error {
	if factor < MinUpscaleFactor {
		factor = MinUpscaleFactor
	}
	if factor > MaxUpscaleFactor {
		factor = MaxUpscaleFactor
	}
	return p.Factor.Set(factor)
}

// TargetExtent returns the canvas size after upscaling.
func (p *UpscaleParams) TargetExtent() imaging.Extent {
	return p.doc.Extent().Scaled(p.Factor.Get())
}
