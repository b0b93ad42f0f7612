package model

import (
	"image"
	"math/rand"

	"github.com/inkwave/inkwave/internal/binding"
)

// MaxSeed bounds the random seed range to what the backend accepts.
const MaxSeed = 1<<31 - 1

// LiveParams holds the settings and result state of the live workspace.
type LiveParams struct {
	// IsActive is true while the live preview loop is running.
	IsActive *binding.Property[bool]

	// Strength is the denoise strength of each preview pass.
	Strength *binding.Property[float64]

	// Seed fixes the random component so consecutive previews stay
	// comparable.
	Seed *binding.Property[int]

	// HasResult is true once at least one preview image arrived.
	HasResult *binding.Property[bool]

	// ResultAvailable fires with every new preview image.
	ResultAvailable *binding.Signal[image.Image]

	result image.Image
}

func newLiveParams() *LiveParams {
	return &LiveParams{
		IsActive:        binding.NewProperty(false),
		Strength:        binding.NewProperty(0.3),
		Seed:            binding.NewProperty(rand.Intn(MaxSeed)),
		HasResult:       binding.NewProperty(false),
		ResultAvailable: binding.NewSignal[image.Image](),
	}
}

// GenerateSeed picks a new random seed to vary the preview.
func (p *LiveParams) GenerateSeed() {
	p.Seed.Set(rand.Intn(MaxSeed))
}

// Toggle flips the live preview loop on or off.
func (p *LiveParams) Toggle() {
	p.IsActive.Set(!p.IsActive.Get())
}

// PublishResult stores a preview image and notifies observers.
func (p *LiveParams) PublishResult(img image.Image) {
	p.result = img
	p.HasResult.Set(true)
	p.ResultAvailable.Emit(img)
}

// Result returns the most recent preview image.
func (p *LiveParams) Result() (image.Image, bool) {
	if p.result == nil {
		return nil, false
	}
	return p.result, true
}
