package imaging

import (
	"fmt"
	"image"
	"math"
)

// Extent is a width/height pair in pixels.
type Extent struct {
	Width  int
	Height int
}

// ExtentOf returns the extent of an image's bounds.
func ExtentOf(img image.Image) Extent {
	b := img.Bounds()
	return Extent{Width: b.Dx(), Height: b.Dy()}
}

// String returns the extent as "WxH".
func (e Extent) String() string {
	return fmt.Sprintf("%d x %d", e.Width, e.Height)
}

// IsZero returns true if either dimension is missing.
func (e Extent) IsZero() bool {
	return e.Width <= 0 || e.Height <= 0
}

// Scaled returns the extent multiplied by factor, rounded to whole pixels.
func (e Extent) Scaled(factor float64) Extent {
	return Extent{
		Width:  int(math.Round(float64(e.Width) * factor)),
		Height: int(math.Round(float64(e.Height) * factor)),
	}
}

// FitWithin returns the largest extent with this extent's aspect ratio that
// fits inside target. A zero source or target yields a zero extent.
func (e Extent) FitWithin(target Extent) Extent {
	if e.IsZero() || target.IsZero() {
		return Extent{}
	}
	scale := math.Min(
		float64(target.Width)/float64(e.Width),
		float64(target.Height)/float64(e.Height),
	)
	fitted := e.Scaled(scale)
	// Rounding must never push the result past the target box.
	if fitted.Width > target.Width {
		fitted.Width = target.Width
	}
	if fitted.Height > target.Height {
		fitted.Height = target.Height
	}
	return fitted
}
