package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

var (
	fastScaler xdraw.Scaler = xdraw.BiLinear
	bestScaler xdraw.Scaler = xdraw.CatmullRom
)

// ScaleToFit scales img to the largest size that fits inside target while
// keeping its aspect ratio. Used for the live preview area.
func ScaleToFit(img image.Image, target Extent) image.Image {
	fitted := ExtentOf(img).FitWithin(target)
	if fitted.IsZero() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, fitted.Width, fitted.Height))
	bestScaler.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Thumbnail scales img down to fit a square of the given side length, with a
// fast algorithm and an acceptable result. Images already small enough are
// returned unchanged.
func Thumbnail(img image.Image, side int) image.Image {
	src := ExtentOf(img)
	if src.Width <= side && src.Height <= side {
		return img
	}
	fitted := src.FitWithin(Extent{Width: side, Height: side})
	if fitted.IsZero() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, fitted.Width, fitted.Height))
	fastScaler.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
