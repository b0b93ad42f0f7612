package imaging

import (
	"image"
	"testing"
)

func TestExtent_FitWithin(t *testing.T) {
	tests := []struct {
		src      Extent
		target   Extent
		expected Extent
	}{
		{Extent{1024, 1024}, Extent{256, 256}, Extent{256, 256}},
		{Extent{1920, 1080}, Extent{256, 256}, Extent{256, 144}},
		{Extent{512, 1024}, Extent{256, 256}, Extent{128, 256}},
		{Extent{100, 100}, Extent{400, 200}, Extent{200, 200}},
		{Extent{0, 100}, Extent{256, 256}, Extent{}},
		{Extent{100, 100}, Extent{0, 0}, Extent{}},
	}

	for _, test := range tests {
		result := test.src.FitWithin(test.target)
		if result != test.expected {
			t.Errorf("FitWithin(%v, %v) = %v, expected %v", test.src, test.target, result, test.expected)
		}
	}
}

func TestExtent_Scaled(t *testing.T) {
	tests := []struct {
		src      Extent
		factor   float64
		expected Extent
	}{
		{Extent{512, 512}, 2.0, Extent{1024, 1024}},
		{Extent{512, 512}, 1.5, Extent{768, 768}},
		{Extent{100, 50}, 0.5, Extent{50, 25}},
		{Extent{3, 3}, 1.0 / 3.0, Extent{1, 1}},
	}

	for _, test := range tests {
		result := test.src.Scaled(test.factor)
		if result != test.expected {
			t.Errorf("Scaled(%v, %v) = %v, expected %v", test.src, test.factor, result, test.expected)
		}
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))
	result := ScaleToFit(src, Extent{Width: 320, Height: 320})

	got := ExtentOf(result)
	expected := Extent{Width: 320, Height: 240}
	if got != expected {
		t.Errorf("ScaleToFit produced %v, expected %v", got, expected)
	}
}

func TestThumbnail_SmallImageUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	result := Thumbnail(src, 96)
	if result != image.Image(src) {
		t.Error("Expected small image returned unchanged")
	}
}

func TestThumbnail_LargeImageScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1024, 512))
	result := Thumbnail(src, 96)

	got := ExtentOf(result)
	expected := Extent{Width: 96, Height: 48}
	if got != expected {
		t.Errorf("Thumbnail produced %v, expected %v", got, expected)
	}
}
