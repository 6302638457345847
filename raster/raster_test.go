package raster

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func solidImage(width int, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResample(t *testing.T) {
	src := solidImage(10, 20, color.NRGBA{128, 128, 128, 255})

	resized, err := Resample(src, TargetWidth, TargetHeight)
	if err != nil {
		t.Fatal(err)
	}

	bounds := resized.Bounds()
	if bounds.Dx() != TargetWidth || bounds.Dy() != TargetHeight {
		t.Errorf("Resample() produced %vx%v, expected %vx%v", bounds.Dx(), bounds.Dy(), TargetWidth, TargetHeight)
	}
}

func TestResampleInvalidDimensions(t *testing.T) {
	src := solidImage(10, 10, color.NRGBA{0, 0, 0, 255})

	tests := []struct {
		width  int
		height int
	}{
		{0, 150},
		{300, 0},
		{-1, 150},
		{300, -1},
	}

	for _, tc := range tests {
		_, err := Resample(src, tc.width, tc.height)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Resample(%v, %v) error: %v, expected ErrInvalidDimensions", tc.width, tc.height, err)
		}
	}
}

func TestToGrayscale(t *testing.T) {
	tests := []struct {
		color    color.NRGBA
		expected float64
	}{
		{color.NRGBA{0, 0, 0, 255}, 0},
		{color.NRGBA{255, 255, 255, 255}, 255},
		{color.NRGBA{255, 0, 0, 255}, 0.299 * 255},
		{color.NRGBA{0, 255, 0, 255}, 0.587 * 255},
		{color.NRGBA{0, 0, 255, 255}, 0.114 * 255},
		{color.NRGBA{100, 150, 200, 255}, 0.299*100 + 0.587*150 + 0.114*200},
	}

	for _, tc := range tests {
		buffer, width, height := ToGrayscale(solidImage(4, 2, tc.color))
		if width != 4 || height != 2 {
			t.Errorf("ToGrayscale() returned dimensions %vx%v, expected 4x2", width, height)
		}
		for i, value := range buffer {
			if math.Abs(value-tc.expected) > 1e-9 {
				t.Errorf("ToGrayscale() of %v: value %v at %v, expected %v", tc.color, value, i, tc.expected)
			}
		}
	}
}
