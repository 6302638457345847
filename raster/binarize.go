package raster

import (
	"fmt"
)

const (
	Black uint8 = 0
	White uint8 = 255

	// quantization threshold: luminance below this is black
	threshold = 128
)

// Binarizer reduces a row-major float64 luminance buffer to a buffer where
// every value is exactly Black (0) or White (255).
type Binarizer interface {
	Binarize(buffer []float64, width int, height int) []uint8
}

// NewBinarizer returns the Binarizer for mode: "dither" (Floyd-Steinberg
// error diffusion) or "threshold" (plain cutoff at 128).
func NewBinarizer(mode string) (Binarizer, error) {
	switch mode {
	case "dither":
		return &FloydSteinbergBinarizer{}, nil
	case "threshold":
		return &ThresholdBinarizer{}, nil
	default:
		return nil, fmt.Errorf("unknown binarize mode '%s' (must be 'dither' or 'threshold')", mode)
	}
}

// ThresholdBinarizer quantizes each pixel independently: luminance below 128
// becomes black, everything else white. No error is propagated, so flat gray
// regions come out solid.
type ThresholdBinarizer struct{}

func (b *ThresholdBinarizer) Binarize(buffer []float64, width int, height int) []uint8 {
	out := make([]uint8, width*height)
	for i := 0; i < width*height; i++ {
		if buffer[i] >= threshold {
			out[i] = White
		}
	}
	return out
}

// FloydSteinbergBinarizer quantizes in a single raster pass (left to right,
// top to bottom), pushing each pixel's quantization error onto its unvisited
// neighbors:
//
//	            x    7/16
//	3/16  5/16  1/16
//
// Error only flows to positions at or after the current one in scan order,
// so no pixel is read after it has been quantized. The buffer is mutated in
// place; accumulated values may leave [0, 255] before quantization, which is
// why the intensity buffer is float64 rather than a clamped 8-bit type.
type FloydSteinbergBinarizer struct{}

func (b *FloydSteinbergBinarizer) Binarize(buffer []float64, width int, height int) []uint8 {
	out := make([]uint8, width*height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := row*width + col

			old := buffer[i]
			var value uint8 = Black
			if old >= threshold {
				value = White
			}
			out[i] = value

			err := old - float64(value)

			if col+1 < width {
				buffer[i+1] += err * 7 / 16
			}
			if row+1 < height {
				if col-1 >= 0 {
					buffer[i+width-1] += err * 3 / 16
				}
				buffer[i+width] += err * 5 / 16
				if col+1 < width {
					buffer[i+width+1] += err * 1 / 16
				}
			}
		}
	}

	return out
}
