package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Shipped output resolution. All functions take explicit dimensions, so
// callers may use other sizes; the commands default to these.
const (
	TargetWidth  = 300
	TargetHeight = 150
)

var ErrInvalidDimensions = errors.New("width and height must be greater than 0")

// Resample scales src to exactly width x height using bilinear
// interpolation. The image is stretched or squashed to fit; aspect ratio is
// not preserved.
func Resample(src image.Image, width int, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	return resize.Resize(uint(width), uint(height), src, resize.Bilinear), nil
}

// ToGrayscale converts img to a row-major float64 luminance buffer using
// ITU-R BT.601 weights (0.299 R + 0.587 G + 0.114 B). Alpha is ignored.
// Returned values are in [0, 255].
func ToGrayscale(img image.Image) ([]float64, int, int) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buffer := make([]float64, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			// RGBA returns 16-bit samples; scale back to 8-bit
			buffer[row*width+col] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}

	return buffer, width, height
}
