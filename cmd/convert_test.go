package cmd

import (
	"image"
	"image/color"
	"testing"

	"github.com/herutama7782/monobmp/array"
	"github.com/herutama7782/monobmp/bmp"
	"github.com/herutama7782/monobmp/raster"
)

func testImage(width int, height int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertImage(t *testing.T) {
	src := testImage(640, 480, color.NRGBA{200, 200, 200, 255})

	data, err := convertImage(src, "threshold", raster.TargetWidth, raster.TargetHeight)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != 6062 {
		t.Errorf("encoded file is %v bytes, expected 6062", len(data))
	}

	buffer, width, height, err := bmp.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if width != raster.TargetWidth || height != raster.TargetHeight {
		t.Errorf("output is %vx%v, expected %vx%v", width, height, raster.TargetWidth, raster.TargetHeight)
	}

	// luminance 200 thresholds to solid white
	if !array.AllEquals(buffer, raster.White) {
		t.Errorf("threshold of a light gray image is not solid white")
	}
}

func TestConvertImageDither(t *testing.T) {
	src := testImage(100, 100, color.NRGBA{100, 100, 100, 255})

	data, err := convertImage(src, "dither", raster.TargetWidth, raster.TargetHeight)
	if err != nil {
		t.Fatal(err)
	}

	buffer, _, _, err := bmp.Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	// dithering a mid gray produces a mix of black and white
	if array.AllEquals(buffer, raster.Black) || array.AllEquals(buffer, raster.White) {
		t.Errorf("dither of a mid gray image is a solid color")
	}
}

func TestConvertImageUnknownMode(t *testing.T) {
	src := testImage(10, 10, color.NRGBA{0, 0, 0, 255})

	if _, err := convertImage(src, "halftone", raster.TargetWidth, raster.TargetHeight); err == nil {
		t.Errorf("convertImage() did not reject an unknown mode")
	}
}

func TestConvertImageInvalidDimensions(t *testing.T) {
	src := testImage(10, 10, color.NRGBA{0, 0, 0, 255})

	if _, err := convertImage(src, "dither", 0, raster.TargetHeight); err == nil {
		t.Errorf("convertImage() did not reject zero width")
	}
}
