package cmd

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path"

	// decoders for the supported input formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/herutama7782/monobmp/bmp"
	"github.com/herutama7782/monobmp/raster"
	"github.com/spf13/cobra"
)

var mode string
var targetWidth int
var targetHeight int

var convertCmd = &cobra.Command{
	Use:   "convert [IN.png] [OUT.bmp]",
	Short: "Convert an image to a black/white 1-bit BMP",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("input and output filenames are required")
		}
		if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file '%s' does not exist", args[0])
		}
		outDir, _ := path.Split(args[1])
		if outDir != "" {
			if _, err := os.Stat(outDir); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("output directory '%s' does not exist", outDir)
			}
		}
		if path.Ext(args[1]) != ".bmp" {
			return errors.New("output filename must end in '.bmp'")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if targetWidth < 1 || targetHeight < 1 {
			return errors.New("width and height must be at least 1")
		}
		if _, err := raster.NewBinarizer(mode); err != nil {
			return err
		}

		return convert(args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	convertCmd.Flags().StringVarP(&mode, "mode", "m", "dither", "binarization mode: 'dither' (Floyd-Steinberg) or 'threshold'")
	convertCmd.Flags().IntVarP(&targetWidth, "width", "W", raster.TargetWidth, "output width in pixels")
	convertCmd.Flags().IntVarP(&targetHeight, "height", "H", raster.TargetHeight, "output height in pixels")
}

// decodeImage reads and decodes a PNG, JPEG or GIF file.
func decodeImage(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read '%v': %w", filename, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode '%v': %w", filename, err)
	}
	return img, nil
}

// convertImage runs the three-stage pipeline: resample to the target size,
// reduce to grayscale, binarize, then encode as a 1-bit BMP.
func convertImage(src image.Image, mode string, width int, height int) ([]byte, error) {
	binarizer, err := raster.NewBinarizer(mode)
	if err != nil {
		return nil, err
	}

	resized, err := raster.Resample(src, width, height)
	if err != nil {
		return nil, err
	}

	gray, w, h := raster.ToGrayscale(resized)
	binary := binarizer.Binarize(gray, w, h)

	return bmp.NewEncoder().Encode(binary, w, h)
}

func convert(infilename string, outfilename string) error {
	src, err := decodeImage(infilename)
	if err != nil {
		return err
	}

	data, err := convertImage(src, mode, targetWidth, targetHeight)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outfilename, data, 0644); err != nil {
		return fmt.Errorf("could not write '%v': %w", outfilename, err)
	}

	fmt.Printf("Wrote %v (%v bytes, %vx%v, mode=%v)\n", outfilename, len(data), targetWidth, targetHeight, mode)
	return nil
}
