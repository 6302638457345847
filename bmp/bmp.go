// Package bmp serializes binary (black/white) pixel buffers as 1-bit-per-pixel
// uncompressed BMP files with a two-entry palette, and parses files in that
// same subset back into pixel buffers.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	paletteSize    = 8 // 2 BGRA entries
	headerSize     = fileHeaderSize + infoHeaderSize
	dataOffset     = headerSize + paletteSize

	magic = 0x4D42 // "BM"

	// 2835 pixels per meter, approximately 72 DPI
	pixelsPerMeter = 2835
)

var ErrInvalidDimensions = errors.New("width and height must be greater than 0")

// RowSize returns the padded byte width of one pixel row: 1 bit per pixel,
// rounded up to whole bytes, padded to a multiple of 4.
func RowSize(width int) int {
	return ((width+7)/8 + 3) / 4 * 4
}

// FileSize returns the total byte size of an encoded width x height bitmap.
func FileSize(width int, height int) int {
	return dataOffset + RowSize(width)*height
}

// Encoder packs binary pixel buffers into 1-bit BMP byte streams.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode serializes a row-major binary pixel buffer (top row first, every
// value 0 or 255) into a complete BMP file. A pixel maps to palette index 1
// (white) iff its value is exactly 255; any other value is treated as black.
// Rows are written bottom-up, pixels packed 8 per byte with the leftmost
// pixel in the most significant bit. Encoding is all-or-nothing: on error no
// bytes are returned.
func (e *Encoder) Encode(buffer []uint8, width int, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	if len(buffer) != width*height {
		return nil, fmt.Errorf("buffer length %v does not match dimensions %vx%v", len(buffer), width, height)
	}

	rowSize := RowSize(width)
	pixelArraySize := rowSize * height
	out := make([]byte, dataOffset+pixelArraySize)

	// BITMAPFILEHEADER
	binary.LittleEndian.PutUint16(out[0:2], magic)
	binary.LittleEndian.PutUint32(out[2:6], uint32(len(out)))
	// bytes 6-10 reserved, zero
	binary.LittleEndian.PutUint32(out[10:14], dataOffset)

	// BITMAPINFOHEADER; positive height signals bottom-up row order
	binary.LittleEndian.PutUint32(out[14:18], infoHeaderSize)
	binary.LittleEndian.PutUint32(out[18:22], uint32(width))
	binary.LittleEndian.PutUint32(out[22:26], uint32(height))
	binary.LittleEndian.PutUint16(out[26:28], 1) // planes
	binary.LittleEndian.PutUint16(out[28:30], 1) // bits per pixel
	// bytes 30-34 compression, zero (none)
	binary.LittleEndian.PutUint32(out[34:38], uint32(pixelArraySize))
	binary.LittleEndian.PutUint32(out[38:42], pixelsPerMeter)
	binary.LittleEndian.PutUint32(out[42:46], pixelsPerMeter)
	binary.LittleEndian.PutUint32(out[46:50], 2) // palette colors
	binary.LittleEndian.PutUint32(out[50:54], 2) // important colors

	// palette: index 0 black, index 1 white
	binary.LittleEndian.PutUint32(out[54:58], 0x00000000)
	binary.LittleEndian.PutUint32(out[58:62], 0x00FFFFFF)

	// pixel array, source row height-1 first; padding bytes stay zero
	for row := 0; row < height; row++ {
		src := (height - 1 - row) * width
		dst := dataOffset + row*rowSize
		for col := 0; col < width; col++ {
			if buffer[src+col] == 255 {
				out[dst+col/8] |= 0x80 >> (col % 8)
			}
		}
	}

	return out, nil
}
