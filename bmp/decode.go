package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrInvalidFormat = errors.New("not a 1-bit uncompressed bottom-up BMP")

// Decode parses a BMP file in the subset Encode emits (1 bit per pixel,
// uncompressed, bottom-up, two-entry palette) back into a row-major binary
// pixel buffer where palette index 1 maps to 255 and index 0 to 0. Returns
// the buffer, width and height.
func Decode(data []byte) ([]uint8, int, int, error) {
	if len(data) < dataOffset {
		return nil, 0, 0, fmt.Errorf("%w: file too short (%v bytes)", ErrInvalidFormat, len(data))
	}
	if binary.LittleEndian.Uint16(data[0:2]) != magic {
		return nil, 0, 0, fmt.Errorf("%w: bad magic", ErrInvalidFormat)
	}
	if binary.LittleEndian.Uint32(data[14:18]) != infoHeaderSize {
		return nil, 0, 0, fmt.Errorf("%w: unsupported DIB header", ErrInvalidFormat)
	}
	if binary.LittleEndian.Uint16(data[28:30]) != 1 {
		return nil, 0, 0, fmt.Errorf("%w: bits per pixel != 1", ErrInvalidFormat)
	}
	if binary.LittleEndian.Uint32(data[30:34]) != 0 {
		return nil, 0, 0, fmt.Errorf("%w: compressed", ErrInvalidFormat)
	}

	width := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	height := int(int32(binary.LittleEndian.Uint32(data[22:26])))
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: dimensions %vx%v", ErrInvalidFormat, width, height)
	}

	offset := int(binary.LittleEndian.Uint32(data[10:14]))
	rowSize := RowSize(width)
	if offset < dataOffset || offset+rowSize*height > len(data) {
		return nil, 0, 0, fmt.Errorf("%w: truncated pixel array", ErrInvalidFormat)
	}

	buffer := make([]uint8, width*height)
	for row := 0; row < height; row++ {
		src := offset + (height-1-row)*rowSize
		dst := row * width
		for col := 0; col < width; col++ {
			if data[src+col/8]&(0x80>>(col%8)) != 0 {
				buffer[dst+col] = 255
			}
		}
	}

	return buffer, width, height, nil
}
