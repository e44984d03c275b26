package pngDecoder

import (
	"fmt"

	"pnGo/utils"
)

const ihdrLength = 13

// Color type bits defined by the PNG format.
const (
	ctIndexed  = 1 << 0
	ctHasColor = 1 << 1
	ctHasAlpha = 1 << 2
)

type ColorModel int

const (
	Grayscale ColorModel = iota
	Truecolor
	Indexed
	GrayscaleAlpha
	TruecolorAlpha
)

func (m ColorModel) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	case Truecolor:
		return "truecolor"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case TruecolorAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("ColorModel(%d)", int(m))
}

func (m ColorModel) HasAlpha() bool {
	return m == GrayscaleAlpha || m == TruecolorAlpha
}

// channels is the number of samples stored per pixel, 0 for an unknown model.
func (m ColorModel) channels() int {
	switch m {
	case Grayscale, Indexed:
		return 1
	case GrayscaleAlpha:
		return 2
	case Truecolor:
		return 3
	case TruecolorAlpha:
		return 4
	}
	return 0
}

type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          byte
	ColorType         byte
	CompressionMethod byte
	FilterMethod      byte
	InterlaceMethod   byte

	ColorModel ColorModel
	// Channels is the number of stored samples per pixel, before any
	// palette expansion.
	Channels int
}

// BytesPerPixel is the filter unit: one byte per channel at depth 8.
func (h *IHDR) BytesPerPixel() int {
	return h.Channels
}

// ParseIHDR interprets an IHDR payload. Only 8-bit, non-interlaced images
// with the default compression and filter methods are accepted.
func ParseIHDR(data []byte) (*IHDR, error) {
	if len(data) != ihdrLength {
		return nil, &SizeError{Chunk: "IHDR", Want: ihdrLength, Got: len(data)}
	}

	ihdr := &IHDR{
		Width:             utils.BytesToLength(data[0:4]),
		Height:            utils.BytesToLength(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}
	if ihdr.Width == 0 || ihdr.Height == 0 {
		return nil, &InvalidDimensionsError{Width: int64(ihdr.Width), Height: int64(ihdr.Height)}
	}

	if ihdr.ColorType > ctIndexed|ctHasColor|ctHasAlpha {
		return nil, InvalidColorTypeError(ihdr.ColorType)
	}
	indexed := ihdr.ColorType&ctIndexed != 0
	hasColor := ihdr.ColorType&ctHasColor != 0
	hasAlpha := ihdr.ColorType&ctHasAlpha != 0
	switch {
	case indexed && !hasColor:
		return nil, InvalidColorTypeError(ihdr.ColorType)
	case indexed:
		ihdr.ColorModel = Indexed
	case hasColor && hasAlpha:
		ihdr.ColorModel = TruecolorAlpha
	case hasColor:
		ihdr.ColorModel = Truecolor
	case hasAlpha:
		ihdr.ColorModel = GrayscaleAlpha
	default:
		ihdr.ColorModel = Grayscale
	}
	ihdr.Channels = ihdr.ColorModel.channels()

	if ihdr.BitDepth != 8 {
		return nil, UnsupportedFeatureError(fmt.Sprintf("bit depth %d", ihdr.BitDepth))
	}
	if ihdr.CompressionMethod != 0 {
		return nil, UnsupportedFeatureError(fmt.Sprintf("compression method %d", ihdr.CompressionMethod))
	}
	if ihdr.FilterMethod != 0 {
		return nil, UnsupportedFeatureError(fmt.Sprintf("filter method %d", ihdr.FilterMethod))
	}
	switch ihdr.InterlaceMethod {
	case 0:
	case 1:
		return nil, UnsupportedFeatureError("Adam7 interlacing")
	default:
		return nil, UnsupportedFeatureError(fmt.Sprintf("interlace method %d", ihdr.InterlaceMethod))
	}
	return ihdr, nil
}
