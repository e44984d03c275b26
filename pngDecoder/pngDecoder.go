package pngDecoder

import (
	"errors"
	"fmt"
	"image"
	"math"

	"pnGo/compression"

	"github.com/rs/zerolog"
)

// Image is a decoded PNG as non-premultiplied RGBA, four bytes per pixel,
// row by row from the top left.
type Image struct {
	Width      int
	Height     int
	ColorModel ColorModel
	// RenderingIntent comes from the sRGB chunk; HasSRGB is false without one.
	RenderingIntent byte
	HasSRGB         bool
	Pix             []byte
}

// NRGBA returns an image.NRGBA that shares Pix.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Limits bounds the work a single Decode call may do. Zero fields are
// unlimited.
type Limits struct {
	MaxPixels            uint64
	MaxDecompressedBytes int64
}

// maxSizeHint caps the up-front allocation for inflated data, which is
// sized from the header before the data has been seen.
const maxSizeHint = 64 << 20

type PngDecoder struct {
	log    zerolog.Logger
	limits Limits
}

type Option func(*PngDecoder)

func WithLogger(log zerolog.Logger) Option {
	return func(d *PngDecoder) {
		d.log = log
	}
}

func WithLimits(limits Limits) Option {
	return func(d *PngDecoder) {
		d.limits = limits
	}
}

// NewDecoder returns a decoder. It logs nothing unless WithLogger is given.
// A PngDecoder holds no per-image state and may be shared.
func NewDecoder(opts ...Option) *PngDecoder {
	d := &PngDecoder{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes a complete PNG stream with default options.
func Decode(data []byte) (*Image, error) {
	return NewDecoder().Decode(data)
}

func (d *PngDecoder) Decode(data []byte) (*Image, error) {
	table, err := readChunks(data, d.log)
	if err != nil {
		return nil, err
	}

	ihdrChunk := table.Get(ChunkIHDR)
	if ihdrChunk == nil {
		return nil, MissingChunkError("IHDR")
	}
	ihdr, err := ParseIHDR(ihdrChunk.Data)
	if err != nil {
		return nil, err
	}
	d.log.Debug().
		Uint32("width", ihdr.Width).
		Uint32("height", ihdr.Height).
		Stringer("color_model", ihdr.ColorModel).
		Msg("parsed IHDR")

	if pixels := uint64(ihdr.Width) * uint64(ihdr.Height); d.limits.MaxPixels > 0 && pixels > d.limits.MaxPixels {
		return nil, &LimitError{What: "pixel count", Limit: d.limits.MaxPixels, Got: pixels}
	}
	filteredSize, ok := filteredSizeOf(ihdr)
	if !ok {
		limit := uint64(math.MaxInt)
		if d.limits.MaxDecompressedBytes > 0 && uint64(d.limits.MaxDecompressedBytes) < limit {
			limit = uint64(d.limits.MaxDecompressedBytes)
		}
		return nil, &LimitError{What: "image data size", Limit: limit}
	}
	if limit := d.limits.MaxDecompressedBytes; limit > 0 && filteredSize > uint64(limit) {
		return nil, &LimitError{What: "image data size", Limit: uint64(limit), Got: filteredSize}
	}

	var palette Palette
	if plte := table.Get(ChunkPLTE); plte != nil {
		palette, err = ParsePalette(plte.Data)
		if err != nil {
			return nil, err
		}
	}

	img := &Image{
		Width:      int(ihdr.Width),
		Height:     int(ihdr.Height),
		ColorModel: ihdr.ColorModel,
	}
	if srgb := table.Get(ChunkSRGB); srgb != nil {
		intent, err := ParseSRGB(srgb.Data)
		if err != nil {
			// sRGB is ancillary; a broken one does not spoil the image.
			d.log.Warn().Err(err).Msg("ignoring sRGB chunk")
		} else {
			img.RenderingIntent = intent
			img.HasSRGB = true
		}
	}

	for _, chunk := range table.All(ChunkUnknown) {
		d.log.Debug().
			Str("chunk", chunk.Code).
			Int("offset", chunk.Offset).
			Msg("skipping unknown chunk")
	}

	if !table.Has(ChunkIDAT) {
		return nil, MissingChunkError("IDAT")
	}
	compressed := table.Payload(ChunkIDAT)
	d.log.Debug().
		Int("chunks", len(table.All(ChunkIDAT))).
		Int("bytes", len(compressed)).
		Msg("inflating image data")
	sizeHint := 0
	if filteredSize <= maxSizeHint {
		sizeHint = int(filteredSize)
	}
	filtered, err := compression.InflateData(compressed, sizeHint, d.limits.MaxDecompressedBytes)
	if err != nil {
		if errors.Is(err, compression.ErrTooLarge) {
			return nil, &LimitError{What: "inflated size", Limit: uint64(d.limits.MaxDecompressedBytes)}
		}
		return nil, &DecompressionError{Err: err}
	}

	pix, err := Reconstruct(filtered, ihdr.BytesPerPixel(), img.Width, img.Height)
	if err != nil {
		return nil, err
	}
	img.Pix, err = Resolve(pix, ihdr, palette)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// filteredSizeOf returns the length of the filtered image data described by
// ihdr, or false if it does not fit in an int.
func filteredSizeOf(ihdr *IHDR) (uint64, bool) {
	rowSize := uint64(ihdr.Width)*uint64(ihdr.BytesPerPixel()) + 1
	if uint64(ihdr.Height) > uint64(math.MaxInt)/rowSize {
		return 0, false
	}
	return uint64(ihdr.Height) * rowSize, true
}

// Rendering intents stored in an sRGB chunk.
const (
	IntentPerceptual byte = iota
	IntentRelativeColorimetric
	IntentSaturation
	IntentAbsoluteColorimetric
)

// ParseSRGB returns the rendering intent held by an sRGB chunk.
func ParseSRGB(data []byte) (byte, error) {
	if len(data) != 1 {
		return 0, &SizeError{Chunk: "sRGB", Want: 1, Got: len(data)}
	}
	if data[0] > IntentAbsoluteColorimetric {
		return 0, FormatError(fmt.Sprintf("bad sRGB rendering intent %d", data[0]))
	}
	return data[0], nil
}
