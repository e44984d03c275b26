package pngDecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(width, height uint32, model ColorModel) *IHDR {
	return &IHDR{
		Width:      width,
		Height:     height,
		BitDepth:   8,
		ColorModel: model,
		Channels:   model.channels(),
	}
}

func TestParsePalette(t *testing.T) {
	palette, err := ParsePalette([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, palette.Len())

	for _, n := range []int{0, 4, 257 * 3} {
		_, err := ParsePalette(make([]byte, n))
		var formatErr FormatError
		assert.ErrorAs(t, err, &formatErr, "length %d", n)
	}
}

func TestResolve(t *testing.T) {
	for _, tc := range []struct {
		name    string
		model   ColorModel
		pix     []byte
		palette Palette
		want    []byte
	}{
		{
			name:    "indexed",
			model:   Indexed,
			pix:     []byte{2, 0},
			palette: Palette{10, 11, 12, 20, 21, 22, 30, 31, 32},
			want:    []byte{30, 31, 32, 255, 10, 11, 12, 255},
		},
		{
			name:  "truecolor",
			model: Truecolor,
			pix:   []byte{1, 2, 3, 4, 5, 6},
			want:  []byte{1, 2, 3, 255, 4, 5, 6, 255},
		},
		{
			name:  "truecolor alpha",
			model: TruecolorAlpha,
			pix:   []byte{1, 2, 3, 0, 4, 5, 6, 128},
			want:  []byte{1, 2, 3, 0, 4, 5, 6, 128},
		},
		{
			name:  "grayscale",
			model: Grayscale,
			pix:   []byte{7, 200},
			want:  []byte{7, 7, 7, 255, 200, 200, 200, 255},
		},
		{
			name:  "grayscale alpha",
			model: GrayscaleAlpha,
			pix:   []byte{7, 0, 200, 99},
			want:  []byte{7, 7, 7, 0, 200, 200, 200, 99},
		},
		{
			name:    "truecolor ignores palette",
			model:   Truecolor,
			pix:     []byte{1, 2, 3, 4, 5, 6},
			palette: Palette{9, 9, 9},
			want:    []byte{1, 2, 3, 255, 4, 5, 6, 255},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rgba, err := Resolve(tc.pix, header(2, 1, tc.model), tc.palette)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rgba)
		})
	}
}

func TestResolvePaletteIndex(t *testing.T) {
	palette := Palette{10, 11, 12, 20, 21, 22}

	_, err := Resolve([]byte{1, 2}, header(2, 1, Indexed), palette)
	var indexErr *PaletteIndexError
	require.ErrorAs(t, err, &indexErr)
	assert.EqualValues(t, 2, indexErr.Index)
	assert.Equal(t, 2, indexErr.Entries)

	_, err = Resolve([]byte{255}, header(1, 1, Indexed), palette)
	assert.ErrorAs(t, err, &indexErr)
}

func TestResolveMissingPalette(t *testing.T) {
	_, err := Resolve([]byte{0}, header(1, 1, Indexed), nil)
	assert.Equal(t, MissingChunkError("PLTE"), err)
}

func TestResolveInvariants(t *testing.T) {
	t.Run("short pixel buffer", func(t *testing.T) {
		_, err := Resolve([]byte{1, 2, 3}, header(2, 1, Truecolor), nil)
		var internal InternalError
		assert.ErrorAs(t, err, &internal)
	})
	t.Run("channel count disagrees with model", func(t *testing.T) {
		ihdr := header(1, 1, Truecolor)
		ihdr.Channels = 1
		_, err := Resolve([]byte{1}, ihdr, nil)
		var internal InternalError
		assert.ErrorAs(t, err, &internal)
	})
}
