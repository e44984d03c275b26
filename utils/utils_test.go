package utils

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var twoByTwo = []byte{
	255, 0, 0, 255, 0, 255, 0, 255,
	0, 0, 255, 255, 10, 20, 30, 255,
}

func TestBytesToLength(t *testing.T) {
	assert.EqualValues(t, 13, BytesToLength([]byte{0, 0, 0, 13}))
	assert.EqualValues(t, 0x89504e47, BytesToLength([]byte{0x89, 0x50, 0x4e, 0x47}))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"":    FormatRaw,
		"raw": FormatRaw,
		"PPM": FormatPPM,
		"bmp": FormatBMP,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("gif")
	assert.Error(t, err)
	assert.Equal(t, "ppm", FormatPPM.String())
}

func TestWriteRaw(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteImage(&b, FormatRaw, 2, 2, twoByTwo))
	assert.Equal(t, twoByTwo, b.Bytes())
}

func TestWritePPM(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteImage(&b, FormatPPM, 2, 2, twoByTwo))

	want := append([]byte("P6\n2 2\n255\n"),
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	)
	assert.Equal(t, want, b.Bytes())
}

func TestWriteBMP(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteImage(&b, FormatBMP, 2, 2, twoByTwo))

	decoded, err := bmp.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, bl, _ := decoded.At(x, y).RGBA()
			at := (y*2 + x) * 4
			assert.Equal(t, twoByTwo[at:at+3], []byte{byte(r >> 8), byte(g >> 8), byte(bl >> 8)}, "pixel %d,%d", x, y)
		}
	}
}

func TestWriteImageSizeMismatch(t *testing.T) {
	var b bytes.Buffer
	assert.Error(t, WriteImage(&b, FormatRaw, 3, 2, twoByTwo))
	assert.Zero(t, b.Len())
}
