package pngDecoder

import "fmt"

// A Palette holds packed RGB triplets from a PLTE chunk.
type Palette []byte

// Len returns the number of palette entries.
func (p Palette) Len() int {
	return len(p) / 3
}

func ParsePalette(data []byte) (Palette, error) {
	if len(data) == 0 || len(data)%3 != 0 || len(data) > 256*3 {
		return nil, FormatError(fmt.Sprintf("bad PLTE length %d", len(data)))
	}
	return Palette(data), nil
}

// Resolve converts reconstructed samples into RGBA, four bytes per pixel.
// Indexed images are looked up in palette, which must not be nil for them;
// images without an alpha channel come out opaque.
func Resolve(pix []byte, ihdr *IHDR, palette Palette) ([]byte, error) {
	channels := ihdr.ColorModel.channels()
	if channels == 0 || channels != ihdr.Channels {
		return nil, InternalError(fmt.Sprintf("%v image with %d channels", ihdr.ColorModel, ihdr.Channels))
	}
	pixels := int(ihdr.Width) * int(ihdr.Height)
	if want := pixels * channels; len(pix) != want {
		return nil, InternalError(fmt.Sprintf("pixel buffer holds %d bytes, want %d", len(pix), want))
	}

	rgba := make([]byte, 0, pixels*4)
	switch ihdr.ColorModel {
	case Indexed:
		if palette == nil {
			return nil, MissingChunkError("PLTE")
		}
		for _, i := range pix {
			at := int(i) * 3
			if at+3 > len(palette) {
				return nil, &PaletteIndexError{Index: i, Entries: palette.Len()}
			}
			rgba = append(rgba, palette[at], palette[at+1], palette[at+2], 0xff)
		}
	case Truecolor:
		for i := 0; i < len(pix); i += 3 {
			rgba = append(rgba, pix[i], pix[i+1], pix[i+2], 0xff)
		}
	case TruecolorAlpha:
		rgba = append(rgba, pix...)
	case Grayscale:
		for _, gray := range pix {
			rgba = append(rgba, gray, gray, gray, 0xff)
		}
	case GrayscaleAlpha:
		for i := 0; i < len(pix); i += 2 {
			gray := pix[i]
			rgba = append(rgba, gray, gray, gray, pix[i+1])
		}
	}

	if len(rgba) != pixels*4 {
		return nil, InternalError(fmt.Sprintf("resolved %d bytes, want %d", len(rgba), pixels*4))
	}
	return rgba, nil
}
