package utils

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

func BytesToLength(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// Format selects how a decoded RGBA buffer is written out.
type Format int

const (
	FormatRaw Format = iota
	FormatPPM
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "raw", "rgba":
		return FormatRaw, nil
	case "ppm":
		return FormatPPM, nil
	case "bmp":
		return FormatBMP, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want raw, ppm or bmp)", name)
}

func WriteImage(w io.Writer, format Format, width, height int, rgba []byte) error {
	if len(rgba) != width*height*4 {
		return fmt.Errorf("rgba buffer holds %d bytes, want %d for %dx%d", len(rgba), width*height*4, width, height)
	}
	switch format {
	case FormatRaw:
		return WriteRaw(w, rgba)
	case FormatPPM:
		return WritePPM(w, width, height, rgba)
	case FormatBMP:
		return WriteBMP(w, width, height, rgba)
	}
	return fmt.Errorf("unsupported output format %v", format)
}

func WriteRaw(w io.Writer, rgba []byte) error {
	_, err := w.Write(rgba)
	return err
}

// WritePPM writes a binary (P6) PPM. PPM has no alpha channel, so alpha is
// dropped.
func WritePPM(w io.Writer, width, height int, rgba []byte) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for i := 0; i+3 < len(rgba); i += 4 {
		if _, err := bw.Write(rgba[i : i+3]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteBMP(w io.Writer, width, height int, rgba []byte) error {
	img := &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return bmp.Encode(w, img)
}
