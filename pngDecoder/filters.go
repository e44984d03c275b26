package pngDecoder

import "math"

type FilterType byte

// Filter types defined by the PNG format.
const (
	FilterNone FilterType = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterSub:
		return "sub"
	case FilterUp:
		return "up"
	case FilterAverage:
		return "average"
	case FilterPaeth:
		return "paeth"
	}
	return "invalid"
}

// Reconstruct undoes the per-row filtering of an inflated image stream.
// Each of the height rows in filtered is a filter type byte followed by
// width*bpp filtered bytes; the result holds only the reconstructed bytes.
// Neighbours outside the image read as zero.
func Reconstruct(filtered []byte, bpp, width, height int) ([]byte, error) {
	if bpp < 1 || bpp > 4 || width < 1 || height < 1 {
		return nil, &InvalidDimensionsError{Width: int64(width), Height: int64(height)}
	}
	if width > (math.MaxInt-1)/bpp || height > math.MaxInt/(width*bpp+1) {
		return nil, &LimitError{What: "scanline data size", Limit: math.MaxInt}
	}
	stride := width * bpp
	if want := height * (stride + 1); len(filtered) < want {
		return nil, &TruncatedScanlineError{Want: want, Got: len(filtered)}
	}

	pix := make([]byte, height*stride)
	// Row -1 is all zeros.
	previousLine := make([]byte, stride)
	for y := 0; y < height; y++ {
		line := filtered[y*(stride+1) : (y+1)*(stride+1)]
		scanline := pix[y*stride : (y+1)*stride]
		copy(scanline, line[1:])

		switch FilterType(line[0]) {
		case FilterNone:
		case FilterSub:
			processSubFilter(scanline, bpp)
		case FilterUp:
			processUpFilter(previousLine, scanline)
		case FilterAverage:
			processAvgFilter(previousLine, scanline, bpp)
		case FilterPaeth:
			processPaethFilter(previousLine, scanline, bpp)
		default:
			return nil, &InvalidFilterTypeError{Row: y, Filter: line[0]}
		}
		previousLine = scanline
	}
	return pix, nil
}

// The process*Filter functions reconstruct scanline in place. Bytes before
// index bpp have no left neighbour.

func processSubFilter(scanline []byte, bpp int) {
	for i := bpp; i < len(scanline); i++ {
		scanline[i] += scanline[i-bpp]
	}
}

func processUpFilter(previousLine, scanline []byte) {
	for i, above := range previousLine {
		scanline[i] += above
	}
}

func processAvgFilter(previousLine, scanline []byte, bpp int) {
	for i := 0; i < bpp; i++ {
		scanline[i] += previousLine[i] / 2
	}
	for i := bpp; i < len(scanline); i++ {
		scanline[i] += uint8((int(scanline[i-bpp]) + int(previousLine[i])) / 2)
	}
}

func processPaethFilter(previousLine, scanline []byte, bpp int) {
	for i := 0; i < bpp; i++ {
		// With left and upper left both zero, Paeth picks up.
		scanline[i] += uint8(paethPredictor(0, int(previousLine[i]), 0))
	}
	for i := bpp; i < len(scanline); i++ {
		left := int(scanline[i-bpp])
		above := int(previousLine[i])
		upperLeft := int(previousLine[i-bpp])
		scanline[i] += uint8(paethPredictor(left, above, upperLeft))
	}
}
