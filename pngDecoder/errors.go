package pngDecoder

import "fmt"

// A FormatError reports that the input is not a well-framed PNG stream.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// An UnsupportedFeatureError reports a valid PNG that uses a feature this
// decoder does not implement.
type UnsupportedFeatureError string

func (e UnsupportedFeatureError) Error() string { return "png: unsupported feature: " + string(e) }

// An InternalError reports a broken invariant inside the decoder.
type InternalError string

func (e InternalError) Error() string { return "png: internal error: " + string(e) }

type ChecksumError struct {
	Chunk    string
	Offset   int
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("png: %s chunk at offset %d: checksum mismatch: stored %08x, computed %08x",
		e.Chunk, e.Offset, e.Expected, e.Actual)
}

type TruncatedInputError struct {
	Offset int
	Want   int
	Have   int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("png: truncated input at offset %d: need %d bytes, %d remain", e.Offset, e.Want, e.Have)
}

type SizeError struct {
	Chunk string
	Want  int
	Got   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("png: %s chunk must be %d bytes, got %d", e.Chunk, e.Want, e.Got)
}

type InvalidDimensionsError struct {
	Width  int64
	Height int64
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("png: invalid dimensions %dx%d", e.Width, e.Height)
}

type InvalidColorTypeError byte

func (e InvalidColorTypeError) Error() string {
	return fmt.Sprintf("png: invalid color type %d", byte(e))
}

// A MissingChunkError names a chunk that the image needs but the stream
// does not contain.
type MissingChunkError string

func (e MissingChunkError) Error() string { return "png: missing " + string(e) + " chunk" }

type InvalidFilterTypeError struct {
	Row    int
	Filter byte
}

func (e *InvalidFilterTypeError) Error() string {
	return fmt.Sprintf("png: row %d: invalid filter type %d", e.Row, e.Filter)
}

type TruncatedScanlineError struct {
	Want int
	Got  int
}

func (e *TruncatedScanlineError) Error() string {
	return fmt.Sprintf("png: scanline data too short: want %d bytes, got %d", e.Want, e.Got)
}

type PaletteIndexError struct {
	Index   byte
	Entries int
}

func (e *PaletteIndexError) Error() string {
	return fmt.Sprintf("png: palette index %d out of range (%d entries)", e.Index, e.Entries)
}

type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string { return "png: bad image data: " + e.Err.Error() }

func (e *DecompressionError) Unwrap() error { return e.Err }

// A LimitError reports an image that is valid but larger than the decoder
// was configured to accept. Got is zero when the size is not known, as when
// inflation stops at the limit.
type LimitError struct {
	What  string
	Limit uint64
	Got   uint64
}

func (e *LimitError) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf("png: %s exceeds limit %d", e.What, e.Limit)
	}
	return fmt.Sprintf("png: %s %d exceeds limit %d", e.What, e.Got, e.Limit)
}
