package compression

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"pnGo/oops"

	"github.com/klauspost/compress/zlib"
)

// ErrTooLarge is returned when the inflated stream exceeds the caller's limit.
var ErrTooLarge = errors.New("inflated data exceeds limit")

var zlibReaderPool sync.Pool

func getZlibReader(src io.Reader) (io.ReadCloser, error) {
	if pooled, ok := zlibReaderPool.Get().(io.ReadCloser); ok {
		if err := pooled.(zlib.Resetter).Reset(src, nil); err != nil {
			// A failed Reset leaves the reader unusable; let it go.
			return nil, err
		}
		return pooled, nil
	}
	return zlib.NewReader(src)
}

// InflateData decompresses a zlib stream. sizeHint preallocates the output
// and limit, when positive, caps the number of inflated bytes.
func InflateData(compressedData []byte, sizeHint int, limit int64) ([]byte, error) {
	zlibReader, err := getZlibReader(bytes.NewReader(compressedData))
	if err != nil {
		return nil, oops.New(err, "failed to open zlib stream")
	}
	defer func() {
		zlibReader.Close()
		zlibReaderPool.Put(zlibReader)
	}()

	var src io.Reader = zlibReader
	if limit > 0 {
		src = io.LimitReader(zlibReader, limit+1)
	}

	var decompressedData bytes.Buffer
	if sizeHint > 0 {
		decompressedData.Grow(sizeHint)
	}
	n, err := io.Copy(&decompressedData, src)
	if err != nil {
		return nil, oops.New(err, "failed to inflate %d compressed bytes", len(compressedData))
	}
	if limit > 0 && n > limit {
		return nil, oops.New(ErrTooLarge, "more than %d bytes", limit)
	}
	return decompressedData.Bytes(), nil
}
