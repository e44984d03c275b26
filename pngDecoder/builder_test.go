package pngDecoder

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

type testChunk struct {
	code string
	data []byte
}

func encodeChunk(code string, data []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, uint32(len(data)))
	b.WriteString(code)
	b.Write(data)
	crc := crc32.NewIEEE()
	crc.Write([]byte(code))
	crc.Write(data)
	binary.Write(&b, binary.BigEndian, crc.Sum32())
	return b.Bytes()
}

func buildPNG(chunks ...testChunk) []byte {
	out := append([]byte{}, pngHeader...)
	for _, c := range chunks {
		out = append(out, encodeChunk(c.code, c.data)...)
	}
	return out
}

func ihdrData(width, height uint32, depth, colorType, interlace byte) []byte {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], width)
	binary.BigEndian.PutUint32(data[4:8], height)
	data[8] = depth
	data[9] = colorType
	data[12] = interlace
	return data
}

func zlibBytes(t *testing.T, raw []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	_, err := w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

// unfilteredRows prefixes every row with filter type None.
func unfilteredRows(rows ...[]byte) []byte {
	var out []byte
	for _, row := range rows {
		out = append(out, byte(FilterNone))
		out = append(out, row...)
	}
	return out
}

func simplePNG(t *testing.T, width, height uint32, colorType byte, plte []byte, rows ...[]byte) []byte {
	t.Helper()
	chunks := []testChunk{{"IHDR", ihdrData(width, height, 8, colorType, 0)}}
	if plte != nil {
		chunks = append(chunks, testChunk{"PLTE", plte})
	}
	chunks = append(chunks,
		testChunk{"IDAT", zlibBytes(t, unfilteredRows(rows...))},
		testChunk{"IEND", nil},
	)
	return buildPNG(chunks...)
}
