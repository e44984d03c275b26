package pngDecoder

import (
	"fmt"
	"hash/crc32"

	"pnGo/utils"

	"github.com/rs/zerolog"
)

type ChunkType int

const (
	ChunkUnknown ChunkType = iota
	ChunkIHDR
	ChunkPLTE
	ChunkIDAT
	ChunkIEND
	ChunkSRGB
)

var chunkTypes = map[string]ChunkType{
	"IHDR": ChunkIHDR,
	"PLTE": ChunkPLTE,
	"IDAT": ChunkIDAT,
	"IEND": ChunkIEND,
	"sRGB": ChunkSRGB,
}

func chunkTypeOf(code string) ChunkType {
	if t, ok := chunkTypes[code]; ok {
		return t
	}
	return ChunkUnknown
}

func (t ChunkType) String() string {
	for code, known := range chunkTypes {
		if known == t {
			return code
		}
	}
	return "unknown"
}

// maxChunkLength is the largest length the PNG format allows (2^31-1).
const maxChunkLength = 1<<31 - 1

// Each chunk starts with a uint32 length (big endian), then a 4 byte type
// code, then the payload and finally the CRC32 of code and payload.
type Chunk struct {
	Code   string
	Type   ChunkType
	Length uint32
	Data   []byte
	CRC    uint32
	// Offset of the length field from the start of the stream.
	Offset int
}

// Critical reports whether the chunk is required to display the image.
func (c *Chunk) Critical() bool {
	return c.Code[0] >= 'A' && c.Code[0] <= 'Z'
}

// A ChunkTable holds every chunk of a stream in arrival order, indexed by
// type. Repeated types (IDAT) keep all their occurrences; chunks the decoder
// does not know are filed under ChunkUnknown.
type ChunkTable struct {
	chunks []*Chunk
	byType map[ChunkType][]*Chunk
}

func newChunkTable() *ChunkTable {
	return &ChunkTable{byType: make(map[ChunkType][]*Chunk)}
}

func (t *ChunkTable) add(c *Chunk) {
	t.chunks = append(t.chunks, c)
	t.byType[c.Type] = append(t.byType[c.Type], c)
}

// Chunks returns every chunk in stream order.
func (t *ChunkTable) Chunks() []*Chunk {
	return t.chunks
}

// All returns the chunks of the given type in stream order.
func (t *ChunkTable) All(typ ChunkType) []*Chunk {
	return t.byType[typ]
}

// Get returns the first chunk of the given type, or nil.
func (t *ChunkTable) Get(typ ChunkType) *Chunk {
	if found := t.byType[typ]; len(found) > 0 {
		return found[0]
	}
	return nil
}

func (t *ChunkTable) Has(typ ChunkType) bool {
	return len(t.byType[typ]) > 0
}

// Payload concatenates the payloads of every chunk of the given type in
// stream order. It returns nil if there is no such chunk.
func (t *ChunkTable) Payload(typ ChunkType) []byte {
	found := t.byType[typ]
	switch len(found) {
	case 0:
		return nil
	case 1:
		return found[0].Data
	}
	size := 0
	for _, c := range found {
		size += len(c.Data)
	}
	payload := make([]byte, 0, size)
	for _, c := range found {
		payload = append(payload, c.Data...)
	}
	return payload
}

type chunkReader struct {
	data []byte
	idx  int
	log  zerolog.Logger
}

// ReadChunks validates the PNG signature and splits data into a table of
// checksum-verified chunks.
func ReadChunks(data []byte) (*ChunkTable, error) {
	return readChunks(data, zerolog.Nop())
}

func readChunks(data []byte, log zerolog.Logger) (*ChunkTable, error) {
	if !isPNG(data) {
		return nil, FormatError("not a PNG file")
	}
	r := &chunkReader{
		data: data,
		idx:  len(pngHeader),
		log:  log,
	}
	table := newChunkTable()
	for r.idx < len(r.data) {
		chunk, err := r.nextChunk()
		if err != nil {
			return nil, err
		}
		table.add(chunk)
	}
	return table, nil
}

func (r *chunkReader) nextChunk() (*Chunk, error) {
	offset := r.idx
	length, err := r.tryAdvance(4)
	if err != nil {
		return nil, err
	}
	chunkLength := utils.BytesToLength(length)
	if chunkLength > maxChunkLength {
		return nil, FormatError(fmt.Sprintf("chunk at offset %d: bad length %d", offset, chunkLength))
	}
	code, err := r.tryAdvance(4)
	if err != nil {
		return nil, err
	}
	if !isChunkCode(code) {
		return nil, FormatError(fmt.Sprintf("chunk at offset %d: bad type code %q", offset, code))
	}
	chunkData, err := r.tryAdvance(int(chunkLength))
	if err != nil {
		return nil, err
	}
	crc, err := r.tryAdvance(4)
	if err != nil {
		return nil, err
	}

	chunk := &Chunk{
		Code:   string(code),
		Type:   chunkTypeOf(string(code)),
		Length: chunkLength,
		Data:   chunkData,
		CRC:    utils.BytesToLength(crc),
		Offset: offset,
	}

	hash := crc32.NewIEEE()
	hash.Write(code)
	hash.Write(chunkData)
	if sum := hash.Sum32(); sum != chunk.CRC {
		return nil, &ChecksumError{
			Chunk:    chunk.Code,
			Offset:   offset,
			Expected: chunk.CRC,
			Actual:   sum,
		}
	}

	r.log.Debug().
		Str("chunk", chunk.Code).
		Uint32("length", chunkLength).
		Int("offset", offset).
		Bool("critical", chunk.Critical()).
		Msg("read chunk")
	return chunk, nil
}

func (r *chunkReader) tryAdvance(length int) ([]byte, error) {
	if remaining := len(r.data) - r.idx; length > remaining {
		return nil, &TruncatedInputError{Offset: r.idx, Want: length, Have: remaining}
	}
	r.idx += length
	return r.data[r.idx-length : r.idx], nil
}

func isChunkCode(code []byte) bool {
	for _, b := range code {
		if !('A' <= b && b <= 'Z' || 'a' <= b && b <= 'z') {
			return false
		}
	}
	return true
}
