package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor provides S2 compression for packaged models.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data into a single S2 block.
//
// A block holds at most 4 GiB; larger models must use zstd or lz4.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if s2.MaxEncodedLen(len(data)) < 0 {
		return nil, fmt.Errorf("s2: model of %d bytes exceeds the block size limit", len(data))
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if uint64(n) > maxModelSize {
		return nil, fmt.Errorf("s2: decoded size %d exceeds limit", n)
	}

	return s2.Decode(make([]byte, n), data)
}
