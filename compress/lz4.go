package compress

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor provides LZ4 compression for packaged models.
//
// It writes the LZ4 frame format with block and content checksums, so the
// decompressed size never has to be guessed.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into an LZ4 frame.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data) / 2)

	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(
		lz4.BlockSizeOption(lz4.Block4Mb),
		lz4.ChecksumOption(true),
		lz4.SizeOption(uint64(len(data))),
	); err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame.
//
// Parameters:
//   - data: Compressed data to decompress
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: Corrupted frame or checksum mismatch
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data) * 2)

	zr := lz4.NewReader(bytes.NewReader(data))
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if uint64(buf.Len()) > maxModelSize {
		return nil, fmt.Errorf("lz4: decoded size %d exceeds limit", buf.Len())
	}

	return buf.Bytes(), nil
}
