package compress

// ZstdCompressor provides Zstandard compression for packaged models.
//
// It gives the best compression ratio of the supported algorithms, which
// suits models that are packed once and downloaded many times.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
