// Package compress provides the codecs used to ship packaged dictionary models.
//
// A dictionary model is read in place (usually memory-mapped), so it is never
// compressed while in use. Compression only applies to the file at rest or in
// transit: `ctxdict pack` writes `<id>.dict.bin.zst`, `.s2` or `.lz4`, and the
// registry decompresses such files into memory when it loads them.
//
// # Supported Algorithms
//
//	Type                    | Extension | Notes
//	------------------------|-----------|-------------------------------------
//	format.CompressionNone  |           | Model is used as-is
//	format.CompressionZstd  | .zst      | Best ratio, slowest to pack
//	format.CompressionS2    | .s2       | Fast, moderate ratio
//	format.CompressionLZ4   | .lz4      | Fastest to unpack
//
// All codecs produce self-describing streams (zstd frames, an s2 block with
// its length header, lz4 frames), so Decompress never has to guess the size
// of the original model.
//
// # Usage
//
//	packed, stats, err := compress.Pack(model, format.CompressionZstd)
//	...
//	model, err := compress.Unpack(packed, format.CompressionZstd)
//
// # Zstd Implementations
//
// The default zstd codec is the pure Go github.com/klauspost/compress/zstd.
// Building with `-tags gozstd` (and cgo enabled) switches to the cgo binding
// github.com/valyala/gozstd. Both produce standard zstd frames, so models
// packed by one can be unpacked by the other.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
