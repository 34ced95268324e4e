package format

import "strings"

type (
	// Pointer is an absolute byte offset into a dictionary file.
	Pointer uint64

	CompressionType uint8
)

const (
	// NullPointer marks an absent record. The first byte of every file is a
	// zero sentinel, so no record can ever start at offset 0.
	NullPointer Pointer = 0

	// TopDescendants is the number of ranked phrase pointers kept per trie node.
	// It is part of the on-disk format and must not be tuned.
	TopDescendants = 10

	// MaxChildren is the largest child count a node can encode (one byte).
	MaxChildren = 255

	// TrailerSize is the size of the fixed trailer at the end of the file:
	// root node, source corpus and target corpus pointers.
	TrailerSize = 24

	// MinFileSize is the smallest well-formed file: sentinel byte plus trailer.
	MinFileSize = 1 + TrailerSize
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an unpacked model.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ModelSuffix is the file name suffix of an unpacked dictionary model.
const ModelSuffix = ".dict.bin"

// IsNull reports whether p is the null sentinel.
func (p Pointer) IsNull() bool {
	return p == NullPointer
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the extra file extension appended to ModelSuffix for a
// packaged model, or an empty string for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType maps a user supplied name ("none", "zstd", "s2", "lz4")
// to a CompressionType. The second result is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// SplitModelName splits a model file name into its dictionary id and
// compression type. The id is the name without ModelSuffix and without the
// compression extension. The last result is false when the name does not
// carry the given suffix.
func SplitModelName(name, suffix string) (string, CompressionType, bool) {
	for _, c := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4, CompressionNone} {
		full := suffix + c.Extension()
		if len(name) > len(full) && strings.HasSuffix(name, full) {
			return name[:len(name)-len(full)], c, true
		}
	}

	return "", 0, false
}
