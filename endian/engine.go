// Package endian provides the byte order used by the dictionary file format.
//
// All multi-byte integers in a dictionary file are big-endian. EndianEngine
// combines the standard ByteOrder and AppendByteOrder interfaces so that both
// the reader (fixed offsets) and the writer (append into a staging buffer) go
// through a single value.
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Format returns the engine mandated by the dictionary file format.
func Format() EndianEngine {
	return binary.BigEndian
}
