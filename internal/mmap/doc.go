// Package mmap maps dictionary files read-only into memory.
//
// A dictionary is queried by following absolute offsets through the whole
// file, so mapping it lets the kernel page in only the nodes and records a
// query actually touches.
//
// # Usage
//
//	m, err := mmap.Open("en__es.dict.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessRandom)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix: mmap(2) with madvise(2) access hints
//   - Windows: CreateFileMapping/MapViewOfFile (advice is a no-op)
//   - Other platforms: the file is read into memory
//
// # Thread Safety
//
// Mapping is safe for concurrent read access and Close is idempotent.
// Callers must ensure no goroutine uses Bytes() after Close() returns.
package mmap
