// Package codec provides the primitive reader and writer of the dictionary
// file format.
//
// # Writer
//
// Writer is sequential and append-only. Every write returns the absolute
// offset at which the written value begins; that offset is the pointer that
// parent records store. Writes are staged in a pooled buffer and flushed to
// the underlying io.Writer in large chunks. Write errors are sticky: once the
// underlying writer fails, later writes are dropped and the error is reported
// by Err, Flush and Close.
//
// # Reader
//
// Reader is a cursor over an immutable byte slice, typically a read-only
// memory mapping. Seek returns a new cursor and never mutates the receiver,
// so any number of cursors may share one buffer across goroutines without
// locking.
//
// Every read is bounds checked. A read beyond the buffer, or a negative or
// impossible length, records errs.ErrCorruptIndex as a sticky error and
// returns zero values from then on. Record decoders read all their fields and
// check Err once at the end.
//
// # Integer encoding
//
// All integers are big-endian and fixed width. The "compressed" variants
// (ReadCompressedInt, WriteCompressedPointer, ...) mark fields that a future
// format revision may encode as variable-length integers; today they are
// identical to their fixed-width counterparts.
package codec
