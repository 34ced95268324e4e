package codec

import (
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/ctxdict/endian"
	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/internal/hash"
	"github.com/arloliu/ctxdict/internal/pool"
)

// flushThreshold is the staging buffer size that triggers a flush.
const flushThreshold = pool.WriterBufferDefaultSize

// Writer appends values to an output stream and reports the absolute offset
// at which each value begins.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	out    io.Writer
	buf    *pool.ByteBuffer
	digest *xxhash.Digest
	engine endian.EndianEngine
	pos    format.Pointer
	err    error
}

// NewWriter creates a Writer that appends to out starting at offset 0.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:    out,
		buf:    pool.GetWriterBuffer(),
		digest: hash.NewDigest(),
		engine: endian.Format(),
	}
}

// Pos returns the offset at which the next value will be written.
func (w *Writer) Pos() format.Pointer {
	return w.pos
}

// Err returns the first error reported by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}

// stage reserves room for n bytes and returns the start offset of the value.
func (w *Writer) stage(n int) format.Pointer {
	start := w.pos
	w.buf.Grow(n)
	w.pos += format.Pointer(n) //nolint:gosec

	return start
}

func (w *Writer) maybeFlush() {
	if w.buf.Len() >= flushThreshold {
		w.flushBuffer()
	}
}

func (w *Writer) flushBuffer() {
	if w.buf.Len() == 0 {
		return
	}
	if w.err == nil {
		_, _ = w.digest.Write(w.buf.Bytes())
		if _, err := w.buf.WriteTo(w.out); err != nil {
			w.err = err
		}
	}
	w.buf.Reset()
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(b uint8) format.Pointer {
	p := w.stage(1)
	w.buf.B = append(w.buf.B, b)
	w.maybeFlush()

	return p
}

// WriteBytes appends a raw byte run.
func (w *Writer) WriteBytes(b []byte) format.Pointer {
	p := w.stage(len(b))
	w.buf.MustWrite(b)
	w.maybeFlush()

	return p
}

// WriteInt32 appends a big-endian signed 32-bit integer.
func (w *Writer) WriteInt32(i int32) format.Pointer {
	p := w.stage(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(i)) //nolint:gosec
	w.maybeFlush()

	return p
}

// WriteInt64 appends a big-endian signed 64-bit integer.
func (w *Writer) WriteInt64(i int64) format.Pointer {
	p := w.stage(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(i)) //nolint:gosec
	w.maybeFlush()

	return p
}

// WritePointer appends an 8-byte absolute pointer.
func (w *Writer) WritePointer(ptr format.Pointer) format.Pointer {
	p := w.stage(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, uint64(ptr))
	w.maybeFlush()

	return p
}

// WriteCompressedInt appends an int that may become variable-length in a
// future format revision.
func (w *Writer) WriteCompressedInt(i int32) format.Pointer {
	return w.WriteInt32(i)
}

// WriteCompressedLong appends an int64 that may become variable-length in a
// future format revision.
func (w *Writer) WriteCompressedLong(l int64) format.Pointer {
	return w.WriteInt64(l)
}

// WriteCompressedPointer appends a pointer that may become variable-length in
// a future format revision.
func (w *Writer) WriteCompressedPointer(ptr format.Pointer) format.Pointer {
	return w.WritePointer(ptr)
}

// Flush writes all staged bytes to the underlying writer.
func (w *Writer) Flush() error {
	w.flushBuffer()
	return w.err
}

// Sum64 returns the xxHash64 of every byte flushed so far. Call Flush first
// to include staged bytes.
func (w *Writer) Sum64() uint64 {
	return w.digest.Sum64()
}

// Close flushes staged bytes and returns the staging buffer to the pool.
// It does not close the underlying writer. Calling Close again is a no-op.
func (w *Writer) Close() error {
	if w.buf == nil {
		return w.err
	}
	err := w.Flush()
	pool.PutWriterBuffer(w.buf)
	w.buf = nil

	return err
}
