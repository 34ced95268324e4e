package codec

import (
	"fmt"

	"github.com/arloliu/ctxdict/endian"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Reader is a bounds-checked cursor over an immutable buffer.
//
// Note: a single Reader is NOT safe for concurrent use; create one cursor per
// goroutine with Seek. The underlying buffer is never modified.
type Reader struct {
	buf    []byte
	pos    int
	err    error
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at offset 0 of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{
		buf:    buf,
		engine: endian.Format(),
	}
}

// Seek returns a new cursor over the same buffer positioned at p.
// The receiver is left untouched.
func (r *Reader) Seek(p format.Pointer) *Reader {
	c := &Reader{buf: r.buf, engine: r.engine}
	if uint64(p) > uint64(len(r.buf)) {
		c.err = fmt.Errorf("%w: seek to %d beyond buffer size %d", errs.ErrCorruptIndex, p, len(r.buf))
		return c
	}
	c.pos = int(p)

	return c
}

// Pos returns the current absolute offset of the cursor.
func (r *Reader) Pos() format.Pointer {
	return format.Pointer(r.pos) //nolint:gosec
}

// Size returns the size of the underlying buffer.
func (r *Reader) Size() int {
	return len(r.buf)
}

// Err returns the first error encountered by the cursor, if any.
func (r *Reader) Err() error {
	return r.err
}

// take advances the cursor by n bytes and returns them, or nil after
// recording ErrCorruptIndex.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.buf)-r.pos {
		r.err = fmt.Errorf("%w: read of %d bytes at offset %d exceeds buffer size %d",
			errs.ErrCorruptIndex, n, r.pos, len(r.buf))

		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// ReadBytes reads a run of n bytes. The returned slice aliases the buffer and
// must not be modified.
func (r *Reader) ReadBytes(n int) []byte {
	return r.take(n)
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return int32(r.engine.Uint32(b)) //nolint:gosec
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() int64 {
	b := r.take(8)
	if b == nil {
		return 0
	}

	return int64(r.engine.Uint64(b)) //nolint:gosec
}

// ReadPointer reads an 8-byte absolute pointer.
func (r *Reader) ReadPointer() format.Pointer {
	b := r.take(8)
	if b == nil {
		return format.NullPointer
	}

	return format.Pointer(r.engine.Uint64(b))
}

// ReadCompressedInt reads an int written by Writer.WriteCompressedInt.
func (r *Reader) ReadCompressedInt() int32 {
	return r.ReadInt32()
}

// ReadCompressedLong reads an int64 written by Writer.WriteCompressedLong.
func (r *Reader) ReadCompressedLong() int64 {
	return r.ReadInt64()
}

// ReadCompressedPointer reads a pointer written by Writer.WriteCompressedPointer.
func (r *Reader) ReadCompressedPointer() format.Pointer {
	return r.ReadPointer()
}

// ReadLength reads a compressed int used as an element or byte count and
// validates that it is non-negative and that at least minElemSize*n bytes
// remain in the buffer.
func (r *Reader) ReadLength(minElemSize int) int {
	n := r.ReadCompressedInt()
	if r.err != nil {
		return 0
	}
	if n < 0 || int64(n)*int64(minElemSize) > int64(len(r.buf)-r.pos) {
		r.err = fmt.Errorf("%w: length %d at offset %d is out of range", errs.ErrCorruptIndex, n, r.pos-4)
		return 0
	}

	return int(n)
}

// CheckPointer validates that p addresses a byte inside the buffer and is not
// the null sentinel.
func (r *Reader) CheckPointer(p format.Pointer) error {
	if p.IsNull() || uint64(p) >= uint64(len(r.buf)) {
		return fmt.Errorf("%w: pointer %d outside buffer of size %d", errs.ErrCorruptIndex, p, len(r.buf))
	}

	return nil
}
