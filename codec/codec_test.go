package codec

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/internal/hash"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_ReturnsStartOffsets(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	require.Equal(t, format.Pointer(0), w.WriteUint8(0))
	require.Equal(t, format.Pointer(1), w.WriteInt32(7))
	require.Equal(t, format.Pointer(5), w.WriteInt64(-1))
	require.Equal(t, format.Pointer(13), w.WriteBytes([]byte("abc")))
	require.Equal(t, format.Pointer(16), w.WritePointer(42))
	require.Equal(t, format.Pointer(24), w.WriteCompressedInt(3))
	require.Equal(t, format.Pointer(28), w.WriteCompressedLong(4))
	require.Equal(t, format.Pointer(36), w.WriteCompressedPointer(5))
	require.Equal(t, format.Pointer(44), w.Pos())
	require.NoError(t, w.Close())
	require.Equal(t, 44, out.Len())
}

func TestWriter_BigEndianLayout(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	w.WriteInt32(0x01020304)
	w.WritePointer(0x0A)
	require.NoError(t, w.Close())

	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0, 0, 0, 0, 0x0A}, out.Bytes())
}

func TestWriter_FlushesLargeStreams(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	chunk := []byte(strings.Repeat("x", 1000))
	for i := 0; i < 200; i++ {
		w.WriteBytes(chunk)
	}
	require.Greater(t, out.Len(), 0, "writer should flush before Close once the threshold is reached")
	require.NoError(t, w.Flush())
	require.Equal(t, 200*1000, out.Len())
	require.Equal(t, hash.Checksum(out.Bytes()), w.Sum64())
	require.NoError(t, w.Close())
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.WriteBytes([]byte("data"))
	err := w.Flush()
	require.Error(t, err)
	require.Equal(t, err, w.Err())

	w.WriteInt32(1)
	require.Error(t, w.Close())
}

func TestReader_RoundTrip(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	w.WriteUint8(0xFF)
	w.WriteInt32(math.MinInt32)
	w.WriteInt64(math.MaxInt64)
	w.WriteCompressedInt(3)
	w.WriteBytes([]byte("xyz"))
	w.WritePointer(99)
	require.NoError(t, w.Close())

	r := NewReader(out.Bytes())
	require.Equal(t, uint8(0xFF), r.ReadUint8())
	require.Equal(t, int32(math.MinInt32), r.ReadInt32())
	require.Equal(t, int64(math.MaxInt64), r.ReadInt64())
	n := r.ReadLength(1)
	require.Equal(t, []byte("xyz"), r.ReadBytes(n))
	require.Equal(t, format.Pointer(99), r.ReadCompressedPointer())
	require.NoError(t, r.Err())
	require.Equal(t, format.Pointer(out.Len()), r.Pos())
}

func TestReader_SeekDoesNotMutateReceiver(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 1, 0, 0, 0, 2}
	r := NewReader(buf)

	c1 := r.Seek(1)
	c2 := r.Seek(5)
	require.Equal(t, int32(1), c1.ReadInt32())
	require.Equal(t, int32(2), c2.ReadInt32())
	require.Equal(t, format.Pointer(0), r.Pos())
	require.Equal(t, format.Pointer(5), c1.Pos())
}

func TestReader_BoundsChecks(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Reader) *Reader
	}{
		{"int64 past end", func(r *Reader) *Reader { c := r.Seek(1); c.ReadInt64(); return c }},
		{"bytes past end", func(r *Reader) *Reader { r.ReadBytes(10); return r }},
		{"negative byte count", func(r *Reader) *Reader { r.ReadBytes(-1); return r }},
		{"seek past end", func(r *Reader) *Reader { c := r.Seek(100); c.ReadUint8(); return c }},
		{"negative length", func(r *Reader) *Reader { c := r.Seek(4); c.ReadLength(1); return c }},
		{"length larger than buffer", func(r *Reader) *Reader { r.ReadLength(1); return r }},
	}

	buf := []byte{0, 0, 1, 0, 0xFF, 0xFF, 0xFF, 0xFF}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.read(NewReader(buf))
			require.ErrorIs(t, c.Err(), errs.ErrCorruptIndex)
		})
	}
}

func TestReader_StickyErrorReturnsZeroValues(t *testing.T) {
	r := NewReader([]byte{1, 2})
	require.Equal(t, int32(0), r.ReadInt32())
	require.Error(t, r.Err())
	require.Equal(t, uint8(0), r.ReadUint8(), "reads after an error must return zero values")
	require.Nil(t, r.ReadBytes(1))
}

func TestReader_CheckPointer(t *testing.T) {
	r := NewReader(make([]byte, 8))
	require.NoError(t, r.CheckPointer(1))
	require.ErrorIs(t, r.CheckPointer(format.NullPointer), errs.ErrCorruptIndex)
	require.ErrorIs(t, r.CheckPointer(8), errs.ErrCorruptIndex)
}

func TestReader_ConcurrentCursors(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	for i := 0; i < 1000; i++ {
		w.WriteInt64(int64(i))
	}
	require.NoError(t, w.Close())

	r := NewReader(out.Bytes())
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c := r.Seek(format.Pointer(i * 8))
				if c.ReadInt64() != int64(i) || c.Err() != nil {
					t.Errorf("cursor %d read a wrong value", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}
