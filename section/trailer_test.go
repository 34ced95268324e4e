package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

func fileWithTrailer(body int, tr Trailer) []byte {
	file := make([]byte, body)
	return append(file, tr.Bytes()...)
}

func TestTrailer_Bytes(t *testing.T) {
	tr := Trailer{Root: 0x0102030405060708, SourceCorpus: 9, TargetCorpus: 10}
	b := tr.Bytes()

	require.Len(t, b, format.TrailerSize)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b[0:8], "root is big-endian")
	require.Equal(t, byte(9), b[15])
	require.Equal(t, byte(10), b[23])
}

func TestTrailer_Parse(t *testing.T) {
	t.Run("Valid trailer", func(t *testing.T) {
		want := Trailer{Root: 40, SourceCorpus: 5, TargetCorpus: 20}
		file := fileWithTrailer(50, want)

		var got Trailer
		require.NoError(t, got.Parse(file))
		require.Equal(t, want, got)
	})

	t.Run("File too small", func(t *testing.T) {
		var tr Trailer
		err := tr.Parse(make([]byte, format.MinFileSize-1))
		require.ErrorIs(t, err, errs.ErrCorruptIndex)
	})

	t.Run("Missing sentinel", func(t *testing.T) {
		file := fileWithTrailer(10, Trailer{Root: 1, SourceCorpus: 1, TargetCorpus: 1})
		file[0] = 'x'

		var tr Trailer
		require.ErrorIs(t, tr.Parse(file), errs.ErrCorruptIndex)
	})

	t.Run("Null root", func(t *testing.T) {
		file := fileWithTrailer(10, Trailer{Root: 0, SourceCorpus: 1, TargetCorpus: 1})

		var tr Trailer
		require.ErrorIs(t, tr.Parse(file), errs.ErrCorruptIndex)
	})

	t.Run("Pointer into trailer", func(t *testing.T) {
		file := fileWithTrailer(10, Trailer{Root: 5, SourceCorpus: 10, TargetCorpus: 1})

		var tr Trailer
		require.ErrorIs(t, tr.Parse(file), errs.ErrCorruptIndex)
	})
}
