package section

import (
	"fmt"

	"github.com/arloliu/ctxdict/endian"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Trailer is the fixed-size section at the end of every dictionary file.
type Trailer struct {
	// Root is the offset of the root trie node.
	Root format.Pointer // 8 bytes, offset 0-7
	// SourceCorpus is the offset of the source corpus offset table.
	SourceCorpus format.Pointer // 8 bytes, offset 8-15
	// TargetCorpus is the offset of the target corpus offset table.
	TargetCorpus format.Pointer // 8 bytes, offset 16-23
}

// Parse parses the trailer from the last format.TrailerSize bytes of a
// complete dictionary file.
//
// It returns errs.ErrCorruptIndex if the file is shorter than
// format.MinFileSize, if the sentinel byte is not zero, or if any pointer is
// null or lands inside the trailer.
func (t *Trailer) Parse(file []byte) error {
	if len(file) < format.MinFileSize {
		return fmt.Errorf("%w: file size %d is smaller than %d", errs.ErrCorruptIndex, len(file), format.MinFileSize)
	}
	if file[0] != 0 {
		return fmt.Errorf("%w: missing zero sentinel byte", errs.ErrCorruptIndex)
	}

	engine := endian.Format()
	data := file[len(file)-format.TrailerSize:]
	t.Root = format.Pointer(engine.Uint64(data[0:8]))
	t.SourceCorpus = format.Pointer(engine.Uint64(data[8:16]))
	t.TargetCorpus = format.Pointer(engine.Uint64(data[16:24]))

	limit := format.Pointer(len(file) - format.TrailerSize) //nolint:gosec
	for _, f := range []struct {
		name string
		p    format.Pointer
	}{
		{"root", t.Root},
		{"source corpus", t.SourceCorpus},
		{"target corpus", t.TargetCorpus},
	} {
		if f.p.IsNull() || f.p >= limit {
			return fmt.Errorf("%w: %s pointer %d outside record area [1, %d)", errs.ErrCorruptIndex, f.name, f.p, limit)
		}
	}

	return nil
}

// Bytes serializes the trailer into a format.TrailerSize byte slice.
func (t *Trailer) Bytes() []byte {
	b := make([]byte, 0, format.TrailerSize)

	engine := endian.Format()
	b = engine.AppendUint64(b, uint64(t.Root))
	b = engine.AppendUint64(b, uint64(t.SourceCorpus))
	b = engine.AppendUint64(b, uint64(t.TargetCorpus))

	return b
}
