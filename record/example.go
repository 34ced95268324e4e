package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// exampleSize is the encoded size of an Example in bytes.
const exampleSize = 5 * 4

// Example locates one occurrence of a phrase pair in the parallel corpus.
// Source and target sentences share SentenceID; offsets are byte offsets
// relative to the start of the sentence.
type Example struct {
	SentenceID uint32
	SrcStart   uint32
	SrcEnd     uint32
	TrgStart   uint32
	TrgEnd     uint32
}

// Source returns the source-language side of the example.
func (e Example) Source() Span {
	return Span{SentenceID: e.SentenceID, Start: e.SrcStart, End: e.SrcEnd}
}

// Target returns the target-language side of the example.
func (e Example) Target() Span {
	return Span{SentenceID: e.SentenceID, Start: e.TrgStart, End: e.TrgEnd}
}

// Encode appends the example and returns its offset.
func (e Example) Encode(w *codec.Writer) format.Pointer {
	p := w.WriteCompressedInt(int32(e.SentenceID)) //nolint:gosec
	w.WriteCompressedInt(int32(e.SrcStart))        //nolint:gosec
	w.WriteCompressedInt(int32(e.SrcEnd))          //nolint:gosec
	w.WriteCompressedInt(int32(e.TrgStart))        //nolint:gosec
	w.WriteCompressedInt(int32(e.TrgEnd))          //nolint:gosec

	return p
}

// DecodeExample reads an example at the cursor position.
func DecodeExample(r *codec.Reader) Example {
	return Example{
		SentenceID: uint32(r.ReadCompressedInt()), //nolint:gosec
		SrcStart:   uint32(r.ReadCompressedInt()), //nolint:gosec
		SrcEnd:     uint32(r.ReadCompressedInt()), //nolint:gosec
		TrgStart:   uint32(r.ReadCompressedInt()), //nolint:gosec
		TrgEnd:     uint32(r.ReadCompressedInt()), //nolint:gosec
	}
}

// ParseExample parses an example code of the form
// sentenceId:srcStart:srcEnd:trgStart:trgEnd.
func ParseExample(code string) (Example, error) {
	parts := strings.Split(code, ":")
	if len(parts) != 5 {
		return Example{}, fmt.Errorf("%w: example code %q must have 5 fields", errs.ErrMalformedRecord, code)
	}

	var vals [5]uint32
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Example{}, fmt.Errorf("%w: example code %q: %w", errs.ErrMalformedRecord, code, err)
		}
		vals[i] = uint32(v)
	}

	return Example{
		SentenceID: vals[0],
		SrcStart:   vals[1],
		SrcEnd:     vals[2],
		TrgStart:   vals[3],
		TrgEnd:     vals[4],
	}, nil
}

// String formats the example as an example code accepted by ParseExample.
func (e Example) String() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d", e.SentenceID, e.SrcStart, e.SrcEnd, e.TrgStart, e.TrgEnd)
}
