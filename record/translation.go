package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Translation is one target-language rendering of a phrase together with its
// occurrence count and sample occurrences.
type Translation struct {
	Occurrences int64
	Text        string
	Examples    []Example
}

// Encode appends the translation and its examples and returns its offset.
func (t *Translation) Encode(w *codec.Writer) format.Pointer {
	p := w.WriteCompressedLong(t.Occurrences)

	w.WriteCompressedInt(int32(len(t.Text))) //nolint:gosec
	w.WriteBytes([]byte(t.Text))

	w.WriteCompressedInt(int32(len(t.Examples))) //nolint:gosec
	for _, e := range t.Examples {
		e.Encode(w)
	}

	return p
}

// DecodeTranslation reads a translation at the cursor position.
func DecodeTranslation(r *codec.Reader) Translation {
	var t Translation
	t.Occurrences = r.ReadCompressedLong()
	t.Text = string(r.ReadBytes(r.ReadLength(1)))

	n := r.ReadLength(exampleSize)
	if n > 0 {
		t.Examples = make([]Example, n)
		for i := range t.Examples {
			t.Examples[i] = DecodeExample(r)
		}
	}

	return t
}

// parseTranslation parses the three tab-separated fields of a translation
// group: target text, occurrence count and space-separated example codes.
func parseTranslation(text, count, codes string) (Translation, error) {
	occurrences, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return Translation{}, fmt.Errorf("%w: occurrence count %q of %q: %w", errs.ErrMalformedRecord, count, text, err)
	}

	t := Translation{Occurrences: occurrences, Text: text}
	for _, code := range strings.Fields(codes) {
		e, err := ParseExample(code)
		if err != nil {
			return Translation{}, err
		}
		t.Examples = append(t.Examples, e)
	}

	return t, nil
}
