package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Phrase is a source-language phrase with its ranking weight and translations.
//
// Text duplicates the bytes of the trie path that leads to the phrase so that
// autocomplete can return it without reconstructing the path.
type Phrase struct {
	Weight       int64
	Text         string
	Translations []Translation
}

// Encode appends the phrase and all of its translations and returns its offset.
func (p *Phrase) Encode(w *codec.Writer) format.Pointer {
	ptr := w.WriteCompressedLong(p.Weight)

	w.WriteCompressedInt(int32(len(p.Text))) //nolint:gosec
	w.WriteBytes([]byte(p.Text))

	w.WriteCompressedInt(int32(len(p.Translations))) //nolint:gosec
	for i := range p.Translations {
		p.Translations[i].Encode(w)
	}

	return ptr
}

// DecodePhrase reads a phrase and its translations at the cursor position.
func DecodePhrase(r *codec.Reader) (Phrase, error) {
	var p Phrase
	p.Weight = r.ReadCompressedLong()
	p.Text = string(r.ReadBytes(r.ReadLength(1)))

	// A translation occupies at least 16 bytes: occurrences, length, count.
	n := r.ReadLength(16)
	if n > 0 {
		p.Translations = make([]Translation, n)
		for i := range p.Translations {
			p.Translations[i] = DecodeTranslation(r)
		}
	}

	if err := r.Err(); err != nil {
		return Phrase{}, err
	}

	return p, nil
}

// DecodePhraseText reads only the weight and text of a phrase, skipping its
// translations.
func DecodePhraseText(r *codec.Reader) (int64, string, error) {
	weight := r.ReadCompressedLong()
	text := string(r.ReadBytes(r.ReadLength(1)))
	if err := r.Err(); err != nil {
		return 0, "", err
	}

	return weight, text, nil
}

// ParsePhrase parses one line of the phrase stream:
//
//	source TAB weight (TAB target TAB count TAB examples)*
//
// where examples is a space-separated list of example codes (see ParseExample).
// A trailing carriage return is ignored.
func ParsePhrase(line string) (Phrase, error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Phrase{}, fmt.Errorf("%w: expected at least 2 fields, got %d", errs.ErrMalformedRecord, len(fields))
	}
	if (len(fields)-2)%3 != 0 {
		return Phrase{}, fmt.Errorf("%w: incomplete translation group in %d fields", errs.ErrMalformedRecord, len(fields))
	}

	weight, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Phrase{}, fmt.Errorf("%w: weight %q: %w", errs.ErrMalformedRecord, fields[1], err)
	}

	p := Phrase{Weight: weight, Text: fields[0]}
	if groups := (len(fields) - 2) / 3; groups > 0 {
		p.Translations = make([]Translation, 0, groups)
	}
	for i := 2; i < len(fields); i += 3 {
		t, err := parseTranslation(fields[i], fields[i+1], fields[i+2])
		if err != nil {
			return Phrase{}, err
		}
		p.Translations = append(p.Translations, t)
	}

	return p, nil
}

// TotalOccurrences returns the sum of the occurrence counts of all translations.
func (p *Phrase) TotalOccurrences() int64 {
	var total int64
	for i := range p.Translations {
		total += p.Translations[i].Occurrences
	}

	return total
}
