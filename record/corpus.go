package record

import (
	"bufio"
	"fmt"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Corpus is the sentence offset table of one side of the parallel corpus.
//
// Sentence i spans [offsets[i], offsets[i+1]) in the file. The last offset
// addresses a zero sentinel byte written after the final sentence.
type Corpus struct {
	r       *codec.Reader
	offsets []format.Pointer
}

// EncodeCorpus writes every line of sc as a sentence, followed by the zero
// sentinel and the offset table. It returns the offset of the table, which is
// the corpus pointer stored in the trailer, and a Corpus over the offsets that
// supports span validation but not text resolution.
func EncodeCorpus(w *codec.Writer, sc *bufio.Scanner) (format.Pointer, *Corpus, error) {
	var offsets []format.Pointer
	for sc.Scan() {
		offsets = append(offsets, w.WriteBytes(sc.Bytes()))
	}
	if err := sc.Err(); err != nil {
		return format.NullPointer, nil, fmt.Errorf("read corpus line %d: %w", len(offsets)+1, err)
	}
	offsets = append(offsets, w.WriteUint8(0))

	ptr := w.WriteCompressedInt(int32(len(offsets))) //nolint:gosec
	for _, off := range offsets {
		w.WriteCompressedPointer(off)
	}

	if err := w.Err(); err != nil {
		return format.NullPointer, nil, err
	}

	return ptr, &Corpus{offsets: offsets}, nil
}

// DecodeCorpus reads the offset table at the cursor position. The table is
// validated so that every later text resolution stays inside the buffer.
func DecodeCorpus(r *codec.Reader) (*Corpus, error) {
	table := r.Pos()
	n := r.ReadLength(8)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: corpus at %d has an empty offset table", errs.ErrCorruptIndex, table)
	}

	offsets := make([]format.Pointer, n)
	for i := range offsets {
		offsets[i] = r.ReadCompressedPointer()
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	for i, off := range offsets {
		if off >= table || (i > 0 && off < offsets[i-1]) {
			return nil, fmt.Errorf("%w: corpus at %d has invalid sentence offset %d at index %d",
				errs.ErrCorruptIndex, table, off, i)
		}
	}

	return &Corpus{r: r.Seek(0), offsets: offsets}, nil
}

// NumSentences returns the number of sentences, excluding the sentinel.
func (c *Corpus) NumSentences() int {
	return len(c.offsets) - 1
}

// SentenceLen returns the byte length of sentence id.
func (c *Corpus) SentenceLen(id uint32) (int, error) {
	if int64(id) >= int64(c.NumSentences()) {
		return 0, fmt.Errorf("sentence %d out of range [0, %d)", id, c.NumSentences())
	}

	return int(c.offsets[id+1] - c.offsets[id]), nil //nolint:gosec
}

// CheckSpan validates that s addresses a byte range inside one sentence.
func (c *Corpus) CheckSpan(s Span) error {
	n, err := c.SentenceLen(s.SentenceID)
	if err != nil {
		return err
	}
	if s.Start > s.End || int64(s.End) > int64(n) {
		return fmt.Errorf("span [%d, %d) outside sentence %d of length %d", s.Start, s.End, s.SentenceID, n)
	}

	return nil
}

func (c *Corpus) bytes(from, to format.Pointer) ([]byte, error) {
	if c.r == nil {
		return nil, fmt.Errorf("%w: corpus has no backing buffer", errs.ErrCorruptIndex)
	}
	cur := c.r.Seek(from)
	b := cur.ReadBytes(int(to - from)) //nolint:gosec
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return b, nil
}

// Sentence returns the full text of sentence id.
func (c *Corpus) Sentence(id uint32) (string, error) {
	if _, err := c.SentenceLen(id); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCorruptIndex, err)
	}
	b, err := c.bytes(c.offsets[id], c.offsets[id+1])

	return string(b), err
}

// LeftContext returns the text of sentence id before byte boundary.
func (c *Corpus) LeftContext(id uint32, boundary uint32) (string, error) {
	return c.Phrase(id, 0, boundary)
}

// RightContext returns the text of sentence id from byte boundary to its end.
func (c *Corpus) RightContext(id uint32, boundary uint32) (string, error) {
	n, err := c.SentenceLen(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCorruptIndex, err)
	}

	return c.Phrase(id, boundary, uint32(n)) //nolint:gosec
}

// Phrase returns the text of sentence id between byte offsets start and end.
func (c *Corpus) Phrase(id uint32, start, end uint32) (string, error) {
	s := Span{SentenceID: id, Start: start, End: end}
	if err := c.CheckSpan(s); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCorruptIndex, err)
	}
	base := c.offsets[id]
	b, err := c.bytes(base+format.Pointer(start), base+format.Pointer(end))

	return string(b), err
}

// Span is one side of an Example: a byte range within a sentence.
type Span struct {
	SentenceID uint32
	Start      uint32
	End        uint32
}

// Context is a sentence split around an example phrase.
type Context struct {
	Left   string
	Phrase string
	Right  string
}

// Sentence returns the full sentence text.
func (c Context) Sentence() string {
	return c.Left + c.Phrase + c.Right
}

// Resolve splits the sentence addressed by s into left context, phrase and
// right context.
func (s Span) Resolve(c *Corpus) (Context, error) {
	left, err := c.LeftContext(s.SentenceID, s.Start)
	if err != nil {
		return Context{}, err
	}
	phrase, err := c.Phrase(s.SentenceID, s.Start, s.End)
	if err != nil {
		return Context{}, err
	}
	right, err := c.RightContext(s.SentenceID, s.End)
	if err != nil {
		return Context{}, err
	}

	return Context{Left: left, Phrase: phrase, Right: right}, nil
}
