package trie

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

var errBuilderFinished = errors.New("trie: builder already finished")

// weightedPointer is a ranked phrase pointer.
type weightedPointer struct {
	pointer format.Pointer
	weight  int64
}

// compareRank orders by descending weight, then descending pointer.
func compareRank(a, b weightedPointer) int {
	switch {
	case a.weight != b.weight:
		if a.weight > b.weight {
			return -1
		}
		return 1
	case a.pointer > b.pointer:
		return -1
	case a.pointer < b.pointer:
		return 1
	default:
		return 0
	}
}

// frame is an open node on the builder stack. str is the full path from the
// root, not just the edge label: the label is only known once the frame is
// attached to its final parent.
type frame struct {
	str      []byte
	children []format.Pointer
	phrase   format.Pointer
	top      []weightedPointer
}

func newFrame(str []byte) *frame {
	return &frame{str: bytes.Clone(str)}
}

func (f *frame) setPhrase(p format.Pointer, weight int64) error {
	if !f.phrase.IsNull() {
		return fmt.Errorf("%w: %q", errs.ErrDuplicatePhrase, f.str)
	}
	if p.IsNull() {
		return fmt.Errorf("%w: phrase %q", errs.ErrNullPointer, f.str)
	}

	f.phrase = p
	f.rank(weightedPointer{pointer: p, weight: weight})

	return nil
}

// rank merges more into the frame's ranked list and keeps the best
// format.TopDescendants entries.
func (f *frame) rank(more ...weightedPointer) {
	f.top = append(f.top, more...)
	slices.SortFunc(f.top, compareRank)
	if len(f.top) > format.TopDescendants {
		f.top = f.top[:format.TopDescendants]
	}
}

// node finalizes the frame into a Node whose label starts at index.
func (f *frame) node(index int) Node {
	n := Node{
		Substring: f.str[index:],
		Children:  f.children,
		Phrase:    f.phrase,
	}
	if len(f.top) > 0 {
		n.TopDescendants = make([]format.Pointer, len(f.top))
		for i, wp := range f.top {
			n.TopDescendants[i] = wp.pointer
		}
	}

	return n
}

// BuilderStats describes the trie produced by a Builder.
type BuilderStats struct {
	Phrases  int // phrases added
	Nodes    int // nodes written, root included
	MaxDepth int // deepest stack, root included
}

// Builder writes a trie from phrases added in strictly ascending unsigned
// byte order.
//
// The first error is sticky: once Add or Finish fails, the builder is
// unusable and every later call returns the same error.
//
// Note: The Builder is NOT thread-safe.
type Builder struct {
	w        *codec.Writer
	stack    []*frame
	stats    BuilderStats
	err      error
	finished bool
}

// NewBuilder creates a Builder that appends nodes to w. Phrase records must
// be written to the same writer by the caller before they are added.
func NewBuilder(w *codec.Writer) *Builder {
	return &Builder{
		w:     w,
		stack: []*frame{newFrame(nil)},
		stats: BuilderStats{MaxDepth: 1},
	}
}

// Stats returns statistics about the nodes written so far.
func (b *Builder) Stats() BuilderStats {
	return b.stats
}

// Add inserts the phrase with source bytes src, stored at offset phrase.
//
// It returns errs.ErrUnsortedInput if src does not sort strictly after the
// previously added phrase, errs.ErrDuplicatePhrase if it equals it,
// errs.ErrNullPointer for a null phrase offset, and errs.ErrTooManyChildren
// if a node overflows.
func (b *Builder) Add(src []byte, phrase format.Pointer, weight int64) error {
	if b.err != nil {
		return b.err
	}
	if b.finished {
		return errBuilderFinished
	}

	if err := b.add(src, phrase, weight); err != nil {
		b.err = err
		return err
	}
	b.stats.Phrases++
	b.stats.MaxDepth = max(b.stats.MaxDepth, len(b.stack))

	return nil
}

func (b *Builder) add(src []byte, phrase format.Pointer, weight int64) error {
	match, err := matchLength(src, b.peek().str)
	if err != nil {
		return err
	}

	leaf := newFrame(src)
	if err := leaf.setPhrase(phrase, weight); err != nil {
		return err
	}

	// Pop until the exposed frame is exactly the common prefix of src and
	// the previous phrase, creating it if it does not exist yet.
	for {
		node := b.pop()
		prev := b.peek()
		prevLen := -1
		if prev != nil {
			prevLen = len(prev.str)
		}

		switch {
		case prevLen > match:
			if err := b.attach(prev, node, prevLen); err != nil {
				return err
			}
		case prevLen == match:
			if err := b.attach(prev, node, prevLen); err != nil {
				return err
			}
			b.push(leaf)

			return nil
		case len(node.str) == match:
			b.push(node)
			b.push(leaf)

			return nil
		default:
			parent := newFrame(src[:match])
			if err := b.attach(parent, node, match); err != nil {
				return err
			}
			b.push(parent)
			b.push(leaf)

			return nil
		}
	}
}

// Finish attaches every open frame to its parent, writes the root and
// returns its offset.
func (b *Builder) Finish() (format.Pointer, error) {
	if b.err != nil {
		return format.NullPointer, b.err
	}
	if b.finished {
		return format.NullPointer, errBuilderFinished
	}
	b.finished = true

	for len(b.stack) > 1 {
		node := b.pop()
		prev := b.peek()
		if err := b.attach(prev, node, len(prev.str)); err != nil {
			b.err = err
			return format.NullPointer, err
		}
	}

	root := b.pop().node(0)
	ptr, err := root.Encode(b.w)
	if err == nil {
		err = b.w.Err()
	}
	if err != nil {
		b.err = err
		return format.NullPointer, err
	}
	b.stats.Nodes++

	return ptr, nil
}

// attach finalizes child with its label starting at index, writes it and
// records it under parent.
func (b *Builder) attach(parent, child *frame, index int) error {
	if len(parent.children) >= format.MaxChildren {
		return fmt.Errorf("%w: node %q already has %d children",
			errs.ErrTooManyChildren, parent.str, len(parent.children))
	}

	parent.rank(child.top...)

	node := child.node(index)
	ptr, err := node.Encode(b.w)
	if err != nil {
		return err
	}
	parent.children = append(parent.children, ptr)
	b.stats.Nodes++

	return nil
}

func (b *Builder) push(f *frame) {
	b.stack = append(b.stack, f)
}

func (b *Builder) pop() *frame {
	f := b.stack[len(b.stack)-1]
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]

	return f
}

func (b *Builder) peek() *frame {
	if len(b.stack) == 0 {
		return nil
	}

	return b.stack[len(b.stack)-1]
}

// matchLength returns the length of the common prefix of src and top, the
// path of the previously added phrase. src must sort strictly after top by
// unsigned byte order.
func matchLength(src, top []byte) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: empty phrase", errs.ErrUnsortedInput)
	}

	n := min(len(src), len(top))
	for i := range n {
		switch {
		case src[i] < top[i]:
			return 0, fmt.Errorf("%w: %q after %q", errs.ErrUnsortedInput, src, top)
		case src[i] > top[i]:
			return i, nil
		}
	}

	if len(top) >= len(src) {
		if len(top) == len(src) {
			return 0, fmt.Errorf("%w: %q", errs.ErrDuplicatePhrase, src)
		}

		return 0, fmt.Errorf("%w: %q after %q", errs.ErrUnsortedInput, src, top)
	}

	return n, nil
}
