package trie

import (
	"fmt"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
)

// Node is the immutable, decoded form of a trie node.
//
// Substring aliases the index buffer when produced by DecodeNode and must not
// be modified.
type Node struct {
	Substring      []byte
	Children       []format.Pointer
	Phrase         format.Pointer
	TopDescendants []format.Pointer
}

// HasPhrase reports whether a phrase terminates exactly at this node.
func (n *Node) HasPhrase() bool {
	return !n.Phrase.IsNull()
}

// Encode appends the node and returns its offset.
//
// It returns errs.ErrTooManyChildren if the node has more children than the
// one-byte child count can describe.
func (n *Node) Encode(w *codec.Writer) (format.Pointer, error) {
	if len(n.Children) > format.MaxChildren {
		return format.NullPointer, fmt.Errorf("%w: %d children under %q",
			errs.ErrTooManyChildren, len(n.Children), n.Substring)
	}

	ptr := w.WriteCompressedInt(int32(len(n.Substring))) //nolint:gosec
	w.WriteBytes(n.Substring)

	w.WriteUint8(uint8(len(n.Children))) //nolint:gosec
	for _, c := range n.Children {
		w.WriteCompressedPointer(c)
	}

	w.WriteCompressedPointer(n.Phrase)

	w.WriteCompressedInt(int32(len(n.TopDescendants))) //nolint:gosec
	for _, p := range n.TopDescendants {
		w.WriteCompressedPointer(p)
	}

	return ptr, nil
}

// DecodeNode reads a node at the cursor position.
func DecodeNode(r *codec.Reader) (Node, error) {
	var n Node
	n.Substring = r.ReadBytes(r.ReadLength(1))

	if count := int(r.ReadUint8()); count > 0 {
		n.Children = make([]format.Pointer, 0, count)
		for range count {
			n.Children = append(n.Children, r.ReadCompressedPointer())
		}
	}

	n.Phrase = r.ReadCompressedPointer()

	if count := r.ReadLength(8); count > 0 {
		n.TopDescendants = make([]format.Pointer, 0, count)
		for range count {
			n.TopDescendants = append(n.TopDescendants, r.ReadCompressedPointer())
		}
	}

	if err := r.Err(); err != nil {
		return Node{}, err
	}

	return n, nil
}

// readFirstByte returns the first byte of the edge label of the node at the
// cursor position without decoding the rest of it. Only the root may have an
// empty label, so an empty label here means the index is corrupt.
func readFirstByte(r *codec.Reader) (byte, error) {
	n := r.ReadLength(1)
	if r.Err() == nil && n == 0 {
		return 0, fmt.Errorf("%w: child node at %d has an empty substring", errs.ErrCorruptIndex, r.Pos()-4)
	}
	b := r.ReadUint8()
	if err := r.Err(); err != nil {
		return 0, err
	}

	return b, nil
}
