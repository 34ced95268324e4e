// Package trie implements the compressed prefix tree that indexes source
// phrases inside a dictionary file.
//
// A Node is the immutable on-disk form: an edge label (the bytes added to the
// parent's path), pointers to child nodes ordered by the first byte of their
// label, an optional pointer to the phrase that ends at the node, and up to
// format.TopDescendants phrase pointers ranked by weight. The ranked list
// covers the node's own phrase and every phrase below it, so autocomplete is
// answered from a single node without walking its subtree.
//
// A Builder produces nodes from a phrase stream sorted by unsigned byte
// order. It keeps only the rightmost open path of the tree on a stack:
// whenever the next phrase diverges from that path, the frames below the
// divergence point are finished, written, and attached to their parents.
// Children are therefore always written before their parents and the root
// is written last.
//
// # Node Layout
//
//	Field          | Type            | Description
//	---------------|-----------------|--------------------------------------
//	SubstringLen   | int32           | Length of the edge label
//	Substring      | bytes           | Edge label
//	ChildCount     | uint8           | Number of children (max 255)
//	Children       | uint64 * count  | Child node offsets, by first byte
//	Phrase         | uint64          | Phrase record offset, 0 if none
//	TopCount       | int32           | Number of ranked descendants (max 10)
//	Top            | uint64 * count  | Phrase offsets, best first
//
// # Concurrency
//
// Trie values are safe for concurrent use: every query works on its own
// codec.Reader cursor over the shared immutable buffer. Builder is not.
package trie
