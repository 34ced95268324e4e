package trie

import (
	"bytes"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/record"
)

// Trie answers exact and prefix queries against the nodes of an index buffer.
type Trie struct {
	r    *codec.Reader
	root Node
}

// Completion is one autocomplete result.
type Completion struct {
	Text   string
	Weight int64
}

// Open decodes the root node at the given offset.
//
// Parameters:
//   - r: cursor over the complete index buffer; its position is ignored
//   - root: offset of the root node, usually taken from the file trailer
//
// Returns:
//   - *Trie: query handle sharing r's buffer
//   - error: errs.ErrCorruptIndex if the root cannot be decoded
func Open(r *codec.Reader, root format.Pointer) (*Trie, error) {
	node, err := DecodeNode(r.Seek(root))
	if err != nil {
		return nil, err
	}

	return &Trie{r: r, root: node}, nil
}

// Root returns the decoded root node.
func (t *Trie) Root() Node {
	return t.root
}

// Search returns the phrase stored for exactly query.
//
// The boolean result is false when no phrase ends at query; that is not an
// error. An error is only returned for a corrupt index.
func (t *Trie) Search(query []byte) (record.Phrase, bool, error) {
	node, found, err := t.searchNode(query, true)
	if err != nil || !found || !node.HasPhrase() {
		return record.Phrase{}, false, err
	}

	phrase, err := record.DecodePhrase(t.r.Seek(node.Phrase))
	if err != nil {
		return record.Phrase{}, false, err
	}

	return phrase, true, nil
}

// Autocomplete returns the texts of the best ranked phrases starting with
// query, best first. The result is empty when no stored phrase has the prefix.
func (t *Trie) Autocomplete(query []byte) ([]string, error) {
	completions, err := t.Completions(query)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(completions))
	for i, c := range completions {
		texts[i] = c.Text
	}

	return texts, nil
}

// Completions is like Autocomplete but also returns each phrase's weight.
func (t *Trie) Completions(query []byte) ([]Completion, error) {
	node, found, err := t.searchNode(query, false)
	if err != nil || !found {
		return []Completion{}, err
	}

	res := make([]Completion, 0, len(node.TopDescendants))
	for _, p := range node.TopDescendants {
		weight, text, err := record.DecodePhraseText(t.r.Seek(p))
		if err != nil {
			return nil, err
		}
		res = append(res, Completion{Text: text, Weight: weight})
	}

	return res, nil
}

// searchNode walks from the root along query.
//
// With exact set, the returned node's path equals query. Otherwise it is the
// shallowest node whose path starts with query, which covers every phrase
// with that prefix.
func (t *Trie) searchNode(query []byte, exact bool) (Node, bool, error) {
	node := t.root
	from := 0
	for {
		remaining := len(query) - from
		sub := node.Substring
		if exact && len(sub) > remaining {
			return Node{}, false, nil
		}

		n := min(len(sub), remaining)
		if !bytes.Equal(sub[:n], query[from:from+n]) {
			return Node{}, false, nil
		}
		if len(sub) >= remaining {
			return node, true, nil
		}

		from += len(sub)
		child, found, err := t.child(&node, query[from])
		if err != nil || !found {
			return Node{}, false, err
		}
		node = child
	}
}

// child finds the child of n whose label starts with b. Children are ordered
// by first byte, so the lookup is a binary search that only reads the first
// byte of each probed child.
func (t *Trie) child(n *Node, b byte) (Node, bool, error) {
	lo, hi := 0, len(n.Children)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		first, err := readFirstByte(t.r.Seek(n.Children[mid]))
		if err != nil {
			return Node{}, false, err
		}

		switch {
		case first == b:
			child, err := DecodeNode(t.r.Seek(n.Children[mid]))
			if err != nil {
				return Node{}, false, err
			}

			return child, true, nil
		case first < b:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return Node{}, false, nil
}
