// Package ctxdict provides a read-only bilingual phrase dictionary with
// in-context usage examples.
//
// A dictionary model is one immutable binary file. It is built once from a
// stream of source phrases sorted by their bytes, each carrying a ranking
// weight and its translations, plus the parallel corpus the phrases were
// extracted from. At query time the model is memory mapped and answers two
// kinds of questions:
//
//   - exact lookup: the translations of a phrase, each with its relative
//     frequency and sample sentences split around the phrase
//   - autocomplete: the ten best weighted phrases starting with a prefix,
//     answered without scanning the subtree below the prefix
//
// # Core Features
//
//   - Compressed trie addressed by absolute byte offsets, queried in place
//   - Single-pass build with a bounded stack, no in-memory tree
//   - Top ten completions precomputed at every trie node
//   - Lock-free concurrent queries
//   - Optional zstd, s2 or lz4 packaged models
//   - Model stores on local disk, S3 or MinIO
//
// # Basic Usage
//
// Building a model:
//
//	phrases, _ := os.Open("phrases.sorted.tsv")
//	src, _ := os.Open("corpus.en")
//	trg, _ := os.Open("corpus.fr")
//	out, _ := os.Create("en-fr.dict.bin")
//
//	stats, err := ctxdict.Build(phrases, src, trg, out)
//
// Querying it:
//
//	d, err := ctxdict.OpenFile("en-fr.dict.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	translations, _ := d.Search("good morning")
//	completions, _ := d.Autocomplete("good")
//
// Serving a directory of models:
//
//	reg, err := ctxdict.LoadRegistry(ctx, blobstore.NewLocalStore("models"))
//	result, err := reg.Search("en-fr", "good morning")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dictionary
// and registry packages. For advanced usage, use those packages directly.
package ctxdict

import (
	"context"
	"io"

	"github.com/arloliu/ctxdict/blobstore"
	"github.com/arloliu/ctxdict/dictionary"
	"github.com/arloliu/ctxdict/registry"
)

// Build compiles a dictionary model from a sorted phrase stream and the two
// sides of the parallel corpus, writing it to out.
//
// See dictionary.Build for the input formats and the available options.
func Build(phrases, src, trg io.Reader, out io.Writer, opts ...dictionary.BuildOption) (dictionary.BuildStats, error) {
	return dictionary.Build(phrases, src, trg, out, opts...)
}

// Open opens a model held in memory.
func Open(data []byte, opts ...dictionary.OpenOption) (*dictionary.Dictionary, error) {
	return dictionary.Open(data, opts...)
}

// OpenFile opens a model file. Unpacked models are memory mapped, packaged
// models (.zst, .s2, .lz4) are unpacked into memory.
//
// Example:
//
//	d, err := ctxdict.OpenFile("en-fr.dict.bin", dictionary.WithInMemory())
func OpenFile(path string, opts ...dictionary.OpenOption) (*dictionary.Dictionary, error) {
	return dictionary.OpenFile(path, opts...)
}

// LoadRegistry opens every model found in store.
func LoadRegistry(ctx context.Context, store blobstore.Store, opts ...registry.Option) (*registry.Registry, error) {
	return registry.Load(ctx, store, opts...)
}
