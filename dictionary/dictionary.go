package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/arloliu/ctxdict/codec"
	"github.com/arloliu/ctxdict/compress"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/internal/hash"
	"github.com/arloliu/ctxdict/internal/mmap"
	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
	"github.com/arloliu/ctxdict/record"
	"github.com/arloliu/ctxdict/section"
	"github.com/arloliu/ctxdict/trie"
)

// Dictionary is an opened, read-only dictionary file.
type Dictionary struct {
	name    string
	data    []byte
	mapping *mmap.Mapping
	closer  io.Closer
	trailer section.Trailer
	trie    *trie.Trie
	src     *record.Corpus
	trg     *record.Corpus
	logger  *logger.Logger
	closed  atomic.Bool
}

// Info describes an opened dictionary.
type Info struct {
	Name            string
	Size            int
	Mapped          bool
	Trailer         section.Trailer
	SourceSentences int
	TargetSentences int
	// RootChildren is the number of distinct first bytes of the phrases.
	RootChildren int
}

// Open opens a dictionary over an in-memory file image. The slice is
// retained and must not be modified while the dictionary is in use.
//
// It returns errs.ErrCorruptIndex if the trailer, the root node or either
// corpus offset table cannot be decoded.
func Open(data []byte, opts ...OpenOption) (*Dictionary, error) {
	cfg := defaultOpenConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d, err := open(data, cfg)
	cfg.logger.LogOpen(context.Background(), cfg.name, len(data), false, err)

	return d, err
}

// OpenCompressed unpacks a packaged model and opens it in memory.
func OpenCompressed(packed []byte, ct format.CompressionType, opts ...OpenOption) (*Dictionary, error) {
	cfg := defaultOpenConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	data, err := compress.Unpack(packed, ct)
	if err != nil {
		err = fmt.Errorf("unpack %s model: %w", ct, err)
		cfg.release()
		cfg.logger.LogOpen(context.Background(), cfg.name, len(packed), false, err)

		return nil, err
	}

	d, err := open(data, cfg)
	cfg.logger.LogOpen(context.Background(), cfg.name, len(data), false, err)

	return d, err
}

// OpenFile opens the dictionary file at path.
//
// Files named *.dict.bin are memory mapped unless WithInMemory is given.
// Packaged models (*.dict.bin.zst, *.dict.bin.s2, *.dict.bin.lz4) are read
// and unpacked into memory. The default name is the file name without the
// model suffix.
func OpenFile(path string, opts ...OpenOption) (*Dictionary, error) {
	cfg := defaultOpenConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	id, ct, ok := format.SplitModelName(base, format.ModelSuffix)
	if !ok {
		id, ct = base, format.CompressionNone
	}
	if cfg.name == "" {
		cfg.name = id
	}

	d, mapped, err := openFile(path, ct, cfg)
	size := 0
	if d != nil {
		size = len(d.data)
	}
	cfg.logger.LogOpen(context.Background(), cfg.name, size, mapped, err)

	return d, err
}

func openFile(path string, ct format.CompressionType, cfg *openConfig) (*Dictionary, bool, error) {
	if ct == format.CompressionNone && !cfg.inMemory {
		m, err := mmap.Open(path)
		if err != nil {
			cfg.release()
			return nil, false, err
		}
		if err := m.Advise(cfg.access); err != nil {
			cfg.logger.Warn("madvise failed", "name", cfg.name, "error", err)
		}

		d, err := open(m.Bytes(), cfg)
		if err != nil {
			_ = m.Close()

			return nil, true, fmt.Errorf("open %s: %w", path, err)
		}
		d.mapping = m

		return d, true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cfg.release()
		return nil, false, err
	}
	if ct != format.CompressionNone {
		if data, err = compress.Unpack(data, ct); err != nil {
			cfg.release()
			return nil, false, fmt.Errorf("unpack %s: %w", path, err)
		}
	}

	d, err := open(data, cfg)
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}

	return d, false, nil
}

func open(data []byte, cfg *openConfig) (*Dictionary, error) {
	d := &Dictionary{
		name:   cfg.name,
		data:   data,
		logger: cfg.logger,
	}
	if d.name != "" {
		d.logger = d.logger.WithDictionary(d.name)
	}

	if err := d.trailer.Parse(data); err != nil {
		cfg.release()
		return nil, err
	}

	// The trailer is not part of any record.
	r := codec.NewReader(data[:len(data)-format.TrailerSize])

	var err error
	if d.trie, err = trie.Open(r, d.trailer.Root); err != nil {
		cfg.release()
		return nil, fmt.Errorf("root node: %w", err)
	}
	if d.src, err = record.DecodeCorpus(r.Seek(d.trailer.SourceCorpus)); err != nil {
		cfg.release()
		return nil, fmt.Errorf("source corpus: %w", err)
	}
	if d.trg, err = record.DecodeCorpus(r.Seek(d.trailer.TargetCorpus)); err != nil {
		cfg.release()
		return nil, fmt.Errorf("target corpus: %w", err)
	}
	d.closer = cfg.closer

	return d, nil
}

// Name returns the dictionary name, which may be empty.
func (d *Dictionary) Name() string {
	return d.name
}

// Search returns the translations of exactly query, in stored order.
//
// A phrase that is not in the dictionary yields an empty slice and a nil
// error. Frequencies are the occurrence count of each translation divided by
// the sum over all translations of the phrase.
func (d *Dictionary) Search(query string) ([]Translation, error) {
	if d.closed.Load() {
		return nil, errs.ErrClosed
	}

	phrase, found, err := d.trie.Search([]byte(query))
	if err != nil || !found {
		d.logger.LogSearch(context.Background(), query, 0, err)
		if err != nil {
			return nil, err
		}

		return []Translation{}, nil
	}

	total := phrase.TotalOccurrences()
	result := make([]Translation, len(phrase.Translations))
	for i := range phrase.Translations {
		result[i] = newTranslation(d, &phrase.Translations[i], total)
	}
	d.logger.LogSearch(context.Background(), query, len(result), nil)

	return result, nil
}

// Autocomplete returns up to ten phrases that start with query, ordered by
// descending weight. A phrase equal to query is included. An unknown prefix
// yields an empty slice and a nil error.
func (d *Dictionary) Autocomplete(query string) ([]string, error) {
	if d.closed.Load() {
		return nil, errs.ErrClosed
	}

	result, err := d.trie.Autocomplete([]byte(query))
	d.logger.LogAutocomplete(context.Background(), query, len(result), err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Completions is Autocomplete with phrase weights.
func (d *Dictionary) Completions(query string) ([]trie.Completion, error) {
	if d.closed.Load() {
		return nil, errs.ErrClosed
	}

	result, err := d.trie.Completions([]byte(query))
	d.logger.LogAutocomplete(context.Background(), query, len(result), err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Info returns the layout summary of the dictionary.
//
// Info is safe to call after Close: it reports metadata decoded at open time
// and never touches the file contents.
func (d *Dictionary) Info() Info {
	return Info{
		Name:            d.name,
		Size:            len(d.data),
		Mapped:          d.mapping != nil,
		Trailer:         d.trailer,
		SourceSentences: d.src.NumSentences(),
		TargetSentences: d.trg.NumSentences(),
		RootChildren:    len(d.trie.Root().Children),
	}
}

// Checksum returns the xxHash64 of the whole file, as reported by Build.
func (d *Dictionary) Checksum() (uint64, error) {
	if d.closed.Load() {
		return 0, errs.ErrClosed
	}

	return hash.Checksum(d.data), nil
}

// Close releases the file mapping and the closer registered with
// WithCloser, if any. It is idempotent.
func (d *Dictionary) Close() error {
	if d.closed.Swap(true) {
		return nil
	}

	var errList []error
	if d.mapping != nil {
		errList = append(errList, d.mapping.Close())
	}
	if d.closer != nil {
		errList = append(errList, d.closer.Close())
	}

	return errors.Join(errList...)
}
