package registry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/ctxdict/blobstore"
	"github.com/arloliu/ctxdict/dictionary"
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/format"
	"github.com/arloliu/ctxdict/internal/options"
	"github.com/arloliu/ctxdict/logger"
)

// Registry is a fixed set of opened dictionaries keyed by id.
type Registry struct {
	dicts  map[string]*dictionary.Dictionary
	ids    []string
	logger *logger.Logger
	closed atomic.Bool
}

// model is one store entry selected for loading.
type model struct {
	id   string
	name string
	ct   format.CompressionType
}

// Load opens every model in store.
//
// Names that do not end with the model suffix (plus an optional compression
// extension) are ignored. When an id exists both unpacked and packaged, the
// unpacked model wins. Any failure aborts the load and closes the models
// opened so far.
func Load(ctx context.Context, store blobstore.Store, opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	start := time.Now()
	reg, err := load(ctx, store, cfg)
	n := 0
	if reg != nil {
		n = len(reg.ids)
	}
	cfg.logger.LogLoad(ctx, n, time.Since(start), err)

	return reg, err
}

func load(ctx context.Context, store blobstore.Store, cfg *config) (*Registry, error) {
	models, err := discover(ctx, store, cfg)
	if err != nil {
		return nil, err
	}

	opened := make([]*dictionary.Dictionary, len(models))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, m := range models {
		g.Go(func() error {
			d, err := openModel(gctx, store, m, cfg.logger)
			if err != nil {
				return fmt.Errorf("load dictionary %q: %w", m.id, err)
			}
			opened[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, d := range opened {
			if d != nil {
				_ = d.Close()
			}
		}

		return nil, err
	}

	reg := &Registry{
		dicts:  make(map[string]*dictionary.Dictionary, len(models)),
		logger: cfg.logger,
	}
	for i, m := range models {
		reg.dicts[m.id] = opened[i]
	}
	reg.ids = slices.Sorted(maps.Keys(reg.dicts))

	return reg, nil
}

// discover lists store and picks one model per id.
func discover(ctx context.Context, store blobstore.Store, cfg *config) ([]model, error) {
	names, err := store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	byID := make(map[string]model, len(names))
	for _, name := range names {
		id, ct, ok := format.SplitModelName(name, cfg.suffix)
		if !ok || (cfg.only != nil && !cfg.only[id]) {
			continue
		}
		if prev, dup := byID[id]; dup {
			if prev.ct == format.CompressionNone || ct != format.CompressionNone {
				cfg.logger.Warn("duplicate dictionary model ignored", "dictionary", id, "name", name, "using", prev.name)
				continue
			}
			cfg.logger.Warn("duplicate dictionary model ignored", "dictionary", id, "name", prev.name, "using", name)
		}
		byID[id] = model{id: id, name: name, ct: ct}
	}

	models := slices.Collect(maps.Values(byID))
	slices.SortFunc(models, func(a, b model) int {
		return cmp.Compare(a.id, b.id)
	})

	return models, nil
}

func openModel(ctx context.Context, store blobstore.Store, m model, l *logger.Logger) (*dictionary.Dictionary, error) {
	blob, err := store.Open(ctx, m.name)
	if err != nil {
		return nil, err
	}

	data, err := blob.Bytes(ctx)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	opts := []dictionary.OpenOption{dictionary.WithName(m.id), dictionary.WithLogger(l)}
	if m.ct != format.CompressionNone {
		// Unpacking copies, the blob is not needed afterwards.
		defer blob.Close()
		return dictionary.OpenCompressed(data, m.ct, opts...)
	}

	return dictionary.Open(data, append(opts, dictionary.WithCloser(blob))...)
}

// List returns the sorted ids of the loaded dictionaries.
func (r *Registry) List() []string {
	return slices.Clone(r.ids)
}

// Get returns the dictionary with the given id.
func (r *Registry) Get(id string) (*dictionary.Dictionary, error) {
	if r.closed.Load() {
		return nil, errs.ErrClosed
	}

	d, ok := r.dicts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrDictionaryNotFound, id)
	}

	return d, nil
}

// Search looks up query in dictionary id and resolves the context of every
// example. Examples that cannot be resolved are logged and left out; the
// rest of the result is still returned.
func (r *Registry) Search(id, query string) ([]Translation, error) {
	d, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	found, err := d.Search(query)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	result := make([]Translation, len(found))
	for i, t := range found {
		result[i] = newTranslation(t, func(ex dictionary.Example, err error) {
			r.logger.WithDictionary(id).LogExampleSkipped(ctx, ex.Code(), err)
		})
	}

	return result, nil
}

// Autocomplete returns up to ten completions of query in dictionary id.
func (r *Registry) Autocomplete(id, query string) ([]string, error) {
	d, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	return d.Autocomplete(query)
}

// Close closes every dictionary. It is idempotent.
func (r *Registry) Close() error {
	if r.closed.Swap(true) {
		return nil
	}

	var errList []error
	for _, id := range r.ids {
		if err := r.dicts[id].Close(); err != nil {
			errList = append(errList, fmt.Errorf("close %q: %w", id, err))
		}
	}

	return errors.Join(errList...)
}
