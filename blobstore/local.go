package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arloliu/ctxdict/internal/mmap"
)

// LocalStore implements Store using a local directory.
type LocalStore struct {
	root   string
	access mmap.AccessPattern
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// Opened blobs are mapped with random access advice.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root, access: mmap.AccessRandom}
}

// WithAccessPattern returns a copy of the store that advises opened
// mappings with p.
func (s *LocalStore) WithAccessPattern(p mmap.AccessPattern) *LocalStore {
	return &LocalStore{root: s.root, access: p}
}

// Root returns the directory of the store.
func (s *LocalStore) Root() string {
	return s.root
}

// Open maps a blob read-only.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	// Advice is a hint; a failure leaves the mapping usable.
	_ = m.Advise(s.access)

	return &localBlob{m: m}, nil
}

// Put writes data to a temporary file in the same directory and renames it
// over name, so readers never observe a partial blob.
func (s *LocalStore) Put(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// List returns the names of the regular files in the root directory that
// start with prefix. A missing root yields an empty list.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(e.Name(), prefix) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	return names, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return int64(b.m.Size())
}

func (b *localBlob) Bytes(_ context.Context) ([]byte, error) {
	if b.m.Size() > 0 && b.m.Bytes() == nil {
		return nil, mmap.ErrClosed
	}

	return b.m.Bytes(), nil
}
