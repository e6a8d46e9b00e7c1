// Package resource provides the run-scoped, read-through cache over the
// dataset mirror.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when a requested resource document does not exist.
var ErrNotFound = errors.New("resource not found")

// Store loads and caches resource documents keyed by path. Values are never
// evicted; a Store lives for a single collation run.
type Store struct {
	fs    afero.Fs
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]any

	reads atomic.Int64
	hits  atomic.Int64
}

// Stats reports cache activity for diagnostics.
type Stats struct {
	Reads  int64 // documents read from the filesystem
	Hits   int64 // loads answered from the cache
	Cached int   // distinct paths held
}

// NewStore creates a store reading from fsys. Paths are relative to its root.
func NewStore(fsys afero.Fs) *Store {
	return &Store{
		fs:    fsys,
		cache: make(map[string]any),
	}
}

// NewDirStore creates a store rooted at a dataset directory on disk.
func NewDirStore(root string) *Store {
	return NewStore(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), root)))
}

// Load returns the document at path decoded into a T. The first load of a
// path reads and parses the file; later loads return the same value.
// Concurrent first loads of one path share a single read.
func Load[T any](ctx context.Context, s *Store, path string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if v, ok := s.lookup(path); ok {
		s.hits.Add(1)
		return cast[T](path, v)
	}

	v, err, _ := s.group.Do(path, func() (any, error) {
		if v, ok := s.lookup(path); ok {
			return v, nil
		}
		value := new(T)
		if err := s.read(path, value); err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[path] = value
		s.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return cast[T](path, v)
}

// Get loads the resource of the given kind and id.
func Get[T any](ctx context.Context, s *Store, kind Kind, id int) (*T, error) {
	return Load[T](ctx, s, Path(kind, id))
}

// Follow resolves a reference locator to its id and loads the resource.
func Follow[T any](ctx context.Context, s *Store, kind Kind, ref string) (*T, error) {
	id, err := IDFromRef(ref)
	if err != nil {
		return nil, err
	}
	return Get[T](ctx, s, kind, id)
}

// Exists reports whether the resource document of the given kind and id is
// present. It is the explicit probe for resources that may legitimately be
// missing from a mirror.
func (s *Store) Exists(kind Kind, id int) (bool, error) {
	path := Path(kind, id)
	if _, ok := s.lookup(path); ok {
		return true, nil
	}
	return afero.Exists(s.fs, path)
}

// IDs lists the numeric subdirectory names under a kind, ascending.
// Entries that are not numerically named directories are ignored.
func (s *Store) IDs(kind Kind) ([]int, error) {
	entries, err := afero.ReadDir(s.fs, string(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, kind)
		}
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	var ids []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.Atoi(entry.Name())
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// Stats returns a snapshot of cache activity.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	cached := len(s.cache)
	s.mu.RUnlock()
	return Stats{
		Reads:  s.reads.Load(),
		Hits:   s.hits.Load(),
		Cached: cached,
	}
}

func (s *Store) lookup(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.cache[path]
	return v, ok
}

func (s *Store) read(path string, dst any) error {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	s.reads.Add(1)

	if err := json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("failed to parse JSON from %s: %w", path, err)
	}
	return nil
}

func cast[T any](path string, v any) (*T, error) {
	value, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("resource %s already decoded as %T, requested %T", path, v, value)
	}
	return value, nil
}
