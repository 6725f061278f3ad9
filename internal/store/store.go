// Package store loads the workspace's default header and line-item
// datasets with a read-through cache. Cached data is reused until
// Invalidate, which drops everything wholesale; there is no partial
// refresh.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/payapp-dev/payapp/internal/header"
	"github.com/payapp-dev/payapp/internal/items"
	"github.com/payapp-dev/payapp/internal/model"
)

// Workspace data file layout.
const (
	DataDir          = "data"
	HeaderLatestFile = "header-latest.csv"
	HeaderFile       = "header.csv"
	ItemsSeedFile    = "items-seed.csv"
)

// Store caches the default datasets of one workspace root.
type Store struct {
	root string

	mu           sync.Mutex
	headerLoaded bool
	headerRec    model.HeaderRecord
	headerOK     bool
	itemsLoaded  bool
	items        []model.LineItem
}

// New creates a Store rooted at a workspace directory.
func New(root string) *Store {
	return &Store{root: root}
}

// HeaderPath returns the path the default header would be written to.
func (s *Store) HeaderPath() string {
	return filepath.Join(s.root, DataDir, HeaderLatestFile)
}

// ItemsPath returns the path of the items seed file.
func (s *Store) ItemsPath() string {
	return filepath.Join(s.root, DataDir, ItemsSeedFile)
}

// DefaultHeader returns the cached default header record. The latest
// header file is preferred; a missing or empty one falls back to the
// base header file. ok is false when neither holds a data row.
func (s *Store) DefaultHeader() (model.HeaderRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.headerLoaded {
		return s.headerRec, s.headerOK, nil
	}

	for _, name := range []string{HeaderLatestFile, HeaderFile} {
		rec, ok, err := s.readHeaderFile(name)
		if err != nil {
			return model.HeaderRecord{}, false, err
		}
		if ok {
			s.headerLoaded = true
			s.headerRec = rec
			s.headerOK = true
			return rec, true, nil
		}
	}

	s.headerLoaded = true
	s.headerOK = false
	return model.HeaderRecord{}, false, nil
}

func (s *Store) readHeaderFile(name string) (model.HeaderRecord, bool, error) {
	f, err := os.Open(filepath.Join(s.root, DataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return model.HeaderRecord{}, false, nil
		}
		return model.HeaderRecord{}, false, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	rec, ok, err := header.Read(f)
	if err != nil {
		// A malformed file is treated like an absent one so the
		// fallback chain can still run.
		return model.HeaderRecord{}, false, nil
	}
	return rec, ok, nil
}

// DefaultItems returns the cached seed line items. A missing seed file
// is an empty set, not an error.
func (s *Store) DefaultItems() ([]model.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.itemsLoaded {
		f, err := os.Open(s.ItemsPath())
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("opening %s: %w", ItemsSeedFile, err)
			}
			s.itemsLoaded = true
			s.items = nil
		} else {
			defer f.Close()
			loaded, err := items.Read(f)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", ItemsSeedFile, err)
			}
			s.itemsLoaded = true
			s.items = loaded
		}
	}

	out := make([]model.LineItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Invalidate drops all cached datasets; the next read reloads from
// disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headerLoaded = false
	s.itemsLoaded = false
	s.items = nil
}

// SaveHeader writes a header record as the new latest default and
// invalidates the cache so the next read sees it.
func (s *Store) SaveHeader(rec model.HeaderRecord) error {
	dir := filepath.Join(s.root, DataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(s.HeaderPath())
	if err != nil {
		return fmt.Errorf("creating %s: %w", HeaderLatestFile, err)
	}
	defer f.Close()

	if err := header.Write(f, rec); err != nil {
		return fmt.Errorf("writing %s: %w", HeaderLatestFile, err)
	}

	s.Invalidate()
	return nil
}
