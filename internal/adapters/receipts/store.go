// Package receipts records which support-library archives have been installed.
package receipts

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/toysetup/internal/core/domain"
	"go.trai.ch/toysetup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the name of the receipts file inside the library directory.
const Filename = ".receipts.json"

// Store implements ports.ReceiptStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[domain.TargetTriple]domain.Receipt
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[domain.TargetTriple]domain.Receipt),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open satisfies ports.ReceiptStoreOpener.
func Open(path string) (ports.ReceiptStore, error) {
	return NewStore(path)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read receipts"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal receipts"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal receipts")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for receipts")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write receipts"), "path", s.path)
	}

	return nil
}

// Get retrieves the receipt for a target triple.
// Returns nil, nil if not found.
func (s *Store) Get(triple domain.TargetTriple) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.cache[triple]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Put stores the receipt and persists the whole set.
func (s *Store) Put(r domain.Receipt) error {
	s.mu.Lock()
	s.cache[r.Triple] = r
	s.mu.Unlock()

	return s.save()
}
