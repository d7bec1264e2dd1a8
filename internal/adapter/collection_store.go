// Package adapter contains IO and presentation adapters for the linterman CLI.
package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	m "linterman.dev/pkg/linterman/internal/model"
)

// CollectionStore abstracts collection persistence so command logic can be
// tested without touching the disk.
type CollectionStore interface {
	// Load reads a collection from path, or from stdin when path is empty
	// or "-".
	Load(path string) (*m.Collection, error)

	// Decode reads a collection from an arbitrary reader.
	Decode(r io.Reader) (*m.Collection, error)

	// Write serializes the collection to path, pretty-printed.
	Write(path string, c *m.Collection) error
}

// FileCollectionStore is the disk-backed CollectionStore.
type FileCollectionStore struct{}

// NewFileCollectionStore constructs a FileCollectionStore.
func NewFileCollectionStore() *FileCollectionStore {
	return &FileCollectionStore{}
}

// Load reads and decodes the collection at path, falling back to stdin when
// no path is given.
func (s *FileCollectionStore) Load(path string) (*m.Collection, error) {
	if path == "" || path == "-" {
		return s.Decode(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	c, err := s.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", path, err)
	}

	return c, nil
}

// Decode parses a collection document from r.
func (s *FileCollectionStore) Decode(r io.Reader) (*m.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var c m.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}

	return &c, nil
}

// Write serializes the collection to path with two-space indentation.
func (s *FileCollectionStore) Write(path string, c *m.Collection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize collection: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", path, err)
	}

	return nil
}
