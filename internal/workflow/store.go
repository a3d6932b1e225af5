package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// Store reads and writes the workflow document file.
// A mutex serializes access so concurrent posts cannot interleave writes.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk.
// Returns ErrNotFound when the file does not exist yet.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read workflow file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse workflow file: %w", err)
	}
	doc.applyDefaults()
	return &doc, nil
}

// Save writes the document to disk, pretty-printed.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.applyDefaults()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal workflow file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write workflow file: %w", err)
	}
	return nil
}
