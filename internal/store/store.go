package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jyang234/taskpad/internal/model"
)

// FormatError reports a store file whose top-level JSON value is not an
// array. The file is left untouched; there is no auto-repair.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("store file %s must contain a JSON array", e.Path)
}

// Store persists the full task collection as a single JSON array on disk.
// The whole collection is the unit of load and save; there is no locking, so
// concurrent external writers can lose updates (last rename wins).
type Store struct {
	path string
}

// New creates a store backed by the given file path. The file need not exist.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection. A missing file is an empty collection,
// not an error.
func (s *Store) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &FormatError{Path: s.path}
		}
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	// A JSON null leaves the slice nil without an error; it is still not
	// an array.
	if raw == nil {
		return nil, &FormatError{Path: s.path}
	}

	tasks := make([]model.Task, 0, len(raw))
	for _, item := range raw {
		t, err := model.Decode(item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save rewrites the whole collection, creating parent directories as needed.
// Writes go through a temp file and rename so a reader never sees a torn
// file.
func (s *Store) Save(tasks []model.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
