// Package yamlstore provides a YAML file-based implementation of SnapshotRepository.
package yamlstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Store implements domain.SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)

// document is the YAML file structure.
type document struct {
	Tasks   []domain.TaskRecord `yaml:"tasks"`
	Version int                 `yaml:"version"`
}

const schemaVersion = 1

// Store keeps the snapshot in a single YAML document.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a new Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved records, or an empty slice if the file does not exist.
func (s *Store) Load() ([]domain.TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.TaskRecord{}, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}
	if doc.Tasks == nil {
		doc.Tasks = []domain.TaskRecord{}
	}
	return doc.Tasks, nil
}

// Save replaces the snapshot with records.
func (s *Store) Save(records []domain.TaskRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []domain.TaskRecord{}
	}
	data, err := yaml.Marshal(&document{Version: schemaVersion, Tasks: records})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
