// Package jsonstore provides a JSON file-based implementation of SnapshotRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Store implements domain.SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)

const schemaVersion = 1

// storeData represents the JSON file structure.
type storeData struct {
	Tasks []domain.TaskRecord `json:"tasks"`
	Meta  meta                `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	SavedAt time.Time `json:"savedAt"`
	Version int       `json:"version"`
}

// Store implements domain.SnapshotRepository using a JSON file.
type Store struct {
	now      func() time.Time
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
		now:      time.Now,
	}
}

// Load returns the saved records, or an empty slice if no snapshot exists yet.
func (s *Store) Load() ([]domain.TaskRecord, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

// Save replaces the snapshot with records.
func (s *Store) Save(records []domain.TaskRecord) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	if records == nil {
		records = []domain.TaskRecord{}
	}
	return s.write(&storeData{
		Tasks: records,
		Meta:  meta{Version: schemaVersion, SavedAt: s.now().UTC()},
	})
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeData{Tasks: []domain.TaskRecord{}}, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}
	if data.Tasks == nil {
		data.Tasks = []domain.TaskRecord{}
	}
	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
