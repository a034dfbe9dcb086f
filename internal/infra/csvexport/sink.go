// Package csvexport writes the task export view as a CSV file.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Sink implements domain.ExportSink.
var _ domain.ExportSink = (*Sink)(nil)

// Sink writes rows to a CSV file, replacing any previous content.
type Sink struct {
	path string
}

// New creates a Sink writing to path.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the output file path.
func (s *Sink) Path() string {
	return s.path
}

// Export writes the header followed by one line per row.
// The file is written to a temp path and renamed, so a failed export leaves the old file intact.
func (s *Sink) Export(ctx context.Context, rows []domain.ExportRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath) //nolint:gosec // Path comes from user config
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := writeRows(f, rows); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename export file: %w", err)
	}
	return nil
}

func writeRows(f *os.File, rows []domain.ExportRow) error {
	w := csv.NewWriter(f)
	if err := w.Write(domain.ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Fields()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
