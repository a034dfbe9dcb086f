package domain

import (
	"context"
	"time"
)

// SnapshotRepository persists the task collection between runs.
type SnapshotRepository interface {
	// Load returns the saved records in insertion order.
	// A missing snapshot yields an empty slice and no error.
	Load() ([]TaskRecord, error)

	// Save replaces the snapshot with records.
	Save(records []TaskRecord) error
}

// ExportSink writes the export view somewhere (e.g. a CSV file).
type ExportSink interface {
	// Export writes the header and rows in order.
	Export(ctx context.Context, rows []ExportRow) error
}

// UpsertSink persists the upsert view into a keyed relational table.
type UpsertSink interface {
	// Upsert inserts each row, replacing any existing row with the same (title, due_date).
	Upsert(ctx context.Context, rows []UpsertRow) error

	// Close releases the underlying connection.
	Close() error
}

// UpsertSinkOpener opens an UpsertSink on demand.
type UpsertSinkOpener func(ctx context.Context) (UpsertSink, error)

// SuggestionSource fetches a single suggested task title.
type SuggestionSource interface {
	Suggest(ctx context.Context) (string, error)
}

// PageScraper extracts list item texts from a web page.
type PageScraper interface {
	// Scrape returns the text of each list item in document order.
	// An empty result is not an error.
	Scrape(ctx context.Context, url string) ([]string, error)
}

// Logger records operational events.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// LocalConfigInfo returns information about the local config file.
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global path.
	InitGlobalConfig() error
}

// ConfigInfo describes a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
