// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/tasktracker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSnapshotRepository is a test double for domain.SnapshotRepository.
// Fields are ordered to minimize memory padding.
type MockSnapshotRepository struct {
	Records   []domain.TaskRecord
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// Ensure MockSnapshotRepository implements domain.SnapshotRepository interface.
var _ domain.SnapshotRepository = (*MockSnapshotRepository)(nil)

// Load returns the stored records or error.
func (m *MockSnapshotRepository) Load() ([]domain.TaskRecord, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]domain.TaskRecord{}, m.Records...), nil
}

// Save records the call and stores records unless SaveErr is set.
func (m *MockSnapshotRepository) Save(records []domain.TaskRecord) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = append([]domain.TaskRecord{}, records...)
	return nil
}

// MockExportSink is a test double for domain.ExportSink.
type MockExportSink struct {
	ExportErr error
	Rows      []domain.ExportRow
	Called    bool
}

// Ensure MockExportSink implements domain.ExportSink interface.
var _ domain.ExportSink = (*MockExportSink)(nil)

// Export records the rows and returns the configured error.
func (m *MockExportSink) Export(_ context.Context, rows []domain.ExportRow) error {
	m.Called = true
	if m.ExportErr != nil {
		return m.ExportErr
	}
	m.Rows = append([]domain.ExportRow{}, rows...)
	return nil
}

// MockUpsertSink is a test double for domain.UpsertSink.
// Rows are keyed on (Title, DueDate) like the real sinks.
// Fields are ordered to minimize memory padding.
type MockUpsertSink struct {
	UpsertErr error
	CloseErr  error
	Rows      map[string]domain.UpsertRow
	Order     []string
	Closed    bool
}

// NewMockUpsertSink creates a new MockUpsertSink with initialized maps.
func NewMockUpsertSink() *MockUpsertSink {
	return &MockUpsertSink{
		Rows: make(map[string]domain.UpsertRow),
	}
}

// Ensure MockUpsertSink implements domain.UpsertSink interface.
var _ domain.UpsertSink = (*MockUpsertSink)(nil)

// Upsert stores rows, replacing earlier rows with the same key.
func (m *MockUpsertSink) Upsert(_ context.Context, rows []domain.UpsertRow) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	for _, r := range rows {
		key := UpsertKey(r.Title, r.DueDate)
		if _, ok := m.Rows[key]; !ok {
			m.Order = append(m.Order, key)
		}
		m.Rows[key] = r
	}
	return nil
}

// Close records the call and returns the configured error.
func (m *MockUpsertSink) Close() error {
	m.Closed = true
	return m.CloseErr
}

// Opener returns a domain.UpsertSinkOpener yielding this sink.
func (m *MockUpsertSink) Opener() domain.UpsertSinkOpener {
	return func(context.Context) (domain.UpsertSink, error) {
		return m, nil
	}
}

// UpsertKey returns the map key MockUpsertSink uses for a row.
func UpsertKey(title, dueDate string) string {
	return fmt.Sprintf("%s|%s", title, dueDate)
}

// FailingOpener returns a domain.UpsertSinkOpener that always fails with err.
func FailingOpener(err error) domain.UpsertSinkOpener {
	return func(context.Context) (domain.UpsertSink, error) {
		return nil, err
	}
}

// MockSuggestionSource is a test double for domain.SuggestionSource.
type MockSuggestionSource struct {
	Err   error
	Title string
}

// Ensure MockSuggestionSource implements domain.SuggestionSource interface.
var _ domain.SuggestionSource = (*MockSuggestionSource)(nil)

// Suggest returns the configured title or error.
func (m *MockSuggestionSource) Suggest(_ context.Context) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Title, nil
}

// MockPageScraper is a test double for domain.PageScraper.
type MockPageScraper struct {
	Err     error
	LastURL string
	Items   []string
}

// Ensure MockPageScraper implements domain.PageScraper interface.
var _ domain.PageScraper = (*MockPageScraper)(nil)

// Scrape records the URL and returns the configured items or error.
func (m *MockPageScraper) Scrape(_ context.Context, url string) ([]string, error) {
	m.LastURL = url
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

// LogEntry is a single message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that captures entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Messages returns the captured messages for the given level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var msgs []string
	for _, e := range m.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitGlobalErr    error
	LocalInfo        domain.ConfigInfo
	GlobalInfo       domain.ConfigInfo
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalInfo: domain.ConfigInfo{
			Path:   "/work/.tasktracker.toml",
			Exists: false,
		},
		GlobalInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/tasktracker/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// LocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.LocalInfo
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}
