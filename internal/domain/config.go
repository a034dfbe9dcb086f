package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	Fetch    FetchConfig    `toml:"fetch"`
	Export   ExportConfig   `toml:"export"`
	Log      LogConfig      `toml:"log"`
}

// StoreConfig holds snapshot settings from [store] section.
type StoreConfig struct {
	Format string `toml:"format,omitempty"` // Snapshot format: "json" (default) or "yaml"
	Path   string `toml:"path,omitempty"`   // Snapshot file (default: <data dir>/tasks.<format>)
}

// DatabaseConfig holds relational sink settings from [database] section.
type DatabaseConfig struct {
	Driver string `toml:"driver,omitempty"` // "sqlite" (default) or "postgres"
	DSN    string `toml:"dsn,omitempty"`    // File path for sqlite, connection URL for postgres
}

// FetchConfig holds network settings from [fetch] section.
type FetchConfig struct {
	SuggestionURL  string `toml:"suggestion_url,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

// ExportConfig holds CSV export settings from [export] section.
type ExportConfig struct {
	Path string `toml:"path,omitempty"` // Output file (default: tasks_export.csv)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Store formats.
const (
	StoreFormatJSON = "json"
	StoreFormatYAML = "yaml"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultExportPath     = "tasks_export.csv"
	DefaultDatabaseDSN    = "tasks.db"
	DefaultSuggestionURL  = "https://jsonplaceholder.typicode.com/todos/1"
	DefaultTimeoutSeconds = 10
)

// Directory and file names.
const (
	AppDirName          = "tasktracker"       // Directory name under XDG config/data homes
	ConfigFileName      = "config.toml"       // Global config file name
	LocalConfigFileName = ".tasktracker.toml" // Config file name in the working directory
	LogFileName         = "tasks.log"         // Log file name under <data dir>/logs
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Format: StoreFormatJSON,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    DefaultDatabaseDSN,
		},
		Fetch: FetchConfig{
			SuggestionURL:  DefaultSuggestionURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Export: ExportConfig{
			Path: DefaultExportPath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// SnapshotPath returns the configured snapshot path, or the default under dataDir.
func (c *Config) SnapshotPath(dataDir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	format := c.Store.Format
	if format == "" {
		format = StoreFormatJSON
	}
	return filepath.Join(dataDir, "tasks."+format)
}

// GlobalAppDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// DataDir returns the application data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// RenderConfigTemplate renders the commented config template with default values.
func RenderConfigTemplate() string {
	cfg := NewDefaultConfig()
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
