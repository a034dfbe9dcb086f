package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, domain.LocalConfigPath(workDir), `
[store]
format = "yaml"

[export]
path = "out/tasks.csv"

[database]
driver = "postgres"
dsn = "postgres://localhost/tasks"

[fetch]
suggestion_url = "http://example.test/todo"
timeout_seconds = 3

[log]
level = "debug"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.StoreFormatYAML, cfg.Store.Format)
	assert.Equal(t, "out/tasks.csv", cfg.Export.Path)
	assert.Equal(t, domain.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/tasks", cfg.Database.DSN)
	assert.Equal(t, "http://example.test/todo", cfg.Fetch.SuggestionURL)
	assert.Equal(t, 3, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	// Untouched sections keep defaults
	assert.Equal(t, domain.StoreFormatJSON, cfg.Store.Format)
	assert.Equal(t, domain.DefaultExportPath, cfg.Export.Path)
}

func TestLoader_Load_MergeLocalOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()

	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[database]
driver = "postgres"
dsn = "postgres://global/tasks"

[log]
level = "debug"
`)
	writeFile(t, domain.LocalConfigPath(workDir), `
[database]
dsn = "postgres://local/tasks"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://local/tasks", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_NoDirectories(t *testing.T) {
	loader := NewLoaderWithGlobalDir("", "")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_LoadGlobal_NotFound(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadLocal(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[export]
path = "local.csv"
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.LoadLocal()
	require.NoError(t, err)

	assert.Equal(t, "local.csv", cfg.Export.Path)
	// Single-file load does not apply defaults
	assert.Empty(t, cfg.Log.Level)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), "[store\nformat = ")

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	_, err := loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoader_Load_UnknownKeys(t *testing.T) {
	workDir := t.TempDir()

	writeFile(t, domain.LocalConfigPath(workDir), `
top_level = "value"

[unknown_section]
key = "value"

[store]
unknown_store_key = "value"

[fetch]
retries = 3

[log]
unknown_log_key = "value"
`)

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	expected := []string{
		"unknown key in [fetch]: retries",
		"unknown key in [log]: unknown_log_key",
		"unknown key in [store]: unknown_store_key",
		"unknown key: top_level",
		"unknown section: unknown_section",
	}
	assert.Equal(t, expected, cfg.Warnings)
}

func TestLoader_Load_TemplateRoundTrip(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), domain.RenderConfigTemplate())

	loader := NewLoaderWithGlobalDir("", globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DefaultTimeoutSeconds, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, domain.DefaultSuggestionURL, cfg.Fetch.SuggestionURL)
}
