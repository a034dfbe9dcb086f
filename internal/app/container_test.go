package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/infra/jsonstore"
	"github.com/runoshun/tasktracker/internal/infra/yamlstore"
	"github.com/runoshun/tasktracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) (workDir, dataHome string) {
	t.Helper()
	workDir = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return workDir, dataHome
}

func TestNew_DefaultsAndPersistence(t *testing.T) {
	workDir, dataHome := setupEnv(t)

	c, err := New(workDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "tasktracker", "tasks.json"), c.Config.SnapshotPath)
	assert.IsType(t, &jsonstore.Store{}, c.Snapshots)
	assert.Equal(t, 0, c.Store.Len())

	_, err = c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Title: "pay rent", DueDate: "2025-07-01", Priority: "high", Category: "home",
	})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	// A fresh container sees the saved task
	c2, err := New(workDir)
	require.NoError(t, err)
	defer func() { _ = c2.Close() }()
	require.Equal(t, 1, c2.Store.Len())
	assert.Equal(t, "pay rent", c2.Store.List(domain.FilterAll)[0].Title())
}

func TestNew_YAMLStoreFromLocalConfig(t *testing.T) {
	workDir, dataHome := setupEnv(t)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store]\nformat = \"yaml\"\n"), 0o600))

	c, err := New(workDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.IsType(t, &yamlstore.Store{}, c.Snapshots)
	assert.Equal(t, filepath.Join(dataHome, "tasktracker", "tasks.yaml"), c.Config.SnapshotPath)
}

func TestNew_UnknownStoreFormat(t *testing.T) {
	workDir, _ := setupEnv(t)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[store]\nformat = \"xml\"\n"), 0o600))

	_, err := New(workDir)
	assert.ErrorIs(t, err, domain.ErrUnknownStore)
}

func TestNew_CorruptSnapshot(t *testing.T) {
	workDir, dataHome := setupEnv(t)
	dir := filepath.Join(dataHome, "tasktracker")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(`{"tasks":[{"title":"a","dueDate":"nope"}]}`), 0o600))

	_, err := New(workDir)
	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)
}

func TestContainer_DatabaseTarget(t *testing.T) {
	c := NewWithDeps(Config{}, domain.NewTaskStore(nil), nil, domain.RealClock{}, nil)

	driver, dsn := c.DatabaseTarget("", "")
	assert.Equal(t, domain.DriverSQLite, driver)
	assert.Equal(t, domain.DefaultDatabaseDSN, dsn)

	driver, dsn = c.DatabaseTarget("postgres", "postgres://db/tasks")
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "postgres://db/tasks", dsn)
}

func TestContainer_UpsertSinkOpener(t *testing.T) {
	c := NewWithDeps(Config{}, domain.NewTaskStore(nil), nil, domain.RealClock{}, nil)

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.db")
		sink, err := c.UpsertSinkOpener(domain.DriverSQLite, path)(context.Background())
		require.NoError(t, err)
		assert.NoError(t, sink.Close())
		assert.FileExists(t, path)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := c.UpsertSinkOpener("oracle", "x")(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnknownDriver)
	})
}

func TestContainer_ExportPath(t *testing.T) {
	c := NewWithDeps(Config{}, domain.NewTaskStore(nil), nil, domain.RealClock{}, nil)
	assert.Equal(t, domain.DefaultExportPath, c.ExportPath())

	c.Settings.Export.Path = "out.csv"
	assert.Equal(t, "out.csv", c.ExportPath())
}
