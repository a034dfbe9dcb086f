// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/infra/config"
	"github.com/runoshun/tasktracker/internal/infra/csvexport"
	"github.com/runoshun/tasktracker/internal/infra/jsonstore"
	"github.com/runoshun/tasktracker/internal/infra/logging"
	"github.com/runoshun/tasktracker/internal/infra/pgstore"
	"github.com/runoshun/tasktracker/internal/infra/sqlitestore"
	"github.com/runoshun/tasktracker/internal/infra/web"
	"github.com/runoshun/tasktracker/internal/infra/yamlstore"
	"github.com/runoshun/tasktracker/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir      string // Directory the command was started in
	DataDir      string // Path to <XDG_DATA_HOME>/tasktracker
	SnapshotPath string // Path to the task snapshot file
}

// newConfig resolves paths for the working directory and settings.
func newConfig(workDir string, settings *domain.Config) Config {
	dataDir := domain.DataDir(dataHome())
	return Config{
		WorkDir:      workDir,
		DataDir:      dataDir,
		SnapshotPath: settings.SnapshotPath(dataDir),
	}
}

// dataHome returns XDG_DATA_HOME or its default.
func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "share")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Snapshots     domain.SnapshotRepository
	Clock         domain.Clock
	Events        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Suggestions   domain.SuggestionSource
	Scraper       domain.PageScraper

	// Pointer fields
	Store    *domain.TaskStore
	Settings *domain.Config
	Logger   *slog.Logger

	fileLogger *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory,
// loading configuration and the task snapshot.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	settings, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := newConfig(dir, settings)

	snapshots, err := newSnapshotRepository(settings.Store.Format, cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}
	records, err := snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	store, err := domain.RestoreStore(clock, records)
	if err != nil {
		return nil, fmt.Errorf("restore tasks from %s: %w", cfg.SnapshotPath, err)
	}

	level := logging.ParseLevel(settings.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	fileLogger := logging.New(cfg.DataDir, level)

	httpClient := web.NewHTTPClient(time.Duration(settings.Fetch.TimeoutSeconds) * time.Second)

	return &Container{
		Snapshots:     snapshots,
		Clock:         clock,
		Events:        fileLogger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Suggestions:   web.NewSuggestionClient(httpClient, settings.Fetch.SuggestionURL),
		Scraper:       web.NewScraper(httpClient),
		Store:         store,
		Settings:      settings,
		Logger:        logger,
		fileLogger:    fileLogger,
		Config:        cfg,
	}, nil
}

// newSnapshotRepository selects the snapshot backend for format.
func newSnapshotRepository(format, path string) (domain.SnapshotRepository, error) {
	switch format {
	case "", domain.StoreFormatJSON:
		return jsonstore.New(path), nil
	case domain.StoreFormatYAML:
		return yamlstore.New(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStore, format)
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store *domain.TaskStore, snapshots domain.SnapshotRepository, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Snapshots: snapshots,
		Clock:     clock,
		Store:     store,
		Settings:  domain.NewDefaultConfig(),
		Logger:    logger,
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.fileLogger == nil {
		return nil
	}
	return c.fileLogger.Close()
}

// DatabaseTarget resolves driver and dsn, falling back to the [database] settings.
func (c *Container) DatabaseTarget(driver, dsn string) (string, string) {
	if driver == "" {
		driver = c.Settings.Database.Driver
	}
	if dsn == "" {
		dsn = c.Settings.Database.DSN
	}
	return driver, dsn
}

// UpsertSinkOpener returns an opener for the given driver and DSN.
// Empty values fall back to the [database] settings.
func (c *Container) UpsertSinkOpener(driver, dsn string) domain.UpsertSinkOpener {
	driver, dsn = c.DatabaseTarget(driver, dsn)
	return func(ctx context.Context) (domain.UpsertSink, error) {
		switch driver {
		case domain.DriverSQLite:
			db, err := sqlitestore.Open(ctx, dsn)
			if err != nil {
				return nil, err
			}
			return db, nil
		case domain.DriverPostgres:
			store, err := pgstore.Open(ctx, dsn)
			if err != nil {
				return nil, err
			}
			return store, nil
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, driver)
		}
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Snapshots, c.Events)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Store, c.Snapshots, c.Events)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ShowAnalyticsUseCase returns a new ShowAnalytics use case.
func (c *Container) ShowAnalyticsUseCase() *usecase.ShowAnalytics {
	return usecase.NewShowAnalytics(c.Store)
}

// ExportTasksUseCase returns a new ExportTasks use case writing to path
// (empty = [export] path).
func (c *Container) ExportTasksUseCase(path string) *usecase.ExportTasks {
	if path == "" {
		path = c.ExportPath()
	}
	return usecase.NewExportTasks(c.Store, csvexport.New(path), c.Events)
}

// ExportPath returns the configured CSV export path.
func (c *Container) ExportPath() string {
	if c.Settings.Export.Path == "" {
		return domain.DefaultExportPath
	}
	return c.Settings.Export.Path
}

// SaveTasksUseCase returns a new SaveTasks use case for driver and dsn
// (empty = [database] settings).
func (c *Container) SaveTasksUseCase(driver, dsn string) *usecase.SaveTasks {
	return usecase.NewSaveTasks(c.Store, c.UpsertSinkOpener(driver, dsn), c.Events)
}

// SuggestTaskUseCase returns a new SuggestTask use case.
func (c *Container) SuggestTaskUseCase() *usecase.SuggestTask {
	return usecase.NewSuggestTask(c.Suggestions, c.AddTaskUseCase(), c.Events)
}

// ScrapeTasksUseCase returns a new ScrapeTasks use case.
func (c *Container) ScrapeTasksUseCase() *usecase.ScrapeTasks {
	return usecase.NewScrapeTasks(c.Scraper, c.AddTaskUseCase(), c.Events)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
