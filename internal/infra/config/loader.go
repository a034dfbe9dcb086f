// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasktracker/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for the local config file
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasktracker)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration (default <- global <- local).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the working-directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.workDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.LocalConfigPath(l.workDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "format":
					if s, ok := v.(string); ok {
						res.Store.Format = s
					}
				case "path":
					if s, ok := v.(string); ok {
						res.Store.Path = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "export":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						res.Export.Path = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [export]: %s", k))
				}
			}
		case "database":
			for k, v := range m {
				switch k {
				case "driver":
					if s, ok := v.(string); ok {
						res.Database.Driver = s
					}
				case "dsn":
					if s, ok := v.(string); ok {
						res.Database.DSN = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [database]: %s", k))
				}
			}
		case "fetch":
			for k, v := range m {
				switch k {
				case "suggestion_url":
					if s, ok := v.(string); ok {
						res.Fetch.SuggestionURL = s
					}
				case "timeout_seconds":
					if n, ok := v.(int64); ok {
						res.Fetch.TimeoutSeconds = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [fetch]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Store.Format != "" {
		result.Store.Format = override.Store.Format
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Export.Path != "" {
		result.Export.Path = override.Export.Path
	}
	if override.Database.Driver != "" {
		result.Database.Driver = override.Database.Driver
	}
	if override.Database.DSN != "" {
		result.Database.DSN = override.Database.DSN
	}
	if override.Fetch.SuggestionURL != "" {
		result.Fetch.SuggestionURL = override.Fetch.SuggestionURL
	}
	if override.Fetch.TimeoutSeconds > 0 {
		result.Fetch.TimeoutSeconds = override.Fetch.TimeoutSeconds
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}
