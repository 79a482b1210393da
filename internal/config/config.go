// Package config holds the configuration for the hourlog application.
// Values cascade: built-in defaults, then the optional YAML config file,
// then environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Backend names for the storage configuration.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the application
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig holds backing store configuration
type StorageConfig struct {
	Backend       string `yaml:"backend"`        // HOURLOG_BACKEND
	TimesheetPath string `yaml:"timesheet_path"` // JSON_TIMESHEET
	DatabasePath  string `yaml:"database_path"`  // HOURLOG_DB_PATH
}

// DisplayConfig holds report formatting configuration
type DisplayConfig struct {
	TimeFormat   string `yaml:"time_format"`   // HOURLOG_TIME_FORMAT
	ProjectWidth int    `yaml:"project_width"` // HOURLOG_PROJECT_WIDTH
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // HOURLOG_LOG_LEVEL
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend:       BackendJSON,
			TimesheetPath: filepath.Join(homeDir, "timesheet.json"),
			DatabasePath:  filepath.Join(homeDir, ".hourlog", "hourlog.db"),
		},
		Display: DisplayConfig{
			TimeFormat:   "2006-01-02 15:04:05",
			ProjectWidth: 20,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, when present
// 3. Override with environment variables
func Load() (*Config, error) {
	cfg := NewConfig()

	if err := cfg.loadFromFile(); err != nil {
		return nil, err
	}
	cfg.loadFromEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configFilePath resolves the config file location, HOURLOG_CONFIG
// taking precedence over the default under the user config dir.
func configFilePath() string {
	if path := os.Getenv("HOURLOG_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "hourlog", "config.yaml")
}

// loadFromFile overlays values from the YAML config file. A missing file
// is fine; the defaults stand.
func (c *Config) loadFromFile() error {
	path := configFilePath()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}
	return nil
}

// loadFromEnvironment overlays values from environment variables
func (c *Config) loadFromEnvironment() {
	if backend := os.Getenv("HOURLOG_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("JSON_TIMESHEET"); path != "" {
		c.Storage.TimesheetPath = path
	}
	if path := os.Getenv("HOURLOG_DB_PATH"); path != "" {
		c.Storage.DatabasePath = path
	}
	if format := os.Getenv("HOURLOG_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if width := os.Getenv("HOURLOG_PROJECT_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.ProjectWidth = w
		}
	}
	if level := os.Getenv("HOURLOG_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Backend != BackendJSON && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be 'json' or 'sqlite'"}
	}
	if c.Storage.Backend == BackendJSON && c.Storage.TimesheetPath == "" {
		return &ConfigError{Field: "storage.timesheet_path", Message: "timesheet path cannot be empty"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.DatabasePath == "" {
		return &ConfigError{Field: "storage.database_path", Message: "database path cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.ProjectWidth < 1 {
		return &ConfigError{Field: "display.project_width", Message: "project width must be at least 1"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
