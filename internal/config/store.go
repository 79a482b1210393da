package config

import (
	"fmt"
	"os"
	"path/filepath"

	"hourlog/internal/repository"
	"hourlog/internal/repository/jsonfile"
	"hourlog/internal/repository/sqlite"
)

// OpenStore creates the backing store selected by the configuration.
func OpenStore(cfg *Config) (repository.Store, error) {
	switch cfg.Storage.Backend {
	case BackendJSON:
		return jsonfile.New(cfg.Storage.TimesheetPath), nil
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DatabasePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return sqlite.New(cfg.Storage.DatabasePath)
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend '%s'", cfg.Storage.Backend)}
	}
}
