// Package jsonfile implements the default backing store: a single JSON
// file holding the full timesheet.
package jsonfile

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"hourlog/internal/domain"
	"hourlog/internal/errors"
)

// Store implements the repository.Store interface on a JSON file
type Store struct {
	path string
}

// New creates a new JSON file store instance
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full timesheet. A missing file is not an error: the
// store starts empty and the file is created on the first save.
func (s *Store) Load(ctx context.Context) ([]domain.Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Warn().Str("path", s.path).Msg("timesheet file not found, will create new file on data write")
		return []domain.Entry{}, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("read timesheet file", err)
	}

	entries, err := Unmarshal(data)
	if err != nil {
		return nil, errors.NewStorageError("decode timesheet file", err)
	}
	log.Debug().Str("path", s.path).Int("entries", len(entries)).Msg("timesheet loaded")
	return entries, nil
}

// Save rewrites the full timesheet.
func (s *Store) Save(ctx context.Context, entries []domain.Entry) error {
	data, err := Marshal(entries)
	if err != nil {
		return errors.NewStorageError("encode timesheet", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewStorageError("write timesheet file", err)
	}
	log.Debug().Str("path", s.path).Int("entries", len(entries)).Msg("timesheet saved")
	return nil
}

// Close is a no-op for the file store.
func (s *Store) Close() error {
	return nil
}
