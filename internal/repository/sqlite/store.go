// Package sqlite implements the alternate backing store on a SQLite
// database. The timesheet keeps the load-mutate-save model of the JSON
// store: Save rewrites the entries table inside a transaction and Load
// reads it back in stored order.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"hourlog/internal/domain"
	"hourlog/internal/errors"

	_ "modernc.org/sqlite"
)

// Store implements the repository.Store interface on SQLite
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store instance
func New(dbPath string) (*Store, error) {
	if err := runMigrations(dbPath); err != nil {
		return nil, errors.NewStorageError("run migrations", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the full timesheet in stored order (newest first).
func (s *Store) Load(ctx context.Context) ([]domain.Entry, error) {
	query := `
	SELECT project, clock_in, clock_out, description
	FROM entries
	ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewStorageError("query entries", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, errors.NewStorageError("scan entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("iterate entries", err)
	}
	return entries, nil
}

// Save rewrites the full timesheet: the entries table is cleared and
// repopulated inside a single transaction so a failed save leaves the
// previous state intact.
func (s *Store) Save(ctx context.Context, entries []domain.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return errors.NewStorageError("clear entries", err)
	}

	insert := `
	INSERT INTO entries (position, project, clock_in, clock_out, description)
	VALUES (?, ?, ?, ?, ?)`
	for i, e := range entries {
		_, err := tx.ExecContext(ctx, insert,
			i, e.Project, formatTime(e.In), formatTimePtr(e.Out), e.Description)
		if err != nil {
			return errors.NewStorageError("insert entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit transaction", err)
	}
	return nil
}

// scanEntry scans a single row into a domain entry.
func scanEntry(rows *sql.Rows) (domain.Entry, error) {
	var (
		e           domain.Entry
		in          string
		out         sql.NullString
		description sql.NullString
	)
	if err := rows.Scan(&e.Project, &in, &out, &description); err != nil {
		return domain.Entry{}, err
	}

	parsedIn, err := domain.ParseTimestamp(in)
	if err != nil {
		return domain.Entry{}, err
	}
	e.In = parsedIn

	if out.Valid {
		parsedOut, err := domain.ParseTimestamp(out.String)
		if err != nil {
			return domain.Entry{}, err
		}
		e.Out = &parsedOut
	}
	if description.Valid {
		e.Description = &description.String
	}
	return e, nil
}

// formatTime formats a time.Time value for consistent database storage
func formatTime(t time.Time) string {
	return t.Format(domain.StorageTimeFormat)
}

// formatTimePtr formats a *time.Time value, returning nil if the pointer is nil
func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
