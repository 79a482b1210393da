// Package repository defines the backing store interface for the
// timesheet. Stores read and rewrite the entry sequence wholesale; there
// are no partial updates.
package repository

import (
	"context"

	"hourlog/internal/domain"
)

// Store defines the interface for timesheet persistence
type Store interface {
	// Load reads the full entry sequence, newest first.
	Load(ctx context.Context) ([]domain.Entry, error)

	// Save rewrites the full entry sequence.
	Save(ctx context.Context, entries []domain.Entry) error

	// Utility
	Close() error
}
