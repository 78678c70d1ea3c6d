// Package store persists screening records. All implementations enforce the
// optimistic-concurrency contract: an update carries the version it was read
// at, and a mismatch fails with ErrStaleVersion instead of overwriting.
package store

import (
	"context"

	"complyd/internal/domain"
	dErrors "complyd/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific 404s consistent across
	// implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "screening record not found")

	// ErrStaleVersion signals a concurrent modification conflict.
	ErrStaleVersion = dErrors.New(dErrors.CodeStaleWrite, "screening record was modified concurrently")
)

// Store is the screening record repository.
type Store interface {
	// Create persists a new record at version 1.
	Create(ctx context.Context, record *domain.ScreeningRecord) error

	// Get returns a copy of the record or ErrNotFound.
	Get(ctx context.Context, screeningID string) (*domain.ScreeningRecord, error)

	// Update persists the record if the stored version still equals
	// expectedVersion, then bumps the version. Fails with ErrStaleVersion
	// on a mismatch and ErrNotFound for unknown records.
	Update(ctx context.Context, record *domain.ScreeningRecord, expectedVersion int) error

	// List returns all records, newest first.
	List(ctx context.Context) ([]*domain.ScreeningRecord, error)
}
