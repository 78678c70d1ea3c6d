package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"complyd/internal/domain"
)

// PostgresStore persists screening records as versioned JSONB documents.
// The version column carries the optimistic-concurrency contract: updates
// are compare-and-swap on it.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS screening_records (
			screening_id TEXT PRIMARY KEY,
			shipment_id  TEXT NOT NULL,
			status       TEXT NOT NULL,
			version      INTEGER NOT NULL,
			payload      JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure screening_records schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, record *domain.ScreeningRecord) error {
	record.Version = 1
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal screening record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO screening_records (screening_id, shipment_id, status, version, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, record.ScreeningID, record.ShipmentID, string(record.Status), record.Version, payload, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("screening record already exists: %w", err)
		}
		return fmt.Errorf("insert screening record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, screeningID string) (*domain.ScreeningRecord, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM screening_records WHERE screening_id = $1`,
		screeningID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load screening record: %w", err)
	}

	var record domain.ScreeningRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal screening record: %w", err)
	}
	return &record, nil
}

func (s *PostgresStore) Update(ctx context.Context, record *domain.ScreeningRecord, expectedVersion int) error {
	record.Version = expectedVersion + 1
	record.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal screening record: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE screening_records
		SET status = $2, version = $3, payload = $4, updated_at = $5
		WHERE screening_id = $1 AND version = $6
	`, record.ScreeningID, string(record.Status), record.Version, payload, record.UpdatedAt, expectedVersion)
	if err != nil {
		return fmt.Errorf("update screening record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update screening record: %w", err)
	}
	if affected == 0 {
		// Distinguish a missing record from a version conflict.
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM screening_records WHERE screening_id = $1)`,
			record.ScreeningID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check screening record existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrStaleVersion
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*domain.ScreeningRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM screening_records ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list screening records: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScreeningRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan screening record: %w", err)
		}
		var record domain.ScreeningRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("unmarshal screening record: %w", err)
		}
		out = append(out, &record)
	}
	return out, rows.Err()
}
