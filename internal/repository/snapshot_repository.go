package repository

import (
	"context"

	"theme-parity/internal/domain"
)

// SnapshotRepository persists parity runs so output can be compared over time.
type SnapshotRepository interface {
	// Save stores the snapshot and its per-theme reports, setting snapshot.ID.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// List returns snapshots newest first, without their reports. A limit of 0
	// means no limit.
	List(ctx context.Context, limit int) ([]*domain.Snapshot, error)

	// GetByID returns one snapshot with its reports loaded.
	GetByID(ctx context.Context, id int64) (*domain.Snapshot, error)

	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
