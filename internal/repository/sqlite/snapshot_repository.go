package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"theme-parity/internal/domain"
	"theme-parity/internal/repository"
)

type snapshotRepository struct {
	db *DB
}

func NewSnapshotRepository(db *DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (note, created_at) VALUES (?, ?)`,
		snapshot.Note, snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	insertEntry := `
		INSERT INTO snapshot_entries (
			snapshot_id, name, descriptor_title, ini_title, title_color, screen_color
		) VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, rep := range snapshot.Reports {
		_, err := tx.ExecContext(ctx, insertEntry,
			id,
			rep.Name,
			ptrToNullString(rep.DescriptorTitle),
			ptrToNullString(rep.INITitle),
			tripleToNullString(rep.TitleColor),
			tripleToNullString(rep.ScreenColor),
		)
		if err != nil {
			return fmt.Errorf("failed to create snapshot entry for %s: %w", rep.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	snapshot.ID = id
	return nil
}

func (r *snapshotRepository) List(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	query := `SELECT id, note, created_at FROM snapshots ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.Snapshot
	for rows.Next() {
		var snapshot domain.Snapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.Note, &snapshot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) GetByID(ctx context.Context, id int64) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT id, note, created_at FROM snapshots WHERE id = ?`, id,
	).Scan(&snapshot.ID, &snapshot.Note, &snapshot.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot with id %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, descriptor_title, ini_title, title_color, screen_color
		FROM snapshot_entries
		WHERE snapshot_id = ?
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rep domain.ThemeReport
		var descriptorTitle, iniTitle, titleColor, screenColor sql.NullString

		err := rows.Scan(&rep.Name, &descriptorTitle, &iniTitle, &titleColor, &screenColor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot entry row: %w", err)
		}

		rep.DescriptorTitle = nullStringToPtr(descriptorTitle)
		rep.INITitle = nullStringToPtr(iniTitle)
		rep.TitleColor = nullStringToTriple(titleColor)
		rep.ScreenColor = nullStringToTriple(screenColor)

		snapshot.Reports = append(snapshot.Reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot entry rows: %w", err)
	}

	return &snapshot, nil
}

func (r *snapshotRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("snapshot with id %d not found", id)
	}

	return nil
}

func (r *snapshotRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}

func ptrToNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullStringToPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

// dialog triples are stored comma-joined; the parts never contain commas
// because they were produced by a comma split in the first place.
func tripleToNullString(triple []string) sql.NullString {
	if triple == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: strings.Join(triple, ","), Valid: true}
}

func nullStringToTriple(value sql.NullString) []string {
	if !value.Valid {
		return nil
	}
	return strings.Split(value.String, ",")
}
