package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// CheckinRepository implements repository.CheckinRepository for SQLite
type CheckinRepository struct {
	db *DB
}

// NewCheckinRepository creates a new CheckinRepository
func NewCheckinRepository(db *DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create creates a new check-in entry
func (r *CheckinRepository) Create(ctx context.Context, workspaceID string, entry *checkin.Entry) error {
	query := `
		INSERT INTO checkins (id, workspace_id, type, content, hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		workspaceID,
		entry.Type,
		entry.Content,
		entry.Hours,
		entry.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create check-in: %w", err)
	}

	return nil
}

// Delete deletes a check-in entry
func (r *CheckinRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checkins WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns check-in entries, newest first
func (r *CheckinRepository) List(ctx context.Context, workspaceID string, opts checkin.ListOptions) ([]checkin.Entry, error) {
	query := `
		SELECT id, workspace_id, type, content, hours, created_at
		FROM checkins
		WHERE workspace_id = ?
	`

	args := []interface{}{workspaceID}

	if len(opts.Types) > 0 {
		placeholders := make([]string, len(opts.Types))
		for i, t := range opts.Types {
			placeholders[i] = "?"
			args = append(args, t)
		}
		query += fmt.Sprintf(" AND type IN (%s)", strings.Join(placeholders, ", "))
	}

	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var entries []checkin.Entry
	for rows.Next() {
		var entry checkin.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.Type,
			&entry.Content,
			&entry.Hours,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-in rows: %w", err)
	}

	return entries, nil
}
