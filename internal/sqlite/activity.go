package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log inserts a new activity entry
func (r *ActivityRepository) Log(ctx context.Context, workspaceID string, entry *activity.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO activity_log (workspace_id, entity_kind, entity_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		workspaceID,
		entry.EntityKind,
		entry.EntityID,
		entry.ActivityType,
		entry.Summary,
		createdAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}

	entry.WorkspaceID = workspaceID
	entry.CreatedAt = createdAt

	return nil
}

// List returns activity entries matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, workspace_id, entity_kind, entity_id, activity_type, summary, created_at
		FROM activity_log
		WHERE workspace_id = ?
	`

	args := []interface{}{workspaceID}
	conditions := []string{}

	if opts.EntityKind != nil {
		conditions = append(conditions, "entity_kind = ?")
		args = append(args, *opts.EntityKind)
	}
	if opts.EntityID != nil {
		conditions = append(conditions, "entity_id = ?")
		args = append(args, *opts.EntityID)
	}
	if opts.ActivityType != nil {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, *opts.ActivityType)
	}

	if len(conditions) > 0 {
		query += " AND " + joinConditions(conditions)
	}

	query += " ORDER BY created_at DESC, id DESC"

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
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var entityID sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.EntityKind,
			&entityID,
			&entry.ActivityType,
			&entry.Summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		if entityID.Valid {
			entry.EntityID = &entityID.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
