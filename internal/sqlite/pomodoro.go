package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// PomodoroRepository implements repository.PomodoroRepository for SQLite
type PomodoroRepository struct {
	db *DB
}

// NewPomodoroRepository creates a new PomodoroRepository
func NewPomodoroRepository(db *DB) *PomodoroRepository {
	return &PomodoroRepository{db: db}
}

// Create records a completed timer phase
func (r *PomodoroRepository) Create(ctx context.Context, workspaceID string, sess *pomodoro.Session) error {
	query := `
		INSERT INTO pomodoro_sessions (id, workspace_id, phase, started_at, duration_seconds, completed)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		workspaceID,
		sess.Phase,
		sess.StartedAt,
		sess.DurationSeconds,
		sess.Completed,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create pomodoro session: %w", err)
	}

	return nil
}

// List returns sessions, most recent first
func (r *PomodoroRepository) List(ctx context.Context, workspaceID string, opts pomodoro.ListOptions) ([]pomodoro.Session, error) {
	query := `
		SELECT id, workspace_id, phase, started_at, duration_seconds, completed
		FROM pomodoro_sessions
		WHERE workspace_id = ?
	`

	args := []interface{}{workspaceID}

	if opts.Phase != nil {
		query += " AND phase = ?"
		args = append(args, *opts.Phase)
	}

	query += " ORDER BY started_at DESC"

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
		return nil, fmt.Errorf("failed to list pomodoro sessions: %w", err)
	}
	defer rows.Close()

	var sessions []pomodoro.Session
	for rows.Next() {
		var sess pomodoro.Session
		if err := rows.Scan(
			&sess.ID,
			&sess.WorkspaceID,
			&sess.Phase,
			&sess.StartedAt,
			&sess.DurationSeconds,
			&sess.Completed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pomodoro session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pomodoro rows: %w", err)
	}

	return sessions, nil
}

// CountSince aggregates completed sessions of the given phase that started at
// or after the cutoff.
func (r *PomodoroRepository) CountSince(ctx context.Context, workspaceID string, phase pomodoro.Phase, since time.Time) (int, int, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(duration_seconds), 0)
		FROM pomodoro_sessions
		WHERE workspace_id = ? AND phase = ? AND completed = 1 AND started_at >= ?
	`

	var sessions, seconds int
	err := r.db.QueryRowContext(ctx, query, workspaceID, phase, since).Scan(&sessions, &seconds)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count pomodoro sessions: %w", err)
	}

	return sessions, seconds, nil
}
