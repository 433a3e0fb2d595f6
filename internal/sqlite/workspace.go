package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/workspace"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// WorkspaceRepository implements repository.WorkspaceRepository for SQLite
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, description, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		ws.ID,
		ws.Name,
		ws.Description,
		ws.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return nil
}

// Get retrieves a workspace by ID
func (r *WorkspaceRepository) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workspaces
		WHERE id = ?
	`

	var ws workspace.Workspace
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ws.ID,
		&ws.Name,
		&ws.Description,
		&ws.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &ws, nil
}

// GetDefault retrieves the default workspace (the first created)
func (r *WorkspaceRepository) GetDefault(ctx context.Context) (*workspace.Workspace, error) {
	query := `
		SELECT id, name, description, created_at
		FROM workspaces
		ORDER BY created_at ASC
		LIMIT 1
	`

	var ws workspace.Workspace
	err := r.db.QueryRowContext(ctx, query).Scan(
		&ws.ID,
		&ws.Name,
		&ws.Description,
		&ws.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default workspace: %w", err)
	}

	return &ws, nil
}

// List returns workspace summaries with live counts
func (r *WorkspaceRepository) List(ctx context.Context) ([]workspace.Summary, error) {
	query := `
		SELECT
			w.id, w.name, w.description, w.created_at,
			(SELECT COUNT(*) FROM notes n WHERE n.workspace_id = w.id) as note_count,
			(SELECT COUNT(*) FROM todos t WHERE t.workspace_id = w.id AND t.done = 0) as open_todos,
			(SELECT COUNT(*) FROM checkins c WHERE c.workspace_id = w.id) as checkin_count
		FROM workspaces w
		ORDER BY w.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var summaries []workspace.Summary
	for rows.Next() {
		var s workspace.Summary
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.CreatedAt,
			&s.NoteCount,
			&s.OpenTodos,
			&s.CheckinCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workspace summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspace rows: %w", err)
	}

	return summaries, nil
}

// Delete deletes a workspace; dependent rows cascade
func (r *WorkspaceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
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
