package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/snippet"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// SnippetRepository implements repository.SnippetRepository for SQLite
type SnippetRepository struct {
	db *DB
}

// NewSnippetRepository creates a new SnippetRepository
func NewSnippetRepository(db *DB) *SnippetRepository {
	return &SnippetRepository{db: db}
}

// Create creates a new snippet
func (r *SnippetRepository) Create(ctx context.Context, workspaceID string, sn *snippet.Snippet) error {
	query := `
		INSERT INTO snippets (id, workspace_id, title, command, description, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sn.ID,
		workspaceID,
		sn.Title,
		sn.Command,
		sn.Description,
		sn.Language,
		sn.CreatedAt,
		sn.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create snippet: %w", err)
	}

	return nil
}

// Get retrieves a snippet by ID
func (r *SnippetRepository) Get(ctx context.Context, workspaceID, id string) (*snippet.Snippet, error) {
	query := `
		SELECT id, workspace_id, title, command, description, language, created_at, updated_at
		FROM snippets
		WHERE id = ? AND workspace_id = ?
	`

	var sn snippet.Snippet
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&sn.ID,
		&sn.WorkspaceID,
		&sn.Title,
		&sn.Command,
		&sn.Description,
		&sn.Language,
		&sn.CreatedAt,
		&sn.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snippet: %w", err)
	}

	return &sn, nil
}

// Update persists snippet changes
func (r *SnippetRepository) Update(ctx context.Context, workspaceID string, sn *snippet.Snippet) error {
	query := `
		UPDATE snippets
		SET title = ?, command = ?, description = ?, language = ?, updated_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		sn.Title,
		sn.Command,
		sn.Description,
		sn.Language,
		sn.UpdatedAt,
		sn.ID,
		workspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update snippet: %w", err)
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

// Delete deletes a snippet
func (r *SnippetRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM snippets WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
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

// List returns snippets, most recently updated first
func (r *SnippetRepository) List(ctx context.Context, workspaceID string, opts snippet.ListOptions) ([]snippet.Snippet, error) {
	query := `
		SELECT id, workspace_id, title, command, description, language, created_at, updated_at
		FROM snippets
		WHERE workspace_id = ?
	`

	args := []interface{}{workspaceID}

	if opts.Language != "" {
		query += " AND language = ?"
		args = append(args, opts.Language)
	}

	query += " ORDER BY updated_at DESC"

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
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	defer rows.Close()

	var snippets []snippet.Snippet
	for rows.Next() {
		var sn snippet.Snippet
		if err := rows.Scan(
			&sn.ID,
			&sn.WorkspaceID,
			&sn.Title,
			&sn.Command,
			&sn.Description,
			&sn.Language,
			&sn.CreatedAt,
			&sn.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snippet: %w", err)
		}
		snippets = append(snippets, sn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snippet rows: %w", err)
	}

	return snippets, nil
}
