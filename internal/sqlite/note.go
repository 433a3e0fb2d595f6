package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// NoteRepository implements repository.NoteRepository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(ctx context.Context, workspaceID string, n *note.Note) error {
	query := `
		INSERT INTO notes (id, workspace_id, content, color, pos_x, pos_y, pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		workspaceID,
		n.Content,
		n.Color,
		n.PosX,
		n.PosY,
		n.Pinned,
		n.CreatedAt,
		n.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// Get retrieves a note by ID
func (r *NoteRepository) Get(ctx context.Context, workspaceID, id string) (*note.Note, error) {
	query := `
		SELECT id, workspace_id, content, color, pos_x, pos_y, pinned, created_at, updated_at
		FROM notes
		WHERE id = ? AND workspace_id = ?
	`

	var n note.Note
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&n.ID,
		&n.WorkspaceID,
		&n.Content,
		&n.Color,
		&n.PosX,
		&n.PosY,
		&n.Pinned,
		&n.CreatedAt,
		&n.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &n, nil
}

// Update persists note changes; the last write wins
func (r *NoteRepository) Update(ctx context.Context, workspaceID string, n *note.Note) error {
	query := `
		UPDATE notes
		SET content = ?, color = ?, pos_x = ?, pos_y = ?, pinned = ?, updated_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		n.Content,
		n.Color,
		n.PosX,
		n.PosY,
		n.Pinned,
		n.UpdatedAt,
		n.ID,
		workspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
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

// Delete deletes a note
func (r *NoteRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

// List returns notes pinned-first, then most recently updated
func (r *NoteRepository) List(ctx context.Context, workspaceID string) ([]note.Note, error) {
	query := `
		SELECT id, workspace_id, content, color, pos_x, pos_y, pinned, created_at, updated_at
		FROM notes
		WHERE workspace_id = ?
		ORDER BY pinned DESC, updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(
			&n.ID,
			&n.WorkspaceID,
			&n.Content,
			&n.Color,
			&n.PosX,
			&n.PosY,
			&n.Pinned,
			&n.CreatedAt,
			&n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}
