package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// TrackRepository implements repository.TrackRepository for SQLite
type TrackRepository struct {
	db *DB
}

// NewTrackRepository creates a new TrackRepository
func NewTrackRepository(db *DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create adds a new track
func (r *TrackRepository) Create(ctx context.Context, workspaceID string, tr *track.Track) error {
	query := `
		INSERT INTO tracks (id, workspace_id, title, video_id, position, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		tr.ID,
		workspaceID,
		tr.Title,
		tr.VideoID,
		tr.Position,
		tr.AddedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create track: %w", err)
	}

	return nil
}

// Get retrieves a track by ID
func (r *TrackRepository) Get(ctx context.Context, workspaceID, id string) (*track.Track, error) {
	query := `
		SELECT id, workspace_id, title, video_id, position, added_at
		FROM tracks
		WHERE id = ? AND workspace_id = ?
	`

	var tr track.Track
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&tr.ID,
		&tr.WorkspaceID,
		&tr.Title,
		&tr.VideoID,
		&tr.Position,
		&tr.AddedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get track: %w", err)
	}

	return &tr, nil
}

// Delete deletes a track
func (r *TrackRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
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

// List returns tracks in playlist order
func (r *TrackRepository) List(ctx context.Context, workspaceID string) ([]track.Track, error) {
	query := `
		SELECT id, workspace_id, title, video_id, position, added_at
		FROM tracks
		WHERE workspace_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []track.Track
	for rows.Next() {
		var tr track.Track
		if err := rows.Scan(
			&tr.ID,
			&tr.WorkspaceID,
			&tr.Title,
			&tr.VideoID,
			&tr.Position,
			&tr.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating track rows: %w", err)
	}

	return tracks, nil
}

// MaxPosition returns the highest position in the playlist, 0 when empty
func (r *TrackRepository) MaxPosition(ctx context.Context, workspaceID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM tracks WHERE workspace_id = ?`,
		workspaceID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max track position: %w", err)
	}

	return max, nil
}

// Renumber rewrites positions to match the given ID order, 1-based.
// IDs missing from the playlist are skipped.
func (r *TrackRepository) Renumber(ctx context.Context, workspaceID string, orderedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE tracks SET position = ? WHERE id = ? AND workspace_id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare renumber statement: %w", err)
	}
	defer stmt.Close()

	for i, id := range orderedIDs {
		if _, err := stmt.ExecContext(ctx, i+1, id, workspaceID); err != nil {
			return fmt.Errorf("failed to renumber track %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit renumber: %w", err)
	}

	return nil
}
