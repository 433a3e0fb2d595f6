package sqlite

import (
	"context"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/snippet"
)

// SearchRepository implements repository.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search performs a full-text search over snippets
func (r *SearchRepository) Search(ctx context.Context, workspaceID, query string, opts snippet.SearchOptions) ([]snippet.SearchResult, error) {
	baseQuery := `
		SELECT
			s.id, s.workspace_id, s.title, s.command, s.description, s.language,
			s.created_at, s.updated_at,
			snippets_fts.rank as rank
		FROM snippets_fts
		JOIN snippets s ON s.rowid = snippets_fts.rowid
		WHERE s.workspace_id = ? AND snippets_fts MATCH ?
	`

	args := []interface{}{workspaceID, query}

	if opts.Language != "" {
		baseQuery += " AND s.language = ?"
		args = append(args, opts.Language)
	}

	baseQuery += " ORDER BY rank"

	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		baseQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search snippets: %w", err)
	}
	defer rows.Close()

	var results []snippet.SearchResult
	for rows.Next() {
		var result snippet.SearchResult
		err := rows.Scan(
			&result.Snippet.ID,
			&result.Snippet.WorkspaceID,
			&result.Snippet.Title,
			&result.Snippet.Command,
			&result.Snippet.Description,
			&result.Snippet.Language,
			&result.Snippet.CreatedAt,
			&result.Snippet.UpdatedAt,
			&result.Rank,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}
