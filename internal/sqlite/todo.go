package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// TodoRepository implements repository.TodoRepository for SQLite
type TodoRepository struct {
	db *DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create creates a new todo item
func (r *TodoRepository) Create(ctx context.Context, workspaceID string, item *todo.Item) error {
	query := `
		INSERT INTO todos (id, workspace_id, content, done, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		workspaceID,
		item.Content,
		item.Done,
		item.CreatedAt,
		item.CompletedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

// Get retrieves a todo item by ID
func (r *TodoRepository) Get(ctx context.Context, workspaceID, id string) (*todo.Item, error) {
	query := `
		SELECT id, workspace_id, content, done, created_at, completed_at
		FROM todos
		WHERE id = ? AND workspace_id = ?
	`

	var item todo.Item
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id, workspaceID).Scan(
		&item.ID,
		&item.WorkspaceID,
		&item.Content,
		&item.Done,
		&item.CreatedAt,
		&completedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	if completedAt.Valid {
		item.CompletedAt = &completedAt.Time
	}

	return &item, nil
}

// Update persists item changes
func (r *TodoRepository) Update(ctx context.Context, workspaceID string, item *todo.Item) error {
	query := `
		UPDATE todos
		SET content = ?, done = ?, completed_at = ?
		WHERE id = ? AND workspace_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Content,
		item.Done,
		item.CompletedAt,
		item.ID,
		workspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
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

// Delete deletes a todo item
func (r *TodoRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND workspace_id = ?`, id, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
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

// List returns items, open first, newest first within each group
func (r *TodoRepository) List(ctx context.Context, workspaceID string, opts todo.ListOptions) ([]todo.Item, error) {
	query := `
		SELECT id, workspace_id, content, done, created_at, completed_at
		FROM todos
		WHERE workspace_id = ?
	`

	args := []interface{}{workspaceID}

	if opts.Done != nil {
		query += " AND done = ?"
		args = append(args, *opts.Done)
	}

	query += " ORDER BY done ASC, created_at DESC"

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
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var items []todo.Item
	for rows.Next() {
		var item todo.Item
		var completedAt sql.NullTime
		if err := rows.Scan(
			&item.ID,
			&item.WorkspaceID,
			&item.Content,
			&item.Done,
			&item.CreatedAt,
			&completedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		if completedAt.Valid {
			item.CompletedAt = &completedAt.Time
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todo rows: %w", err)
	}

	return items, nil
}

// DeleteCompleted removes every done item and reports how many were removed
func (r *TodoRepository) DeleteCompleted(ctx context.Context, workspaceID string) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE workspace_id = ? AND done = 1`, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear completed todos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}
