package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"workspaces",
		"notes",
		"todos",
		"checkins",
		"pomodoro_sessions",
		"snippets",
		"tracks",
		"activity_log",
		"snippets_fts",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestWorkspaceCascade verifies that deleting a workspace removes its rows
func TestWorkspaceCascade(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, description) VALUES (?, ?, ?)`,
		"ws1", "Work", "")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO notes (id, workspace_id, content, color) VALUES (?, ?, ?, ?)`,
		"n1", "ws1", "hello", "yellow")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO todos (id, workspace_id, content, done) VALUES (?, ?, ?, 0)`,
		"t1", "ws1", "ship it")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, "ws1")
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE workspace_id = ?`, "ws1").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "notes should cascade on workspace delete")

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE workspace_id = ?`, "ws1").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "todos should cascade on workspace delete")
}

// TestForeignKeyRejectsOrphans verifies that child rows need a workspace
func TestForeignKeyRejectsOrphans(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO notes (id, workspace_id, content, color) VALUES (?, ?, ?, ?)`,
		"n1", "nope", "orphan", "yellow")
	require.Error(t, err)
	require.True(t, isForeignKeyViolation(err))
}
