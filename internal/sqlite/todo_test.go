package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/repository"
)

func TestTodoRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTodoRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	item := &todo.Item{ID: "t1", Content: "write tests", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, ws.ID, item))

	got, err := repo.Get(ctx, ws.ID, "t1")
	require.NoError(t, err)
	require.Equal(t, "write tests", got.Content)
	require.False(t, got.Done)
	require.Nil(t, got.CompletedAt)

	_, err = repo.Get(ctx, ws.ID, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTodoRepository_UpdateCompletion(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTodoRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	item := &todo.Item{ID: "t1", Content: "review", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, ws.ID, item))

	done := time.Now().UTC()
	item.Done = true
	item.CompletedAt = &done
	require.NoError(t, repo.Update(ctx, ws.ID, item))

	got, err := repo.Get(ctx, ws.ID, "t1")
	require.NoError(t, err)
	require.True(t, got.Done)
	require.NotNil(t, got.CompletedAt)

	// Reopening clears the completion timestamp.
	item.Done = false
	item.CompletedAt = nil
	require.NoError(t, repo.Update(ctx, ws.ID, item))

	got, err = repo.Get(ctx, ws.ID, "t1")
	require.NoError(t, err)
	require.False(t, got.Done)
	require.Nil(t, got.CompletedAt)
}

func TestTodoRepository_ListOrderAndFilter(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTodoRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	base := time.Now().UTC()
	completed := base
	for _, item := range []*todo.Item{
		{ID: "t1", Content: "old open", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "t2", Content: "new open", CreatedAt: base},
		{ID: "t3", Content: "done", Done: true, CreatedAt: base.Add(-time.Hour), CompletedAt: &completed},
	} {
		require.NoError(t, repo.Create(ctx, ws.ID, item))
	}

	items, err := repo.List(ctx, ws.ID, todo.ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "t2", items[0].ID, "open items first, newest first")
	require.Equal(t, "t1", items[1].ID)
	require.Equal(t, "t3", items[2].ID, "done items last")

	open := false
	items, err = repo.List(ctx, ws.ID, todo.ListOptions{Done: &open})
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = repo.List(ctx, ws.ID, todo.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestTodoRepository_DeleteCompleted(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTodoRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	now := time.Now().UTC()
	for _, item := range []*todo.Item{
		{ID: "t1", Content: "keep", CreatedAt: now},
		{ID: "t2", Content: "drop", Done: true, CreatedAt: now, CompletedAt: &now},
		{ID: "t3", Content: "drop too", Done: true, CreatedAt: now, CompletedAt: &now},
	} {
		require.NoError(t, repo.Create(ctx, ws.ID, item))
	}

	removed, err := repo.DeleteCompleted(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	items, err := repo.List(ctx, ws.ID, todo.ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "t1", items[0].ID)

	removed, err = repo.DeleteCompleted(ctx, ws.ID)
	require.NoError(t, err)
	require.Zero(t, removed)
}
