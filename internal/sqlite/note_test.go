package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/repository"
)

func TestNoteRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	now := time.Now().UTC()
	n := &note.Note{
		ID:        "n1",
		Content:   "call the dentist",
		Color:     "pink",
		PosX:      10,
		PosY:      20,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, ws.ID, n))

	got, err := repo.Get(ctx, ws.ID, "n1")
	require.NoError(t, err)
	require.Equal(t, "call the dentist", got.Content)
	require.Equal(t, "pink", got.Color)
	require.Equal(t, float64(10), got.PosX)

	_, err = repo.Get(ctx, ws.ID, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Notes are invisible from other workspaces.
	seedWorkspace(t, db, "ws2")
	_, err = repo.Get(ctx, "ws2", "n1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNoteRepository_CreateRequiresWorkspace(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)

	err := repo.Create(context.Background(), "missing", &note.Note{
		ID: "n1", Content: "orphan", Color: "yellow",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestNoteRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	now := time.Now().UTC()
	n := &note.Note{ID: "n1", Content: "draft", Color: "yellow", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, ws.ID, n))

	n.Content = "final"
	n.Pinned = true
	n.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, ws.ID, n))

	got, err := repo.Get(ctx, ws.ID, "n1")
	require.NoError(t, err)
	require.Equal(t, "final", got.Content)
	require.True(t, got.Pinned)

	n.ID = "missing"
	require.ErrorIs(t, repo.Update(ctx, ws.ID, n), repository.ErrNotFound)
}

func TestNoteRepository_ListPinnedFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	base := time.Now().UTC()
	for _, n := range []*note.Note{
		{ID: "n1", Content: "old", Color: "yellow", CreatedAt: base, UpdatedAt: base},
		{ID: "n2", Content: "new", Color: "yellow", CreatedAt: base, UpdatedAt: base.Add(time.Minute)},
		{ID: "n3", Content: "pinned", Color: "yellow", Pinned: true, CreatedAt: base, UpdatedAt: base.Add(-time.Hour)},
	} {
		require.NoError(t, repo.Create(ctx, ws.ID, n))
	}

	notes, err := repo.List(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	require.Equal(t, "n3", notes[0].ID, "pinned note sorts first even when stale")
	require.Equal(t, "n2", notes[1].ID)
	require.Equal(t, "n1", notes[2].ID)
}

func TestNoteRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, ws.ID, &note.Note{ID: "n1", Content: "x", Color: "yellow", CreatedAt: now, UpdatedAt: now}))

	require.NoError(t, repo.Delete(ctx, ws.ID, "n1"))
	require.ErrorIs(t, repo.Delete(ctx, ws.ID, "n1"), repository.ErrNotFound)
}
