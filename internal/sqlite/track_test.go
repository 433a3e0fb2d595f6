package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/repository"
)

func seedTrack(t *testing.T, repo *TrackRepository, wsID, id, title string, position int) {
	t.Helper()

	require.NoError(t, repo.Create(context.Background(), wsID, &track.Track{
		ID:       id,
		Title:    title,
		VideoID:  "jfKfPfyJRdk",
		Position: position,
		AddedAt:  time.Now().UTC(),
	}))
}

func TestTrackRepository_CreateAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedTrack(t, repo, ws.ID, "tr2", "second", 2)
	seedTrack(t, repo, ws.ID, "tr1", "first", 1)
	seedTrack(t, repo, ws.ID, "tr3", "third", 3)

	tracks, err := repo.List(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 3)
	require.Equal(t, "tr1", tracks[0].ID)
	require.Equal(t, "tr2", tracks[1].ID)
	require.Equal(t, "tr3", tracks[2].ID)
}

func TestTrackRepository_MaxPosition(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")

	max, err := repo.MaxPosition(ctx, ws.ID)
	require.NoError(t, err)
	require.Zero(t, max, "empty playlist has no positions")

	seedTrack(t, repo, ws.ID, "tr1", "first", 1)
	seedTrack(t, repo, ws.ID, "tr2", "second", 2)

	max, err = repo.MaxPosition(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, 2, max)
}

func TestTrackRepository_Renumber(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedTrack(t, repo, ws.ID, "tr1", "first", 1)
	seedTrack(t, repo, ws.ID, "tr2", "second", 2)
	seedTrack(t, repo, ws.ID, "tr3", "third", 3)

	require.NoError(t, repo.Renumber(ctx, ws.ID, []string{"tr3", "tr1", "tr2"}))

	tracks, err := repo.List(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, "tr3", tracks[0].ID)
	require.Equal(t, 1, tracks[0].Position)
	require.Equal(t, "tr1", tracks[1].ID)
	require.Equal(t, 2, tracks[1].Position)
	require.Equal(t, "tr2", tracks[2].ID)
	require.Equal(t, 3, tracks[2].Position)
}

func TestTrackRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTrackRepository(db)
	ctx := context.Background()

	ws := seedWorkspace(t, db, "ws1")
	seedTrack(t, repo, ws.ID, "tr1", "first", 1)

	require.NoError(t, repo.Delete(ctx, ws.ID, "tr1"))
	require.ErrorIs(t, repo.Delete(ctx, ws.ID, "tr1"), repository.ErrNotFound)
}
