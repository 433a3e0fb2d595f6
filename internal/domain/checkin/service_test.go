package checkin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/repository"
	"github.com/nathanellevy/stackpad/internal/repository/mocks"
)

func TestCheckinService_Create(t *testing.T) {
	ctx := context.Background()
	workspaceID := "ws1"

	entries := &mocks.CheckinRepository{}
	entries.On("Create", ctx, workspaceID, mock.MatchedBy(func(e *checkin.Entry) bool {
		return e.Type == checkin.TypeProgress && e.Hours == 2.5 && e.ID != ""
	})).Return(nil)

	svc := checkin.NewService(entries, nil, nil)
	entry, err := svc.Create(ctx, workspaceID, checkin.CreateRequest{
		Type:    checkin.TypeProgress,
		Content: "wired the importer",
		Hours:   2.5,
	})
	require.NoError(t, err)
	require.False(t, entry.CreatedAt.IsZero())
	entries.AssertExpectations(t)
}

func TestCheckinService_CreateValidation(t *testing.T) {
	svc := checkin.NewService(&mocks.CheckinRepository{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ws1", checkin.CreateRequest{Type: checkin.TypeProgress, Content: "   "})
	require.ErrorIs(t, err, checkin.ErrEmptyContent)

	_, err = svc.Create(ctx, "ws1", checkin.CreateRequest{Type: checkin.TypeProgress, Content: "x", Hours: -1})
	require.ErrorIs(t, err, checkin.ErrNegativeHours)

	_, err = svc.Create(ctx, "ws1", checkin.CreateRequest{Type: "rant", Content: "x"})
	require.ErrorIs(t, err, checkin.ErrInvalidType)
}

func TestCheckinService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()

	entries := &mocks.CheckinRepository{}
	entries.On("Delete", ctx, "ws1", "missing").Return(repository.ErrNotFound)

	svc := checkin.NewService(entries, nil, nil)
	require.ErrorIs(t, svc.Delete(ctx, "ws1", "missing"), checkin.ErrEntryNotFound)
}

func TestCheckinService_StatsUsesInjectedClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	entries := &mocks.CheckinRepository{}
	entries.On("List", ctx, "ws1", checkin.ListOptions{}).Return([]checkin.Entry{
		{ID: "c1", Type: checkin.TypeProgress, CreatedAt: now.Add(-time.Hour), Hours: 2},
		{ID: "c2", Type: checkin.TypeTip, CreatedAt: now.AddDate(0, 0, -1)},
	}, nil)

	svc := checkin.NewService(entries, nil, nil)
	svc.SetClock(func() time.Time { return now })

	snap, err := svc.Stats(ctx, "ws1")
	require.NoError(t, err)
	require.Equal(t, 2, snap.Total)
	require.Equal(t, 1, snap.Today)
	require.Equal(t, 2, snap.Week)
	require.Equal(t, 2, snap.Streak)
	require.Equal(t, 2.0, snap.TotalHours)
}
