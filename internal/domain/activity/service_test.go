package activity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/repository/mocks"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()
	workspaceID := "ws1"

	repo := &mocks.ActivityRepository{}
	noteID := "n1"
	entry := &activity.Entry{
		WorkspaceID:  workspaceID,
		EntityKind:   activity.KindNote,
		EntityID:     &noteID,
		ActivityType: activity.TypeNoteCreated,
		Summary:      "created note",
	}

	repo.On("Log", ctx, workspaceID, entry).Return(nil)
	repo.On("List", ctx, workspaceID, activity.ListOptions{Limit: 10}).Return([]activity.Entry{}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, workspaceID, entry))
	require.False(t, entry.CreatedAt.IsZero())

	_, err := svc.GetRecentActivity(ctx, workspaceID, activity.ListOptions{Limit: 10})
	require.NoError(t, err)
}

func TestActivityService_NilEntry(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	err := svc.LogActivity(context.Background(), "ws1", nil)
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}
