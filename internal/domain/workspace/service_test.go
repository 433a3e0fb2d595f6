package workspace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nathanellevy/stackpad/internal/domain/workspace"
	"github.com/nathanellevy/stackpad/internal/repository"
	"github.com/nathanellevy/stackpad/internal/repository/mocks"
)

func TestWorkspaceService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkspaceRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(ws *workspace.Workspace) bool {
		return ws.Name == "Deep Work" && ws.ID != ""
	})).Return(nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.Create(ctx, workspace.CreateRequest{Name: "Deep Work"})
	require.NoError(t, err)
	require.NotEmpty(t, ws.ID, "ids are generated when not supplied")
	require.False(t, ws.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestWorkspaceService_CreateKeepsExplicitID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkspaceRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.Create(ctx, workspace.CreateRequest{ID: "custom", Name: "Named"})
	require.NoError(t, err)
	require.Equal(t, "custom", ws.ID)
}

func TestWorkspaceService_CreateRejectsBlankName(t *testing.T) {
	svc := workspace.NewService(&mocks.WorkspaceRepository{}, nil)
	_, err := svc.Create(context.Background(), workspace.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, workspace.ErrInvalidInput)
}

func TestWorkspaceService_GetDefaultCreatesLazily(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkspaceRepository{}
	repo.On("GetDefault", ctx).Return(nil, repository.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(ws *workspace.Workspace) bool {
		return ws.Name == "Default Workspace"
	})).Return(nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "Default Workspace", ws.Name)
	repo.AssertExpectations(t)
}

func TestWorkspaceService_GetDefaultReturnsExisting(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkspaceRepository{}
	repo.On("GetDefault", ctx).Return(&workspace.Workspace{ID: "ws1", Name: "First"}, nil)

	svc := workspace.NewService(repo, nil)
	ws, err := svc.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "ws1", ws.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkspaceService_NotFoundMapping(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.WorkspaceRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := workspace.NewService(repo, nil)

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)

	err = svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)
}
