// Package mocks provides testify mocks of the domain repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
	"github.com/nathanellevy/stackpad/internal/domain/snippet"
	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/domain/workspace"
)

// WorkspaceRepository is a mock for workspace.Repository.
type WorkspaceRepository struct {
	mock.Mock
}

func (m *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *WorkspaceRepository) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	args := m.Called(ctx, id)
	if ws, ok := args.Get(0).(*workspace.Workspace); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkspaceRepository) GetDefault(ctx context.Context) (*workspace.Workspace, error) {
	args := m.Called(ctx)
	if ws, ok := args.Get(0).(*workspace.Workspace); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkspaceRepository) List(ctx context.Context) ([]workspace.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]workspace.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkspaceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, workspaceID string, n *note.Note) error {
	args := m.Called(ctx, workspaceID, n)
	return args.Error(0)
}

func (m *NoteRepository) Get(ctx context.Context, workspaceID, id string) (*note.Note, error) {
	args := m.Called(ctx, workspaceID, id)
	if n, ok := args.Get(0).(*note.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Update(ctx context.Context, workspaceID string, n *note.Note) error {
	args := m.Called(ctx, workspaceID, n)
	return args.Error(0)
}

func (m *NoteRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context, workspaceID string) ([]note.Note, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TodoRepository is a mock for todo.Repository.
type TodoRepository struct {
	mock.Mock
}

func (m *TodoRepository) Create(ctx context.Context, workspaceID string, item *todo.Item) error {
	args := m.Called(ctx, workspaceID, item)
	return args.Error(0)
}

func (m *TodoRepository) Get(ctx context.Context, workspaceID, id string) (*todo.Item, error) {
	args := m.Called(ctx, workspaceID, id)
	if item, ok := args.Get(0).(*todo.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TodoRepository) Update(ctx context.Context, workspaceID string, item *todo.Item) error {
	args := m.Called(ctx, workspaceID, item)
	return args.Error(0)
}

func (m *TodoRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *TodoRepository) List(ctx context.Context, workspaceID string, opts todo.ListOptions) ([]todo.Item, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]todo.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TodoRepository) DeleteCompleted(ctx context.Context, workspaceID string) (int, error) {
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}

// CheckinRepository is a mock for checkin.EntryRepository.
type CheckinRepository struct {
	mock.Mock
}

func (m *CheckinRepository) Create(ctx context.Context, workspaceID string, entry *checkin.Entry) error {
	args := m.Called(ctx, workspaceID, entry)
	return args.Error(0)
}

func (m *CheckinRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *CheckinRepository) List(ctx context.Context, workspaceID string, opts checkin.ListOptions) ([]checkin.Entry, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]checkin.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PomodoroRepository is a mock for pomodoro.Repository.
type PomodoroRepository struct {
	mock.Mock
}

func (m *PomodoroRepository) Create(ctx context.Context, workspaceID string, sess *pomodoro.Session) error {
	args := m.Called(ctx, workspaceID, sess)
	return args.Error(0)
}

func (m *PomodoroRepository) List(ctx context.Context, workspaceID string, opts pomodoro.ListOptions) ([]pomodoro.Session, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]pomodoro.Session); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PomodoroRepository) CountSince(ctx context.Context, workspaceID string, phase pomodoro.Phase, since time.Time) (int, int, error) {
	args := m.Called(ctx, workspaceID, phase, since)
	return args.Int(0), args.Int(1), args.Error(2)
}

// SnippetRepository is a mock for snippet.Repository.
type SnippetRepository struct {
	mock.Mock
}

func (m *SnippetRepository) Create(ctx context.Context, workspaceID string, sn *snippet.Snippet) error {
	args := m.Called(ctx, workspaceID, sn)
	return args.Error(0)
}

func (m *SnippetRepository) Get(ctx context.Context, workspaceID, id string) (*snippet.Snippet, error) {
	args := m.Called(ctx, workspaceID, id)
	if sn, ok := args.Get(0).(*snippet.Snippet); ok {
		return sn, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SnippetRepository) Update(ctx context.Context, workspaceID string, sn *snippet.Snippet) error {
	args := m.Called(ctx, workspaceID, sn)
	return args.Error(0)
}

func (m *SnippetRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *SnippetRepository) List(ctx context.Context, workspaceID string, opts snippet.ListOptions) ([]snippet.Snippet, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]snippet.Snippet); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchRepository is a mock for snippet.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, workspaceID, query string, opts snippet.SearchOptions) ([]snippet.SearchResult, error) {
	args := m.Called(ctx, workspaceID, query, opts)
	if list, ok := args.Get(0).([]snippet.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TrackRepository is a mock for track.Repository.
type TrackRepository struct {
	mock.Mock
}

func (m *TrackRepository) Create(ctx context.Context, workspaceID string, tr *track.Track) error {
	args := m.Called(ctx, workspaceID, tr)
	return args.Error(0)
}

func (m *TrackRepository) Get(ctx context.Context, workspaceID, id string) (*track.Track, error) {
	args := m.Called(ctx, workspaceID, id)
	if tr, ok := args.Get(0).(*track.Track); ok {
		return tr, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TrackRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

func (m *TrackRepository) List(ctx context.Context, workspaceID string) ([]track.Track, error) {
	args := m.Called(ctx, workspaceID)
	if list, ok := args.Get(0).([]track.Track); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TrackRepository) MaxPosition(ctx context.Context, workspaceID string) (int, error) {
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}

func (m *TrackRepository) Renumber(ctx context.Context, workspaceID string, orderedIDs []string) error {
	args := m.Called(ctx, workspaceID, orderedIDs)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, workspaceID string, entry *activity.Entry) error {
	args := m.Called(ctx, workspaceID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, workspaceID, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
