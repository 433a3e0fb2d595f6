package mcp

import (
	"time"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/domain/draft"
	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
	"github.com/nathanellevy/stackpad/internal/domain/snippet"
	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/domain/workspace"
)

type CreateWorkspaceParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GetWorkspaceParams struct {
	ID string `json:"id,omitempty"`
}

type DeleteWorkspaceParams struct {
	ID string `json:"id"`
}

type CreateNoteParams struct {
	WorkspaceID string  `json:"workspace_id,omitempty"`
	Content     string  `json:"content"`
	Color       string  `json:"color,omitempty"`
	PosX        float64 `json:"pos_x,omitempty"`
	PosY        float64 `json:"pos_y,omitempty"`
}

type UpdateNoteParams struct {
	WorkspaceID string   `json:"workspace_id,omitempty"`
	ID          string   `json:"id"`
	Content     *string  `json:"content,omitempty"`
	Color       *string  `json:"color,omitempty"`
	PosX        *float64 `json:"pos_x,omitempty"`
	PosY        *float64 `json:"pos_y,omitempty"`
	Pinned      *bool    `json:"pinned,omitempty"`
}

type DeleteNoteParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type ListNotesParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type AddTodoParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Content     string `json:"content"`
}

type ToggleTodoParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type DeleteTodoParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type ListTodosParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Done        *bool  `json:"done,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

type ClearCompletedTodosParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type LogCheckinParams struct {
	WorkspaceID string            `json:"workspace_id,omitempty"`
	Type        checkin.EntryType `json:"type"`
	Content     string            `json:"content"`
	Hours       float64           `json:"hours,omitempty"`
}

type DeleteCheckinParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type ListCheckinsParams struct {
	WorkspaceID string              `json:"workspace_id,omitempty"`
	Types       []checkin.EntryType `json:"types,omitempty"`
	Limit       int                 `json:"limit,omitempty"`
	Offset      int                 `json:"offset,omitempty"`
}

type GetCheckinStatsParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type LogPomodoroParams struct {
	WorkspaceID     string         `json:"workspace_id,omitempty"`
	Phase           pomodoro.Phase `json:"phase"`
	StartedAt       time.Time      `json:"started_at,omitempty"`
	DurationSeconds int            `json:"duration_seconds"`
	Completed       bool           `json:"completed,omitempty"`
}

type ListPomodorosParams struct {
	WorkspaceID string          `json:"workspace_id,omitempty"`
	Phase       *pomodoro.Phase `json:"phase,omitempty"`
	Limit       int             `json:"limit,omitempty"`
	Offset      int             `json:"offset,omitempty"`
}

type GetPomodoroSummaryParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type CreateSnippetParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Title       string `json:"title"`
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

type GetSnippetParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type UpdateSnippetParams struct {
	WorkspaceID string  `json:"workspace_id,omitempty"`
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Command     *string `json:"command,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
}

type DeleteSnippetParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type ListSnippetsParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Language    string `json:"language,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

type SearchSnippetsParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Query       string `json:"query"`
	Language    string `json:"language,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

type AddTrackParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Title       string `json:"title"`
	Video       string `json:"video"`
}

type RemoveTrackParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type MoveTrackParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
	Position    int    `json:"position"`
}

type ListTracksParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type DraftMessageParams struct {
	Text string     `json:"text"`
	Tone draft.Tone `json:"tone"`
}

type GetRecentActivityParams struct {
	WorkspaceID string         `json:"workspace_id,omitempty"`
	EntityKind  *activity.Kind `json:"entity_kind,omitempty"`
	EntityID    *string        `json:"entity_id,omitempty"`
	Type        *activity.Type `json:"type,omitempty"`
	Limit       int            `json:"limit,omitempty"`
}

type ListWorkspacesResponse struct {
	Workspaces []workspace.Summary `json:"workspaces"`
}

type ListNotesResponse struct {
	Notes []note.Note `json:"notes"`
}

type ListTodosResponse struct {
	Todos []todo.Item `json:"todos"`
}

type ClearCompletedTodosResponse struct {
	Removed int `json:"removed"`
}

type ListCheckinsResponse struct {
	Checkins []checkin.Entry `json:"checkins"`
}

type ListPomodorosResponse struct {
	Sessions []pomodoro.Session `json:"sessions"`
}

type ListSnippetsResponse struct {
	Snippets []snippet.Snippet `json:"snippets"`
}

type SearchSnippetsResponse struct {
	Results []snippet.SearchResult `json:"results"`
}

type ListTracksResponse struct {
	Tracks []track.Track `json:"tracks"`
}

type DraftMessageResponse struct {
	Original string     `json:"original"`
	Tone     draft.Tone `json:"tone"`
	Result   string     `json:"result"`
}

type GetRecentActivityResponse struct {
	Activity []activity.Entry `json:"activity"`
}
