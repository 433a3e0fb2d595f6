package mcp

import (
	"context"
	"encoding/json"
	"fmt"

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

// WorkspaceService defines workspace operations needed by MCP.
type WorkspaceService interface {
	Create(ctx context.Context, req workspace.CreateRequest) (*workspace.Workspace, error)
	Get(ctx context.Context, id string) (*workspace.Workspace, error)
	GetDefault(ctx context.Context) (*workspace.Workspace, error)
	List(ctx context.Context) ([]workspace.Summary, error)
	Delete(ctx context.Context, id string) error
}

// NoteService defines note operations needed by MCP.
type NoteService interface {
	Create(ctx context.Context, workspaceID string, req note.CreateRequest) (*note.Note, error)
	Update(ctx context.Context, workspaceID string, req note.UpdateRequest) (*note.Note, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]note.Note, error)
}

// TodoService defines todo operations needed by MCP.
type TodoService interface {
	Add(ctx context.Context, workspaceID, content string) (*todo.Item, error)
	Toggle(ctx context.Context, workspaceID, id string) (*todo.Item, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts todo.ListOptions) ([]todo.Item, error)
	ClearCompleted(ctx context.Context, workspaceID string) (int, error)
}

// CheckinService defines check-in operations needed by MCP.
type CheckinService interface {
	Create(ctx context.Context, workspaceID string, req checkin.CreateRequest) (*checkin.Entry, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts checkin.ListOptions) ([]checkin.Entry, error)
	Stats(ctx context.Context, workspaceID string) (checkin.Snapshot, error)
}

// PomodoroService defines pomodoro operations needed by MCP.
type PomodoroService interface {
	Log(ctx context.Context, workspaceID string, req pomodoro.LogRequest) (*pomodoro.Session, error)
	List(ctx context.Context, workspaceID string, opts pomodoro.ListOptions) ([]pomodoro.Session, error)
	TodaySummary(ctx context.Context, workspaceID string) (pomodoro.DailySummary, error)
}

// SnippetService defines snippet operations needed by MCP.
type SnippetService interface {
	Create(ctx context.Context, workspaceID string, req snippet.CreateRequest) (*snippet.Snippet, error)
	Get(ctx context.Context, workspaceID, id string) (*snippet.Snippet, error)
	Update(ctx context.Context, workspaceID string, req snippet.UpdateRequest) (*snippet.Snippet, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts snippet.ListOptions) ([]snippet.Snippet, error)
	Search(ctx context.Context, workspaceID, query string, opts snippet.SearchOptions) ([]snippet.SearchResult, error)
}

// TrackService defines playlist operations needed by MCP.
type TrackService interface {
	Add(ctx context.Context, workspaceID, title, videoRef string) (*track.Track, error)
	Remove(ctx context.Context, workspaceID, id string) error
	Move(ctx context.Context, workspaceID, id string, position int) error
	List(ctx context.Context, workspaceID string) ([]track.Track, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Workspaces WorkspaceService
	Notes      NoteService
	Todos      TodoService
	Checkins   CheckinService
	Pomodoros  PomodoroService
	Snippets   SnippetService
	Tracks     TrackService
	Activity   ActivityService
}

// Handler dispatches MCP commands.
type Handler struct {
	svc Services
}

// NewHandler creates a new MCP handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches MCP requests to domain services. workspaceID is the
// workspace from the transport (header or stdio metadata); a workspace_id
// parameter on the request overrides it, and when both are empty the default
// workspace is used.
func (h *Handler) Handle(ctx context.Context, workspaceID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_workspace":
		var req CreateWorkspaceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ws, err := h.svc.Workspaces.Create(ctx, workspace.CreateRequest{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ws, nil
	case "list_workspaces":
		summaries, err := h.svc.Workspaces.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return ListWorkspacesResponse{Workspaces: summaries}, nil
	case "get_workspace":
		var req GetWorkspaceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.ID == "" {
			ws, err := h.svc.Workspaces.GetDefault(ctx)
			if err != nil {
				return nil, mapError(err)
			}
			return ws, nil
		}
		ws, err := h.svc.Workspaces.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return ws, nil
	case "delete_workspace":
		var req DeleteWorkspaceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.svc.Workspaces.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil

	case "create_note":
		var req CreateNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		n, err := h.svc.Notes.Create(ctx, wsID, note.CreateRequest{
			Content: req.Content,
			Color:   req.Color,
			PosX:    req.PosX,
			PosY:    req.PosY,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return n, nil
	case "update_note":
		var req UpdateNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		n, err := h.svc.Notes.Update(ctx, wsID, note.UpdateRequest{
			ID:      req.ID,
			Content: req.Content,
			Color:   req.Color,
			PosX:    req.PosX,
			PosY:    req.PosY,
			Pinned:  req.Pinned,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return n, nil
	case "delete_note":
		var req DeleteNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Notes.Delete(ctx, wsID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "list_notes":
		var req ListNotesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		notes, err := h.svc.Notes.List(ctx, wsID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListNotesResponse{Notes: notes}, nil

	case "add_todo":
		var req AddTodoParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		item, err := h.svc.Todos.Add(ctx, wsID, req.Content)
		if err != nil {
			return nil, mapError(err)
		}
		return item, nil
	case "toggle_todo":
		var req ToggleTodoParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		item, err := h.svc.Todos.Toggle(ctx, wsID, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return item, nil
	case "delete_todo":
		var req DeleteTodoParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Todos.Delete(ctx, wsID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "list_todos":
		var req ListTodosParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		items, err := h.svc.Todos.List(ctx, wsID, todo.ListOptions{
			Done:   req.Done,
			Limit:  req.Limit,
			Offset: req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ListTodosResponse{Todos: items}, nil
	case "clear_completed_todos":
		var req ClearCompletedTodosParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		n, err := h.svc.Todos.ClearCompleted(ctx, wsID)
		if err != nil {
			return nil, mapError(err)
		}
		return ClearCompletedTodosResponse{Removed: n}, nil

	case "log_checkin":
		var req LogCheckinParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		entry, err := h.svc.Checkins.Create(ctx, wsID, checkin.CreateRequest{
			Type:    req.Type,
			Content: req.Content,
			Hours:   req.Hours,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return entry, nil
	case "delete_checkin":
		var req DeleteCheckinParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Checkins.Delete(ctx, wsID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "list_checkins":
		var req ListCheckinsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		entries, err := h.svc.Checkins.List(ctx, wsID, checkin.ListOptions{
			Types:  req.Types,
			Limit:  req.Limit,
			Offset: req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ListCheckinsResponse{Checkins: entries}, nil
	case "get_checkin_stats":
		var req GetCheckinStatsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		snapshot, err := h.svc.Checkins.Stats(ctx, wsID)
		if err != nil {
			return nil, mapError(err)
		}
		return snapshot, nil

	case "log_pomodoro":
		var req LogPomodoroParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sess, err := h.svc.Pomodoros.Log(ctx, wsID, pomodoro.LogRequest{
			Phase:           req.Phase,
			StartedAt:       req.StartedAt,
			DurationSeconds: req.DurationSeconds,
			Completed:       req.Completed,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return sess, nil
	case "list_pomodoros":
		var req ListPomodorosParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sessions, err := h.svc.Pomodoros.List(ctx, wsID, pomodoro.ListOptions{
			Phase:  req.Phase,
			Limit:  req.Limit,
			Offset: req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ListPomodorosResponse{Sessions: sessions}, nil
	case "get_pomodoro_summary":
		var req GetPomodoroSummaryParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		summary, err := h.svc.Pomodoros.TodaySummary(ctx, wsID)
		if err != nil {
			return nil, mapError(err)
		}
		return summary, nil

	case "create_snippet":
		var req CreateSnippetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sn, err := h.svc.Snippets.Create(ctx, wsID, snippet.CreateRequest{
			Title:       req.Title,
			Command:     req.Command,
			Description: req.Description,
			Language:    req.Language,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return sn, nil
	case "get_snippet":
		var req GetSnippetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sn, err := h.svc.Snippets.Get(ctx, wsID, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return sn, nil
	case "update_snippet":
		var req UpdateSnippetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sn, err := h.svc.Snippets.Update(ctx, wsID, snippet.UpdateRequest{
			ID:          req.ID,
			Title:       req.Title,
			Command:     req.Command,
			Description: req.Description,
			Language:    req.Language,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return sn, nil
	case "delete_snippet":
		var req DeleteSnippetParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Snippets.Delete(ctx, wsID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "list_snippets":
		var req ListSnippetsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		snippets, err := h.svc.Snippets.List(ctx, wsID, snippet.ListOptions{
			Language: req.Language,
			Limit:    req.Limit,
			Offset:   req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return ListSnippetsResponse{Snippets: snippets}, nil
	case "search_snippets":
		var req SearchSnippetsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		results, err := h.svc.Snippets.Search(ctx, wsID, req.Query, snippet.SearchOptions{
			Language: req.Language,
			Limit:    req.Limit,
			Offset:   req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return SearchSnippetsResponse{Results: results}, nil

	case "add_track":
		var req AddTrackParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		tr, err := h.svc.Tracks.Add(ctx, wsID, req.Title, req.Video)
		if err != nil {
			return nil, mapError(err)
		}
		return tr, nil
	case "remove_track":
		var req RemoveTrackParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Tracks.Remove(ctx, wsID, req.ID); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "move_track":
		var req MoveTrackParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if err := h.svc.Tracks.Move(ctx, wsID, req.ID, req.Position); err != nil {
			return nil, mapError(err)
		}
		return statusOK(), nil
	case "list_tracks":
		var req ListTracksParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		tracks, err := h.svc.Tracks.List(ctx, wsID)
		if err != nil {
			return nil, mapError(err)
		}
		return ListTracksResponse{Tracks: tracks}, nil

	case "draft_message":
		var req DraftMessageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		result, err := draft.Transform(req.Text, req.Tone)
		if err != nil {
			return nil, mapError(err)
		}
		return DraftMessageResponse{Original: req.Text, Tone: req.Tone, Result: result}, nil

	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, workspaceID, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		entries, err := h.svc.Activity.GetRecentActivity(ctx, wsID, activity.ListOptions{
			EntityKind:   req.EntityKind,
			EntityID:     req.EntityID,
			ActivityType: req.Type,
			Limit:        req.Limit,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return GetRecentActivityResponse{Activity: entries}, nil

	case "tools/list":
		return ToolsListResult{Tools: buildToolCatalog()}, nil

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

// resolveWorkspace picks the effective workspace: explicit param, then
// transport-level workspace, then the default workspace.
func (h *Handler) resolveWorkspace(ctx context.Context, transportWS, paramWS string) (string, error) {
	if paramWS != "" {
		return paramWS, nil
	}
	if transportWS != "" {
		return transportWS, nil
	}
	ws, err := h.svc.Workspaces.GetDefault(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return ws.ID, nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}

func statusOK() map[string]string {
	return map[string]string{"status": "ok"}
}
