package activity

import "time"

// Type represents the type of activity event
type Type string

const (
	TypeNoteCreated    Type = "note_created"
	TypeNoteUpdated    Type = "note_updated"
	TypeNoteDeleted    Type = "note_deleted"
	TypeTodoAdded      Type = "todo_added"
	TypeTodoCompleted  Type = "todo_completed"
	TypeTodoReopened   Type = "todo_reopened"
	TypeTodoDeleted    Type = "todo_deleted"
	TypeCheckinLogged  Type = "checkin_logged"
	TypeCheckinDeleted Type = "checkin_deleted"
	TypePomodoroLogged Type = "pomodoro_logged"
	TypeSnippetCreated Type = "snippet_created"
	TypeSnippetUpdated Type = "snippet_updated"
	TypeSnippetDeleted Type = "snippet_deleted"
	TypeTrackAdded     Type = "track_added"
	TypeTrackRemoved   Type = "track_removed"
	TypeTrackMoved     Type = "track_moved"
)

// Kind names the entity family an activity entry refers to
type Kind string

const (
	KindNote     Kind = "note"
	KindTodo     Kind = "todo"
	KindCheckin  Kind = "checkin"
	KindPomodoro Kind = "pomodoro"
	KindSnippet  Kind = "snippet"
	KindTrack    Kind = "track"
)

// Entry represents an event in the activity log
type Entry struct {
	ID           int64     `json:"id"`
	WorkspaceID  string    `json:"workspace_id"`
	EntityKind   Kind      `json:"entity_kind"`
	EntityID     *string   `json:"entity_id,omitempty"`
	ActivityType Type      `json:"type"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}
