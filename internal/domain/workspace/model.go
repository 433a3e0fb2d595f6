package workspace

import "time"

// Workspace is an isolated container for notes, todos, check-ins, and the rest
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	NoteCount    int       `json:"note_count"`
	OpenTodos    int       `json:"open_todos"`
	CheckinCount int       `json:"checkin_count"`
	CreatedAt    time.Time `json:"created_at"`
}
