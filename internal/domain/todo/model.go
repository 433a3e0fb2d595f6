package todo

import "time"

// Item represents a to-do list entry
type Item struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Content     string     `json:"content"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
