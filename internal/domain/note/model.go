package note

import "time"

// Note represents a sticky note on the board
type Note struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Content     string    `json:"content"`
	Color       string    `json:"color"`
	PosX        float64   `json:"pos_x"`
	PosY        float64   `json:"pos_y"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
