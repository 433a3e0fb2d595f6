package track

import "time"

// Track is one entry in the workspace's YouTube playlist
type Track struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	VideoID     string    `json:"video_id"`
	Position    int       `json:"position"`
	AddedAt     time.Time `json:"added_at"`
}
