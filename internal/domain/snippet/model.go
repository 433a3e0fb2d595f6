package snippet

import "time"

// Snippet is a saved shell command or code fragment
type Snippet struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Command     string    `json:"command"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SearchResult represents a search hit with relevance
type SearchResult struct {
	Snippet Snippet `json:"snippet"`
	Rank    float64 `json:"rank"`
}
