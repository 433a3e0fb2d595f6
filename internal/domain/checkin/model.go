package checkin

import "time"

// EntryType classifies a check-in entry
type EntryType string

const (
	TypeProgress EntryType = "progress"
	TypeGotcha   EntryType = "gotcha"
	TypeError    EntryType = "error"
	TypeTip      EntryType = "tip"
)

// ValidTypes lists every accepted entry type.
var ValidTypes = []EntryType{TypeProgress, TypeGotcha, TypeError, TypeTip}

// Entry is a single check-in record. Entries are immutable once created; the
// only mutation is deletion.
type Entry struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Type        EntryType `json:"type"`
	Content     string    `json:"content"`
	Hours       float64   `json:"hours"`
	CreatedAt   time.Time `json:"created_at"`
}
