package pomodoro

import "time"

// Phase represents the kind of a completed timer phase
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Session is one completed (or abandoned) timer phase
type Session struct {
	ID              string    `json:"id"`
	WorkspaceID     string    `json:"workspace_id"`
	Phase           Phase     `json:"phase"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	Completed       bool      `json:"completed"`
}

// DailySummary aggregates today's focus work.
type DailySummary struct {
	FocusSessions int `json:"focus_sessions"`
	FocusSeconds  int `json:"focus_seconds"`
}
