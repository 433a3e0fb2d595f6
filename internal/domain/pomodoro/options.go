package pomodoro

// ListOptions provides filtering options for listing sessions.
// Sessions are returned most recent first.
type ListOptions struct {
	Phase  *Phase
	Limit  int
	Offset int
}
