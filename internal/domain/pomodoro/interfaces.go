package pomodoro

import (
	"context"
	"time"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Repository provides persistence for pomodoro sessions.
type Repository interface {
	Create(ctx context.Context, workspaceID string, sess *Session) error
	List(ctx context.Context, workspaceID string, opts ListOptions) ([]Session, error)
	CountSince(ctx context.Context, workspaceID string, phase Phase, since time.Time) (sessions, seconds int, err error)
}

// ActivityRepository logs pomodoro activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
