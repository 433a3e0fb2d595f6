package checkin

import (
	"context"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// EntryRepository provides persistence for check-in entries.
type EntryRepository interface {
	Create(ctx context.Context, workspaceID string, entry *Entry) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts ListOptions) ([]Entry, error)
}

// ActivityRepository logs check-in activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
