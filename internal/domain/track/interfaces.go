package track

import (
	"context"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Repository provides persistence for playlist tracks.
type Repository interface {
	Create(ctx context.Context, workspaceID string, tr *Track) error
	Get(ctx context.Context, workspaceID, id string) (*Track, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]Track, error)
	MaxPosition(ctx context.Context, workspaceID string) (int, error)
	Renumber(ctx context.Context, workspaceID string, orderedIDs []string) error
}

// ActivityRepository logs track activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
