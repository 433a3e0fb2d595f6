package note

import (
	"context"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Repository provides persistence for notes.
type Repository interface {
	Create(ctx context.Context, workspaceID string, n *Note) error
	Get(ctx context.Context, workspaceID, id string) (*Note, error)
	Update(ctx context.Context, workspaceID string, n *Note) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]Note, error)
}

// ActivityRepository logs note activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
