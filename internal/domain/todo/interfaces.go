package todo

import (
	"context"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Repository provides persistence for todo items.
type Repository interface {
	Create(ctx context.Context, workspaceID string, item *Item) error
	Get(ctx context.Context, workspaceID, id string) (*Item, error)
	Update(ctx context.Context, workspaceID string, item *Item) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts ListOptions) ([]Item, error)
	DeleteCompleted(ctx context.Context, workspaceID string) (int, error)
}

// ActivityRepository logs todo activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
