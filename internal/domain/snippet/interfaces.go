package snippet

import (
	"context"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Repository provides persistence for snippets.
type Repository interface {
	Create(ctx context.Context, workspaceID string, sn *Snippet) error
	Get(ctx context.Context, workspaceID, id string) (*Snippet, error)
	Update(ctx context.Context, workspaceID string, sn *Snippet) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, opts ListOptions) ([]Snippet, error)
}

// SearchRepository performs full-text search over snippets.
type SearchRepository interface {
	Search(ctx context.Context, workspaceID, query string, opts SearchOptions) ([]SearchResult, error)
}

// ActivityRepository logs snippet activities.
type ActivityRepository interface {
	Log(ctx context.Context, workspaceID string, entry *activity.Entry) error
}
