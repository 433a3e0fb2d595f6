package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// Service handles todo business logic.
type Service struct {
	items      Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new todo service.
func NewService(items Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{items: items, activities: activities, logger: logger}
}

// Add creates a new open item.
func (s *Service) Add(ctx context.Context, workspaceID, content string) (*Item, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}

	item := &Item{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Content:     content,
		CreatedAt:   time.Now(),
	}

	if err := s.items.Create(ctx, workspaceID, item); err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	s.logActivity(ctx, workspaceID, item.ID, activity.TypeTodoAdded, "added todo")
	return item, nil
}

// Toggle flips an item between done and open.
func (s *Service) Toggle(ctx context.Context, workspaceID, id string) (*Item, error) {
	current, err := s.items.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("loading todo: %w", err)
	}

	updated := *current
	updated.Done = !current.Done
	if updated.Done {
		now := time.Now()
		updated.CompletedAt = &now
	} else {
		updated.CompletedAt = nil
	}

	if err := s.items.Update(ctx, workspaceID, &updated); err != nil {
		return nil, fmt.Errorf("updating todo: %w", err)
	}

	typ := activity.TypeTodoReopened
	summary := "reopened todo"
	if updated.Done {
		typ = activity.TypeTodoCompleted
		summary = "completed todo"
	}
	s.logActivity(ctx, workspaceID, updated.ID, typ, summary)

	return &updated, nil
}

// Delete removes an item by ID.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.items.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("deleting todo: %w", err)
	}

	s.logActivity(ctx, workspaceID, id, activity.TypeTodoDeleted, "deleted todo")
	return nil
}

// List returns items based on options, open items first.
func (s *Service) List(ctx context.Context, workspaceID string, opts ListOptions) ([]Item, error) {
	return s.items.List(ctx, workspaceID, opts)
}

// ClearCompleted deletes every done item and returns how many were removed.
func (s *Service) ClearCompleted(ctx context.Context, workspaceID string) (int, error) {
	n, err := s.items.DeleteCompleted(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("clearing completed todos: %w", err)
	}
	if n > 0 {
		s.logActivity(ctx, workspaceID, "", activity.TypeTodoDeleted, fmt.Sprintf("cleared %d completed todos", n))
	}
	return n, nil
}

func (s *Service) logActivity(ctx context.Context, workspaceID, itemID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	entry := &activity.Entry{
		WorkspaceID:  workspaceID,
		EntityKind:   activity.KindTodo,
		ActivityType: typ,
		Summary:      summary,
	}
	if itemID != "" {
		entry.EntityID = &itemID
	}
	_ = s.activities.Log(ctx, workspaceID, entry)
}
