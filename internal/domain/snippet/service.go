package snippet

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

// Service handles snippet business logic.
type Service struct {
	snippets   Repository
	search     SearchRepository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new snippet service.
func NewService(snippets Repository, search SearchRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{snippets: snippets, search: search, activities: activities, logger: logger}
}

// CreateRequest describes a snippet creation request.
type CreateRequest struct {
	Title       string
	Command     string
	Description string
	Language    string
}

// UpdateRequest describes a snippet update request. Nil fields are left as-is.
type UpdateRequest struct {
	ID          string
	Title       *string
	Command     *string
	Description *string
	Language    *string
}

// Create creates a new snippet.
func (s *Service) Create(ctx context.Context, workspaceID string, req CreateRequest) (*Snippet, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Command) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	sn := &Snippet{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Command:     req.Command,
		Description: req.Description,
		Language:    req.Language,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.snippets.Create(ctx, workspaceID, sn); err != nil {
		return nil, fmt.Errorf("creating snippet: %w", err)
	}

	s.logActivity(ctx, workspaceID, sn.ID, activity.TypeSnippetCreated, "created snippet")
	return sn, nil
}

// Get returns a snippet by ID.
func (s *Service) Get(ctx context.Context, workspaceID, id string) (*Snippet, error) {
	sn, err := s.snippets.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSnippetNotFound
		}
		return nil, fmt.Errorf("getting snippet: %w", err)
	}
	return sn, nil
}

// Update modifies a snippet, last write wins.
func (s *Service) Update(ctx context.Context, workspaceID string, req UpdateRequest) (*Snippet, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.snippets.Get(ctx, workspaceID, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSnippetNotFound
		}
		return nil, fmt.Errorf("loading snippet: %w", err)
	}

	updated := *current
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		updated.Title = *req.Title
	}
	if req.Command != nil {
		if strings.TrimSpace(*req.Command) == "" {
			return nil, ErrInvalidInput
		}
		updated.Command = *req.Command
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Language != nil {
		updated.Language = *req.Language
	}
	updated.UpdatedAt = time.Now()

	if err := s.snippets.Update(ctx, workspaceID, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSnippetNotFound
		}
		return nil, fmt.Errorf("updating snippet: %w", err)
	}

	s.logActivity(ctx, workspaceID, updated.ID, activity.TypeSnippetUpdated, "updated snippet")
	return &updated, nil
}

// Delete removes a snippet by ID.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.snippets.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSnippetNotFound
		}
		return fmt.Errorf("deleting snippet: %w", err)
	}

	s.logActivity(ctx, workspaceID, id, activity.TypeSnippetDeleted, "deleted snippet")
	return nil
}

// List returns snippets based on options.
func (s *Service) List(ctx context.Context, workspaceID string, opts ListOptions) ([]Snippet, error) {
	return s.snippets.List(ctx, workspaceID, opts)
}

// Search runs full-text search over title, command, and description.
func (s *Service) Search(ctx context.Context, workspaceID, query string, opts SearchOptions) ([]SearchResult, error) {
	if s.search == nil {
		return nil, fmt.Errorf("search repository not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}
	return s.search.Search(ctx, workspaceID, query, opts)
}

func (s *Service) logActivity(ctx context.Context, workspaceID, snippetID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
		WorkspaceID:  workspaceID,
		EntityKind:   activity.KindSnippet,
		EntityID:     &snippetID,
		ActivityType: typ,
		Summary:      summary,
	})
}
