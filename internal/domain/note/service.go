package note

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

// DefaultColor is applied when a note is created without one.
const DefaultColor = "yellow"

// Service handles note business logic.
type Service struct {
	notes      Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new note service.
func NewService(notes Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{notes: notes, activities: activities, logger: logger}
}

// CreateRequest describes a note creation request.
type CreateRequest struct {
	Content string
	Color   string
	PosX    float64
	PosY    float64
}

// UpdateRequest describes a note update request. Nil fields are left as-is.
type UpdateRequest struct {
	ID      string
	Content *string
	Color   *string
	PosX    *float64
	PosY    *float64
	Pinned  *bool
}

// Create creates a new note.
func (s *Service) Create(ctx context.Context, workspaceID string, req CreateRequest) (*Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalidInput
	}

	color := req.Color
	if color == "" {
		color = DefaultColor
	}

	now := time.Now()
	n := &Note{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Content:     req.Content,
		Color:       color,
		PosX:        req.PosX,
		PosY:        req.PosY,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.notes.Create(ctx, workspaceID, n); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	s.logActivity(ctx, workspaceID, n.ID, activity.TypeNoteCreated, "created note")
	return n, nil
}

// Update modifies a note. The last write wins; there is no version check.
func (s *Service) Update(ctx context.Context, workspaceID string, req UpdateRequest) (*Note, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.notes.Get(ctx, workspaceID, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("loading note: %w", err)
	}

	updated := *current
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrInvalidInput
		}
		updated.Content = *req.Content
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if req.PosX != nil {
		updated.PosX = *req.PosX
	}
	if req.PosY != nil {
		updated.PosY = *req.PosY
	}
	if req.Pinned != nil {
		updated.Pinned = *req.Pinned
	}
	updated.UpdatedAt = time.Now()

	if err := s.notes.Update(ctx, workspaceID, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("updating note: %w", err)
	}

	s.logActivity(ctx, workspaceID, updated.ID, activity.TypeNoteUpdated, "updated note")
	return &updated, nil
}

// Delete removes a note by ID.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.notes.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}

	s.logActivity(ctx, workspaceID, id, activity.TypeNoteDeleted, "deleted note")
	return nil
}

// List returns notes pinned-first, then most recently updated.
func (s *Service) List(ctx context.Context, workspaceID string) ([]Note, error) {
	return s.notes.List(ctx, workspaceID)
}

func (s *Service) logActivity(ctx context.Context, workspaceID, noteID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
		WorkspaceID:  workspaceID,
		EntityKind:   activity.KindNote,
		EntityID:     &noteID,
		ActivityType: typ,
		Summary:      summary,
	})
}
