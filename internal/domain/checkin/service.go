package checkin

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

// Service handles check-in business logic. Input validation lives here, not in
// the stats engine: ComputeStats only ever sees entries this service accepted.
type Service struct {
	entries    EntryRepository
	activities ActivityRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new check-in service.
func NewService(entries EntryRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		entries:    entries,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// CreateRequest describes a check-in creation request.
type CreateRequest struct {
	Type    EntryType
	Content string
	Hours   float64
}

// Create validates and stores a new entry. The timestamp is set once at
// creation and never changes.
func (s *Service) Create(ctx context.Context, workspaceID string, req CreateRequest) (*Entry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if req.Hours < 0 {
		return nil, ErrNegativeHours
	}
	if !validType(req.Type) {
		return nil, ErrInvalidType
	}

	entry := &Entry{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Type:        req.Type,
		Content:     req.Content,
		Hours:       req.Hours,
		CreatedAt:   s.now(),
	}

	if err := s.entries.Create(ctx, workspaceID, entry); err != nil {
		return nil, fmt.Errorf("creating check-in: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
			WorkspaceID:  workspaceID,
			EntityKind:   activity.KindCheckin,
			EntityID:     &entry.ID,
			ActivityType: activity.TypeCheckinLogged,
			Summary:      fmt.Sprintf("logged %s check-in", entry.Type),
		})
	}

	return entry, nil
}

// Delete removes an entry by ID. There is no tombstone.
func (s *Service) Delete(ctx context.Context, workspaceID, id string) error {
	if err := s.entries.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("deleting check-in: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
			WorkspaceID:  workspaceID,
			EntityKind:   activity.KindCheckin,
			EntityID:     &id,
			ActivityType: activity.TypeCheckinDeleted,
			Summary:      fmt.Sprintf("deleted check-in %s", id),
		})
	}

	return nil
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context, workspaceID string, opts ListOptions) ([]Entry, error) {
	return s.entries.List(ctx, workspaceID, opts)
}

// Stats loads every entry in the workspace and derives a fresh snapshot at the
// current instant.
func (s *Service) Stats(ctx context.Context, workspaceID string) (Snapshot, error) {
	entries, err := s.entries.List(ctx, workspaceID, ListOptions{})
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading check-ins: %w", err)
	}
	return ComputeStats(entries, s.now()), nil
}

func validType(t EntryType) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}
