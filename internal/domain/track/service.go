package track

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
	"github.com/nathanellevy/stackpad/internal/repository"
)

// YouTube video IDs are 11 URL-safe base64 characters.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Accepts watch URLs, youtu.be short links, and embed URLs.
var videoURLPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?.*\bv=|embed/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// Service handles playlist business logic.
type Service struct {
	tracks     Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new track service.
func NewService(tracks Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{tracks: tracks, activities: activities, logger: logger}
}

// ParseVideoID extracts an 11-character video ID from a raw ID or a YouTube URL.
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if videoIDPattern.MatchString(ref) {
		return ref, nil
	}
	if m := videoURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	return "", ErrInvalidVideo
}

// Add appends a track to the end of the playlist.
func (s *Service) Add(ctx context.Context, workspaceID, title, videoRef string) (*Track, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	videoID, err := ParseVideoID(videoRef)
	if err != nil {
		return nil, err
	}

	maxPos, err := s.tracks.MaxPosition(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("finding playlist end: %w", err)
	}

	tr := &Track{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Title:       title,
		VideoID:     videoID,
		Position:    maxPos + 1,
		AddedAt:     time.Now(),
	}

	if err := s.tracks.Create(ctx, workspaceID, tr); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}

	s.logActivity(ctx, workspaceID, tr.ID, activity.TypeTrackAdded, fmt.Sprintf("added track %q", tr.Title))
	return tr, nil
}

// Remove deletes a track and renumbers the playlist contiguously.
func (s *Service) Remove(ctx context.Context, workspaceID, id string) error {
	if err := s.tracks.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrackNotFound
		}
		return fmt.Errorf("removing track: %w", err)
	}

	if err := s.renumber(ctx, workspaceID); err != nil {
		return err
	}

	s.logActivity(ctx, workspaceID, id, activity.TypeTrackRemoved, "removed track")
	return nil
}

// Move places a track at the given 1-based position and renumbers the rest.
func (s *Service) Move(ctx context.Context, workspaceID, id string, position int) error {
	if position < 1 {
		return ErrInvalidInput
	}

	tracks, err := s.tracks.List(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("listing tracks: %w", err)
	}

	ids := make([]string, 0, len(tracks))
	moved := ""
	for _, tr := range tracks {
		if tr.ID == id {
			moved = tr.ID
			continue
		}
		ids = append(ids, tr.ID)
	}
	if moved == "" {
		return ErrTrackNotFound
	}

	idx := position - 1
	if idx > len(ids) {
		idx = len(ids)
	}
	ids = append(ids[:idx], append([]string{moved}, ids[idx:]...)...)

	if err := s.tracks.Renumber(ctx, workspaceID, ids); err != nil {
		return fmt.Errorf("renumbering playlist: %w", err)
	}

	s.logActivity(ctx, workspaceID, id, activity.TypeTrackMoved, fmt.Sprintf("moved track to position %d", idx+1))
	return nil
}

// List returns tracks in playlist order.
func (s *Service) List(ctx context.Context, workspaceID string) ([]Track, error) {
	return s.tracks.List(ctx, workspaceID)
}

func (s *Service) renumber(ctx context.Context, workspaceID string) error {
	tracks, err := s.tracks.List(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("listing tracks: %w", err)
	}
	ids := make([]string, len(tracks))
	for i, tr := range tracks {
		ids[i] = tr.ID
	}
	if err := s.tracks.Renumber(ctx, workspaceID, ids); err != nil {
		return fmt.Errorf("renumbering playlist: %w", err)
	}
	return nil
}

func (s *Service) logActivity(ctx context.Context, workspaceID, trackID string, typ activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
		WorkspaceID:  workspaceID,
		EntityKind:   activity.KindTrack,
		EntityID:     &trackID,
		ActivityType: typ,
		Summary:      summary,
	})
}
