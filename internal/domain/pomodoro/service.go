package pomodoro

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nathanellevy/stackpad/internal/domain/activity"
)

// Service records completed timer phases. The ticking timer itself lives in
// the presentation layer; this service only persists outcomes.
type Service struct {
	sessions   Repository
	activities ActivityRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new pomodoro service.
func NewService(sessions Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{
		sessions:   sessions,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// LogRequest describes a finished timer phase.
type LogRequest struct {
	Phase           Phase
	StartedAt       time.Time
	DurationSeconds int
	Completed       bool
}

// Log stores a finished phase.
func (s *Service) Log(ctx context.Context, workspaceID string, req LogRequest) (*Session, error) {
	if !validPhase(req.Phase) || req.DurationSeconds <= 0 {
		return nil, ErrInvalidInput
	}

	startedAt := req.StartedAt
	if startedAt.IsZero() {
		startedAt = s.now().Add(-time.Duration(req.DurationSeconds) * time.Second)
	}

	sess := &Session{
		ID:              uuid.NewString(),
		WorkspaceID:     workspaceID,
		Phase:           req.Phase,
		StartedAt:       startedAt,
		DurationSeconds: req.DurationSeconds,
		Completed:       req.Completed,
	}

	if err := s.sessions.Create(ctx, workspaceID, sess); err != nil {
		return nil, fmt.Errorf("logging pomodoro: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, workspaceID, &activity.Entry{
			WorkspaceID:  workspaceID,
			EntityKind:   activity.KindPomodoro,
			EntityID:     &sess.ID,
			ActivityType: activity.TypePomodoroLogged,
			Summary:      fmt.Sprintf("logged %s phase (%ds)", sess.Phase, sess.DurationSeconds),
		})
	}

	return sess, nil
}

// List returns sessions, most recent first.
func (s *Service) List(ctx context.Context, workspaceID string, opts ListOptions) ([]Session, error) {
	return s.sessions.List(ctx, workspaceID, opts)
}

// TodaySummary aggregates focus sessions since local midnight.
func (s *Service) TodaySummary(ctx context.Context, workspaceID string) (DailySummary, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, seconds, err := s.sessions.CountSince(ctx, workspaceID, PhaseFocus, midnight)
	if err != nil {
		return DailySummary{}, fmt.Errorf("summarizing pomodoros: %w", err)
	}
	return DailySummary{FocusSessions: count, FocusSeconds: seconds}, nil
}

func validPhase(p Phase) bool {
	switch p {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}
