package mcp

import (
	"errors"
	"fmt"

	"github.com/nathanellevy/stackpad/internal/domain/checkin"
	"github.com/nathanellevy/stackpad/internal/domain/draft"
	"github.com/nathanellevy/stackpad/internal/domain/note"
	"github.com/nathanellevy/stackpad/internal/domain/pomodoro"
	"github.com/nathanellevy/stackpad/internal/domain/snippet"
	"github.com/nathanellevy/stackpad/internal/domain/todo"
	"github.com/nathanellevy/stackpad/internal/domain/track"
	"github.com/nathanellevy/stackpad/internal/domain/workspace"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound):
		return &APIError{Code: "WORKSPACE_NOT_FOUND", Message: "workspace not found", RecoveryHint: "Use list_workspaces to see available workspaces"}
	case errors.Is(err, note.ErrNoteNotFound):
		return &APIError{Code: "NOTE_NOT_FOUND", Message: "note not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, todo.ErrItemNotFound):
		return &APIError{Code: "TODO_NOT_FOUND", Message: "todo item not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, checkin.ErrEntryNotFound):
		return &APIError{Code: "CHECKIN_NOT_FOUND", Message: "check-in entry not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, checkin.ErrEmptyContent):
		return &APIError{Code: "EMPTY_CONTENT", Message: "check-in content must not be empty"}
	case errors.Is(err, checkin.ErrNegativeHours):
		return &APIError{Code: "NEGATIVE_HOURS", Message: "check-in hours must not be negative"}
	case errors.Is(err, checkin.ErrInvalidType):
		return &APIError{Code: "INVALID_TYPE", Message: "invalid check-in type", RecoveryHint: "Use progress, gotcha, error, or tip"}
	case errors.Is(err, snippet.ErrSnippetNotFound):
		return &APIError{Code: "SNIPPET_NOT_FOUND", Message: "snippet not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, track.ErrTrackNotFound):
		return &APIError{Code: "TRACK_NOT_FOUND", Message: "track not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, track.ErrInvalidVideo):
		return &APIError{Code: "INVALID_VIDEO", Message: "invalid YouTube video reference", RecoveryHint: "Pass a watch URL or an 11-character video ID"}
	case errors.Is(err, draft.ErrUnknownTone):
		return &APIError{Code: "UNKNOWN_TONE", Message: "unknown tone", RecoveryHint: "Use professional, friendly, assertive, or casual"}
	case isInvalidInput(err):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}

func isInvalidInput(err error) bool {
	return errors.Is(err, workspace.ErrInvalidInput) ||
		errors.Is(err, note.ErrInvalidInput) ||
		errors.Is(err, todo.ErrInvalidInput) ||
		errors.Is(err, pomodoro.ErrInvalidInput) ||
		errors.Is(err, snippet.ErrInvalidInput) ||
		errors.Is(err, track.ErrInvalidInput)
}
