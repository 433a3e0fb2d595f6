package workspace

import "errors"

var (
	// ErrWorkspaceNotFound indicates the workspace doesn't exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrInvalidInput indicates invalid workspace input.
	ErrInvalidInput = errors.New("invalid workspace input")
)
