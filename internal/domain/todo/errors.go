package todo

import "errors"

var (
	// ErrItemNotFound indicates the item doesn't exist.
	ErrItemNotFound = errors.New("todo item not found")
	// ErrInvalidInput indicates invalid todo input.
	ErrInvalidInput = errors.New("invalid todo input")
)
