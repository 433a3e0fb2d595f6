package checkin

import "errors"

var (
	// ErrEntryNotFound indicates the entry doesn't exist.
	ErrEntryNotFound = errors.New("check-in entry not found")
	// ErrEmptyContent indicates the entry content is empty.
	ErrEmptyContent = errors.New("check-in content must not be empty")
	// ErrNegativeHours indicates a negative hours value.
	ErrNegativeHours = errors.New("check-in hours must not be negative")
	// ErrInvalidType indicates an unknown entry type.
	ErrInvalidType = errors.New("invalid check-in type")
)
