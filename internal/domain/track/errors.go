package track

import "errors"

var (
	// ErrTrackNotFound indicates the track doesn't exist.
	ErrTrackNotFound = errors.New("track not found")
	// ErrInvalidInput indicates invalid track input.
	ErrInvalidInput = errors.New("invalid track input")
	// ErrInvalidVideo indicates the video reference could not be parsed.
	ErrInvalidVideo = errors.New("invalid YouTube video reference")
)
