package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrSessionBusy means a turn is already in flight for the session.
	// A session must serialize its own turns; concurrent turns for the same
	// session are rejected rather than interleaved.
	ErrSessionBusy = errors.New("another turn is in flight for this session")

	// ErrEmptyInput means the turn carried no text to process
	ErrEmptyInput = errors.New("input text is empty")
)
