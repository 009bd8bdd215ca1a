package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when the submit attempt limit is reached.
	ErrTooManyAttempts = errors.New("tui: too many submit attempts")
	// ErrNilController is returned when Run has no controller to drive.
	ErrNilController = errors.New("tui: controller is nil")
)
