package window

import "errors"

var (
	// ErrEmpty is returned by the gain helpers for an empty window.
	ErrEmpty = errors.New("window: no coefficients")

	// ErrLengthMismatch is returned when samples and window differ in length.
	ErrLengthMismatch = errors.New("window: length mismatch")
)
