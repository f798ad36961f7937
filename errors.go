package sdk

import "errors"

var (
	// ErrInvalidArgument indicates a task was invoked with missing or
	// unusable parameters. Raised before any connection is opened.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch signals a row-shape selector that is neither a
	// recognized name nor a supported implementation.
	ErrTypeMismatch = errors.New("type mismatch")
)
