package common

import "errors"

// Callers should use errors.Is to match these values.
var (
	// ErrNotAuthenticated is returned by operations that require a session
	// when none is established.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnsupportedFormat is returned when a file is rejected before upload
	// because its extension is not accepted by the backend.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrFileTooLarge is returned when a file exceeds the backend's upload limit.
	ErrFileTooLarge = errors.New("file too large")
)
