package store

import "errors"

// Sentinel errors returned by the local stores. Callers should use
// [errors.Is] to match against these values; returned errors usually wrap
// them with detail.
var (
	// ErrConfigNotFound is returned when no config file exists yet.
	ErrConfigNotFound = errors.New("no config found")

	// ErrConfigInvalid is returned when the config file cannot be parsed, has
	// wrongly typed or missing required fields, or holds a partial
	// zone/domain/prefix triple.
	ErrConfigInvalid = errors.New("invalid config")

	// ErrTokenNotFound is returned when no token is cached or the cached file
	// is empty.
	ErrTokenNotFound = errors.New("no cached token")
)

// Low-level file errors.
var (
	// ErrWritingFile is returned when an atomic write fails at any stage.
	ErrWritingFile = errors.New("error writing file")

	// ErrReadingFile is returned when a present file cannot be read.
	ErrReadingFile = errors.New("error reading file")
)
