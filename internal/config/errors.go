package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a settings
// group is invalid.
var (
	// ErrInvalidAPIConfigs indicates an unusable API base URL or a negative
	// request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates a missing or relative data directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidConnectorConfigs indicates non-positive or inconsistent stop
	// timings.
	ErrInvalidConnectorConfigs = errors.New("invalid connector configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
