package store

import (
	"github.com/MKhiriev/cftunnel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppConfigStore persists the operator configuration written by setup.
type AppConfigStore interface {
	// Load returns the stored config, or an error matching ErrConfigNotFound
	// or ErrConfigInvalid.
	Load() (models.AppConfig, error)
	// Save validates cfg and replaces the stored config atomically.
	Save(cfg models.AppConfig) error
	// Exists reports whether a config file is present, valid or not.
	Exists() bool
}

// TokenStore persists the single cached developer tunnel token.
type TokenStore interface {
	LoadToken() (string, error)
	SaveToken(token string) error
}

// PIDStore persists the PID of the background connector.
type PIDStore interface {
	// LoadPID returns the tracked PID. ok is false when the file is absent,
	// unreadable, malformed or holds a non-positive number.
	LoadPID() (pid int, ok bool)
	SavePID(pid int) error
	// ClearPID removes the PID file. A missing file is not an error.
	ClearPID() error
}
