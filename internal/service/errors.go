package service

import "errors"

var (
	ErrDomainRequired = errors.New("no domain configured")
	ErrInvalidName    = errors.New("name must contain lowercase letters, digits and hyphens only")
	ErrInvalidPort    = errors.New("port must be between 1 and 65535")
	ErrInvalidPrefix  = errors.New("prefix must contain lowercase letters, digits and hyphens only")

	ErrTunnelExists   = errors.New("tunnel already exists")
	ErrTunnelNotFound = errors.New("tunnel not found")

	// ErrNothingToDelete is returned when every in-scope resource is absent.
	ErrNothingToDelete = errors.New("nothing to delete")
	// ErrDeleteIncomplete is returned when at least one resource FAILED.
	ErrDeleteIncomplete = errors.New("delete incomplete")

	ErrTokenInactive   = errors.New("api token is not active")
	ErrNoAccounts      = errors.New("token has no account access")
	ErrAccountNotFound = errors.New("account not found for this token")
	ErrZoneNotFound    = errors.New("zone not found for this account")
	ErrNoZones         = errors.New("no domains found on this account")

	ErrNoToken = errors.New("no tunnel token found")
)
