package process

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning is matched by [*AlreadyRunningError].
	ErrAlreadyRunning = errors.New("cloudflared is already running")

	// ErrProcessGone is returned by [Controller.Signal] when the process
	// exited between the liveness probe and the signal.
	ErrProcessGone = errors.New("process no longer exists")

	// ErrSpawnFailed is matched by [*SpawnError].
	ErrSpawnFailed = errors.New("failed to start cloudflared")

	// ErrCloudflaredNotFound is returned when no cloudflared binary can be
	// located.
	ErrCloudflaredNotFound = errors.New("cloudflared not found")
)

// AlreadyRunningError reports a live tracked background connector.
type AlreadyRunningError struct {
	PID int
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("cloudflared is already running (PID %d)", e.PID)
}

func (e *AlreadyRunningError) Is(target error) bool {
	return target == ErrAlreadyRunning
}

// SpawnError reports that the connector could not be started at all.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailed
}
