//go:build unix

package process

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

type unixController struct{}

// NewController returns the signal based [Controller].
func NewController() Controller {
	return unixController{}
}

// Alive sends signal 0. A process we may not signal (EPERM) belongs to
// another user, so the recorded PID was recycled and is not our connector.
func (unixController) Alive(pid int) bool {
	if pid < 1 {
		return false
	}
	return unix.Kill(pid, 0) == nil
}

func (unixController) Signal(pid int, force bool) error {
	sig := unix.SIGTERM
	if force {
		sig = unix.SIGKILL
	}

	err := unix.Kill(pid, sig)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ESRCH):
		return ErrProcessGone
	default:
		return fmt.Errorf("send %s to %d: %w", unix.SignalName(sig), pid, err)
	}
}
