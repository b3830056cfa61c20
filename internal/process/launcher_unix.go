//go:build unix

package process

import (
	"os"
	"syscall"
)

var forwardedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// foregroundAttrs puts the child in its own process group so a terminal
// interrupt reaches it exactly once, through forward.
func foregroundAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// detachedAttrs starts a new session, detaching the child from the
// controlling terminal.
func detachedAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func forward(p *os.Process, sig os.Signal) {
	_ = p.Signal(sig)
}

func interrupt(p *os.Process) {
	_ = p.Signal(syscall.SIGTERM)
}
