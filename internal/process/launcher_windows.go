//go:build windows

package process

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedProcess is DETACHED_PROCESS from the process creation flags.
const detachedProcess = 0x00000008

var forwardedSignals = []os.Signal{os.Interrupt}

func foregroundAttrs() *syscall.SysProcAttr {
	return nil
}

func detachedAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | detachedProcess,
		HideWindow:    true,
	}
}

// forward is a no-op: the console already delivers Ctrl+C to every process
// attached to it, the foreground child included.
func forward(*os.Process, os.Signal) {}

func interrupt(p *os.Process) {
	_ = p.Kill()
}
