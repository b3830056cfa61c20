package models

import "strconv"

// LocalServiceURL is the origin address a tunnel forwards to.
func LocalServiceURL(port int) string {
	return "http://localhost:" + strconv.Itoa(port)
}

// ProcessStatus is a side-effect free snapshot of the locally supervised
// connector.
type ProcessStatus struct {
	PID     int
	Running bool
	Stale   bool
	LogFile string
}

// Tracked reports whether a PID file exists at all.
func (s ProcessStatus) Tracked() bool {
	return s.PID > 0
}

// TokenSource tells where a connector token came from.
type TokenSource string

const (
	TokenFromFlag  TokenSource = "--token flag"
	TokenFromEnv   TokenSource = "CFTUNNEL_TOKEN"
	TokenFromCache TokenSource = "local cache"
)

// StartResult describes a connector run. ExitCode is only meaningful for
// foreground runs, PID and LogFile only for background ones.
type StartResult struct {
	Command    string
	Background bool
	PID        int
	LogFile    string
	ExitCode   int
}
