// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package process supervises the local cloudflared connector.
//
// A single background connector is tracked per machine through the PID file
// owned by the store package. Platform specifics live behind two small
// capabilities: [Controller] probes and signals a PID, [Launcher] spawns a
// [Command] attached to the terminal or fully detached. [Supervisor] holds
// the platform independent state machine on top of them:
//
//	NotTracked → Starting → Running → Stopping → NotTracked
package process

import (
	"context"
	"os"

	"github.com/MKhiriev/cftunnel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/process_mock.go -package=mock

// Controller probes and signals processes by PID.
type Controller interface {
	// Alive reports whether pid refers to an existing process. It never
	// affects the process.
	Alive(pid int) bool

	// Signal asks the process to stop, gracefully or forcefully. It returns
	// an error matching ErrProcessGone when the process no longer exists.
	Signal(pid int, force bool) error
}

// Launcher spawns commands.
type Launcher interface {
	// Foreground runs cmd attached to the terminal, forwards interrupt and
	// terminate signals to it, and waits. It returns the child's exit code.
	Foreground(ctx context.Context, cmd Command) (int, error)

	// Background starts cmd in its own session with stdio redirected to
	// output and returns its PID without waiting.
	Background(cmd Command, output *os.File) (int, error)
}

// ConnectorSupervisor is the lifecycle API consumed by the service layer.
type ConnectorSupervisor interface {
	RunForeground(ctx context.Context, cmd Command) (int, error)
	StartBackground(cmd Command) (int, error)
	Stop(ctx context.Context) (StopResult, error)
	Status() models.ProcessStatus
}
