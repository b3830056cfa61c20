// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"

	"github.com/MKhiriev/cftunnel/internal/logger"
)

// File names inside the data directory.
const (
	ConfigFileName = "config.json"
	TokenFileName  = "tunnel-token"
	PIDFileName    = "cloudflared.pid"
	LogFileName    = "cloudflared.log"
)

// Paths computes the location of every persisted file. It performs no I/O.
type Paths struct {
	DataDir string
}

// NewPaths returns the paths rooted at dataDir.
func NewPaths(dataDir string) Paths {
	return Paths{DataDir: dataDir}
}

func (p Paths) Config() string { return filepath.Join(p.DataDir, ConfigFileName) }

func (p Paths) Token() string { return filepath.Join(p.DataDir, TokenFileName) }

func (p Paths) PID() string { return filepath.Join(p.DataDir, PIDFileName) }

// ConnectorLog is the append-only output of background cloudflared runs.
func (p Paths) ConnectorLog() string { return filepath.Join(p.DataDir, LogFileName) }

// DiagnosticLog is the CLI's own JSON log.
func (p Paths) DiagnosticLog() string { return filepath.Join(p.DataDir, logger.FileName) }
