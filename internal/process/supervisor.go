// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
)

var _ ConnectorSupervisor = (*Supervisor)(nil)

// StopState is the outcome of [Supervisor.Stop].
type StopState int

const (
	// StopNothing means no PID file existed.
	StopNothing StopState = iota
	// StopStale means the PID file referred to a dead process.
	StopStale
	// StopGraceful means the process exited after the graceful signal.
	StopGraceful
	// StopForced means the process had to be killed.
	StopForced
)

func (s StopState) String() string {
	switch s {
	case StopNothing:
		return "nothing"
	case StopStale:
		return "stale"
	case StopGraceful:
		return "graceful"
	case StopForced:
		return "forced"
	default:
		return fmt.Sprintf("StopState(%d)", int(s))
	}
}

// StopResult describes what Stop did.
type StopResult struct {
	State StopState
	PID   int
}

// Supervisor owns the lifecycle of the local connector.
type Supervisor struct {
	pids     store.PIDStore
	logPath  string
	ctrl     Controller
	launcher Launcher

	pollInterval time.Duration
	stopTimeout  time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewSupervisor wires a [Supervisor] with the platform controller and
// launcher. logPath is the append-only connector log for background runs.
func NewSupervisor(pids store.PIDStore, logPath string, cfg config.Connector, logger *logger.Logger) *Supervisor {
	return newSupervisor(pids, logPath, NewController(), NewLauncher(logger), cfg, logger)
}

func newSupervisor(pids store.PIDStore, logPath string, ctrl Controller, launcher Launcher, cfg config.Connector, logger *logger.Logger) *Supervisor {
	return &Supervisor{
		pids:         pids,
		logPath:      logPath,
		ctrl:         ctrl,
		launcher:     launcher,
		pollInterval: cfg.PollInterval,
		stopTimeout:  cfg.StopTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// reconcile refuses to proceed while a tracked process is alive and removes
// a stale PID file.
func (s *Supervisor) reconcile() error {
	pid, ok := s.pids.LoadPID()
	if !ok {
		return nil
	}

	if s.ctrl.Alive(pid) {
		s.logger.Info().Int("pid", pid).Msg("tracked connector is alive, refusing to start")
		return &AlreadyRunningError{PID: pid}
	}

	s.logger.Info().Int("pid", pid).Msg("removing stale pid file")
	if err := s.pids.ClearPID(); err != nil {
		return fmt.Errorf("clear stale pid: %w", err)
	}
	return nil
}

// RunForeground starts cmd attached to the terminal and blocks until it
// exits. No PID file is written.
func (s *Supervisor) RunForeground(ctx context.Context, cmd Command) (int, error) {
	if err := s.reconcile(); err != nil {
		return 0, err
	}

	s.logger.Info().Str("cmd", cmd.String()).Msg("starting connector in foreground")
	code, err := s.launcher.Foreground(ctx, cmd)
	if err != nil {
		s.logger.Err(err).Msg("foreground connector failed")
		return code, err
	}

	s.logger.Info().Int("exit_code", code).Msg("foreground connector exited")
	return code, nil
}

// StartBackground starts cmd detached with output appended to the connector
// log, records its PID and returns it without waiting.
func (s *Supervisor) StartBackground(cmd Command) (int, error) {
	if err := s.reconcile(); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(s.logPath), 0o700); err != nil {
		return 0, fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, fmt.Errorf("open connector log: %w", err)
	}
	defer logFile.Close()

	header := fmt.Sprintf("\n--- %s %s ---\n", s.now().Format(time.RFC3339), cmd.String())
	if _, err = logFile.WriteString(header); err != nil {
		return 0, fmt.Errorf("write connector log header: %w", err)
	}

	pid, err := s.launcher.Background(cmd, logFile)
	if err != nil {
		s.logger.Err(err).Str("cmd", cmd.String()).Msg("background spawn failed")
		return 0, err
	}

	if err = s.pids.SavePID(pid); err != nil {
		// do not leave an untracked connector behind
		_ = s.ctrl.Signal(pid, true)
		return 0, fmt.Errorf("record pid %d: %w", pid, err)
	}

	s.logger.Info().Int("pid", pid).Str("log", s.logPath).Msg("connector started in background")
	return pid, nil
}

// Stop terminates the tracked background connector: graceful signal, poll,
// then forceful kill at the deadline. The PID file is removed in every case,
// including a failed signal. Cancelling ctx shortens the grace period.
func (s *Supervisor) Stop(ctx context.Context) (StopResult, error) {
	pid, ok := s.pids.LoadPID()
	if !ok {
		return StopResult{State: StopNothing}, nil
	}

	if !s.ctrl.Alive(pid) {
		s.logger.Info().Int("pid", pid).Msg("stale pid file on stop")
		return StopResult{State: StopStale, PID: pid}, s.clear()
	}

	s.logger.Info().Int("pid", pid).Msg("stopping connector")
	if err := s.ctrl.Signal(pid, false); err != nil {
		switch {
		case errors.Is(err, ErrProcessGone):
			return StopResult{State: StopGraceful, PID: pid}, s.clear()
		case errors.Is(err, os.ErrPermission):
			s.logger.Info().Int("pid", pid).Msg("pid belongs to another user, treating as stale")
			return StopResult{State: StopStale, PID: pid}, s.clear()
		default:
			return StopResult{PID: pid}, errors.Join(fmt.Errorf("signal connector %d: %w", pid, err), s.clear())
		}
	}

	if s.waitExit(ctx, pid) {
		s.logger.Info().Int("pid", pid).Msg("connector stopped gracefully")
		return StopResult{State: StopGraceful, PID: pid}, s.clear()
	}

	s.logger.Warn().Int("pid", pid).Dur("timeout", s.stopTimeout).Msg("connector ignored graceful stop, killing")
	if err := s.ctrl.Signal(pid, true); err != nil && !errors.Is(err, ErrProcessGone) {
		clearErr := s.clear()
		return StopResult{State: StopForced, PID: pid}, errors.Join(fmt.Errorf("kill connector %d: %w", pid, err), clearErr)
	}
	return StopResult{State: StopForced, PID: pid}, s.clear()
}

// waitExit polls liveness until the process is gone or the stop timeout or
// ctx expires. It reports whether the process exited.
func (s *Supervisor) waitExit(ctx context.Context, pid int) bool {
	deadline := time.NewTimer(s.stopTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.ctrl.Alive(pid) {
				return true
			}
		case <-deadline.C:
			return !s.ctrl.Alive(pid)
		case <-ctx.Done():
			return !s.ctrl.Alive(pid)
		}
	}
}

func (s *Supervisor) clear() error {
	if err := s.pids.ClearPID(); err != nil {
		return fmt.Errorf("clear pid: %w", err)
	}
	return nil
}

// Status reports the tracked connector without changing anything.
func (s *Supervisor) Status() models.ProcessStatus {
	status := models.ProcessStatus{LogFile: s.logPath}

	pid, ok := s.pids.LoadPID()
	if !ok {
		return status
	}

	status.PID = pid
	status.Running = s.ctrl.Alive(pid)
	status.Stale = !status.Running
	return status
}
