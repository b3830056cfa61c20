package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

// fakeController models a process table. A process listed in termOnAttempt
// dies after that many graceful signals; zero means it ignores them.
type fakeController struct {
	mu            sync.Mutex
	alive         map[int]bool
	termOnAttempt map[int]int
	goneOnSignal  map[int]bool
	signalErr     error
	signals       []string
}

func newFakeController() *fakeController {
	return &fakeController{
		alive:         map[int]bool{},
		termOnAttempt: map[int]int{},
		goneOnSignal:  map[int]bool{},
	}
}

func (f *fakeController) Alive(pid int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alive[pid]
}

func (f *fakeController) Signal(pid int, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kind := "term"
	if force {
		kind = "kill"
	}
	f.signals = append(f.signals, kind)

	if f.signalErr != nil {
		return f.signalErr
	}
	if f.goneOnSignal[pid] || !f.alive[pid] {
		f.alive[pid] = false
		return ErrProcessGone
	}
	if force {
		f.alive[pid] = false
		return nil
	}
	if n := f.termOnAttempt[pid]; n > 0 {
		if n == 1 {
			f.alive[pid] = false
		}
		f.termOnAttempt[pid] = n - 1
	}
	return nil
}

func (f *fakeController) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.signals...)
}

type fakeLauncher struct {
	foregroundCalls int
	backgroundCalls int
	nextPID         int
	exitCode        int
	err             error
	ctrl            *fakeController
	lastCmd         Command
}

func (f *fakeLauncher) Foreground(_ context.Context, cmd Command) (int, error) {
	f.foregroundCalls++
	f.lastCmd = cmd
	return f.exitCode, f.err
}

func (f *fakeLauncher) Background(cmd Command, output *os.File) (int, error) {
	f.backgroundCalls++
	f.lastCmd = cmd
	if f.err != nil {
		return 0, f.err
	}
	_, _ = output.WriteString("INF Starting tunnel\n")
	f.ctrl.mu.Lock()
	f.ctrl.alive[f.nextPID] = true
	f.ctrl.mu.Unlock()
	return f.nextPID, nil
}

type supervisorFixture struct {
	sup      *Supervisor
	storages *store.ClientStorages
	ctrl     *fakeController
	launcher *fakeLauncher
}

func newSupervisorFixture(t *testing.T) *supervisorFixture {
	t.Helper()
	storages := store.NewClientStorages(t.TempDir(), logger.Nop())
	ctrl := newFakeController()
	launcher := &fakeLauncher{nextPID: 4242, ctrl: ctrl}
	cfg := config.Connector{PollInterval: time.Millisecond, StopTimeout: 30 * time.Millisecond}

	sup := newSupervisor(storages.PIDs, storages.Paths.ConnectorLog(), ctrl, launcher, cfg, logger.Nop())
	sup.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	return &supervisorFixture{sup: sup, storages: storages, ctrl: ctrl, launcher: launcher}
}

func (f *supervisorFixture) trackPID(t *testing.T, pid int, alive bool) {
	t.Helper()
	require.NoError(t, f.storages.PIDs.SavePID(pid))
	f.ctrl.alive[pid] = alive
}

func (f *supervisorFixture) pidFileExists() bool {
	_, err := os.Stat(f.storages.Paths.PID())
	return err == nil
}

var quickCmd = QuickTunnelCommand("/usr/bin/cloudflared", 8080)

// ── StartBackground ───────────────────────────────────────────────────────────

func TestStartBackground_RecordsPIDAndLogHeader(t *testing.T) {
	f := newSupervisorFixture(t)

	pid, err := f.sup.StartBackground(quickCmd)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)

	got, ok := f.storages.PIDs.LoadPID()
	require.True(t, ok)
	assert.Equal(t, 4242, got)

	data, err := os.ReadFile(f.storages.Paths.ConnectorLog())
	require.NoError(t, err)
	assert.Contains(t, string(data), "--- 2026-10-19T12:00:00Z cloudflared tunnel --url http://localhost:8080 (quick tunnel) ---")
	assert.Contains(t, string(data), "INF Starting tunnel")
}

func TestStartBackground_AppendsToLog(t *testing.T) {
	f := newSupervisorFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.storages.Paths.ConnectorLog()), 0o700))
	require.NoError(t, os.WriteFile(f.storages.Paths.ConnectorLog(), []byte("previous run\n"), 0o600))

	_, err := f.sup.StartBackground(quickCmd)
	require.NoError(t, err)

	data, err := os.ReadFile(f.storages.Paths.ConnectorLog())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous run\n"))
}

// TestStartBackground_TwiceRefuses verifies that a second background start
// without a stop fails and spawns nothing.
func TestStartBackground_TwiceRefuses(t *testing.T) {
	f := newSupervisorFixture(t)

	_, err := f.sup.StartBackground(quickCmd)
	require.NoError(t, err)

	_, err = f.sup.StartBackground(quickCmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	var running *AlreadyRunningError
	require.True(t, errors.As(err, &running))
	assert.Equal(t, 4242, running.PID)
	assert.Equal(t, 1, f.launcher.backgroundCalls)
}

// TestStartBackground_StalePIDIsRemoved verifies that a PID file pointing to
// a dead process does not block a start.
func TestStartBackground_StalePIDIsRemoved(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 999, false)

	pid, err := f.sup.StartBackground(quickCmd)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)
	assert.Equal(t, 1, f.launcher.backgroundCalls)

	got, ok := f.storages.PIDs.LoadPID()
	require.True(t, ok)
	assert.Equal(t, 4242, got)
}

func TestStartBackground_SpawnFailure(t *testing.T) {
	f := newSupervisorFixture(t)
	f.launcher.err = &SpawnError{Path: "/missing/cloudflared", Err: os.ErrNotExist}

	_, err := f.sup.StartBackground(quickCmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawnFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, f.pidFileExists())
}

// ── RunForeground ─────────────────────────────────────────────────────────────

func TestRunForeground_ReturnsExitCodeWithoutPIDFile(t *testing.T) {
	f := newSupervisorFixture(t)
	f.launcher.exitCode = 3

	code, err := f.sup.RunForeground(context.Background(), quickCmd)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.False(t, f.pidFileExists())
}

func TestRunForeground_RefusesWhileBackgroundAlive(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 77, true)

	_, err := f.sup.RunForeground(context.Background(), quickCmd)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Zero(t, f.launcher.foregroundCalls)
}

func TestRunForeground_StalePIDIsRemoved(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 77, false)

	_, err := f.sup.RunForeground(context.Background(), quickCmd)
	require.NoError(t, err)
	assert.Equal(t, 1, f.launcher.foregroundCalls)
	assert.False(t, f.pidFileExists())
}

// ── Stop ──────────────────────────────────────────────────────────────────────

func TestStop_NothingTracked(t *testing.T) {
	f := newSupervisorFixture(t)

	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopNothing, res.State)
	assert.Empty(t, f.ctrl.sent())
}

func TestStop_Stale(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, false)

	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopResult{State: StopStale, PID: 55}, res)
	assert.False(t, f.pidFileExists())
	assert.Empty(t, f.ctrl.sent())
}

func TestStop_Graceful(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, true)
	f.ctrl.termOnAttempt[55] = 1

	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopGraceful, res.State)
	assert.Equal(t, []string{"term"}, f.ctrl.sent())
	assert.False(t, f.pidFileExists())
}

// TestStop_EscalatesAndClearsPID verifies that a process ignoring the
// graceful signal is killed and the PID file is still removed.
func TestStop_EscalatesAndClearsPID(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, true)

	start := time.Now()
	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopForced, res.State)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, []string{"term", "kill"}, f.ctrl.sent())
	assert.False(t, f.pidFileExists())
}

// TestStop_VanishedBeforeSignal verifies that a process exiting between the
// probe and the signal counts as stopped.
func TestStop_VanishedBeforeSignal(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, true)
	f.ctrl.goneOnSignal[55] = true

	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopGraceful, res.State)
	assert.False(t, f.pidFileExists())
}

func TestStop_SignalFailureClearsTracking(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, true)
	f.ctrl.signalErr = errors.New("input/output error")

	_, err := f.sup.Stop(context.Background())
	require.Error(t, err)
	assert.False(t, f.pidFileExists())
}

func TestStop_ForeignProcessIsStale(t *testing.T) {
	f := newSupervisorFixture(t)
	f.trackPID(t, 55, true)
	f.ctrl.signalErr = fmt.Errorf("send SIGTERM to 55: %w", os.ErrPermission)

	res, err := f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopResult{State: StopStale, PID: 55}, res)
	assert.False(t, f.pidFileExists())

	res, err = f.sup.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StopNothing, res.State)

	pid, err := f.sup.StartBackground(quickCmd)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)
}

func TestStop_CancelledContextEscalatesEarly(t *testing.T) {
	f := newSupervisorFixture(t)
	f.sup.stopTimeout = time.Hour
	f.trackPID(t, 55, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.sup.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, StopForced, res.State)
	assert.False(t, f.pidFileExists())
}

// ── Status ────────────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	f := newSupervisorFixture(t)

	st := f.sup.Status()
	assert.False(t, st.Tracked())
	assert.Equal(t, f.storages.Paths.ConnectorLog(), st.LogFile)

	f.trackPID(t, 55, true)
	st = f.sup.Status()
	assert.True(t, st.Running)
	assert.False(t, st.Stale)

	f.ctrl.alive[55] = false
	st = f.sup.Status()
	assert.True(t, st.Stale)
	assert.True(t, f.pidFileExists(), "status must not clean up")
}

func TestStopState_String(t *testing.T) {
	assert.Equal(t, "nothing", StopNothing.String())
	assert.Equal(t, "stale", StopStale.String())
	assert.Equal(t, "graceful", StopGraceful.String())
	assert.Equal(t, "forced", StopForced.String())
	assert.Equal(t, "StopState(9)", StopState(9).String())
}
