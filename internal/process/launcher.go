package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/MKhiriev/cftunnel/internal/logger"
)

// signalSettle is how long a cancelled context waits for the terminal signal
// that caused it, so one interrupt reaches the child once.
const signalSettle = 100 * time.Millisecond

type execLauncher struct {
	logger *logger.Logger
}

// NewLauncher returns the os/exec backed [Launcher].
func NewLauncher(logger *logger.Logger) Launcher {
	return &execLauncher{logger: logger}
}

func (l *execLauncher) command(cmd Command) *exec.Cmd {
	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = append(os.Environ(), cmd.Env...)
	return c
}

func (l *execLauncher) Foreground(ctx context.Context, cmd Command) (int, error) {
	c := l.command(cmd)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	c.SysProcAttr = foregroundAttrs()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, forwardedSignals...)
	defer signal.Stop(sigs)

	if err := c.Start(); err != nil {
		return 1, &SpawnError{Path: cmd.Path, Err: err}
	}
	l.logger.Debug().Int("pid", c.Process.Pid).Msg("foreground child started")

	done := make(chan error, 1)
	go func() { done <- c.Wait() }()

	// A terminal interrupt arrives both on sigs and as ctx cancellation when
	// the caller uses signal.NotifyContext. Only one of them reaches the child.
	forwarded := false
	ctxDone := ctx.Done()
	for {
		select {
		case sig := <-sigs:
			l.logger.Debug().Str("signal", sig.String()).Msg("forwarding signal to child")
			forward(c.Process, sig)
			forwarded = true
		case <-ctxDone:
			ctxDone = nil
			if forwarded {
				continue
			}
			select {
			case sig := <-sigs:
				l.logger.Debug().Str("signal", sig.String()).Msg("forwarding signal to child")
				forward(c.Process, sig)
				forwarded = true
			case <-time.After(signalSettle):
				l.logger.Debug().Msg("context cancelled, interrupting child")
				interrupt(c.Process)
			}
		case err := <-done:
			return exitCode(err)
		}
	}
}

func (l *execLauncher) Background(cmd Command, output *os.File) (int, error) {
	c := l.command(cmd)
	c.Stdout, c.Stderr = output, output
	c.SysProcAttr = detachedAttrs()

	if err := c.Start(); err != nil {
		return 0, &SpawnError{Path: cmd.Path, Err: err}
	}

	pid := c.Process.Pid
	if err := c.Process.Release(); err != nil {
		l.logger.Warn().Err(err).Int("pid", pid).Msg("release child handle")
	}
	return pid, nil
}

// exitCode maps a Wait result to a process exit status. A child killed by a
// signal reports 1.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}
	return 1, err
}
