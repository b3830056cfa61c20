package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/internal/adapter"
	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/internal/tui"
)

// Exit codes returned by Execute.
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	// ExitCodeInterrupted is used when the context was cancelled by a signal.
	ExitCodeInterrupted = 130
)

var errNotInteractive = errors.New(app.MsgNotInteractive)

// ExitError ends the process with Code. Err, when set, is printed first.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// errSilent is returned when the failure was already printed.
var errSilent = &ExitError{Code: ExitCodeError}

// Execute runs the application and converts its outcome into an exit code.
func Execute(ctx context.Context, a *App, args []string) int {
	return a.exitCode(a.Run(ctx, args))
}

func (a *App) exitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	if errors.Is(err, tui.ErrCancelled) {
		a.printer.info(app.MsgCancelled)
		return ExitCodeSuccess
	}
	if errors.Is(err, context.Canceled) {
		return ExitCodeInterrupted
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			a.printer.fail(exitErr.Err.Error())
		}
		return exitErr.Code
	}

	a.printer.fail(err.Error())
	if h := hint(err); h != "" {
		a.printer.hint(h)
	}
	return ExitCodeError
}

// hint returns follow-up advice for well known failures.
func hint(err error) string {
	switch {
	case errors.Is(err, store.ErrConfigNotFound):
		return app.MsgRunSetup
	case errors.Is(err, store.ErrConfigInvalid):
		return app.MsgConfigInvalid
	case errors.Is(err, service.ErrDomainRequired):
		return app.MsgNoDomain
	case errors.Is(err, service.ErrNoToken):
		return app.MsgNoToken
	case errors.Is(err, process.ErrCloudflaredNotFound):
		return app.MsgInstallCloudflared
	case errors.Is(err, process.ErrAlreadyRunning):
		return "Stop it first with: cftunnel stop"
	case errors.Is(err, adapter.ErrTransportFailed):
		return "Check your network connection and try again."
	}
	return ""
}

func accountNotFound(id string) error {
	return fmt.Errorf("%w: %q", service.ErrAccountNotFound, id)
}

func zoneNotFound(id string) error {
	return fmt.Errorf("%w: %q", service.ErrZoneNotFound, id)
}
