package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/app"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/internal/tui"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/stretchr/testify/assert"
)

func TestApp_exitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		{name: "success", err: nil, wantCode: ExitCodeSuccess},
		{name: "cancelled", err: fmt.Errorf("prompt: %w", tui.ErrCancelled), wantCode: ExitCodeSuccess, wantOut: app.MsgCancelled},
		{name: "interrupted", err: context.Canceled, wantCode: ExitCodeInterrupted},
		{name: "exit error with code", err: &ExitError{Code: 7}, wantCode: 7},
		{name: "exit error with message", err: &ExitError{Code: 2, Err: errors.New("boom")}, wantCode: 2, wantErrOut: "boom"},
		{name: "plain error", err: errors.New("kaput"), wantCode: ExitCodeError, wantErrOut: "kaput"},
		{name: "error with hint", err: fmt.Errorf("load: %w", store.ErrConfigNotFound), wantCode: ExitCodeError, wantErrOut: "cftunnel setup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			a := newApp(models.AppBuildInfo{}, &bytes.Buffer{}, out, errOut, false)

			assert.Equal(t, tt.wantCode, a.exitCode(tt.err))
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
			if tt.wantErrOut != "" {
				assert.Contains(t, errOut.String(), tt.wantErrOut)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "missing config", err: store.ErrConfigNotFound, want: app.MsgRunSetup},
		{name: "invalid config", err: store.ErrConfigInvalid, want: app.MsgConfigInvalid},
		{name: "no domain", err: service.ErrDomainRequired, want: app.MsgNoDomain},
		{name: "no token", err: service.ErrNoToken, want: app.MsgNoToken},
		{name: "no cloudflared", err: process.ErrCloudflaredNotFound, want: app.MsgInstallCloudflared},
		{name: "already running", err: &process.AlreadyRunningError{PID: 42}, want: "Stop it first with: cftunnel stop"},
		{name: "unknown", err: errors.New("other"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hint(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := &ExitError{Code: 1, Err: service.ErrTunnelNotFound}
	assert.ErrorIs(t, err, service.ErrTunnelNotFound)
	assert.Equal(t, "exit status 3", (&ExitError{Code: 3}).Error())
}
