package client

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ── start ────────────────────────────────────────────────────────────────────

func TestStartCommand(t *testing.T) {
	t.Run("named in background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.connector.EXPECT().ResolveToken("tok").Return("tok", models.TokenFromFlag, nil)
		ta.connector.EXPECT().StartNamed(gomock.Any(), "tok", true).Return(models.StartResult{
			Background: true, PID: 5150, LogFile: "/data/cloudflared.log",
		}, nil)

		assert.Equal(t, ExitCodeSuccess, ta.execute("start", "--token", "tok", "-d"))
		assert.Contains(t, ta.out.String(), "token from --token flag")
		assert.Contains(t, ta.out.String(), "5150")
		assert.Contains(t, ta.out.String(), "/data/cloudflared.log")
	})

	t.Run("foreground exit code is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.connector.EXPECT().ResolveToken("").Return("cached", models.TokenFromCache, nil)
		ta.connector.EXPECT().StartNamed(gomock.Any(), "cached", false).Return(models.StartResult{ExitCode: 3}, nil)

		assert.Equal(t, 3, ta.execute("run"))
	})

	t.Run("no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.connector.EXPECT().ResolveToken("").Return("", models.TokenSource(""), service.ErrNoToken)

		assert.Equal(t, ExitCodeError, ta.execute("start"))
		assert.Contains(t, ta.errOut.String(), "cftunnel token <your-name>")
	})

	t.Run("already running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.connector.EXPECT().ResolveToken("").Return("tok", models.TokenFromEnv, nil)
		ta.connector.EXPECT().StartNamed(gomock.Any(), "tok", true).Return(models.StartResult{}, &process.AlreadyRunningError{PID: 77})

		assert.Equal(t, ExitCodeError, ta.execute("start", "--background"))
		assert.Contains(t, ta.errOut.String(), "PID 77")
		assert.Contains(t, ta.errOut.String(), "cftunnel stop")
	})

	t.Run("quick with explicit port", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.connector.EXPECT().StartQuick(gomock.Any(), 8080, false).Return(models.StartResult{}, nil)

		assert.Equal(t, ExitCodeSuccess, ta.execute("start", "--quick", "--port", "8080"))
		assert.Contains(t, ta.out.String(), "http://localhost:8080")
	})

	t.Run("quick port from config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)
		cfg := testConfig
		cfg.DefaultPort = 5173

		ta.setup.EXPECT().Current().Return(cfg, nil)
		ta.connector.EXPECT().StartQuick(gomock.Any(), 5173, true).Return(models.StartResult{Background: true, PID: 1}, nil)

		assert.Equal(t, ExitCodeSuccess, ta.execute("start", "-q", "-d"))
	})

	t.Run("quick without config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		ta.setup.EXPECT().Current().Return(models.AppConfig{}, fmt.Errorf("load: %w", store.ErrConfigNotFound))
		ta.connector.EXPECT().StartQuick(gomock.Any(), models.DefaultPort, false).Return(models.StartResult{}, nil)

		assert.Equal(t, ExitCodeSuccess, ta.execute("start", "--quick"))
		assert.NotContains(t, ta.errOut.String(), "Ignoring config")
	})

	t.Run("quick and token are exclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ta := newTestApp(t, ctrl, false)

		assert.Equal(t, ExitCodeError, ta.execute("start", "--quick", "--token", "tok"))
	})
}

// ── stop ─────────────────────────────────────────────────────────────────────

func TestStopCommand(t *testing.T) {
	tests := []struct {
		name       string
		result     process.StopResult
		wantOut    []string
		wantErrOut []string
	}{
		{
			name:       "nothing tracked",
			result:     process.StopResult{State: process.StopNothing},
			wantErrOut: []string{"No running tunnel found", "pkill cloudflared"},
		},
		{
			name:    "stale",
			result:  process.StopResult{State: process.StopStale, PID: 12},
			wantOut: []string{"Process 12 is not running"},
		},
		{
			name:    "graceful",
			result:  process.StopResult{State: process.StopGraceful, PID: 34},
			wantOut: []string{"cloudflared stopped (PID 34).", "Logs:"},
		},
		{
			name:       "forced",
			result:     process.StopResult{State: process.StopForced, PID: 56},
			wantOut:    []string{"cloudflared stopped (PID 56)."},
			wantErrOut: []string{"killed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ta := newTestApp(t, ctrl, false)

			ta.connector.EXPECT().Stop(gomock.Any()).Return(tt.result, nil)

			assert.Equal(t, ExitCodeSuccess, ta.execute("stop"))
			for _, s := range tt.wantOut {
				assert.Contains(t, ta.out.String(), s)
			}
			for _, s := range tt.wantErrOut {
				assert.Contains(t, ta.errOut.String(), s)
			}
		})
	}
}

// ── standalone commands ──────────────────────────────────────────────────────

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, false)
	ta.app.services = nil

	assert.Equal(t, ExitCodeSuccess, ta.execute("version"))
	assert.Contains(t, ta.out.String(), "cftunnel 1.2.3")
	assert.Contains(t, ta.out.String(), "abc1234")
}

func TestVersionFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, false)

	assert.Equal(t, ExitCodeSuccess, ta.execute("--version"))
	assert.Equal(t, "cftunnel 1.2.3\n", ta.out.String())
}

func TestCompletionsCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{name: "bash", args: []string{"completions", "--shell", "bash"}, want: "bash completion"},
		{name: "zsh positional", args: []string{"completions", "zsh"}, want: "#compdef cftunnel"},
		{name: "fish", args: []string{"completions", "--shell", "fish"}, want: "complete -c cftunnel"},
		{name: "powershell", args: []string{"completions", "--shell", "powershell"}, want: "Register-ArgumentCompleter"},
		{name: "unsupported", args: []string{"completions", "--shell", "tcsh"}, wantCode: ExitCodeError},
		{name: "missing", args: []string{"completions"}, wantCode: ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ta := newTestApp(t, ctrl, false)
			ta.app.services = nil

			assert.Equal(t, tt.wantCode, ta.execute(tt.args...))
			if tt.want != "" {
				assert.Contains(t, ta.out.String(), tt.want)
			}
		})
	}
}
