package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func parsedFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that an empty builder yields
// a fully defaulted config.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")

	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, filepath.Join("/xdg", "cftunnel"), cfg.Storage.DataDir)
	assert.Equal(t, DefaultStopTimeout, cfg.Connector.StopTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Connector.PollInterval)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while empty fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Log: Log{Level: "debug"}},
		&StructuredConfig{Log: Log{Level: "error"}, Storage: Storage{DataDir: "/data"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data", cfg.Storage.DataDir)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithFlags_ReadsParsedValues(t *testing.T) {
	fs := parsedFlagSet(t,
		"--data-dir", "/tmp/cft",
		"--api-url", "http://localhost:9000",
		"--cloudflared", "/usr/bin/cloudflared",
		"--log-level", "warn",
		"--config", "/etc/cft.yaml",
	)

	b := newConfigBuilder().withFlags(fs)
	require.Len(t, b.configs, 1)

	got := b.configs[0]
	assert.Equal(t, "/tmp/cft", got.Storage.DataDir)
	assert.Equal(t, "http://localhost:9000", got.API.BaseURL)
	assert.Equal(t, "/usr/bin/cloudflared", got.Connector.Binary)
	assert.Equal(t, "warn", got.Log.Level)
	assert.Equal(t, "/etc/cft.yaml", got.FilePath)
}

func TestWithFlags_UnregisteredFlagsAreEmpty(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)

	b := newConfigBuilder().withFlags(fs)
	require.Len(t, b.configs, 1)
	assert.Equal(t, &StructuredConfig{}, b.configs[0])
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_YAML(t *testing.T) {
	path := writeTempSettings(t, "settings.yaml", `
api:
  url: http://127.0.0.1:8080/client/v4
  request_timeout: 15s
storage:
  data_dir: /srv/cftunnel
connector:
  cloudflared: /opt/cloudflared
  stop_timeout: 7s
  stop_poll_interval: 100ms
log:
  level: debug
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b = b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	got := b.configs[1]
	assert.Equal(t, "http://127.0.0.1:8080/client/v4", got.API.BaseURL)
	assert.Equal(t, 15*time.Second, got.API.RequestTimeout)
	assert.Equal(t, "/srv/cftunnel", got.Storage.DataDir)
	assert.Equal(t, "/opt/cloudflared", got.Connector.Binary)
	assert.Equal(t, 7*time.Second, got.Connector.StopTimeout)
	assert.Equal(t, 100*time.Millisecond, got.Connector.PollInterval)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestWithFile_JSON(t *testing.T) {
	path := writeTempSettings(t, "settings.json", `{"log":{"level":"warn"},"storage":{"data_dir":"/data"}}`)

	got, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", got.Log.Level)
	assert.Equal(t, "/data", got.Storage.DataDir)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "absent.yaml")})

	b = b.withFile()
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading settings file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > file.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	path := writeTempSettings(t, "settings.yaml", `
storage:
  data_dir: /from-file
log:
  level: error
connector:
  cloudflared: /file/cloudflared
`)
	setEnvVars(t, map[string]string{
		"CFTUNNEL_CONFIG":      path,
		"CFTUNNEL_LOG_LEVEL":   "warn",
		"CFTUNNEL_CLOUDFLARED": "/env/cloudflared",
	})
	fs := parsedFlagSet(t, "--log-level", "debug")

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/env/cloudflared", cfg.Connector.Binary)
	assert.Equal(t, "/from-file", cfg.Storage.DataDir)
	assert.Equal(t, path, cfg.FilePath)
}

// ── validate ──────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		API:       API{BaseURL: DefaultAPIBaseURL},
		Storage:   Storage{DataDir: "/data"},
		Connector: Connector{StopTimeout: DefaultStopTimeout, PollInterval: DefaultPollInterval},
		Log:       Log{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"base url without scheme", func(c *StructuredConfig) { c.API.BaseURL = "api.cloudflare.com" }, ErrInvalidAPIConfigs},
		{"negative request timeout", func(c *StructuredConfig) { c.API.RequestTimeout = -time.Second }, ErrInvalidAPIConfigs},
		{"relative data dir", func(c *StructuredConfig) { c.Storage.DataDir = "data" }, ErrInvalidStorageConfigs},
		{"zero stop timeout", func(c *StructuredConfig) { c.Connector.StopTimeout = 0 }, ErrInvalidConnectorConfigs},
		{"poll exceeds timeout", func(c *StructuredConfig) { c.Connector.PollInterval = time.Minute }, ErrInvalidConnectorConfigs},
		{"unknown log level", func(c *StructuredConfig) { c.Log.Level = "verbose" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
