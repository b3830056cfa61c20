// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultAPIBaseURL is the Cloudflare v4 API root.
	DefaultAPIBaseURL = "https://api.cloudflare.com/client/v4"
	// DefaultStopTimeout bounds how long a graceful stop may take before the
	// connector is killed.
	DefaultStopTimeout = 5 * time.Second
	// DefaultPollInterval is how often liveness is probed while stopping.
	DefaultPollInterval = 200 * time.Millisecond
	// DefaultLogLevel is the level of the CLI diagnostic log.
	DefaultLogLevel = "info"

	appDirName = "cftunnel"
)

// StructuredConfig is the top-level runtime settings container.
//
// Struct tags:
//   - envPrefix / env: caarlos0/env lookups, all under the CFTUNNEL_ prefix.
//   - mapstructure: keys of the optional settings file read by viper.
type StructuredConfig struct {
	// API holds settings of the Cloudflare API transport.
	API API `envPrefix:"API_" mapstructure:"api"`

	// Storage holds the location of persisted local state.
	Storage Storage `mapstructure:"storage"`

	// Connector holds settings for supervising the cloudflared process.
	Connector Connector `mapstructure:"connector"`

	// Log holds settings of the diagnostic log.
	Log Log `envPrefix:"LOG_" mapstructure:"log"`

	// FilePath is the optional settings file. Populated via CFTUNNEL_CONFIG
	// or the --config flag.
	FilePath string `env:"CONFIG" mapstructure:"-"`
}

// API configures the remote API client.
type API struct {
	// BaseURL is the API root. Env: CFTUNNEL_API_URL
	BaseURL string `env:"URL" mapstructure:"url"`

	// RequestTimeout bounds a single API call. Zero keeps the transport
	// default (no timeout). Env: CFTUNNEL_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" mapstructure:"request_timeout"`
}

// Storage configures where local state lives.
type Storage struct {
	// DataDir holds config.json, the cached token, the PID file and logs.
	// Env: CFTUNNEL_DATA_DIR
	DataDir string `env:"DATA_DIR" mapstructure:"data_dir"`
}

// Connector configures the local cloudflared process.
type Connector struct {
	// Binary is an explicit path to cloudflared. Empty means discover it on
	// PATH or in ~/.local/bin. Env: CFTUNNEL_CLOUDFLARED
	Binary string `env:"CLOUDFLARED" mapstructure:"cloudflared"`

	// Token is a tunnel token supplied out of band. It is never read from
	// the settings file. Env: CFTUNNEL_TOKEN
	Token string `env:"TOKEN" mapstructure:"-"`

	// StopTimeout is the graceful stop deadline. Env: CFTUNNEL_STOP_TIMEOUT
	StopTimeout time.Duration `env:"STOP_TIMEOUT" mapstructure:"stop_timeout"`

	// PollInterval is the liveness probe interval while stopping.
	// Env: CFTUNNEL_STOP_POLL_INTERVAL
	PollInterval time.Duration `env:"STOP_POLL_INTERVAL" mapstructure:"stop_poll_interval"`
}

// Log configures the diagnostic log written to the data directory.
type Log struct {
	// Level is a zerolog level name. Env: CFTUNNEL_LOG_LEVEL
	Level string `env:"LEVEL" mapstructure:"level"`
}

// GetStructuredConfig loads, merges, defaults and validates the runtime
// settings. fs carries the already parsed persistent flags; it may be nil.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		build()
}

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultAPIBaseURL
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir()
	}
	if cfg.Connector.StopTimeout == 0 {
		cfg.Connector.StopTimeout = DefaultStopTimeout
	}
	if cfg.Connector.PollInterval == 0 {
		cfg.Connector.PollInterval = DefaultPollInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// defaultDataDir follows the XDG base directory layout.
func defaultDataDir() string {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName)
	}
	return filepath.Join(home, ".local", "share", appDirName)
}
