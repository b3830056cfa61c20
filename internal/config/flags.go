package config

import (
	"github.com/spf13/pflag"
)

// Persistent flag names shared by every command.
const (
	FlagConfig      = "config"
	FlagDataDir     = "data-dir"
	FlagAPIURL      = "api-url"
	FlagCloudflared = "cloudflared"
	FlagLogLevel    = "log-level"
)

// RegisterFlags declares the runtime settings flags on fs.
//
// Flags:
//
//	--config       settings file (yaml, json, toml)
//	--data-dir     directory for config, token, pid and log files
//	--api-url      Cloudflare API base URL
//	--cloudflared  path to the cloudflared binary
//	--log-level    diagnostic log level (debug, info, warn, error)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Settings file (yaml, json, toml)")
	fs.String(FlagDataDir, "", "Directory for config, token, pid and log files")
	fs.String(FlagAPIURL, "", "Cloudflare API base URL")
	fs.String(FlagCloudflared, "", "Path to the cloudflared binary")
	fs.String(FlagLogLevel, "", "Diagnostic log level (debug, info, warn, error)")
}

// parseFlags converts the parsed flag values into a partial config. Unknown
// or unset flags leave their fields empty.
func parseFlags(fs *pflag.FlagSet) *StructuredConfig {
	get := func(name string) string {
		v, err := fs.GetString(name)
		if err != nil {
			return ""
		}
		return v
	}

	return &StructuredConfig{
		API:       API{BaseURL: get(FlagAPIURL)},
		Storage:   Storage{DataDir: get(FlagDataDir)},
		Connector: Connector{Binary: get(FlagCloudflared)},
		Log:       Log{Level: get(FlagLogLevel)},
		FilePath:  get(FlagConfig),
	}
}
