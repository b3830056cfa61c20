// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/rs/zerolog"
)

// validate checks that the merged and defaulted [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAPIConfigs, cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAPIConfigs)
	}

	if !filepath.IsAbs(cfg.Storage.DataDir) {
		return fmt.Errorf("%w: data dir %q must be absolute", ErrInvalidStorageConfigs, cfg.Storage.DataDir)
	}

	if cfg.Connector.StopTimeout <= 0 || cfg.Connector.PollInterval <= 0 {
		return fmt.Errorf("%w: stop timeout and poll interval must be positive", ErrInvalidConnectorConfigs)
	}
	if cfg.Connector.PollInterval > cfg.Connector.StopTimeout {
		return fmt.Errorf("%w: poll interval exceeds stop timeout", ErrInvalidConnectorConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
