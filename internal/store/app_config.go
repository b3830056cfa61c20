// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/models"
)

// appConfigRecord mirrors models.AppConfig with pointer fields so that absent
// keys, nulls and wrongly typed values can be told apart while decoding.
type appConfigRecord struct {
	APIToken    *string `json:"apiToken"`
	AccountID   *string `json:"accountId"`
	ZoneID      *string `json:"zoneId"`
	Domain      *string `json:"domain"`
	Prefix      *string `json:"prefix"`
	DefaultPort *int    `json:"defaultPort"`
}

type appConfigStore struct {
	paths  Paths
	logger *logger.Logger
}

// NewAppConfigStore constructs an [AppConfigStore] reading and writing
// config.json under paths.DataDir.
func NewAppConfigStore(paths Paths, logger *logger.Logger) AppConfigStore {
	return &appConfigStore{
		paths:  paths,
		logger: logger,
	}
}

func (s *appConfigStore) Exists() bool {
	_, err := os.Stat(s.paths.Config())
	return err == nil
}

// Load reads and validates config.json.
//
// Error handling:
//   - missing file → [ErrConfigNotFound].
//   - unreadable file → [ErrReadingFile].
//   - malformed JSON, wrong field types, missing required fields or a partial
//     zone triple → [ErrConfigInvalid] wrapped with the offending detail.
func (s *appConfigStore) Load() (models.AppConfig, error) {
	path := s.paths.Config()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AppConfig{}, ErrConfigNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("path", path).Msg("error reading config")
		return models.AppConfig{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var rec appConfigRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("config is not valid json")
		return models.AppConfig{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	cfg, err := rec.toModel()
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("config failed validation")
		return models.AppConfig{}, err
	}

	s.logger.Debug().Str("account", cfg.AccountID).Bool("domain", cfg.HasDomain()).Msg("config loaded")
	return cfg, nil
}

// Save validates cfg and writes it atomically with owner-only permissions.
func (s *appConfigStore) Save(cfg models.AppConfig) error {
	if err := ValidateAppConfig(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return fmt.Errorf("%w: marshal config: %w", ErrWritingFile, err)
	}

	if err = writeFileAtomic(s.paths.Config(), data, secretPerm); err != nil {
		s.logger.Err(err).Msg("error saving config")
		return err
	}

	s.logger.Info().Str("account", cfg.AccountID).Bool("domain", cfg.HasDomain()).Msg("config saved")
	return nil
}

func (r appConfigRecord) toModel() (models.AppConfig, error) {
	if r.APIToken == nil {
		return models.AppConfig{}, fmt.Errorf("%w: apiToken is missing", ErrConfigInvalid)
	}
	if r.AccountID == nil {
		return models.AppConfig{}, fmt.Errorf("%w: accountId is missing", ErrConfigInvalid)
	}
	if r.DefaultPort == nil {
		return models.AppConfig{}, fmt.Errorf("%w: defaultPort is missing", ErrConfigInvalid)
	}

	cfg := models.AppConfig{
		APIToken:    *r.APIToken,
		AccountID:   *r.AccountID,
		ZoneID:      deref(r.ZoneID),
		Domain:      deref(r.Domain),
		Prefix:      deref(r.Prefix),
		DefaultPort: *r.DefaultPort,
	}
	return cfg, ValidateAppConfig(cfg)
}

// ValidateAppConfig checks the invariants every stored config must hold.
func ValidateAppConfig(cfg models.AppConfig) error {
	if cfg.APIToken == "" {
		return fmt.Errorf("%w: apiToken is empty", ErrConfigInvalid)
	}
	if cfg.AccountID == "" {
		return fmt.Errorf("%w: accountId is empty", ErrConfigInvalid)
	}
	if !models.ValidPort(cfg.DefaultPort) {
		return fmt.Errorf("%w: defaultPort %d is out of range", ErrConfigInvalid, cfg.DefaultPort)
	}

	set := 0
	for _, v := range []string{cfg.ZoneID, cfg.Domain, cfg.Prefix} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("%w: zoneId, domain and prefix must be set together", ErrConfigInvalid)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
