package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/logger"
)

type tokenStore struct {
	paths  Paths
	logger *logger.Logger
}

// NewTokenStore constructs a [TokenStore] backed by the tunnel-token file.
func NewTokenStore(paths Paths, logger *logger.Logger) TokenStore {
	return &tokenStore{
		paths:  paths,
		logger: logger,
	}
}

// LoadToken returns the cached token with surrounding whitespace removed.
// A missing or blank file yields [ErrTokenNotFound].
func (s *tokenStore) LoadToken() (string, error) {
	data, err := os.ReadFile(s.paths.Token())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		s.logger.Err(err).Msg("error reading cached token")
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SaveToken replaces the cached token atomically with owner-only permissions.
func (s *tokenStore) SaveToken(token string) error {
	if err := writeFileAtomic(s.paths.Token(), []byte(token), secretPerm); err != nil {
		s.logger.Err(err).Msg("error caching token")
		return err
	}
	s.logger.Debug().Msg("token cached")
	return nil
}
