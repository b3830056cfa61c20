package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/logger"
)

type pidStore struct {
	paths  Paths
	logger *logger.Logger
}

// NewPIDStore constructs a [PIDStore] backed by the cloudflared.pid file.
func NewPIDStore(paths Paths, logger *logger.Logger) PIDStore {
	return &pidStore{
		paths:  paths,
		logger: logger,
	}
}

func (s *pidStore) LoadPID() (int, bool) {
	data, err := os.ReadFile(s.paths.PID())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("pid file unreadable, treating as absent")
		}
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid < 1 {
		s.logger.Warn().Str("content", string(data)).Msg("pid file malformed, treating as absent")
		return 0, false
	}
	return pid, true
}

func (s *pidStore) SavePID(pid int) error {
	if pid < 1 {
		return fmt.Errorf("%w: invalid pid %d", ErrWritingFile, pid)
	}
	if err := writeFileAtomic(s.paths.PID(), []byte(strconv.Itoa(pid)), secretPerm); err != nil {
		s.logger.Err(err).Int("pid", pid).Msg("error saving pid")
		return err
	}
	s.logger.Debug().Int("pid", pid).Msg("pid saved")
	return nil
}

func (s *pidStore) ClearPID() error {
	err := os.Remove(s.paths.PID())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Err(err).Msg("error removing pid file")
		return fmt.Errorf("remove pid file: %w", err)
	}
	return nil
}
