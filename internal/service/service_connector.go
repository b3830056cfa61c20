package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
)

type connectorService struct {
	storages   *store.ClientStorages
	supervisor process.ConnectorSupervisor
	settings   config.Connector
	findBinary func(explicit string) (string, error)
	logger     *logger.Logger
}

func NewConnectorService(storages *store.ClientStorages, supervisor process.ConnectorSupervisor, settings config.Connector, logger *logger.Logger) ConnectorService {
	return &connectorService{
		storages:   storages,
		supervisor: supervisor,
		settings:   settings,
		findBinary: process.FindCloudflared,
		logger:     logger,
	}
}

func (s *connectorService) ResolveToken(flagToken string) (string, models.TokenSource, error) {
	if t := strings.TrimSpace(flagToken); t != "" {
		return t, models.TokenFromFlag, nil
	}
	if t := strings.TrimSpace(s.settings.Token); t != "" {
		return t, models.TokenFromEnv, nil
	}

	t, err := s.storages.Tokens.LoadToken()
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return "", "", ErrNoToken
		}
		return "", "", err
	}
	return t, models.TokenFromCache, nil
}

func (s *connectorService) StartNamed(ctx context.Context, token string, background bool) (models.StartResult, error) {
	if strings.TrimSpace(token) == "" {
		return models.StartResult{}, ErrNoToken
	}

	binary, err := s.findBinary(s.settings.Binary)
	if err != nil {
		return models.StartResult{}, err
	}

	return s.start(ctx, process.NamedTunnelCommand(binary, token), background)
}

func (s *connectorService) StartQuick(ctx context.Context, port int, background bool) (models.StartResult, error) {
	if !models.ValidPort(port) {
		return models.StartResult{}, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	binary, err := s.findBinary(s.settings.Binary)
	if err != nil {
		return models.StartResult{}, err
	}

	return s.start(ctx, process.QuickTunnelCommand(binary, port), background)
}

func (s *connectorService) start(ctx context.Context, cmd process.Command, background bool) (models.StartResult, error) {
	result := models.StartResult{Command: cmd.String(), Background: background}

	if background {
		pid, err := s.supervisor.StartBackground(cmd)
		if err != nil {
			return result, err
		}
		result.PID = pid
		result.LogFile = s.storages.Paths.ConnectorLog()
		return result, nil
	}

	code, err := s.supervisor.RunForeground(ctx, cmd)
	result.ExitCode = code
	if err != nil {
		return result, err
	}
	s.logger.Debug().Int("exit_code", code).Msg("connector exited")
	return result, nil
}

func (s *connectorService) Stop(ctx context.Context) (process.StopResult, error) {
	return s.supervisor.Stop(ctx)
}

func (s *connectorService) Status() models.ProcessStatus {
	return s.supervisor.Status()
}
