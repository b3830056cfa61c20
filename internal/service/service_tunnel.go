package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/adapter"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"golang.org/x/sync/errgroup"
)

// ingressFetchLimit bounds concurrent configuration requests in List.
const ingressFetchLimit = 4

type tunnelService struct {
	storages *store.ClientStorages
	adapter  adapter.CloudflareAdapter
	logger   *logger.Logger
}

func NewTunnelService(storages *store.ClientStorages, cfAdapter adapter.CloudflareAdapter, logger *logger.Logger) TunnelService {
	return &tunnelService{storages: storages, adapter: cfAdapter, logger: logger}
}

// loadConfig reads the operator config and authenticates the adapter with it.
func (s *tunnelService) loadConfig() (models.AppConfig, error) {
	cfg, err := s.storages.Config.Load()
	if err != nil {
		return cfg, err
	}
	s.adapter.SetToken(cfg.APIToken)
	return cfg, nil
}

func (s *tunnelService) loadDomainConfig() (models.AppConfig, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		return cfg, err
	}
	if !cfg.HasDomain() {
		return cfg, ErrDomainRequired
	}
	return cfg, nil
}

func (s *tunnelService) Preview(name string, port int) (models.CreatePlan, error) {
	cfg, err := s.storages.Config.Load()
	if err != nil {
		return models.CreatePlan{}, err
	}
	if !cfg.HasDomain() {
		return models.CreatePlan{}, ErrDomainRequired
	}
	return buildPlan(cfg, name, port)
}

func buildPlan(cfg models.AppConfig, name string, port int) (models.CreatePlan, error) {
	name = strings.TrimSpace(name)
	if !models.ValidLabel(name) {
		return models.CreatePlan{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if port == 0 {
		port = cfg.DefaultPort
	}
	if port == 0 {
		port = models.DefaultPort
	}
	if !models.ValidPort(port) {
		return models.CreatePlan{}, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	return models.CreatePlan{
		Name:       name,
		TunnelName: cfg.TunnelName(name),
		Hostname:   cfg.Hostname(name),
		Port:       port,
	}, nil
}

func (s *tunnelService) Create(ctx context.Context, name string, port int) (models.CreateResult, error) {
	cfg, err := s.loadDomainConfig()
	if err != nil {
		return models.CreateResult{}, err
	}

	plan, err := buildPlan(cfg, name, port)
	if err != nil {
		return models.CreateResult{}, err
	}
	result := models.CreateResult{Plan: plan}

	log := s.logger.With().Str("tunnel", plan.TunnelName).Str("hostname", plan.Hostname).Logger()
	log.Info().Msg("creating tunnel")

	_, err = runStep(ctx, StepCheck, func() (struct{}, error) {
		existing, err := s.adapter.GetTunnelByName(ctx, cfg.AccountID, plan.TunnelName)
		if err != nil {
			return struct{}{}, err
		}
		if existing != nil {
			return struct{}{}, fmt.Errorf("%w: %s (%s)", ErrTunnelExists, existing.Name, existing.ID)
		}
		return struct{}{}, nil
	}, nil)
	if err != nil {
		return result, err
	}

	result.Tunnel, err = runStep(ctx, StepTunnel, func() (models.Tunnel, error) {
		return s.adapter.CreateTunnel(ctx, cfg.AccountID, plan.TunnelName)
	}, func(t models.Tunnel) string { return t.ID.String() })
	if err != nil {
		return result, err
	}
	log.Debug().Str("tunnel_id", result.Tunnel.ID.String()).Msg("tunnel registered")

	_, err = runStep(ctx, StepIngress, func() (struct{}, error) {
		route := models.IngressRule{Hostname: plan.Hostname, Service: plan.LocalService()}
		return struct{}{}, s.adapter.SetTunnelIngress(ctx, cfg.AccountID, result.Tunnel.ID, []models.IngressRule{route})
	}, func(struct{}) string { return plan.Hostname + " → " + plan.LocalService() })
	if err != nil {
		return result, err
	}

	result.DNS, err = runStep(ctx, StepDNS, func() (models.DNSRecord, error) {
		return s.adapter.CreateDNSRecord(ctx, cfg.ZoneID, plan.Hostname, result.Tunnel.ID)
	}, func(r models.DNSRecord) string { return r.Name + " → " + result.Tunnel.CNAMETarget() })
	if err != nil {
		return result, err
	}

	result.Token, err = runStep(ctx, StepToken, func() (string, error) {
		return s.adapter.GetTunnelToken(ctx, cfg.AccountID, result.Tunnel.ID)
	}, nil)
	if err != nil {
		return result, err
	}

	r := reporterFrom(ctx)
	r.Start(StepCache)
	if err = s.storages.Tokens.SaveToken(result.Token); err != nil {
		log.Warn().Err(err).Msg("token not cached")
		result.CacheErr = err
		r.Warn(StepCache, err.Error())
	} else {
		r.Done(StepCache, "")
	}

	log.Info().Str("tunnel_id", result.Tunnel.ID.String()).Msg("tunnel created")
	return result, nil
}

func (s *tunnelService) Token(ctx context.Context, name string) (models.Tunnel, string, error) {
	cfg, err := s.loadDomainConfig()
	if err != nil {
		return models.Tunnel{}, "", err
	}
	if !models.ValidLabel(name) {
		return models.Tunnel{}, "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	tunnelName := cfg.TunnelName(name)

	tunnel, err := runStep(ctx, StepLookupTunnel, func() (*models.Tunnel, error) {
		return s.adapter.GetTunnelByName(ctx, cfg.AccountID, tunnelName)
	}, nil)
	if err != nil {
		return models.Tunnel{}, "", err
	}
	if tunnel == nil {
		return models.Tunnel{}, "", fmt.Errorf("%w: %s", ErrTunnelNotFound, tunnelName)
	}

	token, err := runStep(ctx, StepToken, func() (string, error) {
		return s.adapter.GetTunnelToken(ctx, cfg.AccountID, tunnel.ID)
	}, nil)
	if err != nil {
		return *tunnel, "", err
	}

	return *tunnel, token, nil
}

func (s *tunnelService) List(ctx context.Context, withIngress bool) ([]models.TunnelSummary, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		return nil, err
	}

	tunnels, err := runStep(ctx, StepList, func() ([]models.Tunnel, error) {
		return s.adapter.ListTunnels(ctx, cfg.AccountID)
	}, func(ts []models.Tunnel) string { return fmt.Sprintf("%d found", len(ts)) })
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TunnelSummary, len(tunnels))
	for i, t := range tunnels {
		summaries[i].Tunnel = t
	}
	if !withIngress || len(tunnels) == 0 {
		return summaries, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ingressFetchLimit)
	for i := range summaries {
		i := i
		g.Go(func() error {
			conf, err := s.adapter.GetTunnelConfiguration(gctx, cfg.AccountID, summaries[i].Tunnel.ID)
			if err != nil {
				s.logger.Debug().Err(err).Str("tunnel", summaries[i].Tunnel.Name).Msg("ingress fetch failed")
				summaries[i].IngressErr = err
				return nil
			}
			summaries[i].Ingress = conf.Config.Ingress
			return nil
		})
	}
	_ = g.Wait()

	return summaries, nil
}
