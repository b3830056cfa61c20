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

// tokenStatusActive is the only verification status that allows API calls.
const tokenStatusActive = "active"

type setupService struct {
	storages *store.ClientStorages
	adapter  adapter.CloudflareAdapter
	logger   *logger.Logger
}

func NewSetupService(storages *store.ClientStorages, cfAdapter adapter.CloudflareAdapter, logger *logger.Logger) SetupService {
	return &setupService{storages: storages, adapter: cfAdapter, logger: logger}
}

func (s *setupService) Discover(ctx context.Context, apiToken string) (models.Discovery, error) {
	var d models.Discovery

	apiToken = strings.TrimSpace(apiToken)
	s.adapter.SetToken(apiToken)

	verification, err := runStep(ctx, StepVerify, func() (models.TokenVerification, error) {
		v, err := s.adapter.VerifyToken(ctx)
		if err != nil {
			return v, err
		}
		if v.Status != tokenStatusActive {
			return v, fmt.Errorf("%w: status %q", ErrTokenInactive, v.Status)
		}
		return v, nil
	}, func(v models.TokenVerification) string { return v.Status })
	if err != nil {
		return d, err
	}
	d.Verification = verification

	r := reporterFrom(ctx)
	r.Start(StepDiscover)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := s.adapter.ListAccounts(gctx)
		if err != nil {
			return err
		}
		d.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		zones, err := s.adapter.ListZones(gctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("zones unavailable, continuing without a domain")
			d.ZonesErr = err
			return nil
		}
		d.Zones = zones
		return nil
	})
	if err = g.Wait(); err != nil {
		r.Fail(StepDiscover, err)
		return d, &StepError{Step: StepDiscover, Err: err}
	}

	if len(d.Accounts) == 0 {
		r.Fail(StepDiscover, ErrNoAccounts)
		return d, ErrNoAccounts
	}
	r.Done(StepDiscover, fmt.Sprintf("%d account(s), %d zone(s)", len(d.Accounts), len(d.Zones)))

	return d, nil
}

func (s *setupService) BuildConfig(apiToken string, account models.Account, zone *models.Zone, prefix string) (models.AppConfig, error) {
	cfg := models.AppConfig{
		APIToken:    strings.TrimSpace(apiToken),
		AccountID:   account.ID,
		DefaultPort: models.DefaultPort,
	}
	if zone == nil {
		return cfg, nil
	}

	prefix = strings.TrimSpace(prefix)
	if !models.ValidLabel(prefix) {
		return cfg, fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	if zone.Account.ID != "" && zone.Account.ID != account.ID {
		return cfg, fmt.Errorf("%w: %s", ErrZoneNotFound, zone.Name)
	}
	cfg.ZoneID, cfg.Domain, cfg.Prefix = zone.ID, zone.Name, prefix

	return cfg, nil
}

func (s *setupService) Current() (models.AppConfig, error) {
	return s.storages.Config.Load()
}

func (s *setupService) Exists() bool {
	return s.storages.Config.Exists()
}

func (s *setupService) Save(cfg models.AppConfig) error {
	if err := s.storages.Config.Save(cfg); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", cfg.AccountID).Str("domain", cfg.Domain).Msg("configuration saved")
	return nil
}

func (s *setupService) AccountZones(ctx context.Context) (models.AppConfig, []models.Zone, error) {
	cfg, err := s.storages.Config.Load()
	if err != nil {
		return cfg, nil, err
	}
	s.adapter.SetToken(cfg.APIToken)

	zones, err := runStep(ctx, StepDiscover, func() ([]models.Zone, error) {
		return s.adapter.ListZones(ctx)
	}, func(zs []models.Zone) string { return fmt.Sprintf("%d zone(s)", len(zs)) })
	if err != nil {
		return cfg, nil, err
	}

	zones = models.ZonesForAccount(zones, cfg.AccountID)
	if len(zones) == 0 {
		return cfg, nil, ErrNoZones
	}
	return cfg, zones, nil
}

func (s *setupService) SetDomain(zone models.Zone, prefix string) (models.AppConfig, error) {
	cfg, err := s.storages.Config.Load()
	if err != nil {
		return cfg, err
	}

	updated, err := s.BuildConfig(cfg.APIToken, models.Account{ID: cfg.AccountID}, &zone, prefix)
	if err != nil {
		return cfg, err
	}
	updated.DefaultPort = cfg.DefaultPort

	if err = s.Save(updated); err != nil {
		return cfg, err
	}
	return updated, nil
}

func (s *setupService) ClearDomain() (models.AppConfig, error) {
	cfg, err := s.storages.Config.Load()
	if err != nil {
		return cfg, err
	}

	cleared := cfg.ClearDomain()
	if err = s.Save(cleared); err != nil {
		return cfg, err
	}
	return cleared, nil
}
