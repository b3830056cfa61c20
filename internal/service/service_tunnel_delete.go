package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cftunnel/models"
)

func (s *tunnelService) PlanDelete(ctx context.Context, name string, scope models.DeleteScope) (models.DeletePlan, error) {
	cfg, err := s.loadDomainConfig()
	if err != nil {
		return models.DeletePlan{}, err
	}
	if !models.ValidLabel(name) {
		return models.DeletePlan{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	plan := models.DeletePlan{
		Config:     cfg,
		Scope:      scope,
		TunnelName: cfg.TunnelName(name),
		Hostname:   cfg.Hostname(name),
	}

	if scope.IncludesTunnel() {
		plan.Tunnel, plan.TunnelErr = runStep(ctx, StepLookupTunnel, func() (*models.Tunnel, error) {
			return s.adapter.GetTunnelByName(ctx, cfg.AccountID, plan.TunnelName)
		}, foundDetail[models.Tunnel])
	}
	if scope.IncludesDNS() {
		plan.DNS, plan.DNSErr = runStep(ctx, StepLookupDNS, func() (*models.DNSRecord, error) {
			return s.adapter.FindDNSRecord(ctx, cfg.ZoneID, plan.Hostname)
		}, foundDetail[models.DNSRecord])
	}

	return plan, nil
}

func foundDetail[T any](v *T) string {
	if v == nil {
		return string(models.OutcomeNotFound)
	}
	return "found"
}

func (s *tunnelService) ExecuteDelete(ctx context.Context, plan models.DeletePlan) (models.DeleteReport, error) {
	report := models.DeleteReport{
		TunnelName: plan.TunnelName,
		Hostname:   plan.Hostname,
		Scope:      plan.Scope,
	}
	s.adapter.SetToken(plan.Config.APIToken)

	log := s.logger.With().Str("tunnel", plan.TunnelName).Str("scope", plan.Scope.String()).Logger()

	if plan.Scope.IncludesTunnel() {
		report.Outcomes = append(report.Outcomes, s.deleteTunnel(ctx, plan))
	} else {
		report.Outcomes = append(report.Outcomes, models.ResourceOutcome{
			Resource: models.ResourceTunnel, Name: plan.TunnelName, Status: models.OutcomeSkipped,
		})
	}

	if plan.Scope.IncludesDNS() {
		report.Outcomes = append(report.Outcomes, s.deleteDNS(ctx, plan))
	} else {
		report.Outcomes = append(report.Outcomes, models.ResourceOutcome{
			Resource: models.ResourceDNS, Name: plan.Hostname, Status: models.OutcomeSkipped,
		})
	}

	for _, o := range report.Outcomes {
		log.Info().Str("resource", string(o.Resource)).Str("status", string(o.Status)).AnErr("error", o.Err).Msg("delete outcome")
	}

	switch {
	case report.Failed():
		return report, ErrDeleteIncomplete
	case report.NothingFound():
		return report, ErrNothingToDelete
	}
	return report, nil
}

func (s *tunnelService) deleteTunnel(ctx context.Context, plan models.DeletePlan) models.ResourceOutcome {
	out := models.ResourceOutcome{Resource: models.ResourceTunnel, Name: plan.TunnelName}

	switch {
	case plan.TunnelErr != nil:
		out.Status, out.Err = models.OutcomeFailed, unwrapStep(plan.TunnelErr)
		return out
	case plan.Tunnel == nil:
		out.Status = models.OutcomeNotFound
		return out
	}
	out.ID = plan.Tunnel.ID.String()

	r := reporterFrom(ctx)
	r.Start(StepCleanup)
	if err := s.adapter.CleanupConnections(ctx, plan.Config.AccountID, plan.Tunnel.ID); err != nil {
		out.Warnings = append(out.Warnings, fmt.Sprintf("connection cleanup: %v", err))
		r.Warn(StepCleanup, err.Error())
	} else {
		r.Done(StepCleanup, "")
	}

	_, err := runStep(ctx, StepDeleteTunnel, func() (struct{}, error) {
		return struct{}{}, s.adapter.DeleteTunnel(ctx, plan.Config.AccountID, plan.Tunnel.ID)
	}, nil)
	if err != nil {
		out.Status, out.Err = models.OutcomeFailed, unwrapStep(err)
		return out
	}

	out.Status = models.OutcomeDeleted
	return out
}

func (s *tunnelService) deleteDNS(ctx context.Context, plan models.DeletePlan) models.ResourceOutcome {
	out := models.ResourceOutcome{Resource: models.ResourceDNS, Name: plan.Hostname}

	switch {
	case plan.DNSErr != nil:
		out.Status, out.Err = models.OutcomeFailed, unwrapStep(plan.DNSErr)
		return out
	case plan.DNS == nil:
		out.Status = models.OutcomeNotFound
		return out
	}
	out.ID = plan.DNS.ID

	_, err := runStep(ctx, StepDeleteDNS, func() (struct{}, error) {
		return struct{}{}, s.adapter.DeleteDNSRecord(ctx, plan.Config.ZoneID, plan.DNS.ID)
	}, nil)
	if err != nil {
		out.Status, out.Err = models.OutcomeFailed, unwrapStep(err)
		return out
	}

	out.Status = models.OutcomeDeleted
	return out
}

func (s *tunnelService) Delete(ctx context.Context, name string, scope models.DeleteScope) (models.DeleteReport, error) {
	plan, err := s.PlanDelete(ctx, name, scope)
	if err != nil {
		return models.DeleteReport{}, err
	}
	return s.ExecuteDelete(ctx, plan)
}

// unwrapStep strips the StepError so outcomes carry the remote error itself.
func unwrapStep(err error) error {
	var se *StepError
	if errors.As(err, &se) {
		return se.Err
	}
	return err
}
