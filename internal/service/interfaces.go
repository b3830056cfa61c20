// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the cftunnel workflows on top of the Cloudflare
// adapter, the local stores and the process supervisor.
//
// Services return typed errors and never print. Progress of multi-step
// workflows is reported through a [Reporter] attached to the context with
// [WithReporter].
package service

import (
	"context"

	"github.com/MKhiriev/cftunnel/internal/process"
	"github.com/MKhiriev/cftunnel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TunnelService provisions and removes named tunnels.
type TunnelService interface {
	// Preview computes what Create would provision without any remote call.
	Preview(name string, port int) (models.CreatePlan, error)

	// Create runs check → tunnel → ingress → dns → token → cache. A failure
	// in the first five steps returns a [*StepError]; earlier remote effects
	// are kept. A cache failure is reported in CreateResult.CacheErr.
	Create(ctx context.Context, name string, port int) (models.CreateResult, error)

	// PlanDelete looks up the in-scope resources of name.
	PlanDelete(ctx context.Context, name string, scope models.DeleteScope) (models.DeletePlan, error)

	// ExecuteDelete removes what plan found. Each resource is attempted
	// independently.
	ExecuteDelete(ctx context.Context, plan models.DeletePlan) (models.DeleteReport, error)

	// Delete is PlanDelete followed by ExecuteDelete.
	Delete(ctx context.Context, name string, scope models.DeleteScope) (models.DeleteReport, error)

	// Token fetches the connector token of the developer's tunnel.
	Token(ctx context.Context, name string) (models.Tunnel, string, error)

	// List returns the account's tunnels, optionally with their ingress
	// rules fetched concurrently.
	List(ctx context.Context, withIngress bool) ([]models.TunnelSummary, error)
}

// SetupService manages the operator configuration.
type SetupService interface {
	// Discover verifies apiToken and fetches accounts and zones concurrently.
	// A zones failure degrades to no zones.
	Discover(ctx context.Context, apiToken string) (models.Discovery, error)

	// BuildConfig assembles and validates a config from the selections.
	// zone may be nil for quick tunnel mode.
	BuildConfig(apiToken string, account models.Account, zone *models.Zone, prefix string) (models.AppConfig, error)

	// Current loads the stored config.
	Current() (models.AppConfig, error)

	// Exists reports whether a config file is present.
	Exists() bool

	// Save persists cfg.
	Save(cfg models.AppConfig) error

	// AccountZones lists the zones of the configured account.
	AccountZones(ctx context.Context) (models.AppConfig, []models.Zone, error)

	// SetDomain stores zone and prefix in the current config.
	SetDomain(zone models.Zone, prefix string) (models.AppConfig, error)

	// ClearDomain switches the stored config to quick tunnel mode.
	ClearDomain() (models.AppConfig, error)
}

// ConnectorService runs the local cloudflared connector.
type ConnectorService interface {
	// ResolveToken picks the token from the flag, CFTUNNEL_TOKEN, or the
	// local cache, in that order.
	ResolveToken(flagToken string) (string, models.TokenSource, error)

	// StartNamed runs a named tunnel with token.
	StartNamed(ctx context.Context, token string, background bool) (models.StartResult, error)

	// StartQuick runs an anonymous tunnel to the local port.
	StartQuick(ctx context.Context, port int, background bool) (models.StartResult, error)

	Stop(ctx context.Context) (process.StopResult, error)

	Status() models.ProcessStatus
}
