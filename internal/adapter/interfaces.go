// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed request layer over the Cloudflare v4 API.
//
// The primary abstraction is [CloudflareAdapter], one method per remote
// capability. Every method returns either a value or one of two failure
// kinds defined in errors.go:
//   - [*APIError] when the API answered with success=false ([ErrRemoteRejected]);
//   - [*TransportError] when no valid envelope was received ([ErrTransportFailed]).
//
// The adapter never retries and never caches.
package adapter

import (
	"context"

	"github.com/MKhiriev/cftunnel/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloudflare_adapter_mock.go -package=mock

// CloudflareAdapter defines the remote operations cftunnel performs against
// the tunnel, DNS, zone and account endpoints.
type CloudflareAdapter interface {
	// SetToken stores the API token attached as a bearer credential to every
	// subsequent request.
	SetToken(token string)

	// VerifyToken checks that the current token is valid and active.
	VerifyToken(ctx context.Context) (models.TokenVerification, error)

	// ListAccounts returns every account the token can see.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// ListZones returns every zone the token can see, across accounts.
	ListZones(ctx context.Context) ([]models.Zone, error)

	// CreateTunnel registers a remotely managed named tunnel.
	CreateTunnel(ctx context.Context, accountID, name string) (models.Tunnel, error)

	// ListTunnels returns all tunnels of the account that are not deleted.
	ListTunnels(ctx context.Context, accountID string) ([]models.Tunnel, error)

	// GetTunnelByName returns the non-deleted tunnel whose name is exactly
	// name, or nil with a nil error when there is none.
	GetTunnelByName(ctx context.Context, accountID, name string) (*models.Tunnel, error)

	// DeleteTunnel removes the tunnel.
	DeleteTunnel(ctx context.Context, accountID string, tunnelID uuid.UUID) error

	// CleanupConnections drops stale connector sessions of the tunnel.
	CleanupConnections(ctx context.Context, accountID string, tunnelID uuid.UUID) error

	// SetTunnelIngress replaces the tunnel's ingress with routes followed by
	// exactly one catch-all rule.
	SetTunnelIngress(ctx context.Context, accountID string, tunnelID uuid.UUID, routes []models.IngressRule) error

	// GetTunnelConfiguration fetches the current remote ingress configuration.
	GetTunnelConfiguration(ctx context.Context, accountID string, tunnelID uuid.UUID) (models.TunnelConfiguration, error)

	// GetTunnelToken fetches the connector token of the tunnel.
	GetTunnelToken(ctx context.Context, accountID string, tunnelID uuid.UUID) (string, error)

	// CreateDNSRecord creates a proxied CNAME name → <tunnelID>.cfargotunnel.com.
	CreateDNSRecord(ctx context.Context, zoneID, name string, tunnelID uuid.UUID) (models.DNSRecord, error)

	// FindDNSRecord returns the CNAME record whose name is exactly name, or
	// nil with a nil error when there is none.
	FindDNSRecord(ctx context.Context, zoneID, name string) (*models.DNSRecord, error)

	// DeleteDNSRecord removes the record.
	DeleteDNSRecord(ctx context.Context, zoneID, recordID string) error
}
