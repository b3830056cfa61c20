package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/cftunnel/internal/config"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	tunnelsPath       = "/accounts/{accountId}/cfd_tunnel"
	tunnelPath        = tunnelsPath + "/{tunnelId}"
	tunnelConnsPath   = tunnelPath + "/connections"
	tunnelConfigPath  = tunnelPath + "/configurations"
	tunnelTokenPath   = tunnelPath + "/token"
	dnsRecordsPath    = "/zones/{zoneId}/dns_records"
	dnsRecordPath     = dnsRecordsPath + "/{recordId}"
	configSrcRemote   = "cloudflare"
	userAgent         = "cftunnel"
	verifyTokenPath   = "/user/tokens/verify"
	accountsPath      = "/accounts"
	zonesPath         = "/zones"
	isDeletedQueryKey = "is_deleted"
)

type cloudflareAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewCloudflareAdapter constructs the resty-backed [CloudflareAdapter].
// A zero cfg.RequestTimeout keeps the transport default.
func NewCloudflareAdapter(cfg config.API, logger *logger.Logger) CloudflareAdapter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetLogger(restyLogger{logger: logger})
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &cloudflareAdapter{client: client, logger: logger}
}

func (a *cloudflareAdapter) SetToken(token string) {
	a.token = strings.TrimSpace(token)
}

func (a *cloudflareAdapter) VerifyToken(ctx context.Context) (models.TokenVerification, error) {
	v, _, err := execute[models.TokenVerification](ctx, a, "verify token", http.MethodGet, verifyTokenPath)
	return v, err
}

func (a *cloudflareAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return listAll[models.Account](ctx, a, "list accounts", accountsPath)
}

func (a *cloudflareAdapter) ListZones(ctx context.Context) ([]models.Zone, error) {
	return listAll[models.Zone](ctx, a, "list zones", zonesPath)
}

func (a *cloudflareAdapter) CreateTunnel(ctx context.Context, accountID, name string) (models.Tunnel, error) {
	body := map[string]string{
		"name":       name,
		"config_src": configSrcRemote,
	}
	t, _, err := execute[models.Tunnel](ctx, a, "create tunnel", http.MethodPost, tunnelsPath,
		withPathParams(map[string]string{"accountId": accountID}),
		withBody(body),
	)
	return t, err
}

func (a *cloudflareAdapter) ListTunnels(ctx context.Context, accountID string) ([]models.Tunnel, error) {
	return listAll[models.Tunnel](ctx, a, "list tunnels", tunnelsPath,
		withPathParams(map[string]string{"accountId": accountID}),
		withQuery(isDeletedQueryKey, "false"),
	)
}

// GetTunnelByName filters server-side by name, then matches exactly, since
// the remote name filter is not an exact-match guarantee.
func (a *cloudflareAdapter) GetTunnelByName(ctx context.Context, accountID, name string) (*models.Tunnel, error) {
	tunnels, _, err := execute[[]models.Tunnel](ctx, a, "get tunnel by name", http.MethodGet, tunnelsPath,
		withPathParams(map[string]string{"accountId": accountID}),
		withQuery("name", name),
		withQuery(isDeletedQueryKey, "false"),
	)
	if err != nil {
		return nil, err
	}

	for i := range tunnels {
		if tunnels[i].Name == name {
			return &tunnels[i], nil
		}
	}
	return nil, nil
}

func (a *cloudflareAdapter) DeleteTunnel(ctx context.Context, accountID string, tunnelID uuid.UUID) error {
	_, _, err := execute[json.RawMessage](ctx, a, "delete tunnel", http.MethodDelete, tunnelPath,
		withPathParams(tunnelParams(accountID, tunnelID)),
	)
	return err
}

func (a *cloudflareAdapter) CleanupConnections(ctx context.Context, accountID string, tunnelID uuid.UUID) error {
	_, _, err := execute[json.RawMessage](ctx, a, "cleanup connections", http.MethodDelete, tunnelConnsPath,
		withPathParams(tunnelParams(accountID, tunnelID)),
	)
	return err
}

func (a *cloudflareAdapter) SetTunnelIngress(ctx context.Context, accountID string, tunnelID uuid.UUID, routes []models.IngressRule) error {
	body := struct {
		Config models.IngressConfig `json:"config"`
	}{
		Config: models.IngressConfig{Ingress: models.NewIngress(routes...)},
	}

	_, _, err := execute[json.RawMessage](ctx, a, "set tunnel ingress", http.MethodPut, tunnelConfigPath,
		withPathParams(tunnelParams(accountID, tunnelID)),
		withBody(body),
	)
	return err
}

func (a *cloudflareAdapter) GetTunnelConfiguration(ctx context.Context, accountID string, tunnelID uuid.UUID) (models.TunnelConfiguration, error) {
	c, _, err := execute[models.TunnelConfiguration](ctx, a, "get tunnel configuration", http.MethodGet, tunnelConfigPath,
		withPathParams(tunnelParams(accountID, tunnelID)),
	)
	return c, err
}

func (a *cloudflareAdapter) GetTunnelToken(ctx context.Context, accountID string, tunnelID uuid.UUID) (string, error) {
	token, _, err := execute[string](ctx, a, "get tunnel token", http.MethodGet, tunnelTokenPath,
		withPathParams(tunnelParams(accountID, tunnelID)),
	)
	return token, err
}

func (a *cloudflareAdapter) CreateDNSRecord(ctx context.Context, zoneID, name string, tunnelID uuid.UUID) (models.DNSRecord, error) {
	body := dnsRecordRequest{
		Type:    models.DNSRecordTypeCNAME,
		Name:    name,
		Content: models.Tunnel{ID: tunnelID}.CNAMETarget(),
		Proxied: true,
	}

	rec, _, err := execute[models.DNSRecord](ctx, a, "create dns record", http.MethodPost, dnsRecordsPath,
		withPathParams(map[string]string{"zoneId": zoneID}),
		withBody(body),
	)
	return rec, err
}

func (a *cloudflareAdapter) FindDNSRecord(ctx context.Context, zoneID, name string) (*models.DNSRecord, error) {
	records, _, err := execute[[]models.DNSRecord](ctx, a, "find dns record", http.MethodGet, dnsRecordsPath,
		withPathParams(map[string]string{"zoneId": zoneID}),
		withQuery("type", models.DNSRecordTypeCNAME),
		withQuery("name", name),
	)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (a *cloudflareAdapter) DeleteDNSRecord(ctx context.Context, zoneID, recordID string) error {
	_, _, err := execute[json.RawMessage](ctx, a, "delete dns record", http.MethodDelete, dnsRecordPath,
		withPathParams(map[string]string{"zoneId": zoneID, "recordId": recordID}),
	)
	return err
}

// dnsRecordRequest is the create body; read-only fields of DNSRecord are
// omitted.
type dnsRecordRequest struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Proxied bool   `json:"proxied"`
}

func tunnelParams(accountID string, tunnelID uuid.UUID) map[string]string {
	return map[string]string{
		"accountId": accountID,
		"tunnelId":  tunnelID.String(),
	}
}
