package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/mock"
	"github.com/MKhiriev/cftunnel/internal/service"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	testTunnelID = uuid.MustParse("6f1b0b61-0d53-4e5f-8f1e-3cbf2a4a9d10")

	testConfig = models.AppConfig{
		APIToken:    "api-token",
		AccountID:   "acc-1",
		ZoneID:      "zone-1",
		Domain:      "example.com",
		Prefix:      "team",
		DefaultPort: 3000,
	}
)

type testApp struct {
	app       *App
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	tunnels   *mock.MockTunnelService
	setup     *mock.MockSetupService
	connector *mock.MockConnectorService
	prompter  *mock.MockPrompter
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, interactive bool) *testApp {
	t.Helper()

	ta := &testApp{
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
		tunnels:   mock.NewMockTunnelService(ctrl),
		setup:     mock.NewMockSetupService(ctrl),
		connector: mock.NewMockConnectorService(ctrl),
		prompter:  mock.NewMockPrompter(ctrl),
	}
	ta.app = newApp(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc1234"), &bytes.Buffer{}, ta.out, ta.errOut, interactive)
	ta.app.services = &service.ClientServices{
		TunnelService:    ta.tunnels,
		SetupService:     ta.setup,
		ConnectorService: ta.connector,
	}
	ta.app.prompter = ta.prompter
	ta.app.paths = store.NewPaths(t.TempDir())
	return ta
}

func (ta *testApp) execute(args ...string) int {
	return Execute(context.Background(), ta.app, args)
}
