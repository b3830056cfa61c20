package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/mock"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	testTunnelID = uuid.MustParse("c1744f8b-faa1-48a4-9e5c-02ac921467fa")

	domainConfig = models.AppConfig{
		APIToken:    "api-token",
		AccountID:   "acc-1",
		ZoneID:      "zone-1",
		Domain:      "example.com",
		Prefix:      "team",
		DefaultPort: 3000,
	}
	quickConfig = domainConfig.ClearDomain()
)

type testDeps struct {
	adapter *mock.MockCloudflareAdapter
	config  *mock.MockAppConfigStore
	tokens  *mock.MockTokenStore
	pids    *mock.MockPIDStore
	storage *store.ClientStorages
}

func newTestDeps(t *testing.T, ctrl *gomock.Controller) testDeps {
	t.Helper()
	d := testDeps{
		adapter: mock.NewMockCloudflareAdapter(ctrl),
		config:  mock.NewMockAppConfigStore(ctrl),
		tokens:  mock.NewMockTokenStore(ctrl),
		pids:    mock.NewMockPIDStore(ctrl),
	}
	d.storage = &store.ClientStorages{
		Paths:  store.NewPaths(t.TempDir()),
		Config: d.config,
		Tokens: d.tokens,
		PIDs:   d.pids,
	}
	return d
}

func newTestTunnelSvc(t *testing.T, ctrl *gomock.Controller) (*tunnelService, testDeps) {
	t.Helper()
	d := newTestDeps(t, ctrl)
	return NewTunnelService(d.storage, d.adapter, logger.Nop()).(*tunnelService), d
}

// recordingReporter collects workflow events as "<event>:<step>".
type recordingReporter struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingReporter) add(event string, step Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event+":"+string(step))
}

func (r *recordingReporter) Start(step Step)          { r.add("start", step) }
func (r *recordingReporter) Done(step Step, _ string) { r.add("done", step) }
func (r *recordingReporter) Fail(step Step, _ error)  { r.add("fail", step) }
func (r *recordingReporter) Warn(step Step, _ string) { r.add("warn", step) }

func withRecorder() (context.Context, *recordingReporter) {
	r := &recordingReporter{}
	return WithReporter(context.Background(), r), r
}
