package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/cftunnel/internal/adapter"
	"github.com/MKhiriev/cftunnel/internal/logger"
	"github.com/MKhiriev/cftunnel/internal/store"
	"github.com/MKhiriev/cftunnel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSetupSvc(t *testing.T, ctrl *gomock.Controller) (*setupService, testDeps) {
	t.Helper()
	d := newTestDeps(t, ctrl)
	return NewSetupService(d.storage, d.adapter, logger.Nop()).(*setupService), d
}

var (
	testAccount = models.Account{ID: "acc-1", Name: "Team"}
	testZones   = []models.Zone{
		{ID: "zone-1", Name: "example.com", Account: models.ZoneAccount{ID: "acc-1"}},
		{ID: "zone-2", Name: "other.org", Account: models.ZoneAccount{ID: "acc-2"}},
	}
)

// ── Discover ─────────────────────────────────────────────────────────────────

func TestSetupService_Discover_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)
	ctx, rec := withRecorder()

	d.adapter.EXPECT().SetToken("api-token")
	d.adapter.EXPECT().VerifyToken(ctx).Return(models.TokenVerification{ID: "tok", Status: "active"}, nil)
	d.adapter.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{testAccount}, nil)
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(testZones, nil)

	disc, err := svc.Discover(ctx, "  api-token \n")
	require.NoError(t, err)

	assert.Equal(t, []models.Account{testAccount}, disc.Accounts)
	assert.Equal(t, testZones, disc.Zones)
	assert.NoError(t, disc.ZonesErr)
	assert.Len(t, disc.ZonesFor("acc-1"), 1)
	assert.Equal(t, []string{"start:verify", "done:verify", "start:discover", "done:discover"}, rec.events)
}

func TestSetupService_Discover_InactiveToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().VerifyToken(gomock.Any()).Return(models.TokenVerification{Status: "disabled"}, nil)

	_, err := svc.Discover(context.Background(), "api-token")
	require.ErrorIs(t, err, ErrTokenInactive)
	assert.Contains(t, err.Error(), "disabled")
}

func TestSetupService_Discover_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().VerifyToken(gomock.Any()).Return(models.TokenVerification{}, &adapter.APIError{Code: 1000, Message: "Invalid API Token"})

	_, err := svc.Discover(context.Background(), "bad")
	require.ErrorIs(t, err, adapter.ErrRemoteRejected)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepVerify, stepErr.Step)
}

func TestSetupService_Discover_ZonesFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	zonesErr := &adapter.APIError{Code: 9109, Message: "Unauthorized to access requested resource"}

	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().VerifyToken(gomock.Any()).Return(models.TokenVerification{Status: "active"}, nil)
	d.adapter.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{testAccount}, nil)
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(nil, zonesErr)

	disc, err := svc.Discover(context.Background(), "api-token")
	require.NoError(t, err)
	assert.Empty(t, disc.Zones)
	assert.Equal(t, zonesErr, disc.ZonesErr)
}

func TestSetupService_Discover_AccountsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	boom := errors.New("boom")
	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().VerifyToken(gomock.Any()).Return(models.TokenVerification{Status: "active"}, nil)
	d.adapter.EXPECT().ListAccounts(gomock.Any()).Return(nil, boom)
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(testZones, nil).AnyTimes()

	_, err := svc.Discover(context.Background(), "api-token")
	require.ErrorIs(t, err, boom)
}

func TestSetupService_Discover_NoAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().VerifyToken(gomock.Any()).Return(models.TokenVerification{Status: "active"}, nil)
	d.adapter.EXPECT().ListAccounts(gomock.Any()).Return([]models.Account{}, nil)
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(nil, nil)

	_, err := svc.Discover(context.Background(), "api-token")
	require.ErrorIs(t, err, ErrNoAccounts)
}

// ── BuildConfig ──────────────────────────────────────────────────────────────

func TestSetupService_BuildConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestSetupSvc(t, ctrl)

	t.Run("quick mode", func(t *testing.T) {
		cfg, err := svc.BuildConfig(" api-token ", testAccount, nil, "ignored")
		require.NoError(t, err)
		assert.Equal(t, models.AppConfig{APIToken: "api-token", AccountID: "acc-1", DefaultPort: models.DefaultPort}, cfg)
		assert.False(t, cfg.HasDomain())
	})

	t.Run("with domain", func(t *testing.T) {
		cfg, err := svc.BuildConfig("api-token", testAccount, &testZones[0], "team")
		require.NoError(t, err)
		assert.True(t, cfg.HasDomain())
		assert.Equal(t, "zone-1", cfg.ZoneID)
		assert.Equal(t, "example.com", cfg.Domain)
		assert.Equal(t, "team", cfg.Prefix)
	})

	t.Run("invalid prefix", func(t *testing.T) {
		_, err := svc.BuildConfig("api-token", testAccount, &testZones[0], "Team_1")
		require.ErrorIs(t, err, ErrInvalidPrefix)
	})

	t.Run("zone of another account", func(t *testing.T) {
		_, err := svc.BuildConfig("api-token", testAccount, &testZones[1], "team")
		require.ErrorIs(t, err, ErrZoneNotFound)
	})
}

// ── Domain ───────────────────────────────────────────────────────────────────

func TestSetupService_AccountZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.config.EXPECT().Load().Return(quickConfig, nil)
	d.adapter.EXPECT().SetToken("api-token")
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(testZones, nil)

	cfg, zones, err := svc.AccountZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quickConfig, cfg)
	assert.Equal(t, []models.Zone{testZones[0]}, zones)
}

func TestSetupService_AccountZones_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.config.EXPECT().Load().Return(quickConfig, nil)
	d.adapter.EXPECT().SetToken(gomock.Any())
	d.adapter.EXPECT().ListZones(gomock.Any()).Return(testZones[1:], nil)

	_, _, err := svc.AccountZones(context.Background())
	require.ErrorIs(t, err, ErrNoZones)
}

func TestSetupService_SetDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	current := quickConfig
	current.DefaultPort = 8080
	want := domainConfig
	want.DefaultPort = 8080

	d.config.EXPECT().Load().Return(current, nil)
	d.config.EXPECT().Save(want).Return(nil)

	got, err := svc.SetDomain(testZones[0], "team")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSetupService_SetDomain_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.config.EXPECT().Load().Return(quickConfig, nil)
	d.config.EXPECT().Save(gomock.Any()).Return(store.ErrWritingFile)

	got, err := svc.SetDomain(testZones[0], "team")
	require.ErrorIs(t, err, store.ErrWritingFile)
	assert.Equal(t, quickConfig, got)
}

func TestSetupService_ClearDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.config.EXPECT().Load().Return(domainConfig, nil)
	d.config.EXPECT().Save(quickConfig).Return(nil)

	got, err := svc.ClearDomain()
	require.NoError(t, err)
	assert.False(t, got.HasDomain())
	assert.Equal(t, "acc-1", got.AccountID)
}

func TestSetupService_CurrentAndExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d := newTestSetupSvc(t, ctrl)

	d.config.EXPECT().Exists().Return(false)
	d.config.EXPECT().Load().Return(models.AppConfig{}, store.ErrConfigNotFound)

	assert.False(t, svc.Exists())
	_, err := svc.Current()
	require.ErrorIs(t, err, store.ErrConfigNotFound)
}
