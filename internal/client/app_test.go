package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/mock"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	sync        *mock.MockClientSyncService
	auth        *mock.MockClientAuthService
	connections *mock.MockConnectionManager
	ui          *mock.MockUI
}

func newTestApp(t *testing.T) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		sync:        mock.NewMockClientSyncService(ctrl),
		auth:        mock.NewMockClientAuthService(ctrl),
		connections: mock.NewMockConnectionManager(ctrl),
		ui:          mock.NewMockUI(ctrl),
	}

	services := &service.ClientServices{
		SyncService:     m.sync,
		CatalogService:  mock.NewMockClientCatalogService(ctrl),
		AuthService:     m.auth,
		SettingsService: mock.NewMockClientSettingsService(ctrl),
	}

	app, err := NewApp(services, m.connections, m.ui, logger.Nop())
	require.NoError(t, err)
	return app, m
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{}

	_, err := NewApp(nil, mock.NewMockConnectionManager(ctrl), mock.NewMockUI(ctrl), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, nil, mock.NewMockUI(ctrl), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, mock.NewMockConnectionManager(ctrl), nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	guardian := &models.Guardian{ID: "g-1", Name: "Aiko", Tier: models.TierLover}
	authed := models.AuthState{Status: models.AuthAuthenticated, Guardian: guardian}
	anon := models.AuthState{Status: models.AuthUnauthenticated}

	tests := []struct {
		name    string
		auth    models.AuthState
		outcome models.SyncOutcome
	}{
		{name: "up to date", auth: anon, outcome: models.SyncUpToDate},
		{name: "updated with session", auth: authed, outcome: models.SyncUpdated},
		{name: "offline keeps old replica", auth: anon, outcome: models.SyncOfflineDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newTestApp(t)
			ctx := context.Background()

			gomock.InOrder(
				m.auth.EXPECT().Restore(ctx).Return(tt.auth),
				m.sync.EXPECT().SyncOnStartup(ctx).Return(tt.outcome, nil),
				m.ui.EXPECT().Catalog(ctx, models.StartupState{Outcome: tt.outcome, Auth: tt.auth}).Return(nil),
				m.connections.EXPECT().Release().Return(nil),
			)

			assert.NoError(t, app.Run(ctx))
		})
	}
}

func TestApp_Run_FatalStartup(t *testing.T) {
	app, m := newTestApp(t)
	ctx := context.Background()

	cause := fmt.Errorf("%w: %s: %w", service.ErrFatalStartup, "fetch manifest", errors.New("dial tcp: refused"))

	gomock.InOrder(
		m.auth.EXPECT().Restore(ctx).Return(models.AuthState{Status: models.AuthUnauthenticated}),
		m.sync.EXPECT().SyncOnStartup(ctx).Return(models.SyncOutcome(0), cause),
		m.ui.EXPECT().Fatal(ctx, cause).Return(nil),
		m.connections.EXPECT().Release().Return(nil),
	)
	m.ui.EXPECT().Catalog(gomock.Any(), gomock.Any()).Times(0)

	err := app.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrFatalStartup)
}

func TestApp_Run_CatalogError(t *testing.T) {
	app, m := newTestApp(t)
	ctx := context.Background()
	uiErr := errors.New("terminal gone")

	m.auth.EXPECT().Restore(ctx).Return(models.AuthState{Status: models.AuthUnauthenticated})
	m.sync.EXPECT().SyncOnStartup(ctx).Return(models.SyncUpToDate, nil)
	m.ui.EXPECT().Catalog(ctx, gomock.Any()).Return(uiErr)
	// release errors are logged only
	m.connections.EXPECT().Release().Return(errors.New("close failed"))

	err := app.Run(ctx)

	assert.ErrorIs(t, err, uiErr)
}
