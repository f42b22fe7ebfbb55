// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/models"
)

type App struct {
	services    *service.ClientServices
	connections store.ConnectionManager
	ui          UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, connections store.ConnectionManager, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: services are required")
	}
	if connections == nil {
		return nil, errors.New("client: connection manager is required")
	}
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}

	return &App{
		services:    services,
		connections: connections,
		ui:          ui,
		logger:      logger,
	}, nil
}

// Run restores the session, brings the replica up to date and hands control
// to the catalog. When no usable replica exists the failure screen is shown
// instead and the startup error is returned.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.connections.Release(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error releasing replica connection")
		}
	}()

	auth := a.services.AuthService.Restore(ctx)
	a.logger.Info().Str("func", "*App.Run").Str("auth", string(auth.Status)).Msg("session restored")

	outcome, err := a.services.SyncService.SyncOnStartup(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("startup synchronization failed")

		if uiErr := a.ui.Fatal(ctx, err); uiErr != nil {
			a.logger.Err(uiErr).Str("func", "*App.Run").Msg("error showing startup failure")
		}
		return fmt.Errorf("startup: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Stringer("outcome", outcome).Msg("replica ready")

	if err = a.ui.Catalog(ctx, models.StartupState{Outcome: outcome, Auth: auth}); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	return nil
}
