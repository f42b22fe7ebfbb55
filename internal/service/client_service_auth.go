// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/models"
)

type clientAuthService struct {
	settings store.SettingsStore
	adapter  adapter.RemoteAdapter

	logger *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] that keeps the API
// key in settings and checks it against remote.
func NewClientAuthService(settings store.SettingsStore, remote adapter.RemoteAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		settings: settings,
		adapter:  remote,
		logger:   logger,
	}
}

func unauthenticated() models.AuthState {
	return models.AuthState{Status: models.AuthUnauthenticated}
}

// Restore implements [ClientAuthService].
func (a *clientAuthService) Restore(ctx context.Context) models.AuthState {
	settings, err := a.settings.Load()
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Restore").Msg("failed to load settings")
		return unauthenticated()
	}

	if settings.APIKey == "" {
		return unauthenticated()
	}

	state, err := a.Authenticate(ctx, settings.APIKey)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Restore").Msg("stored api key did not authenticate")
	}
	return state
}

// Authenticate implements [ClientAuthService].
func (a *clientAuthService) Authenticate(ctx context.Context, apiKey string) (models.AuthState, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return unauthenticated(), ErrEmptyAPIKey
	}

	guardian, err := a.adapter.Authenticate(ctx, apiKey)
	if err != nil {
		if errors.Is(err, adapter.ErrBadStatus) {
			if clearErr := a.saveAPIKey(""); clearErr != nil {
				a.logger.Err(clearErr).Str("func", "clientAuthService.Authenticate").Msg("failed to clear rejected api key")
			}
		}
		return unauthenticated(), err
	}

	if err = a.saveAPIKey(apiKey); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Authenticate").Msg("failed to persist api key")
	}

	a.logger.Info().
		Str("func", "clientAuthService.Authenticate").
		Str("guardian_id", guardian.ID).
		Msg("guardian authenticated")

	return models.AuthState{
		Status:   models.AuthAuthenticated,
		Guardian: &guardian,
	}, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.saveAPIKey("")
}

func (a *clientAuthService) saveAPIKey(apiKey string) error {
	return a.settings.Update(func(s *models.Settings) {
		s.APIKey = apiKey
	})
}
