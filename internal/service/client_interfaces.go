// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/shiosayi/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService brings the local replica up to date with the remote
// authoritative snapshot.
type ClientSyncService interface {
	// SyncOnStartup runs the verify-then-replace cycle once. It returns an
	// error only when the catalog cannot be served at all, and that error
	// wraps [ErrFatalStartup].
	SyncOnStartup(ctx context.Context) (models.SyncOutcome, error)
}

// ClientCatalogService serves filtered reads of the replica.
type ClientCatalogService interface {
	// DefaultFilter is the filter the catalog opens with.
	DefaultFilter() models.FilmFilter

	// List returns one page of films. Pagination is clamped to the
	// configured page sizes.
	List(ctx context.Context, filter models.FilmFilter) (models.FilmPage, error)

	// Regions lists every region with its film count.
	Regions(ctx context.Context) ([]models.RegionCount, error)

	// GuardianFilms and GuardianFilmCount never fail; problems are logged
	// and reported as empty results.
	GuardianFilms(ctx context.Context, guardianID string) []models.Film
	GuardianFilmCount(ctx context.Context, guardianID string) int
}

// ClientAuthService manages the guardian session backed by a stored API key.
type ClientAuthService interface {
	// Restore authenticates with the stored API key, if any.
	Restore(ctx context.Context) models.AuthState

	// Authenticate verifies apiKey and stores it on success. A key the
	// remote side rejects is removed from storage; a network failure leaves
	// the stored key alone.
	Authenticate(ctx context.Context, apiKey string) (models.AuthState, error)

	// Logout forgets the stored API key.
	Logout(ctx context.Context) error
}

// ClientSettingsService exposes user preferences.
type ClientSettingsService interface {
	Theme() (models.Theme, error)
	SetTheme(theme models.Theme) error
}
