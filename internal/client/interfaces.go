// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/shiosayi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// Catalog runs the catalog browser until the user quits.
	Catalog(ctx context.Context, startup models.StartupState) error

	// Fatal shows a startup failure instead of the catalog.
	Fatal(ctx context.Context, cause error) error
}
