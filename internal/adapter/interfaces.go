// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote side of the catalog: the snapshot
// manifest, the snapshot itself and the identity endpoint.
//
// Every failure is reported as a wrapped [ErrNetwork] so that callers can
// decide on offline fallback with a single [errors.Is] check. Responses that
// did arrive but were rejected additionally wrap [ErrBadStatus].
package adapter

import (
	"context"

	"github.com/MKhiriev/shiosayi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter fetches the authoritative snapshot and its manifest and
// resolves API keys to guardian identities.
type RemoteAdapter interface {
	// FetchManifestHash returns the lowercase hex digest published for the
	// current snapshot.
	FetchManifestHash(ctx context.Context) (string, error)

	// DownloadSnapshot returns the full snapshot body.
	DownloadSnapshot(ctx context.Context) ([]byte, error)

	// Authenticate resolves apiKey to the guardian it belongs to.
	Authenticate(ctx context.Context, apiKey string) (models.Guardian, error)
}
