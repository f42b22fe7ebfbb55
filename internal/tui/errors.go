// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/internal/store"
)

// humanizeError turns service and adapter errors into a line for the UI.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyAPIKey):
		return "Enter an API key"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The API key was rejected"
	case errors.Is(err, adapter.ErrNetwork):
		return "No network or the server is unavailable"
	case errors.Is(err, service.ErrIntegrity):
		return "The downloaded catalog failed verification"
	case errors.Is(err, store.ErrReplicaNotFound):
		return "The local catalog is missing"
	case errors.Is(err, store.ErrConnectionReleased):
		return "The catalog is being replaced, try again"
	default:
		return err.Error()
	}
}
