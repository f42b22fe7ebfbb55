// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrIntegrity is returned when downloaded snapshot bytes do not hash to
	// the digest published in the manifest.
	ErrIntegrity = errors.New("snapshot integrity check failed")

	// ErrFatalStartup is returned by startup sync when there is no local
	// replica and no usable remote copy, so the catalog cannot be served.
	ErrFatalStartup = errors.New("catalog unavailable: no local replica and remote unreachable")

	ErrEmptyAPIKey  = errors.New("empty api key")
	ErrInvalidTheme = errors.New("invalid theme")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSnapshotUnavailable   = errors.New("snapshot is not available")
)
