// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// shiosayi publisher handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies. Internal error text, file paths included, never reaches
// the client.
package app

const (
	// MsgSnapshotUnavailable is returned when the authoritative snapshot
	// file is missing or cannot be read at the moment.
	MsgSnapshotUnavailable = "snapshot unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgVersionIsNotSpecified is returned when the publisher was started
	// without a build version.
	MsgVersionIsNotSpecified = "version is not specified"
)
