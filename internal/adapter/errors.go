// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNetwork marks every failure to obtain a usable answer from the remote
	// side: transport errors, timeouts and non-2xx responses.
	ErrNetwork = errors.New("remote request failed")

	// ErrBadStatus is wrapped together with ErrNetwork when the remote side
	// answered with a non-2xx status.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrUnauthorized is wrapped together with ErrNetwork and ErrBadStatus
	// for 401 and 403 responses.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrMalformedManifest is returned when the manifest body does not start
	// with a hex digest of the configured size.
	ErrMalformedManifest = errors.New("malformed snapshot manifest")
)
