// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no
	// router or listen address to serve the snapshot on.
	errNoServersAreCreated = errors.New("no publisher server is created")

	// errListening wraps a failure to bind the publisher address.
	errListening = errors.New("error listening")
)
