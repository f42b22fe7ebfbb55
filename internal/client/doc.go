// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It sequences startup: the saved session is restored, the local replica is
// synchronized with the snapshot server and then either the catalog browser
// or the startup failure screen is shown. The replica connection is released
// when the run ends.
package client
