// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncOutcome is the result of a successful startup synchronization.
type SyncOutcome int

const (
	// SyncUpToDate means the local replica already matched the manifest.
	SyncUpToDate SyncOutcome = iota + 1

	// SyncUpdated means a new snapshot was downloaded, verified and installed.
	SyncUpdated

	// SyncOfflineDegraded means the server could not provide a usable
	// snapshot and the previously installed replica is used as is.
	SyncOfflineDegraded
)

// String returns a stable name used in logs and in the UI.
func (o SyncOutcome) String() string {
	switch o {
	case SyncUpToDate:
		return "up_to_date"
	case SyncUpdated:
		return "updated"
	case SyncOfflineDegraded:
		return "offline_degraded"
	default:
		return "unknown"
	}
}

// ReplicaState is the durable local record of the replica.
//
// StoredHash is the digest of the bytes installed at the replica path, kept
// outside the file so it can be compared without rehashing the file. An
// empty StoredHash means no hash is recorded.
type ReplicaState struct {
	FilePresent bool   `json:"file_present"`
	StoredHash  string `json:"stored_hash,omitempty"`
}

// StartupState is what the client knows once startup finished and the
// catalog can be shown.
type StartupState struct {
	Outcome SyncOutcome
	Auth    AuthState
}

// Stale reports whether the catalog is served from an unverified replica.
func (s StartupState) Stale() bool {
	return s.Outcome == SyncOfflineDegraded
}
