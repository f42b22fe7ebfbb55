// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SnapshotInfo describes the publisher's authoritative snapshot file at the
// moment its digest was computed.
type SnapshotInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
	Digest  string    `json:"digest"`
}

// ManifestLine renders the checksum manifest served next to the snapshot,
// in the format of sha256sum.
func (s SnapshotInfo) ManifestLine() string {
	return s.Digest + "  " + s.Name + "\n"
}
