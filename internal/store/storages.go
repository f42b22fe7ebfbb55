// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/logger"
)

// Storages is the publisher's storage layer.
type Storages struct {
	Snapshot SnapshotFile
}

// NewStorages applies the catalog schema to the authoritative snapshot at
// snapshotPath, creating the file when it does not exist yet, and returns
// the file view the publisher serves from.
func NewStorages(ctx context.Context, snapshotPath string, log *logger.Logger) (*Storages, error) {
	log.Info().Str("snapshot", snapshotPath).Msg("creating publisher storages...")

	db, err := NewConnectSQLite(ctx, snapshotPath, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to snapshot: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating snapshot schema")
		return nil, fmt.Errorf("error migrating snapshot: %w", err)
	}

	return &Storages{
		Snapshot: NewSnapshotFile(snapshotPath, log),
	}, nil
}
