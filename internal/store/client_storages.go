// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
)

// ClientStorages groups the client-side stores so they can be handed to the
// service layer as one value.
type ClientStorages struct {
	// Settings is the side-car record holding the API key, theme and the
	// hash of the current replica.
	Settings SettingsStore

	// Replica is the local snapshot file.
	Replica ReplicaStore

	// Connections owns the single read-only handle on Replica.
	Connections ConnectionManager

	// Catalog runs filtered reads through Connections.
	Catalog CatalogRepository
}

// NewClientStorages wires the client stores for cfg. No database is opened
// here: the replica may not exist yet and is opened on first use.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("data_dir", cfg.DataDir).Msg("creating client storages...")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	settings := NewSettingsStore(cfg.SettingsPath, log)
	connections := NewReplicaConnectionManager(cfg.ReplicaPath, log)

	return &ClientStorages{
		Settings:    settings,
		Replica:     NewReplicaStore(cfg.ReplicaPath, settings, log),
		Connections: connections,
		Catalog:     NewCatalogRepository(connections, log),
	}, nil
}
