// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/internal/utils"
	"github.com/MKhiriev/shiosayi/models"
)

type clientSyncService struct {
	replica     store.ReplicaStore
	connections store.ConnectionManager
	adapter     adapter.RemoteAdapter
	digester    *utils.Digester

	logger *logger.Logger
}

// NewClientSyncService constructs the startup sync over the client stores.
func NewClientSyncService(
	storages *store.ClientStorages,
	remote adapter.RemoteAdapter,
	digester *utils.Digester,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		replica:     storages.Replica,
		connections: storages.Connections,
		adapter:     remote,
		digester:    digester,
		logger:      logger,
	}
}

// SyncOnStartup implements [ClientSyncService].
//
// The replica and its stored hash change only after the downloaded bytes
// verified against the manifest. The stored hash is cleared before the file
// is swapped, and the connection is released first. Any failure falls back
// to the existing replica when there is one.
func (s *clientSyncService) SyncOnStartup(ctx context.Context) (models.SyncOutcome, error) {
	present := s.replica.Exists()

	remoteHash, err := s.adapter.FetchManifestHash(ctx)
	if err != nil {
		return s.fallback(present, "fetch manifest", err)
	}

	localHash, err := s.replica.ReadStoredHash()
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.SyncOnStartup").
			Msg("stored hash unreadable, treating replica as unverified")
		localHash = ""
	}

	if present && localHash != "" && strings.EqualFold(localHash, remoteHash) {
		s.logger.Info().
			Str("func", "clientSyncService.SyncOnStartup").
			Stringer("outcome", models.SyncUpToDate).
			Str("remote_hash", remoteHash).
			Msg("replica is up to date")
		return models.SyncUpToDate, nil
	}

	data, err := s.adapter.DownloadSnapshot(ctx)
	if err != nil {
		return s.fallback(present, "download snapshot", err)
	}

	if !s.digester.Matches(data, remoteHash) {
		err = fmt.Errorf("%w: expected %s, got %s", ErrIntegrity, remoteHash, s.digester.DigestHex(data))
		return s.fallback(present, "verify snapshot", err)
	}

	// a stored hash never outlives the file it describes
	if localHash != "" {
		if err = s.replica.WriteStoredHash(""); err != nil {
			return s.fallback(present, "invalidate stored hash", err)
		}
	}

	if err = s.connections.Release(); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.SyncOnStartup").
			Msg("error closing replica connection before replace")
	}

	if err = s.replica.Replace(data); err != nil {
		return s.fallback(present, "replace replica", err)
	}

	if err = s.replica.WriteStoredHash(remoteHash); err != nil {
		// the stored hash stays empty and the next start downloads again
		s.logger.Err(err).
			Str("func", "clientSyncService.SyncOnStartup").
			Str("remote_hash", remoteHash).
			Msg("replica replaced but hash not recorded")
	}

	s.logger.Info().
		Str("func", "clientSyncService.SyncOnStartup").
		Stringer("outcome", models.SyncUpdated).
		Str("remote_hash", remoteHash).
		Str("local_hash", localHash).
		Int("bytes", len(data)).
		Msg("replica updated")

	return models.SyncUpdated, nil
}

// fallback keeps serving an existing replica when the sync could not
// complete, and turns the failure fatal when there is nothing to serve.
func (s *clientSyncService) fallback(present bool, step string, cause error) (models.SyncOutcome, error) {
	if present {
		s.logger.Warn().Err(cause).
			Str("func", "clientSyncService.SyncOnStartup").
			Str("step", step).
			Stringer("outcome", models.SyncOfflineDegraded).
			Msg("sync failed, using existing replica")
		return models.SyncOfflineDegraded, nil
	}

	s.logger.Err(cause).
		Str("func", "clientSyncService.SyncOnStartup").
		Str("step", step).
		Msg("sync failed and no replica is available")
	return 0, fmt.Errorf("%w: %s: %w", ErrFatalStartup, step, cause)
}
