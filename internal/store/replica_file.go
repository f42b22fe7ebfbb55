// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/models"
)

// replicaFile is the on-disk replica plus the hash recorded for it.
//
// The file is only ever swapped in whole through a temp file and rename,
// so a reader either sees the previous replica or the new one.
type replicaFile struct {
	path     string
	settings SettingsStore
	logger   *logger.Logger
}

// NewReplicaStore returns a [ReplicaStore] for the replica at path whose
// stored hash lives in settings.
func NewReplicaStore(path string, settings SettingsStore, log *logger.Logger) ReplicaStore {
	return &replicaFile{
		path:     path,
		settings: settings,
		logger:   log,
	}
}

func (r *replicaFile) Exists() bool {
	info, err := os.Stat(r.path)
	return err == nil && info.Mode().IsRegular()
}

// ReadStoredHash returns the recorded hash, or "" when none is recorded.
func (r *replicaFile) ReadStoredHash() (string, error) {
	settings, err := r.settings.Load()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(settings.DatabaseHash), nil
}

func (r *replicaFile) WriteStoredHash(hash string) error {
	return r.settings.Update(func(s *models.Settings) {
		s.DatabaseHash = hash
	})
}

// Replace swaps the replica for data. The connection manager must have
// released its handle before this is called.
func (r *replicaFile) Replace(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingReplica, err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		r.logger.Err(err).
			Str("func", "replicaFile.Replace").
			Str("path", r.path).
			Int("bytes", len(data)).
			Msg("failed to replace replica")
		return fmt.Errorf("%w: %w", ErrWritingReplica, err)
	}

	r.logger.Info().
		Str("func", "replicaFile.Replace").
		Str("path", r.path).
		Int("bytes", len(data)).
		Msg("replica replaced")
	return nil
}

func (r *replicaFile) State() (models.ReplicaState, error) {
	hash, err := r.ReadStoredHash()
	return models.ReplicaState{
		FilePresent: r.Exists(),
		StoredHash:  hash,
	}, err
}
