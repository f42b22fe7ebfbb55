// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/internal/utils"
	"github.com/MKhiriev/shiosayi/models"
)

// snapshotService is the concrete implementation of SnapshotService.
//
// Hashing the whole snapshot is the expensive part of serving the manifest,
// so the last digest is kept and reused while the file's size and
// modification time stay the same.
type snapshotService struct {
	file     store.SnapshotFile
	digester *utils.Digester

	mu     sync.Mutex
	cached models.SnapshotInfo

	logger *logger.Logger
}

func NewSnapshotService(file store.SnapshotFile, digester *utils.Digester, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		file:     file,
		digester: digester,
		logger:   logger,
	}
}

// Info implements SnapshotService.
func (s *snapshotService) Info(ctx context.Context) (models.SnapshotInfo, error) {
	stat, err := s.file.Stat()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotService.Info").Msg("snapshot is not available")
		return models.SnapshotInfo{}, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached.Digest != "" && s.cached.Size == stat.Size() && s.cached.ModTime.Equal(stat.ModTime()) {
		return s.cached, nil
	}

	data, err := s.file.Read()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotService.Info").Msg("error reading snapshot")
		return models.SnapshotInfo{}, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	// the file may have changed between Stat and Read; a size that no
	// longer matches the stat forces a recompute on the next call
	s.cached = models.SnapshotInfo{
		Name:    filepath.Base(s.file.Path()),
		Size:    int64(len(data)),
		ModTime: stat.ModTime(),
		Digest:  s.digester.DigestHex(data),
	}

	s.logger.Info().
		Str("func", "snapshotService.Info").
		Str("digest", s.cached.Digest).
		Int64("size", s.cached.Size).
		Time("mod_time", s.cached.ModTime).
		Msg("snapshot digest computed")

	return s.cached, nil
}

// Open implements SnapshotService.
func (s *snapshotService) Open(ctx context.Context) (*os.File, models.SnapshotInfo, error) {
	info, err := s.Info(ctx)
	if err != nil {
		return nil, models.SnapshotInfo{}, err
	}

	f, err := s.file.Open()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotService.Open").Msg("error opening snapshot")
		return nil, models.SnapshotInfo{}, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	return f, info, nil
}
