// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/shiosayi/internal/logger"
)

type snapshotFile struct {
	path string

	logger *logger.Logger
}

// NewSnapshotFile returns the publisher's view of the authoritative snapshot
// at path. The file is read on every call so that an external writer can
// replace it while the publisher runs.
func NewSnapshotFile(path string, log *logger.Logger) SnapshotFile {
	return &snapshotFile{path: path, logger: log}
}

func (s *snapshotFile) Path() string {
	return s.path
}

func (s *snapshotFile) Stat() (fs.FileInfo, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrReplicaNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrOpeningReplica, s.path)
	}
	return info, nil
}

func (s *snapshotFile) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrReplicaNotFound, s.path)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "snapshotFile.Read").Str("path", s.path).Msg("error reading snapshot")
		return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
	}
	return data, nil
}

func (s *snapshotFile) Open() (*os.File, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrReplicaNotFound, s.path)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "snapshotFile.Open").Str("path", s.path).Msg("error opening snapshot")
		return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
	}
	return f, nil
}
