// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io/fs"
	"os"

	"github.com/MKhiriev/shiosayi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReplicaStore owns the replica file and the hash recorded for it.
type ReplicaStore interface {
	Exists() bool
	ReadStoredHash() (string, error)
	WriteStoredHash(hash string) error
	Replace(data []byte) error
	State() (models.ReplicaState, error)
}

// SettingsStore persists the small settings record kept next to the replica.
type SettingsStore interface {
	Load() (models.Settings, error)
	Update(fn func(settings *models.Settings)) error
}

// ConnectionManager hands out the shared read-only replica handle.
type ConnectionManager interface {
	Acquire(ctx context.Context) (*DB, error)
	Release() error
	State() ConnState
}

// CatalogRepository runs filtered reads against the replica.
type CatalogRepository interface {
	List(ctx context.Context, filter models.FilmFilter) (models.FilmPage, error)
	RegionsWithCounts(ctx context.Context) ([]models.RegionCount, error)
	ByGuardian(ctx context.Context, guardianID string) []models.Film
	CountByGuardian(ctx context.Context, guardianID string) int
}

// SnapshotFile is the publisher's authoritative snapshot on disk.
type SnapshotFile interface {
	Path() string
	Stat() (fs.FileInfo, error)
	Read() ([]byte, error)
	Open() (*os.File, error)
}
