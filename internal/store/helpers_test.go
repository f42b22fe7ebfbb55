// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shiosayi/internal/logger"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// staticConnections always hands out the same handle or error.
type staticConnections struct {
	db  *DB
	err error
}

func (s *staticConnections) Acquire(context.Context) (*DB, error) { return s.db, s.err }
func (s *staticConnections) Release() error                       { return nil }
func (s *staticConnections) State() ConnState                     { return ConnOpen }

func newMockRepository(t *testing.T) (CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := &DB{DB: sqlDB, logger: logger.Nop()}
	return NewCatalogRepository(&staticConnections{db: db}, logger.Nop()), mock
}

type fixtureGuardian struct {
	id, name string
}

type fixtureFilm struct {
	title      string
	status     string
	region     any
	guardianID any
	year       any
}

// newFixtureReplica writes a migrated catalog file with the given rows and
// returns its path.
func newFixtureReplica(t *testing.T, guardians []fixtureGuardian, films []fixtureFilm) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "public.db")
	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())

	for _, g := range guardians {
		_, err = db.Exec(`INSERT INTO guardians (id, name) VALUES (?, ?)`, g.id, g.name)
		require.NoError(t, err)
	}
	for _, f := range films {
		_, err = db.Exec(
			`INSERT INTO films (title, status, region, guardian_id, year, updated_at) VALUES (?, ?, ?, ?, ?, '2026-01-02T03:04:05Z')`,
			f.title, f.status, f.region, f.guardianID, f.year,
		)
		require.NoError(t, err)
	}

	return path
}

func newFixtureRepository(t *testing.T, path string) CatalogRepository {
	t.Helper()

	connections := NewReplicaConnectionManager(path, logger.Nop())
	t.Cleanup(func() { _ = connections.Release() })

	return NewCatalogRepository(connections, logger.Nop())
}
