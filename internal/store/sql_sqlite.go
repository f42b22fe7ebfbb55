// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/shiosayi/internal/logger"
)

const sqliteDriver = "sqlite3"

// replicaDSN builds a read-only DSN for the client replica. _query_only
// makes the driver reject writes even if the file itself is writable.
func replicaDSN(path string) string {
	return "file:" + filepath.ToSlash(path) + "?mode=ro&_query_only=true"
}

// OpenReplica opens the replica file read-only and checks it with a ping.
func OpenReplica(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "OpenReplica").Str("path", path).Msg("replica file is missing")
		return nil, fmt.Errorf("%w: %s", ErrReplicaNotFound, path)
	}

	return connect(ctx, replicaDSN(path), log)
}

// NewConnectSQLite opens a writable SQLite file, creating it when missing.
// It is used by the publisher for its authoritative snapshot.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
		}
	}

	return connect(ctx, "file:"+filepath.ToSlash(path)+"?_foreign_keys=true", log)
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(sqliteDriver, dsn)
	if err != nil {
		log.Err(err).Str("func", "connect").Str("dsn", dsn).Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "connect").Str("dsn", dsn).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningReplica, err)
	}
	log.Debug().Str("func", "connect").Str("dsn", dsn).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}
