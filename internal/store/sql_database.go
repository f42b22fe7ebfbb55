// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/migrations"
)

// DB wraps a *sql.DB opened on a catalog SQLite file.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the catalog schema. It is only valid on a writable
// connection such as the publisher's authoritative file.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
