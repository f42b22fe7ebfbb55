// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors describing the state of the local replica and its
// connection. Callers should use [errors.Is] to match against these values.
var (
	// ErrReplicaNotFound is returned when the replica file is expected to
	// exist but is missing from the data directory.
	ErrReplicaNotFound = errors.New("replica file not found")

	// ErrConnectionReleased is returned to callers of an in-flight open
	// when the connection was released before the open finished.
	ErrConnectionReleased = errors.New("replica connection released during open")

	// ErrOpeningReplica is returned when the SQLite driver cannot open or
	// ping the replica file.
	ErrOpeningReplica = errors.New("error opening replica")

	// ErrWritingReplica is returned when the replica file cannot be
	// replaced on disk. The previous file is left untouched.
	ErrWritingReplica = errors.New("error writing replica file")

	// ErrReadingSettings is returned when the settings record exists but
	// cannot be read or decoded.
	ErrReadingSettings = errors.New("error reading settings record")

	// ErrWritingSettings is returned when the settings record cannot be
	// persisted.
	ErrWritingSettings = errors.New("error writing settings record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// replica fails, including when no connection could be acquired.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan film row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan film rows")
)
