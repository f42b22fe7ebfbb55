// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/shiosayi/internal/logger"
)

// ConnState is the lifecycle state of the replica connection.
type ConnState int

const (
	ConnClosed ConnState = iota
	ConnOpening
	ConnOpen
)

func (s ConnState) String() string {
	switch s {
	case ConnClosed:
		return "closed"
	case ConnOpening:
		return "opening"
	case ConnOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Opener opens a new handle on the replica.
type Opener func(ctx context.Context) (*DB, error)

// connectionManager hands out at most one live replica handle.
//
// Concurrent Acquire calls in the Opening state share a single open through
// singleflight. Every Release bumps generation; an open that started under
// an older generation closes its own handle instead of publishing it.
type connectionManager struct {
	open   Opener
	logger *logger.Logger

	mu         sync.Mutex
	state      ConnState
	db         *DB
	generation uint64

	group singleflight.Group
}

// NewConnectionManager returns a [ConnectionManager] that opens handles
// with open.
func NewConnectionManager(open Opener, log *logger.Logger) ConnectionManager {
	return &connectionManager{
		open:   open,
		logger: log,
	}
}

// NewReplicaConnectionManager returns a [ConnectionManager] over the
// read-only replica at path.
func NewReplicaConnectionManager(path string, log *logger.Logger) ConnectionManager {
	return NewConnectionManager(func(ctx context.Context) (*DB, error) {
		return OpenReplica(ctx, path, log)
	}, log)
}

// Acquire returns the open handle, joining an in-flight open or starting a
// new one. A waiter whose ctx ends stops waiting; the shared open continues
// for the remaining waiters.
func (m *connectionManager) Acquire(ctx context.Context) (*DB, error) {
	m.mu.Lock()
	if m.state == ConnOpen && m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	gen := m.generation
	m.state = ConnOpening
	m.mu.Unlock()

	openCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(generationKey(gen), func() (any, error) {
		return m.openGeneration(openCtx, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*DB), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *connectionManager) openGeneration(ctx context.Context, gen uint64) (*DB, error) {
	m.mu.Lock()
	if m.generation == gen && m.state == ConnOpen && m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	m.mu.Unlock()

	db, err := m.open(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		if db != nil {
			_ = db.Close()
		}
		m.logger.Debug().
			Str("func", "connectionManager.openGeneration").
			Uint64("generation", gen).
			Msg("connection released while opening, discarding handle")
		return nil, ErrConnectionReleased
	}

	if err != nil {
		m.state = ConnClosed
		m.logger.Err(err).Str("func", "connectionManager.openGeneration").Msg("failed to open replica connection")
		return nil, err
	}

	m.db = db
	m.state = ConnOpen
	return db, nil
}

// Release closes the open handle and returns to Closed. It is idempotent.
func (m *connectionManager) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.group.Forget(generationKey(m.generation))
	m.generation++

	db := m.db
	m.db = nil
	m.state = ConnClosed

	if db == nil {
		return nil
	}

	m.logger.Debug().Str("func", "connectionManager.Release").Msg("closing replica connection")
	return db.Close()
}

// State reports the current lifecycle state.
func (m *connectionManager) State() ConnState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func generationKey(gen uint64) string {
	return strconv.FormatUint(gen, 10)
}
