// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging environment variables,
// command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Remote holds the endpoints of the snapshot server and the identity
	// service, together with network timeouts.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the location of the local replica and its side-car
	// settings record.
	Storage Storage `envPrefix:"STORAGE_"`

	// Catalog holds query-layer limits.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Publisher holds the settings of the snapshot publishing server.
	Publisher Publisher `envPrefix:"PUBLISHER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// It is sent as part of the User-Agent and exposed by the publisher.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote describes the remote manifest, content and identity endpoints.
type Remote struct {
	// ContentURL serves the full snapshot body.
	// Env: REMOTE_CONTENT_URL
	ContentURL string `env:"CONTENT_URL"`

	// HashURL serves the manifest: a text body whose first whitespace
	// separated token is the hex digest of the current snapshot.
	// Env: REMOTE_HASH_URL
	HashURL string `env:"HASH_URL"`

	// AuthURL is the identity endpoint queried with ?token=<api key>.
	// Env: REMOTE_AUTH_URL
	AuthURL string `env:"AUTH_URL"`

	// RequestTimeout bounds manifest and identity requests.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DownloadTimeout bounds a full snapshot download.
	// Env: REMOTE_DOWNLOAD_TIMEOUT
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT"`

	// DigestAlgorithm names the manifest digest ("sha256" or "blake2b-256").
	// Env: REMOTE_DIGEST_ALGORITHM
	DigestAlgorithm string `env:"DIGEST_ALGORITHM"`
}

// Storage describes where the client keeps its local state.
type Storage struct {
	// DataDir is the application data directory.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// ReplicaFile is the replica file name inside DataDir.
	// Env: STORAGE_REPLICA_FILE
	ReplicaFile string `env:"REPLICA_FILE"`

	// SettingsFile is the settings record file name inside DataDir.
	// Env: STORAGE_SETTINGS_FILE
	SettingsFile string `env:"SETTINGS_FILE"`
}

// Catalog holds query-layer limits.
type Catalog struct {
	// PageSize is the limit used when a request carries none.
	// Env: CATALOG_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxPageSize caps any requested limit.
	// Env: CATALOG_MAX_PAGE_SIZE
	MaxPageSize int `env:"MAX_PAGE_SIZE"`
}

// Publisher holds the settings of the snapshot publishing server.
type Publisher struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: PUBLISHER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SnapshotPath is the authoritative SQLite file being published.
	// Env: PUBLISHER_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`

	// RequestTimeout bounds a single inbound request.
	// Env: PUBLISHER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
