package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates missing or malformed remote endpoint
	// settings (for example, an empty manifest URL or a zero timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty data directory or a replica file with a path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCatalogConfigs indicates page size limits that cannot be
	// honored.
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidPublisherConfigs indicates invalid publisher settings
	// (for example, a missing snapshot path).
	ErrInvalidPublisherConfigs = errors.New("invalid publisher configuration")
)
