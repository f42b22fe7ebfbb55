// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/MKhiriev/shiosayi/internal/utils"
	"github.com/MKhiriev/shiosayi/models"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// for every role.
func (cfg *StructuredConfig) validate() error {
	if _, err := utils.NewDigester(cfg.Remote.DigestAlgorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRemoteConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	for _, raw := range []string{cfg.Remote.ContentURL, cfg.Remote.HashURL, cfg.Remote.AuthURL} {
		if !isHTTPURL(raw) {
			return fmt.Errorf("%w: bad url %q", ErrInvalidRemoteConfigs, raw)
		}
	}

	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.DownloadTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DataDir == "" || cfg.Storage.ReplicaPath == "" || cfg.Storage.SettingsPath == "" {
		return ErrInvalidStorageConfigs
	}

	if filepath.Dir(cfg.Storage.ReplicaPath) != filepath.Clean(cfg.Storage.DataDir) ||
		filepath.Dir(cfg.Storage.SettingsPath) != filepath.Clean(cfg.Storage.DataDir) {
		return fmt.Errorf("%w: file names must not contain directories", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.ReplicaPath == cfg.Storage.SettingsPath {
		return fmt.Errorf("%w: replica and settings files must differ", ErrInvalidStorageConfigs)
	}

	if cfg.Catalog.PageSize <= 0 ||
		cfg.Catalog.MaxPageSize <= 0 ||
		cfg.Catalog.MaxPageSize > models.MaxPageSize ||
		cfg.Catalog.PageSize > cfg.Catalog.MaxPageSize {
		return ErrInvalidCatalogConfigs
	}

	return nil
}

func (cfg *PublisherConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.SnapshotPath == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidPublisherConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
