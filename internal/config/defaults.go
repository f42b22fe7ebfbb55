// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/shiosayi/internal/utils"
	"github.com/MKhiriev/shiosayi/models"
)

// Default values applied when no other source sets a field.
const (
	DefaultContentURL      = "https://sys.shiosayi.org/db/public"
	DefaultHashURL         = "https://sys.shiosayi.org/db/public.sha256"
	DefaultAuthURL         = "https://sys.shiosayi.org/auth"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDownloadTimeout = 5 * time.Minute
	DefaultReplicaFile     = "public.db"
	DefaultSettingsFile    = "settings.json"
	DefaultPublisherAddr   = "localhost:8080"

	appDirName = "shiosayi"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			ContentURL:      DefaultContentURL,
			HashURL:         DefaultHashURL,
			AuthURL:         DefaultAuthURL,
			RequestTimeout:  DefaultRequestTimeout,
			DownloadTimeout: DefaultDownloadTimeout,
			DigestAlgorithm: utils.DigestSHA256,
		},
		Storage: Storage{
			DataDir:      defaultDataDir(),
			ReplicaFile:  DefaultReplicaFile,
			SettingsFile: DefaultSettingsFile,
		},
		Catalog: Catalog{
			PageSize:    models.DefaultPageSize,
			MaxPageSize: models.MaxPageSize,
		},
		Publisher: Publisher{
			HTTPAddress:    DefaultPublisherAddr,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// defaultDataDir resolves the per-user application data directory, falling
// back to a directory next to the working directory.
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(".", "."+appDirName)
}
