// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files.
// Durations may be given as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		ContentURL      string   `json:"content_url"`
		HashURL         string   `json:"hash_url"`
		AuthURL         string   `json:"auth_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		DownloadTimeout Duration `json:"download_timeout"`
		DigestAlgorithm string   `json:"digest_algorithm"`
	} `json:"remote,omitempty"`

	Storage struct {
		DataDir      string `json:"data_dir"`
		ReplicaFile  string `json:"replica_file"`
		SettingsFile string `json:"settings_file"`
	} `json:"storage,omitempty"`

	Catalog struct {
		PageSize    int `json:"page_size"`
		MaxPageSize int `json:"max_page_size"`
	} `json:"catalog,omitempty"`

	Publisher struct {
		HTTPAddress    string   `json:"http_address"`
		SnapshotPath   string   `json:"snapshot_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"publisher,omitempty"`
}

// parseJSON reads a JSON config file. The file may contain comments and
// trailing commas; it is standardized with hujson before decoding.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	standard, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(standard, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Remote: Remote{
			ContentURL:      jsonCfg.Remote.ContentURL,
			HashURL:         jsonCfg.Remote.HashURL,
			AuthURL:         jsonCfg.Remote.AuthURL,
			RequestTimeout:  time.Duration(jsonCfg.Remote.RequestTimeout),
			DownloadTimeout: time.Duration(jsonCfg.Remote.DownloadTimeout),
			DigestAlgorithm: jsonCfg.Remote.DigestAlgorithm,
		},
		Storage: Storage{
			DataDir:      jsonCfg.Storage.DataDir,
			ReplicaFile:  jsonCfg.Storage.ReplicaFile,
			SettingsFile: jsonCfg.Storage.SettingsFile,
		},
		Catalog: Catalog{
			PageSize:    jsonCfg.Catalog.PageSize,
			MaxPageSize: jsonCfg.Catalog.MaxPageSize,
		},
		Publisher: Publisher{
			HTTPAddress:    jsonCfg.Publisher.HTTPAddress,
			SnapshotPath:   jsonCfg.Publisher.SnapshotPath,
			RequestTimeout: time.Duration(jsonCfg.Publisher.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from plain numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
