// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		// comments are allowed
		"app": {"version": "0.9.0"},
		"remote": {
			"content_url": "http://localhost:8080/db/public",
			"hash_url": "http://localhost:8080/db/public.sha256",
			"auth_url": "http://localhost:8080/auth",
			"request_timeout": "5s",
			"download_timeout": 60000000000,
			"digest_algorithm": "sha256",
		},
		"storage": {"data_dir": "/data", "replica_file": "public.db", "settings_file": "settings.json"},
		"catalog": {"page_size": 30, "max_page_size": 60},
		"publisher": {"http_address": "localhost:9000", "snapshot_path": "/srv/public.db", "request_timeout": "10s"},
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "http://localhost:8080/db/public", cfg.Remote.ContentURL)
	assert.Equal(t, "http://localhost:8080/db/public.sha256", cfg.Remote.HashURL)
	assert.Equal(t, "http://localhost:8080/auth", cfg.Remote.AuthURL)
	assert.Equal(t, 5*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Remote.DownloadTimeout)
	assert.Equal(t, "sha256", cfg.Remote.DigestAlgorithm)
	assert.Equal(t, "/data", cfg.Storage.DataDir)
	assert.Equal(t, "public.db", cfg.Storage.ReplicaFile)
	assert.Equal(t, "settings.json", cfg.Storage.SettingsFile)
	assert.Equal(t, 30, cfg.Catalog.PageSize)
	assert.Equal(t, 60, cfg.Catalog.MaxPageSize)
	assert.Equal(t, "localhost:9000", cfg.Publisher.HTTPAddress)
	assert.Equal(t, "/srv/public.db", cfg.Publisher.SnapshotPath)
	assert.Equal(t, 10*time.Second, cfg.Publisher.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := writeJSONFile(t, `{"remote": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeJSONFile(t, `{"remote": {"request_timeout": "later"}}`)

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))

	var got Duration
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, d, got)
}

func TestDuration_UnmarshalNull(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, Duration(0), d)
}
