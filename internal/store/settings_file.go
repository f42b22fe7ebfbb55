// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/models"
)

// settingsFile keeps [models.Settings] as a single JSON document next to the
// replica. Every write rewrites the whole file atomically.
type settingsFile struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewSettingsStore returns a [SettingsStore] backed by the file at path.
func NewSettingsStore(path string, log *logger.Logger) SettingsStore {
	return &settingsFile{
		path:   path,
		logger: log,
	}
}

// Load reads the record. A missing or empty file yields defaults.
func (s *settingsFile) Load() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *settingsFile) load() (models.Settings, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Settings{}.WithDefaults(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return models.Settings{}.WithDefaults(), nil
	}

	var settings models.Settings
	if err = json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrReadingSettings, err)
	}

	return settings.WithDefaults(), nil
}

// Update applies fn to the current record and persists the result.
// An unreadable record is replaced rather than blocking every later write.
func (s *settingsFile) Update(fn func(settings *models.Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "settingsFile.Update").
			Str("path", s.path).
			Msg("settings record unreadable, rewriting from defaults")
		settings = models.Settings{}.WithDefaults()
	}

	fn(&settings)

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettings, err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSettings, err)
	}

	if err = atomic.WriteFile(s.path, bytes.NewReader(payload)); err != nil {
		s.logger.Err(err).Str("func", "settingsFile.Update").Str("path", s.path).Msg("failed to write settings record")
		return fmt.Errorf("%w: %w", ErrWritingSettings, err)
	}

	return nil
}
