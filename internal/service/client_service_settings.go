// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/models"
)

type clientSettingsService struct {
	settings store.SettingsStore
}

func NewClientSettingsService(settings store.SettingsStore) ClientSettingsService {
	return &clientSettingsService{settings: settings}
}

func (s *clientSettingsService) Theme() (models.Theme, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return models.ThemeSystem, err
	}
	return settings.Theme, nil
}

func (s *clientSettingsService) SetTheme(theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	return s.settings.Update(func(st *models.Settings) {
		st.Theme = theme
	})
}
