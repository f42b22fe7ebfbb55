// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the UI color preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// Next cycles system -> light -> dark -> system.
func (t Theme) Next() Theme {
	switch t {
	case ThemeSystem:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// Settings is the small key/value record persisted next to the replica.
// Empty strings mean "not set".
type Settings struct {
	APIKey       string `json:"api_key,omitempty"`
	Theme        Theme  `json:"theme,omitempty"`
	DatabaseHash string `json:"database_hash,omitempty"`
}

// WithDefaults fills unset preference fields.
func (s Settings) WithDefaults() Settings {
	if !s.Theme.Valid() {
		s.Theme = ThemeSystem
	}
	return s
}
