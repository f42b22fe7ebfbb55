package tui

import "github.com/MKhiriev/shiosayi/models"

// session is the state shared by every page of one program run.
type session struct {
	startup models.StartupState
	auth    models.AuthState
	theme   models.Theme
	styles  styles
}

func newSession(startup models.StartupState, theme models.Theme) *session {
	if !theme.Valid() {
		theme = models.ThemeSystem
	}
	return &session{
		startup: startup,
		auth:    startup.Auth,
		theme:   theme,
		styles:  newStyles(theme),
	}
}

func (s *session) setTheme(theme models.Theme) {
	s.theme = theme
	s.styles = newStyles(theme)
}

func (s *session) guardian() (models.Guardian, bool) {
	if !s.auth.Authenticated() {
		return models.Guardian{}, false
	}
	return *s.auth.Guardian, true
}
