package tui

import "github.com/MKhiriev/shiosayi/models"

// NavigateTo switches the root model to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

const (
	pageCatalog = "catalog"
	pageLogin   = "login"
	pageMine    = "mine"
)

type filmsLoadedMsg struct {
	seq  int
	page models.FilmPage
	err  error
}

type regionsLoadedMsg struct {
	regions []models.RegionCount
	err     error
}

type guardianFilmsMsg struct {
	films []models.Film
	count int
}

type authDoneMsg struct {
	state models.AuthState
	err   error
}

type logoutDoneMsg struct {
	err error
}

type themeSavedMsg struct {
	theme models.Theme
	err   error
}

type toggleAboutMsg struct{}

type statusMsg string
