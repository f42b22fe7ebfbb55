package tui

import (
	"github.com/MKhiriev/shiosayi/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) records auth and theme changes in the session
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	session *session

	buildInfo models.AppBuildInfo
	showAbout bool
	quit      bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, sess *session, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		session:   sess,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quit = true
			return r, tea.Quit
		}
		if r.showAbout {
			if msg.String() == "esc" || msg.String() == "i" {
				r.showAbout = false
			}
			return r, nil
		}

	case tea.WindowSizeMsg:
		// pages are pointers, so every page sees the new size
		var cmds []tea.Cmd
		for _, page := range r.pages {
			_, cmd := page.Update(msg)
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)

	case toggleAboutMsg:
		r.showAbout = !r.showAbout
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showAbout = false
		r.current = next
		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()

	case authDoneMsg:
		if msg.err != nil {
			r.session.auth = models.AuthState{Status: models.AuthUnauthenticated}
			break
		}
		r.session.auth = msg.state
		updated, cmd := r.current.Update(msg)
		r.current = updated
		name := msg.state.Guardian.Name
		return r, tea.Batch(cmd, func() tea.Msg {
			return NavigateTo{Page: pageCatalog, Payload: statusMsg("Welcome, " + name)}
		})

	case logoutDoneMsg:
		if msg.err == nil {
			r.session.auth = models.AuthState{Status: models.AuthUnauthenticated}
		}

	case themeSavedMsg:
		if msg.err == nil {
			r.session.setTheme(msg.theme)
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showAbout {
		return r.session.styles.app.Render(renderBuildInfoWindow(r.session.styles, r.buildInfo))
	}
	if r.current == nil {
		return ""
	}
	return r.current.View()
}
