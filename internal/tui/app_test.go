package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/mock"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pageStub records the messages it receives.
type pageStub struct {
	name  string
	inits int
	msgs  []tea.Msg
}

func (p *pageStub) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *pageStub) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *pageStub) View() string { return p.name }

func newTestRoot(sess *session) (RootModel, *pageStub, *pageStub) {
	catalog := &pageStub{name: "catalog page"}
	login := &pageStub{name: "login page"}
	root := NewRootModel(map[string]tea.Model{
		pageCatalog: catalog,
		pageLogin:   login,
	}, pageCatalog, sess, models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"))
	return root, catalog, login
}

func TestRootModel_Navigate(t *testing.T) {
	root, catalog, login := newTestRoot(newSession(models.StartupState{}, models.ThemeLight))

	assert.Equal(t, "catalog page", root.View())

	updated, _ := root.Update(NavigateTo{Page: pageLogin})
	root = updated.(RootModel)
	assert.Equal(t, "login page", root.View())
	assert.Equal(t, 1, login.inits)

	updated, cmd := root.Update(NavigateTo{Page: pageCatalog, Payload: statusMsg("hi")})
	root = updated.(RootModel)
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg("hi"), cmd())
	assert.Equal(t, 0, catalog.inits)

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	assert.Equal(t, "catalog page", updated.View())
}

func TestRootModel_About(t *testing.T) {
	root, catalog, _ := newTestRoot(newSession(models.StartupState{}, models.ThemeLight))

	updated, _ := root.Update(toggleAboutMsg{})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "1.2.3")

	// keys are swallowed by the overlay
	updated, _ = root.Update(press("x"))
	root = updated.(RootModel)
	assert.Empty(t, catalog.msgs)

	updated, _ = root.Update(press("esc"))
	root = updated.(RootModel)
	assert.Equal(t, "catalog page", root.View())
}

func TestRootModel_CtrlC(t *testing.T) {
	root, _, _ := newTestRoot(newSession(models.StartupState{}, models.ThemeLight))

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_AuthDone(t *testing.T) {
	sess := newSession(models.StartupState{}, models.ThemeLight)
	root, _, login := newTestRoot(sess)
	updated, _ := root.Update(NavigateTo{Page: pageLogin})
	root = updated.(RootModel)

	g := &models.Guardian{ID: "g-7", Name: "Kenji", Tier: models.TierSavior}
	state := models.AuthState{Status: models.AuthAuthenticated, Guardian: g}

	_, cmd := root.Update(authDoneMsg{state: state})

	assert.Equal(t, state, sess.auth)
	assert.Len(t, login.msgs, 1)
	require.NotNil(t, cmd)

	var nav NavigateTo
	switch msg := cmd().(type) {
	case NavigateTo:
		nav = msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if n, ok := c().(NavigateTo); ok {
				nav = n
			}
		}
	}
	assert.Equal(t, NavigateTo{Page: pageCatalog, Payload: statusMsg("Welcome, Kenji")}, nav)
}

func TestRootModel_AuthFailedAndLogout(t *testing.T) {
	g := &models.Guardian{ID: "g-7", Name: "Kenji"}
	sess := newSession(models.StartupState{
		Auth: models.AuthState{Status: models.AuthAuthenticated, Guardian: g},
	}, models.ThemeLight)
	root, catalog, _ := newTestRoot(sess)

	root.Update(logoutDoneMsg{err: errors.New("disk full")})
	assert.True(t, sess.auth.Authenticated())

	root.Update(logoutDoneMsg{})
	assert.False(t, sess.auth.Authenticated())
	assert.Len(t, catalog.msgs, 2)

	sess.auth = models.AuthState{Status: models.AuthAuthenticated, Guardian: g}
	root.Update(authDoneMsg{err: adapter.ErrUnauthorized})
	assert.Equal(t, models.AuthUnauthenticated, sess.auth.Status)
}

func TestRootModel_ThemeSaved(t *testing.T) {
	sess := newSession(models.StartupState{}, models.ThemeLight)
	root, _, _ := newTestRoot(sess)

	root.Update(themeSavedMsg{theme: models.ThemeDark, err: errors.New("read-only")})
	assert.Equal(t, models.ThemeLight, sess.theme)

	root.Update(themeSavedMsg{theme: models.ThemeDark})
	assert.Equal(t, models.ThemeDark, sess.theme)
}

func TestLoginModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	sess := newSession(models.StartupState{}, models.ThemeSystem)

	m := NewLoginModel(context.Background(), auth, sess)
	m.Init()

	t.Run("empty key is refused locally", func(t *testing.T) {
		_, cmd := m.Update(press("enter"))
		assert.Nil(t, cmd)
		assert.Equal(t, humanizeError(service.ErrEmptyAPIKey), m.errMsg)
	})

	t.Run("rejected key", func(t *testing.T) {
		for _, r := range " key-1 " {
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}

		auth.EXPECT().Authenticate(gomock.Any(), "key-1").
			Return(models.AuthState{Status: models.AuthUnauthenticated}, adapter.ErrUnauthorized)

		_, cmd := m.Update(press("enter"))
		require.NotNil(t, cmd)
		assert.True(t, m.submitting)
		assert.Contains(t, m.View(), "Checking key")

		// a second enter while the request runs is ignored
		_, again := m.Update(press("enter"))
		assert.Nil(t, again)

		m.Update(cmd())
		assert.False(t, m.submitting)
		assert.Equal(t, "The API key was rejected", m.errMsg)
	})

	t.Run("esc goes back", func(t *testing.T) {
		_, cmd := m.Update(press("esc"))
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageCatalog}, cmd())
	})

	t.Run("init clears the form", func(t *testing.T) {
		m.Init()
		assert.Empty(t, m.input.Value())
		assert.Empty(t, m.errMsg)
	})
}

func TestMyFilmsModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockClientCatalogService(ctrl)

	t.Run("unauthenticated goes back", func(t *testing.T) {
		m := NewMyFilmsModel(context.Background(), catalog, newSession(models.StartupState{}, models.ThemeSystem))

		cmd := m.Init()
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: pageCatalog}, cmd())
	})

	t.Run("lists guardian films", func(t *testing.T) {
		g := &models.Guardian{ID: "g-1", Name: "Aiko"}
		sess := newSession(models.StartupState{
			Auth: models.AuthState{Status: models.AuthAuthenticated, Guardian: g},
		}, models.ThemeSystem)
		m := NewMyFilmsModel(context.Background(), catalog, sess)

		catalog.EXPECT().GuardianFilms(gomock.Any(), "g-1").Return(testFilms())
		catalog.EXPECT().GuardianFilmCount(gomock.Any(), "g-1").Return(2)

		cmd := m.Init()
		require.NotNil(t, cmd)
		assert.True(t, m.loading)

		m.Update(cmd())
		assert.False(t, m.loading)
		assert.Equal(t, 2, m.count)

		view := m.View()
		assert.Contains(t, view, "My films · Aiko")
		assert.Contains(t, view, "> Lost Print")

		m.Update(press("j"))
		m.Update(press("j"))
		assert.Equal(t, 1, m.idx)
		m.Update(press("k"))
		assert.Equal(t, 0, m.idx)
	})
}

func TestFatalModel(t *testing.T) {
	m := fatalModel{
		err:    errors.Join(service.ErrFatalStartup, adapter.ErrNetwork),
		styles: newStyles(models.ThemeDark),
	}

	view := m.View()
	assert.Contains(t, view, "The catalog is unavailable")
	assert.Contains(t, view, "No network or the server is unavailable")

	_, cmd := m.Update(press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
