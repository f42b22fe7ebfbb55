package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/models"
	tea "github.com/charmbracelet/bubbletea"
)

// MyFilmsModel lists the films looked after by the logged-in guardian.
type MyFilmsModel struct {
	ctx     context.Context
	catalog service.ClientCatalogService
	session *session

	films   []models.Film
	count   int
	idx     int
	loading bool
}

func NewMyFilmsModel(ctx context.Context, catalog service.ClientCatalogService, sess *session) *MyFilmsModel {
	return &MyFilmsModel{
		ctx:     ctx,
		catalog: catalog,
		session: sess,
	}
}

// Init implements [tea.Model].
func (m *MyFilmsModel) Init() tea.Cmd {
	g, ok := m.session.guardian()
	if !ok {
		return func() tea.Msg { return NavigateTo{Page: pageCatalog} }
	}

	m.loading = true
	m.idx = 0
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		return guardianFilmsMsg{
			films: catalog.GuardianFilms(ctx, g.ID),
			count: catalog.GuardianFilmCount(ctx, g.ID),
		}
	}
}

// Update implements [tea.Model].
func (m *MyFilmsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case guardianFilmsMsg:
		m.loading = false
		m.films = msg.films
		m.count = msg.count
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "m":
			return m, func() tea.Msg { return NavigateTo{Page: pageCatalog} }
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.films)-1 {
				m.idx++
			}
		}
	}
	return m, nil
}

// View implements [tea.Model].
func (m *MyFilmsModel) View() string {
	st := m.session.styles
	var b strings.Builder

	title := "My films"
	if g, ok := m.session.guardian(); ok {
		title = fmt.Sprintf("My films · %s", g.Name)
	}
	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(st.status.Render("Loading..."))
		b.WriteString("\n")
	case len(m.films) == 0:
		b.WriteString("You are not looking after any film yet.\n")
	default:
		for i, f := range m.films {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-40s %6s  %s\n",
				cursor,
				fitText(f.Title, 40),
				yearOrDash(f.Year),
				st.statusStyle(f.Status).Render(statusLabel(f.Status)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(st.help.Render(fmt.Sprintf("%d films · esc: back", m.count)))

	return st.app.Render(b.String())
}
