// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const defaultTableHeight = 15

// CatalogModel is the browse page: one page of films for the current filter,
// with search, status toggles, region cycling and pagination.
type CatalogModel struct {
	ctx      context.Context
	catalog  service.ClientCatalogService
	settings service.ClientSettingsService
	auth     service.ClientAuthService
	session  *session

	filter  models.FilmFilter
	page    models.FilmPage
	regions []models.RegionCount
	// regionIdx is -1 when no region narrows the listing
	regionIdx int

	// seq identifies the latest listing request; older results are dropped
	seq     int
	loading bool

	table     table.Model
	search    textinput.Model
	searching bool
	detail    bool
	spinner   spinner.Model
	help      help.Model

	status string
	errMsg string
}

func NewCatalogModel(
	ctx context.Context,
	catalog service.ClientCatalogService,
	settings service.ClientSettingsService,
	auth service.ClientAuthService,
	sess *session,
) *CatalogModel {
	search := textinput.New()
	search.Placeholder = "title contains..."
	search.Prompt = "/ "
	search.CharLimit = 120
	search.Width = 40

	t := table.New(
		table.WithColumns(filmColumns(80)),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	t.SetStyles(sess.styles.table)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &CatalogModel{
		ctx:       ctx,
		catalog:   catalog,
		settings:  settings,
		auth:      auth,
		session:   sess,
		filter:    catalog.DefaultFilter(),
		regionIdx: -1,
		table:     t,
		search:    search,
		spinner:   s,
		help:      help.New(),
	}
	if sess.startup.Stale() {
		m.status = "Offline: showing the last downloaded catalog"
	}
	return m
}

func filmColumns(width int) []table.Column {
	title := width - 8 - 12 - 11 - 20 - 10
	if title < 20 {
		title = 20
	}
	return []table.Column{
		{Title: "Title", Width: title},
		{Title: "Year", Width: 6},
		{Title: "Region", Width: 12},
		{Title: "Status", Width: 11},
		{Title: "Guardian", Width: 20},
	}
}

// Init implements [tea.Model].
func (m *CatalogModel) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.cmdLoadRegions(), m.spinner.Tick)
}

// reload starts a listing request for the current filter.
func (m *CatalogModel) reload() tea.Cmd {
	m.seq++
	m.loading = true
	return m.cmdLoadFilms(m.seq, m.filter)
}

func (m *CatalogModel) cmdLoadFilms(seq int, filter models.FilmFilter) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		page, err := catalog.List(ctx, filter)
		return filmsLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (m *CatalogModel) cmdLoadRegions() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		regions, err := catalog.Regions(ctx)
		return regionsLoadedMsg{regions: regions, err: err}
	}
}

func (m *CatalogModel) cmdSetTheme(theme models.Theme) tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: settings.SetTheme(theme)}
	}
}

func (m *CatalogModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

// Update implements [tea.Model].
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetColumns(filmColumns(msg.Width - 4))
		if h := msg.Height - 12; h > 3 {
			m.table.SetHeight(h)
		}
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case filmsLoadedMsg:
		return m.onFilmsLoaded(msg)

	case regionsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.regions = msg.regions
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.table.SetStyles(m.session.styles.table)
		m.status = "Theme: " + string(msg.theme)
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Logged out"
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *CatalogModel) onFilmsLoaded(msg filmsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}
	m.errMsg = ""

	// the matching set shrank below the current page
	if len(msg.page.Films) == 0 && m.filter.Page > 1 && msg.page.TotalFilms > 0 {
		m.filter.Page = msg.page.TotalPages()
		return m, m.reload()
	}

	m.page = msg.page
	m.table.SetRows(filmRows(msg.page.Films))
	m.table.SetCursor(0)
	return m, nil
}

func filmRows(films []models.Film) []table.Row {
	rows := make([]table.Row, 0, len(films))
	for _, f := range films {
		rows = append(rows, table.Row{
			f.Title,
			yearOrDash(f.Year),
			valueOrDash(f.Region),
			statusLabel(f.Status),
			valueOrDash(f.GuardianName),
		})
	}
	return rows
}

func (m *CatalogModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.SetValue(m.filter.SearchTerm)
		m.search.Blur()
		m.table.Focus()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.table.Focus()
		m.filter.SearchTerm = strings.TrimSpace(m.search.Value())
		m.filter.Page = 1
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *CatalogModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.detail = false
	case key.Matches(msg, keys.copy):
		return m, m.copyPosterURL()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *CatalogModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.search):
		m.searching = true
		m.table.Blur()
		return m, m.search.Focus()

	case key.Matches(msg, keys.orphan):
		return m, m.toggleStatus(models.StatusOrphan)
	case key.Matches(msg, keys.adopted):
		return m, m.toggleStatus(models.StatusAdopted)
	case key.Matches(msg, keys.abandoned):
		return m, m.toggleStatus(models.StatusAbandoned)
	case key.Matches(msg, keys.allStatus):
		m.filter.Statuses = nil
		m.filter.Page = 1
		return m, m.reload()

	case key.Matches(msg, keys.region):
		return m, m.cycleRegion()

	case key.Matches(msg, keys.reset):
		m.filter = m.catalog.DefaultFilter()
		m.regionIdx = -1
		m.search.SetValue("")
		return m, m.reload()

	case key.Matches(msg, keys.refresh):
		return m, m.reload()

	case key.Matches(msg, keys.nextPage):
		if m.filter.Page < m.page.TotalPages() {
			m.filter.Page++
			return m, m.reload()
		}
		return m, nil

	case key.Matches(msg, keys.prevPage):
		if m.filter.Page > 1 {
			m.filter.Page--
			return m, m.reload()
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = true
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		return m, m.copyPosterURL()

	case key.Matches(msg, keys.theme):
		return m, m.cmdSetTheme(m.session.theme.Next())

	case key.Matches(msg, keys.login):
		if m.session.auth.Authenticated() {
			return m, m.cmdLogout()
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }

	case key.Matches(msg, keys.mine):
		if !m.session.auth.Authenticated() {
			m.status = "Log in to see your films"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageMine} }

	case key.Matches(msg, keys.about):
		return m, func() tea.Msg { return toggleAboutMsg{} }
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *CatalogModel) toggleStatus(status models.FilmStatus) tea.Cmd {
	statuses := make([]models.FilmStatus, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		on := m.filter.HasStatus(s)
		if s == status {
			on = !on
		}
		if on {
			statuses = append(statuses, s)
		}
	}

	m.filter.Statuses = statuses
	m.filter.Page = 1
	return m.reload()
}

// cycleRegion steps through all regions, then back to no region filter.
func (m *CatalogModel) cycleRegion() tea.Cmd {
	if len(m.regions) == 0 {
		m.status = "No regions recorded"
		return nil
	}

	m.regionIdx++
	if m.regionIdx >= len(m.regions) {
		m.regionIdx = -1
	}

	if m.regionIdx < 0 {
		m.filter.Region = ""
	} else {
		m.filter.Region = m.regions[m.regionIdx].Region
	}
	m.filter.Page = 1
	return m.reload()
}

func (m *CatalogModel) current() (models.Film, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.page.Films) {
		return models.Film{}, false
	}
	return m.page.Films[idx], true
}

func (m *CatalogModel) copyPosterURL() tea.Cmd {
	film, ok := m.current()
	if !ok || film.PosterURL == nil || *film.PosterURL == "" {
		m.status = "Nothing to copy"
		return nil
	}

	url := *film.PosterURL
	return func() tea.Msg {
		if err := writeClipboard(url); err != nil {
			return statusMsg("Copy failed: " + err.Error())
		}
		return statusMsg("Poster URL copied")
	}
}

// View implements [tea.Model].
func (m *CatalogModel) View() string {
	st := m.session.styles
	var b strings.Builder

	b.WriteString(st.title.Render("shiosayi · film catalog"))
	if g, ok := m.session.guardian(); ok {
		b.WriteString("  ")
		b.WriteString(st.help.Render(fmt.Sprintf("%s (%s)", g.Name, g.Tier)))
	}
	b.WriteString("\n")
	if m.session.startup.Stale() {
		b.WriteString(st.warning.Render("offline · catalog may be out of date"))
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.detail {
		if film, ok := m.current(); ok {
			b.WriteString(renderFilmDetail(st, film))
			b.WriteString("\n")
			b.WriteString(st.help.Render("c: copy poster url · esc: back"))
			return st.app.Render(b.String())
		}
	}

	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(st.help.Render(describeFilter(m.filter)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	pager := fmt.Sprintf("page %d of %d · %d films", m.filter.Page, max(1, m.page.TotalPages()), m.page.TotalFilms)
	if m.loading {
		pager = m.spinner.View() + " " + pager
	}
	b.WriteString(st.help.Render(pager))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(st.err.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(st.status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(catalogHelp{}))

	return st.app.Render(b.String())
}

func renderFilmDetail(st styles, f models.Film) string {
	var b strings.Builder

	b.WriteString(st.title.Render(f.Title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(st.label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Year", yearOrDash(f.Year))
	row("Region", valueOrDash(f.Region))
	row("Status", st.statusStyle(f.Status).Render(statusLabel(f.Status)))
	row("Guardian", valueOrDash(f.GuardianName))
	row("Poster", valueOrDash(f.PosterURL))
	row("Updated", valueOrDash(f.UpdatedAt))

	if f.Plot != nil && *f.Plot != "" {
		b.WriteString("\n")
		b.WriteString(*f.Plot)
		b.WriteString("\n")
	}

	return st.box.Render(b.String())
}
