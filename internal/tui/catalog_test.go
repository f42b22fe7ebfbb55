package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/mock"
	"github.com/MKhiriev/shiosayi/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultFilter = models.FilmFilter{
	Page:     1,
	Limit:    2,
	Statuses: []models.FilmStatus{models.StatusOrphan},
}

type catalogMocks struct {
	catalog  *mock.MockClientCatalogService
	settings *mock.MockClientSettingsService
	auth     *mock.MockClientAuthService
}

func newTestCatalog(t *testing.T, startup models.StartupState) (*CatalogModel, catalogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := catalogMocks{
		catalog:  mock.NewMockClientCatalogService(ctrl),
		settings: mock.NewMockClientSettingsService(ctrl),
		auth:     mock.NewMockClientAuthService(ctrl),
	}
	m.catalog.EXPECT().DefaultFilter().Return(defaultFilter).AnyTimes()

	sess := newSession(startup, models.ThemeDark)
	return NewCatalogModel(context.Background(), m.catalog, m.settings, m.auth, sess), m
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return updated
}

func strPtr(s string) *string { return &s }

func testFilms() []models.Film {
	year := int64(1953)
	return []models.Film{
		{ID: 1, Title: "Lost Print", Year: &year, Region: strPtr("Kansai"), Status: models.StatusOrphan, PosterURL: strPtr("https://posters.example/1.jpg")},
		{ID: 2, Title: "Endless love", Region: strPtr("Kanto"), Status: models.StatusOrphan},
	}
}

func TestCatalogModel_LoadsFirstPage(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{Outcome: models.SyncUpToDate})

	mocks.catalog.EXPECT().List(gomock.Any(), defaultFilter).
		Return(models.FilmPage{Films: testFilms(), TotalFilms: 5, Limit: 2}, nil)

	run(t, m, m.reload())

	assert.False(t, m.loading)
	assert.Empty(t, m.errMsg)
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, "Lost Print", m.table.Rows()[0][0])
	assert.Equal(t, "1953", m.table.Rows()[0][1])
	assert.Contains(t, m.View(), "page 1 of 3 · 5 films")
}

func TestCatalogModel_StaleBanner(t *testing.T) {
	m, _ := newTestCatalog(t, models.StartupState{Outcome: models.SyncOfflineDegraded})

	assert.Contains(t, m.View(), "offline")
	assert.Contains(t, m.status, "Offline")
}

func TestCatalogModel_DropsOutdatedResults(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})

	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{Films: testFilms(), TotalFilms: 2, Limit: 2}, nil).Times(2)

	first := m.reload()
	second := m.reload()

	// the first request answers last and must be ignored
	run(t, m, second)
	m.table.SetRows(nil)
	run(t, m, first)

	assert.Empty(t, m.table.Rows())
}

func TestCatalogModel_ListError(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})

	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{}, errors.New("query failed"))

	run(t, m, m.reload())

	assert.Equal(t, "query failed", m.errMsg)
	assert.False(t, m.loading)
}

func TestCatalogModel_ToggleStatuses(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []models.FilmStatus
	}{
		{
			name: "add adopted",
			keys: []string{"2"},
			want: []models.FilmStatus{models.StatusOrphan, models.StatusAdopted},
		},
		{
			name: "remove orphan leaves none",
			keys: []string{"1"},
			want: []models.FilmStatus{},
		},
		{
			name: "display order is kept",
			keys: []string{"3", "2"},
			want: []models.FilmStatus{models.StatusOrphan, models.StatusAdopted, models.StatusAbandoned},
		},
		{
			name: "all statuses",
			keys: []string{"a"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mocks := newTestCatalog(t, models.StartupState{})
			m.filter.Page = 3

			var cmd tea.Cmd
			for _, k := range tt.keys {
				_, cmd = m.Update(press(k))
			}

			want := models.FilmFilter{Page: 1, Limit: 2, Statuses: tt.want}
			mocks.catalog.EXPECT().List(gomock.Any(), want).Return(models.FilmPage{}, nil)

			run(t, m, cmd)
			assert.Equal(t, want, m.filter)
		})
	}
}

func TestCatalogModel_Search(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})

	m.Update(press("/"))
	require.True(t, m.searching)

	m.Update(press("l"))
	m.Update(press("o"))
	m.Update(press("v"))
	m.Update(press("e"))
	_, cmd := m.Update(press("enter"))

	assert.False(t, m.searching)
	assert.Equal(t, "love", m.filter.SearchTerm)

	mocks.catalog.EXPECT().
		List(gomock.Any(), models.FilmFilter{Page: 1, Limit: 2, SearchTerm: "love", Statuses: defaultFilter.Statuses}).
		Return(models.FilmPage{}, nil)
	run(t, m, cmd)
}

func TestCatalogModel_SearchCancelled(t *testing.T) {
	m, _ := newTestCatalog(t, models.StartupState{})

	m.Update(press("/"))
	m.Update(press("x"))
	_, cmd := m.Update(press("esc"))

	assert.Nil(t, cmd)
	assert.False(t, m.searching)
	assert.Empty(t, m.filter.SearchTerm)
	assert.Empty(t, m.search.Value())
}

func TestCatalogModel_Pagination(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})

	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{Films: testFilms(), TotalFilms: 3, Limit: 2}, nil).AnyTimes()
	run(t, m, m.reload())

	// 3 films at 2 per page: two pages
	_, cmd := m.Update(press("left"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.filter.Page)

	_, cmd = m.Update(press("right"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.filter.Page)
	run(t, m, cmd)

	_, cmd = m.Update(press("right"))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.filter.Page)

	_, cmd = m.Update(press("left"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.filter.Page)
}

func TestCatalogModel_PageBeyondResults(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})
	m.filter.Page = 5

	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{Films: nil, TotalFilms: 5, Limit: 2}, nil)

	_, cmd := m.Update(filmsLoadedMsg{seq: m.seq, page: models.FilmPage{TotalFilms: 5, Limit: 2}})
	require.NotNil(t, cmd)

	assert.Equal(t, 3, m.filter.Page)
	cmd()
}

func TestCatalogModel_CycleRegion(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})
	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.FilmPage{}, nil).AnyTimes()

	_, cmd := m.Update(press("g"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No regions recorded", m.status)

	m.Update(regionsLoadedMsg{regions: []models.RegionCount{
		{Region: "Kansai", FilmCount: 4},
		{Region: "Kanto", FilmCount: 1},
	}})

	var got []string
	for range 3 {
		_, cmd = m.Update(press("g"))
		require.NotNil(t, cmd)
		got = append(got, m.filter.Region)
	}

	assert.Equal(t, []string{"Kansai", "Kanto", ""}, got)
}

func TestCatalogModel_Reset(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})
	m.filter = models.FilmFilter{Page: 4, Limit: 2, SearchTerm: "x", Region: "Kanto"}
	m.regionIdx = 1
	m.search.SetValue("x")

	_, cmd := m.Update(press("0"))

	mocks.catalog.EXPECT().List(gomock.Any(), defaultFilter).Return(models.FilmPage{}, nil)
	run(t, m, cmd)

	assert.Equal(t, defaultFilter, m.filter)
	assert.Equal(t, -1, m.regionIdx)
	assert.Empty(t, m.search.Value())
}

func TestCatalogModel_DetailAndCopy(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})
	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{Films: testFilms(), TotalFilms: 2, Limit: 2}, nil)
	run(t, m, m.reload())

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m.Update(press("enter"))
	require.True(t, m.detail)
	assert.Contains(t, m.View(), "https://posters.example/1.jpg")

	_, cmd := m.Update(press("c"))
	run(t, m, cmd)

	assert.Equal(t, "https://posters.example/1.jpg", copied)
	assert.Equal(t, "Poster URL copied", m.status)

	m.Update(press("esc"))
	assert.False(t, m.detail)
}

func TestCatalogModel_CopyWithoutPoster(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})
	films := testFilms()[1:]
	mocks.catalog.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.FilmPage{Films: films, TotalFilms: 1, Limit: 2}, nil)
	run(t, m, m.reload())

	_, cmd := m.Update(press("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.status)
}

func TestCatalogModel_Theme(t *testing.T) {
	m, mocks := newTestCatalog(t, models.StartupState{})

	mocks.settings.EXPECT().SetTheme(models.ThemeSystem).Return(nil)

	// dark -> system
	_, cmd := m.Update(press("t"))
	msg := cmd()
	assert.Equal(t, themeSavedMsg{theme: models.ThemeSystem}, msg)
}

func TestCatalogModel_MyFilmsRequiresLogin(t *testing.T) {
	m, _ := newTestCatalog(t, models.StartupState{})

	_, cmd := m.Update(press("m"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Log in to see your films", m.status)

	_, cmd = m.Update(press("L"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
}

func TestCatalogModel_LogoutWhenAuthenticated(t *testing.T) {
	g := models.Guardian{ID: "g-1", Name: "Aiko", Tier: models.TierKeeper}
	m, mocks := newTestCatalog(t, models.StartupState{
		Auth: models.AuthState{Status: models.AuthAuthenticated, Guardian: &g},
	})

	assert.Contains(t, m.View(), "Aiko (keeper)")

	_, cmd := m.Update(press("m"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMine}, cmd())

	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	_, cmd = m.Update(press("L"))
	assert.Equal(t, logoutDoneMsg{}, cmd())
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "No network or the server is unavailable",
		humanizeError(errors.Join(adapter.ErrNetwork, errors.New("dial tcp"))))
	assert.Equal(t, "The API key was rejected", humanizeError(adapter.ErrUnauthorized))
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}

func TestDescribeFilter(t *testing.T) {
	got := describeFilter(models.FilmFilter{
		SearchTerm: "love",
		Statuses:   []models.FilmStatus{models.StatusOrphan, models.StatusAdopted},
		Region:     "Kansai",
	})
	assert.Equal(t, `title ~ "love" · orphan+adopted · region Kansai`, got)

	assert.Equal(t, "all statuses · region Kanto", describeFilter(models.FilmFilter{Region: "Kanto"}))
	assert.Equal(t, "showing all films", describeFilter(models.FilmFilter{Page: 3, Limit: 20}))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "東京物…", fitText("東京物語とその他", 4))
	assert.True(t, strings.HasSuffix(fitText(strings.Repeat("a", 50), 10), "…"))
}
