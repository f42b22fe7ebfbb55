package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	search   key.Binding

	orphan    key.Binding
	adopted   key.Binding
	abandoned key.Binding
	allStatus key.Binding
	region    key.Binding
	reset     key.Binding

	copy    key.Binding
	theme   key.Binding
	login   key.Binding
	mine    key.Binding
	about   key.Binding
	quit    key.Binding
	refresh key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	prevPage: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "prev page")),
	nextPage: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),

	orphan:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "orphan")),
	adopted:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "adopted")),
	abandoned: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "abandoned")),
	allStatus: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all statuses")),
	region:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "region")),
	reset:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),

	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy poster url")),
	theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	login:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log in/out")),
	mine:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my films")),
	about:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
}

// catalogHelp adapts keys to help.KeyMap for the catalog page.
type catalogHelp struct{}

func (catalogHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.search, keys.orphan, keys.adopted, keys.abandoned, keys.region, keys.nextPage, keys.enter, keys.quit}
}

func (catalogHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.prevPage, keys.nextPage, keys.enter},
		{keys.search, keys.orphan, keys.adopted, keys.abandoned, keys.allStatus, keys.region, keys.reset},
		{keys.copy, keys.theme, keys.login, keys.mine, keys.refresh, keys.about, keys.quit},
	}
}
