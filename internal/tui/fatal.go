package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// fatalModel is shown instead of the catalog when startup could not produce
// a usable replica.
type fatalModel struct {
	err    error
	styles styles
}

func (m fatalModel) Init() tea.Cmd {
	return nil
}

func (m fatalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m fatalModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.err.Render("The catalog is unavailable"))
	b.WriteString("\n\n")
	b.WriteString("There is no local copy of the catalog and the server\n")
	b.WriteString("could not provide one.\n\n")
	b.WriteString(m.styles.help.Render(humanizeError(m.err)))
	b.WriteString("\n\n")
	b.WriteString("Check your connection and start shiosayi again.\n\n")
	b.WriteString(m.styles.help.Render("q: quit"))

	return m.styles.app.Render(m.styles.fatal.Render(b.String()))
}
