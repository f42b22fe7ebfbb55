package tui

import (
	"github.com/MKhiriev/shiosayi/models"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	status  lipgloss.Style
	label   lipgloss.Style
	box     lipgloss.Style
	fatal   lipgloss.Style

	orphan    lipgloss.Style
	adopted   lipgloss.Style
	abandoned lipgloss.Style

	table table.Styles
}

// color resolves a light/dark pair for theme. The system theme lets the
// terminal background decide.
func color(theme models.Theme, light, dark string) lipgloss.TerminalColor {
	switch theme {
	case models.ThemeLight:
		return lipgloss.Color(light)
	case models.ThemeDark:
		return lipgloss.Color(dark)
	default:
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
}

func newStyles(theme models.Theme) styles {
	accent := color(theme, "#B4245D", "#F07FA8")
	muted := color(theme, "#6B6B6B", "#9A9A9A")
	danger := color(theme, "#C0392B", "#FF6B6B")
	warn := color(theme, "#9A6700", "#F2C94C")

	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	t.Selected = t.Selected.
		Foreground(color(theme, "#FFFFFF", "#1A1A1A")).
		Background(accent).
		Bold(false)

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:    lipgloss.NewStyle().Foreground(muted),
		err:     lipgloss.NewStyle().Bold(true).Foreground(danger),
		warning: lipgloss.NewStyle().Foreground(warn),
		status:  lipgloss.NewStyle().Italic(true).Foreground(muted),
		label:   lipgloss.NewStyle().Bold(true).Width(10),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		fatal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(danger).Padding(1, 3),

		orphan:    lipgloss.NewStyle().Foreground(warn),
		adopted:   lipgloss.NewStyle().Foreground(color(theme, "#1E7B34", "#6FCF97")),
		abandoned: lipgloss.NewStyle().Foreground(danger),

		table: t,
	}
}

func (s styles) statusStyle(status models.FilmStatus) lipgloss.Style {
	switch status {
	case models.StatusOrphan:
		return s.orphan
	case models.StatusAdopted:
		return s.adopted
	case models.StatusAbandoned:
		return s.abandoned
	default:
		return lipgloss.NewStyle()
	}
}
