package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

func (t *TUI) theme() models.Theme {
	theme, err := t.services.SettingsService.Theme()
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.theme").Msg("error loading theme, using system")
		return models.ThemeSystem
	}
	return theme
}

// Catalog runs the interactive catalog until the user quits.
func (t *TUI) Catalog(ctx context.Context, startup models.StartupState) error {
	sess := newSession(startup, t.theme())

	pages := map[string]tea.Model{
		pageCatalog: NewCatalogModel(ctx, t.services.CatalogService, t.services.SettingsService, t.services.AuthService, sess),
		pageLogin:   NewLoginModel(ctx, t.services.AuthService, sess),
		pageMine:    NewMyFilmsModel(ctx, t.services.CatalogService, sess),
	}

	root := NewRootModel(pages, pageCatalog, sess, t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Fatal shows the startup failure until the user dismisses it.
func (t *TUI) Fatal(ctx context.Context, cause error) error {
	model := fatalModel{err: cause, styles: newStyles(t.theme())}
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
