package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/simpletv/luasync/pkg/app/screens"
	"github.com/simpletv/luasync/pkg/config"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	model := screens.NewSyncScreen(a.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
