package app

import (
	"context"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/faceswap/pkg/app/screens"
	"github.com/kerbaras/faceswap/pkg/config"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/kerbaras/faceswap/pkg/services"
	"github.com/kerbaras/faceswap/pkg/swapper"
)

type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	// the alt screen owns stdout; logs go to a file or nowhere
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "faceswap")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := integrations.NewResultStore(a.cfg.OutputDir, a.cfg.OutputDir != "")
	if err != nil {
		return err
	}
	defer store.Close()

	client := swapper.NewClient(a.cfg.Endpoint, swapper.WithTimeout(a.cfg.Timeout))
	screen, err := screens.NewUploadScreen(context.Background(), client,
		services.WithResultStore(store),
		services.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	slog.Info("starting", "endpoint", client.Endpoint())
	p := tea.NewProgram(screen, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
