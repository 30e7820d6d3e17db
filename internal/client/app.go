package client

import (
	"context"
	"errors"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/internal/tui"
	"github.com/quicknotes/quicknotes/internal/workers"
)

// App glues the authentication flow, the note loop, and the background
// refresh worker together. A logout returns the user to the authentication
// flow; quitting either program exits the process.
type App struct {
	services   *service.ClientServices
	ui         *tui.TUI
	worker     workers.NoteRefreshWorker
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (Client, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services:   services,
		ui:         ui,
		worker:     workers.NewNoteRefreshWorker(services.NoteService, logger),
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		token, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().Int64("user_id", token.UserID).Msg("session started")

		a.worker.Start(ctx, token.UserID, a.workersCfg.RefreshInterval)
		logout, err := a.ui.NoteLoop(ctx, token.UserID)
		a.worker.Stop()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		// best effort: the server clears the cookie, the adapter always
		// drops the local token
		if err := a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Debug().Err(err).Msg("server-side logout failed")
		}
	}
}
