package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/models"
)

// ErrUserQuit is returned by LoginFlow when the user exits without signing in.
var ErrUserQuit = errors.New("user quit")

// TUI owns the two interactive programs of the client: the authentication
// flow and the note loop.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the menu/login/register pages until the user signs in or
// quits. On success it returns the session token with UserID populated.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Token{}, ErrUserQuit
	}

	return result.token, nil
}

// NoteLoop runs the note list program for the signed-in user. It reports
// whether the user chose to log out (as opposed to quitting the client).
func (t *TUI) NoteLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newNoteLoopModel(ctx, t.services, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(noteLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
