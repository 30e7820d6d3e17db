package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quicknotes/quicknotes/models"
)

// NavigateTo switches the authentication flow to another page. An optional
// payload is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult carries the outcome of an async login attempt.
type LoginResult struct {
	Token models.Token
	Err   error
}

// RegisterSuccessNotice tells the menu page that an account was just
// created so it can prompt the user to sign in.
type RegisterSuccessNotice struct {
	Username string
}

type notesLoadedMsg struct {
	notes     []models.Note
	fromCache bool
	err       error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}
