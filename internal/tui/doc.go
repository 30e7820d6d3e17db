// Package tui implements the interactive terminal interface of the
// quicknotes client on top of Bubble Tea.
//
// The interface runs as two programs in sequence: an authentication flow
// (menu, login, register pages routed by [RootModel]) and the note loop
// (list, create, edit, delete). The note loop talks to the client services
// only through asynchronous tea.Cmd functions so the UI never blocks on the
// network.
package tui
