package service

import (
	"github.com/quicknotes/quicknotes/internal/adapter"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/store"
)

// ClientServices bundles all client-side services consumed by the TUI and
// the background workers.
type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		NoteService: NewClientNoteService(serverAdapter, localStore.NoteRepository, logger),
	}
}
