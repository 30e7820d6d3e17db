package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/models"
)

type stubUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, username string) (models.User, error)
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.UserID = 1
	return user, nil
}

func (s *stubUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if s.findFn != nil {
		return s.findFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

type stubNoteRepository struct {
	createFn  func(ctx context.Context, note models.Note) (models.Note, error)
	getAllFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	getByIDFn func(ctx context.Context, noteID int64) (models.Note, error)
	updateFn  func(ctx context.Context, note models.Note) (models.Note, error)
	deleteFn  func(ctx context.Context, noteID, userID int64) error
}

func (s *stubNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if s.createFn != nil {
		return s.createFn(ctx, note)
	}
	note.NoteID = 1
	return note, nil
}

func (s *stubNoteRepository) GetAllUserNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubNoteRepository) GetNoteByID(ctx context.Context, noteID int64) (models.Note, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, noteID)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (s *stubNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, note)
	}
	return note, nil
}

func (s *stubNoteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, noteID, userID)
	}
	return nil
}

var testAuthConfig = config.Auth{
	TokenSignKey:  "0123456789abcdef",
	TokenIssuer:   "QuickNotes",
	TokenAudience: "QuickNotes",
	TokenDuration: 30 * time.Minute,
}

func newTestServer(t *testing.T, users store.UserRepository, notes store.NoteRepository) (*httptest.Server, *service.Services) {
	t.Helper()

	log := logger.NewLogger("test")
	services := &service.Services{
		AuthService: service.NewAuthService(users, testAuthConfig, log),
		NoteService: service.NewNoteService(notes, log),
	}

	handler := NewHandler(services, log)
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, services
}

// sessionToken issues a token for the given user through the same service
// the server validates with.
func sessionToken(t *testing.T, services *service.Services, user models.User) string {
	t.Helper()

	token, err := services.AuthService.CreateToken(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to create session token: %v", err)
	}
	return token.SignedString
}
