package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/utils"
	"github.com/quicknotes/quicknotes/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())

	return a, srv
}

func signedTestToken(t *testing.T, userID int64, username string) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(
		"QuickNotes",
		"QuickNotes",
		models.User{UserID: userID, Username: username},
		30*time.Minute,
		"0123456789abcdef",
	)
	require.NoError(t, err)

	return token.SignedString
}

func TestRegister_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "secret", user.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{Username: user.Username})
	})

	a, _ := newTestAdapter(t, mux)

	registered, err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.Empty(t, a.Token(), "registration must not start a session")
}

func TestRegister_UsernameTaken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Username already exists"})
	})

	a, _ := newTestAdapter(t, mux)

	_, err := a.Register(context.Background(), models.User{Username: "alice", Password: "secret"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestLogin_StoresTokenAndParsesUserID(t *testing.T) {
	tokenString := signedTestToken(t, 42, "alice")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Authorization", "Bearer "+tokenString)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Username: "alice", Token: tokenString})
	})

	a, _ := newTestAdapter(t, mux)

	token, err := a.Login(context.Background(), models.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, tokenString, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "alice", token.Username)
	assert.Equal(t, tokenString, a.Token())
}

func TestLogin_TokenFromHeaderFallback(t *testing.T) {
	tokenString := signedTestToken(t, 7, "bob")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Authorization", "Bearer "+tokenString)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Username: "bob"})
	})

	a, _ := newTestAdapter(t, mux)

	token, err := a.Login(context.Background(), models.User{Username: "bob", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, tokenString, token.SignedString)
	assert.Equal(t, int64(7), token.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid login attempt"})
	})

	a, _ := newTestAdapter(t, mux)

	_, err := a.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogout_DropsTokenEvenOnServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("stale-token")

	err := a.Logout(context.Background())
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, a.Token())
}

func TestListNotes_SendsBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Note{
			{NoteID: 2, Content: "second"},
			{NoteID: 1, Content: "first"},
		})
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("session-token")

	notes, err := a.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].NoteID)
}

func TestListNotes_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
	})

	a, _ := newTestAdapter(t, mux)

	_, err := a.ListNotes(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetNote_NotFoundAndForbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notes/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /api/notes/403", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("session-token")

	_, err := a.GetNote(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = a.GetNote(context.Background(), 403)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestCreateNote_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notes", func(w http.ResponseWriter, r *http.Request) {
		var req models.NoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buy milk", req.Content)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Note{NoteID: 1, Content: req.Content})
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("session-token")

	note, err := a.CreateNote(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.NoteID)
	assert.Equal(t, "buy milk", note.Content)
}

func TestUpdateNote_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/notes/5", func(w http.ResponseWriter, r *http.Request) {
		var req models.NoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Note{NoteID: 5, Content: req.Content})
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("session-token")

	note, err := a.UpdateNote(context.Background(), 5, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", note.Content)
}

func TestDeleteNote_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/notes/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("session-token")

	require.NoError(t, a.DeleteNote(context.Background(), 5))
}

func TestServerUnreachable(t *testing.T) {
	a, srv := newTestAdapter(t, http.NewServeMux())
	srv.Close()

	_, err := a.ListNotes(context.Background())
	require.ErrorIs(t, err, ErrServerUnavailable)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", normalizeBaseURL("localhost:8080"))
	assert.Equal(t, "http://localhost:8080", normalizeBaseURL("http://localhost:8080/"))
	assert.Equal(t, "https://example.com", normalizeBaseURL("https://example.com"))
}
