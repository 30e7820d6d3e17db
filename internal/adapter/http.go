package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/utils"
	"github.com/quicknotes/quicknotes/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter creates a [ServerAdapter] backed by the REST API.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	client := resty.New().
		SetBaseURL(normalizeBaseURL(cfg.HTTPAddress)).
		SetTimeout(cfg.RequestTimeout)

	log.Info().Str("base_url", client.BaseURL).Msg("http server adapter created")

	return &httpServerAdapter{
		client: client,
		logger: log,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (a *httpServerAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

func (a *httpServerAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	log := a.logger.With().Str("func", "Register").Logger()

	var registered models.User
	resp, err := a.request(ctx).
		SetBody(user).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		log.Error().Err(err).Msg("register request failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		log.Debug().Int("status", resp.StatusCode()).Msg("register rejected")
		return models.User{}, err
	}

	log.Info().Str("username", registered.Username).Msg("user registered")

	return registered, nil
}

func (a *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := a.logger.With().Str("func", "Login").Logger()

	var loginResponse models.LoginResponse
	resp, err := a.request(ctx).
		SetBody(user).
		SetResult(&loginResponse).
		Post("/api/auth/login")
	if err != nil {
		log.Error().Err(err).Msg("login request failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		log.Debug().Int("status", resp.StatusCode()).Msg("login rejected")
		return models.Token{}, err
	}

	tokenString := loginResponse.Token
	if tokenString == "" {
		// older server builds only echo the token in the header
		tokenString, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			log.Error().Err(err).Msg("login response carries no token")
			return models.Token{}, fmt.Errorf("%w: %w", ErrInternalServerError, err)
		}
	}

	userID, err := utils.ParseUserIDFromJWT(tokenString)
	if err != nil {
		log.Error().Err(err).Msg("cannot extract user id from session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternalServerError, err)
	}

	a.SetToken(tokenString)
	log.Info().Str("username", loginResponse.Username).Msg("logged in")

	return models.Token{
		SignedString: tokenString,
		Username:     loginResponse.Username,
		UserID:       userID,
	}, nil
}

func (a *httpServerAdapter) Logout(ctx context.Context) error {
	log := a.logger.With().Str("func", "Logout").Logger()

	resp, err := a.authedRequest(ctx).Post("/api/auth/logout")

	// the session is dropped locally no matter what the server said
	a.SetToken("")

	if err != nil {
		log.Error().Err(err).Msg("logout request failed")
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return err
	}

	log.Info().Msg("logged out")

	return nil
}

func (a *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := a.logger.With().Str("func", "ListNotes").Logger()

	var notes []models.Note
	resp, err := a.authedRequest(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		log.Error().Err(err).Msg("list notes request failed")
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (a *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	log := a.logger.With().Str("func", "GetNote").Logger()

	var note models.Note
	resp, err := a.authedRequest(ctx).
		SetResult(&note).
		Get(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		log.Error().Err(err).Msg("get note request failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (a *httpServerAdapter) CreateNote(ctx context.Context, content string) (models.Note, error) {
	log := a.logger.With().Str("func", "CreateNote").Logger()

	var note models.Note
	resp, err := a.authedRequest(ctx).
		SetBody(models.NoteRequest{Content: content}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		log.Error().Err(err).Msg("create note request failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	log.Info().Int64("note_id", note.NoteID).Msg("note created")

	return note, nil
}

func (a *httpServerAdapter) UpdateNote(ctx context.Context, noteID int64, content string) (models.Note, error) {
	log := a.logger.With().Str("func", "UpdateNote").Logger()

	var note models.Note
	resp, err := a.authedRequest(ctx).
		SetBody(models.NoteRequest{Content: content}).
		SetResult(&note).
		Put(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		log.Error().Err(err).Msg("update note request failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	log.Info().Int64("note_id", note.NoteID).Msg("note updated")

	return note, nil
}

func (a *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	log := a.logger.With().Str("func", "DeleteNote").Logger()

	resp, err := a.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/notes/%d", noteID))
	if err != nil {
		log.Error().Err(err).Msg("delete note request failed")
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return err
	}

	log.Info().Int64("note_id", noteID).Msg("note deleted")

	return nil
}

// request prepares a plain request carrying a fresh trace id so server logs
// can be correlated with client activity.
func (a *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetHeader("X-Trace-ID", a.ids.Generate())
}

// authedRequest prepares a request that additionally carries the stored
// session token in the Authorization header.
func (a *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := a.request(ctx)

	if token := a.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

// normalizeBaseURL makes sure the configured address carries a scheme so
// resty does not treat it as a relative URL.
func normalizeBaseURL(address string) string {
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return strings.TrimRight(address, "/")
	}

	return "http://" + strings.TrimRight(address, "/")
}
