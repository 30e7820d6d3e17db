package service

import (
	"context"
	"strings"

	"github.com/quicknotes/quicknotes/internal/adapter"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	log := a.logger.With().Str("func", "Register").Logger()

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.adapter.Register(ctx, user); err != nil {
		log.Debug().Err(err).Msg("registration failed")
		return mapAdapterError(err)
	}

	log.Info().Str("username", user.Username).Msg("account registered")

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := a.logger.With().Str("func", "Login").Logger()

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		return models.Token{}, mapAdapterError(err)
	}

	log.Info().Str("username", token.Username).Int64("user_id", token.UserID).Msg("logged in")

	return token, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	log := a.logger.With().Str("func", "Logout").Logger()

	if err := a.adapter.Logout(ctx); err != nil {
		// the local token is gone regardless, so an unreachable server does
		// not keep the user stuck in a session
		log.Debug().Err(err).Msg("server-side logout failed")
		return mapAdapterError(err)
	}

	log.Info().Msg("logged out")

	return nil
}
