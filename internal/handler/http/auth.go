package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/utils"
	"github.com/quicknotes/quicknotes/models"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "jwt"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	// no token here: a fresh account signs in explicitly
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("login failed")
		writeError(w, userFacingMessage(err), statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(r, token.SignedString, token.ExpiresAt.Time))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

	utils.WriteJSON(w, models.LoginResponse{
		Username: foundUser.Username,
		Token:    token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an expired empty cookie overwrites the session one in the browser
	http.SetCookie(w, h.sessionCookie(r, "", time.Unix(0, 0)))

	log.Debug().Msg("session cookie cleared")
	w.WriteHeader(http.StatusNoContent)
}

// sessionCookie builds the "jwt" cookie. The Secure flag follows the
// transport the request actually arrived on, so local plain-HTTP setups keep
// working while TLS deployments never leak the token over clear text.
func (h *Handler) sessionCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	}
}
