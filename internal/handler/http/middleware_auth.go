package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The session token is taken from the "jwt" cookie when present, falling back
// to an "Authorization: Bearer" header for non-browser clients. On success
// the authenticated user's id and username are stored in the request context
// under [utils.UserIDCtxKey] and [utils.UsernameCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token is
// present in either transport, or the token is expired, tampered with, or
// carries the wrong issuer or audience.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Msg("request without session token")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, userFacingMessage(err), http.StatusUnauthorized)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Err(err).Msg("token carries no usable subject")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest extracts the session token, preferring the "jwt"
// cookie over the "Authorization" header.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
