package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/token"
	"github.com/shorturl-platform/userservice/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [token.Manager.Validate], and on success stores the caller's
// [models.Identity] in the request context under [utils.IdentityCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([utils.ErrInvalidAuthorizationHeader] or [utils.ErrEmptyToken]).
//   - The token has expired ([token.ErrTokenExpired]).
//   - The token signature is wrong or the token is otherwise malformed.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		identity, err := h.tokens.Validate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, token.ErrTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("token validation failed")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		// Store the caller's identity in the context so that downstream
		// handlers can authorize without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
