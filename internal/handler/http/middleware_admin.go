package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/shorturl-platform/userservice/internal/logger"
)

// adminBasicAuth guards the bootstrap endpoints with HTTP basic auth checked
// against the administrator credentials held by the secrets provider. The
// comparison is constant-time so that credential probing does not leak
// prefix-match timing.
func (h *Handler) adminBasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			w.Header().Set("WWW-Authenticate", `Basic realm="shorturl-users"`)
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		adminUsername, err := h.secrets.AdminUsername(ctx)
		if err != nil {
			log.Err(err).Msg("cannot read admin username")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		adminPassword, err := h.secrets.AdminPassword(ctx)
		if err != nil {
			log.Err(err).Msg("cannot read admin password")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1
		passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
		if !usernameMatch || !passwordMatch {
			log.Err(ErrInvalidAdminCredentials).Str("username", username).Send()
			w.Header().Set("WWW-Authenticate", `Basic realm="shorturl-users"`)
			http.Error(w, ErrInvalidAdminCredentials.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
