package http

import (
	"net/http"

	"github.com/unrolled/secure"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// withSecureHeaders sets the usual hardening headers on every response.
// The API serves only JSON and plain text, so the content security policy
// denies everything.
func (h *Handler) withSecureHeaders() func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'",
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := secureMiddleware.Process(w, r); err != nil {
				logger.FromRequest(r).Warn().Err(err).Msg("secure headers blocked request")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
