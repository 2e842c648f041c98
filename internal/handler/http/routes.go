package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.metrics.Middleware)
	router.Use(h.withSecureHeaders())
	if h.cfg.RateLimitEnabled() {
		router.Use(httprate.Limit(h.cfg.RateLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5))

	router.Get("/users", h.listUsers)
	router.Get("/users/{id}", h.getUser)
	router.Post("/users", h.createUser)
	router.Delete("/users/{id}", h.deleteUser)

	// service endpoints
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
