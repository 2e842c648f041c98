package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/metrics"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.NewMetrics()
	cfg := config.Server{RateLimit: 10}
	log := logger.Nop()

	h := NewHandler(svc, m, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, m, h.metrics)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init: route registration over a real memory repository
// ─────────────────────────────────────────────

// newTestHandler wires the real services over an in-memory repository,
// so every registered route has something to answer with.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	repositories := &store.Repositories{UserRepository: store.NewMemoryUserRepository(logger.Nop())}
	services, err := service.NewServices(repositories, config.StructuredConfig{App: config.App{Version: "test-version"}}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, metrics.NewMetrics(), config.Server{}, logger.Nop())
}

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/users"},
	{http.MethodGet, "/users/1"},
	{http.MethodPost, "/users"},
	{http.MethodDelete, "/users/1"},
	{http.MethodGet, "/version"},
	{http.MethodGet, "/metrics"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)

			// GET and DELETE on an empty store legitimately answer 404/500,
			// the envelope proves the request reached a users handler.
			if rec.Code == http.StatusNotFound {
				assert.Contains(t, rec.Body.String(), app.MsgUserNotFound)
			}
		})
	}
}

func TestInit_CreateThenGetThenDelete(t *testing.T) {
	router := newTestHandler(t).Init()

	rr := serve(router, http.MethodPost, "/users", `{"id":7,"name":"Alice Silva","age":25}`)
	assertEnvelope(t, rr, http.StatusCreated, `{"success":true,"data":"Usuário criado com sucesso"}`)

	rr = serve(router, http.MethodPost, "/users", `{"id":7,"name":"Another","age":30}`)
	assertEnvelope(t, rr, http.StatusInternalServerError, `{"success":false,"data":"Falha ao criar o usuário"}`)

	rr = serve(router, http.MethodGet, "/users/7", "")
	assertEnvelope(t, rr, http.StatusOK, `{"success":true,"data":{"id":7,"name":"Alice Silva","age":25,"isOfAge":true}}`)

	rr = serve(router, http.MethodDelete, "/users/7", "")
	assertEnvelope(t, rr, http.StatusOK, `{"success":true,"data":"Usuário excluído com sucesso"}`)

	rr = serve(router, http.MethodDelete, "/users/7", "")
	assertEnvelope(t, rr, http.StatusInternalServerError, `{"success":false,"data":"Falha ao remover o usuário"}`)

	rr = serve(router, http.MethodGet, "/users", "")
	assertEnvelope(t, rr, http.StatusOK, `{"success":true,"data":[]}`)
}

func TestInit_InvalidCreateNeverStored(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, body := range []string{
		`{"name":"No Id","age":20}`,
		`{"id":1,"age":20}`,
		`{"id":1,"name":"   ","age":20}`,
		`{"id":1,"name":"Negative","age":-1}`,
		`{"id":-1,"name":"Negative","age":1}`,
	} {
		rr := serve(router, http.MethodPost, "/users", body)
		assertEnvelope(t, rr, http.StatusInternalServerError, `{"success":false,"data":"Falha ao criar o usuário"}`)
	}

	rr := serve(router, http.MethodGet, "/users", "")
	assertEnvelope(t, rr, http.StatusOK, `{"success":true,"data":[]}`)
}
