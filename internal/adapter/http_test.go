// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/config"
	myHTTP "github.com/MKhiriev/go-users-api/internal/handler/http"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/metrics"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// newTestClient returns a client pointed at serverURL.
func newTestClient(t *testing.T, serverURL string) UsersClient {
	t.Helper()

	c, err := NewHTTPUsersClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

// newAPIServer serves the real router over an in-memory repository.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	repositories := &store.Repositories{UserRepository: store.NewMemoryUserRepository(logger.Nop())}
	services, err := service.NewServices(repositories, config.StructuredConfig{App: config.App{Version: "test"}}, logger.Nop())
	require.NoError(t, err)

	router := myHTTP.NewHandler(services, metrics.NewMetrics(), config.Server{}, logger.Nop()).Init()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

// ── end to end against the real router ─────────────────────────────────────

func TestUsersClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t, newAPIServer(t).URL)

	users, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	msg, err := c.Create(ctx, models.User{ID: 1, Name: "Alice Silva", Age: 25})
	require.NoError(t, err)
	assert.Equal(t, "Usuário criado com sucesso", msg)

	_, err = c.Create(ctx, models.User{ID: 2, Name: "Bruno", Age: 12})
	require.NoError(t, err)

	_, err = c.Create(ctx, models.User{ID: 1, Name: "Duplicate", Age: 40})
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Falha ao criar o usuário")

	users, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.UserResponse{
		{ID: 1, Name: "Alice Silva", Age: 25, IsOfAge: true},
		{ID: 2, Name: "Bruno", Age: 12, IsOfAge: false},
	}, users)

	user, err := c.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{ID: 2, Name: "Bruno", Age: 12, IsOfAge: false}, user)

	msg, err = c.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Usuário excluído com sucesso", msg)

	_, err = c.Get(ctx, 2)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Usuário não encontrado")

	_, err = c.Delete(ctx, 2)
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Falha ao remover o usuário")
}

// ── fake servers for transport edge cases ──────────────────────────────────

func TestUsersClient_NonEnvelopeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).List(context.Background())

	require.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.Contains(t, err.Error(), "429")
}

func TestUsersClient_WrongDataShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":"not a list"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).List(context.Background())

	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestUsersClient_RequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := new(strings.Builder)
		_, _ = io.Copy(body, r.Body)
		assert.JSONEq(t, `{"id":7,"name":"Carla","age":30}`, body.String())

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":"ok"}`))
	}))
	defer srv.Close()

	msg, err := newTestClient(t, srv.URL).Create(context.Background(), models.User{ID: 7, Name: "Carla", Age: 30})

	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
}

func TestUsersClient_ContextCancelled(t *testing.T) {
	srv := newAPIServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).List(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── constructor ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://users.example.com/", want: "https://users.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUsersClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPUsersClient(config.Adapter{HTTPAddress: ""}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}
