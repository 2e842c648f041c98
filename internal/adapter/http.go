package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

type httpUsersClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUsersClient constructs an HTTP/REST implementation of [UsersClient].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns [ErrInvalidAddress] if the address cannot be used.
func NewHTTPUsersClient(cfg config.Adapter, logger *logger.Logger) (UsersClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpUsersClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [UsersClient] over GET /users.
func (h *httpUsersClient) List(ctx context.Context) ([]models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var users []models.UserResponse
	if err = json.Unmarshal(env.Data, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %w", ErrUnexpectedResponse, err)
	}

	h.logger.Debug().Int("count", len(users)).Msg("users listed")
	return users, nil
}

// Get implements [UsersClient] over GET /users/{id}.
func (h *httpUsersClient) Get(ctx context.Context, id int64) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/users/{id}")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.UserResponse{}, err
	}

	var user models.UserResponse
	if err = json.Unmarshal(env.Data, &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("%w: decode user: %w", ErrUnexpectedResponse, err)
	}

	return user, nil
}

// Create implements [UsersClient] over POST /users.
func (h *httpUsersClient) Create(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return "", fmt.Errorf("create user request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return "", err
	}

	return messageOf(env), nil
}

// Delete implements [UsersClient] over DELETE /users/{id}.
func (h *httpUsersClient) Delete(ctx context.Context, id int64) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/users/{id}")
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return "", err
	}

	return messageOf(env), nil
}
