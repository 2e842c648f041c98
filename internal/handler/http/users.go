package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/metrics"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// maxCreateBodyBytes bounds the body of POST /users.
const maxCreateBodyBytes = 1 << 20

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		h.metrics.ObserveOperation("list", metrics.OutcomeError)
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgListFailed))
		return
	}

	h.metrics.ObserveOperation("list", metrics.OutcomeOK)
	h.writeEnvelope(w, r, http.StatusOK, models.Success(models.NewUserResponses(users)))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		// an id that cannot exist is reported like any absent id
		log.Debug().Err(err).Str("func", "*Handler.getUser").Msg("invalid id")
		h.metrics.ObserveOperation("get", metrics.OutcomeNotFound)
		h.writeEnvelope(w, r, http.StatusNotFound, models.Failure(app.MsgUserNotFound))
		return
	}

	user, found, err := h.services.UserService.FindUser(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Int64("id", id).Msg("error finding user")
		h.metrics.ObserveOperation("get", metrics.OutcomeError)
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgFindFailed))
		return
	}
	if !found {
		h.metrics.ObserveOperation("get", metrics.OutcomeNotFound)
		h.writeEnvelope(w, r, http.StatusNotFound, models.Failure(app.MsgUserNotFound))
		return
	}

	h.metrics.ObserveOperation("get", metrics.OutcomeOK)
	h.writeEnvelope(w, r, http.StatusOK, models.Success(models.NewUserResponse(user)))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeCreateRequest(http.MaxBytesReader(w, r.Body, maxCreateBodyBytes))
	if err == nil {
		err = h.services.UserService.CreateUser(r.Context(), req)
	}

	if err != nil {
		reason := failureReason(err)
		log.Warn().Err(err).Str("func", "*Handler.createUser").Str("reason", reason).Msg("user was not created")
		h.metrics.ObserveOperation("create", outcomeFromReason(reason))
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgCreateFailed))
		return
	}

	h.metrics.ObserveOperation("create", metrics.OutcomeOK)
	h.writeEnvelope(w, r, http.StatusCreated, models.Success(app.MsgUserCreated))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromPath(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.deleteUser").Msg("invalid id")
		h.metrics.ObserveOperation("delete", metrics.OutcomeNotFound)
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgDeleteFailed))
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("id", id).Msg("error deleting user")
		h.metrics.ObserveOperation("delete", metrics.OutcomeError)
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgDeleteFailed))
		return
	}
	if !deleted {
		h.metrics.ObserveOperation("delete", metrics.OutcomeNotFound)
		h.writeEnvelope(w, r, http.StatusInternalServerError, models.Failure(app.MsgDeleteFailed))
		return
	}

	h.metrics.ObserveOperation("delete", metrics.OutcomeOK)
	h.writeEnvelope(w, r, http.StatusOK, models.Success(app.MsgUserDeleted))
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, status int, envelope models.Envelope) {
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeEnvelope").Msg("error writing response")
	}
}

// decodeCreateRequest reads exactly one JSON object; anything after it
// makes the whole body malformed.
func decodeCreateRequest(body io.Reader) (models.CreateUserRequest, error) {
	var req models.CreateUserRequest

	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedPayload)
	}

	return req, nil
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	return id, nil
}
