package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", NewError(ErrValidation, "Missing required fields"), http.StatusBadRequest},
		{"bad request", NewError(ErrBadRequest, "Invalid user role"), http.StatusBadRequest},
		{"conflict", fmt.Errorf("register: %w", NewError(ErrConflict, "dup")), http.StatusConflict},
		{"unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{"unauthorized", NewError(ErrUnauthorized, "Invalid username or password"), http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", NewError(ErrNotFound, "User not found"), http.StatusNotFound},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError},
		{"plain", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}

func TestClientMessage_HidesInternalDetail(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	assert.Equal(t, MsgServerError, ClientMessage(fmt.Errorf("list problems: %w", cause)))
	assert.Equal(t, MsgServerError, ClientMessage(WrapError(cause, ErrInternalServer, "boom")))
	assert.Equal(t, "User not found", ClientMessage(fmt.Errorf("profile: %w", NewError(ErrNotFound, "User not found"))))
	assert.Equal(t, "Forbidden", ClientMessage(ErrForbidden))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	err := WrapError(cause, ErrConflict, "Username or email already exists")
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Username or email already exists: db down", err.Error())
}

func TestRespondWithAppError_LogsOnlyServerErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/problems", nil)
	RespondWithAppError(rec, req, log, errors.New("pq: relation does not exist"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/problems", logs.All()[0].ContextMap()["path"])

	rec = httptest.NewRecorder()
	RespondWithAppError(rec, req, log, NewError(ErrConflict, "Username or email already exists"))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Username or email already exists"}`, rec.Body.String())
	assert.Equal(t, 1, logs.Len())
}
