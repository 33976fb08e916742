package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/champions-tracker/internal/domain/user"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess_RawBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, userIDResponse{UserID: 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"userId":7}`, rec.Body.String())
}

func TestWriteError_StatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "conflict",
			err:     fmt.Errorf("%w: %v", usecase.ErrConflict, user.ErrEmailTaken),
			status:  http.StatusConflict,
			message: "Email already exists",
		},
		{
			name:    "unauthorized",
			err:     fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized),
			status:  http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "not found",
			err:     fmt.Errorf("%w: team score not found", usecase.ErrNotFound),
			status:  http.StatusNotFound,
			message: "Team score not found",
		},
		{
			name:    "bad request",
			err:     fmt.Errorf("%w: insufficient balance", usecase.ErrInvalidInput),
			status:  http.StatusBadRequest,
			message: "Insufficient balance",
		},
		{
			name:    "dependency",
			err:     fmt.Errorf("publish: %w", usecase.ErrDependencyUnavailable),
			status:  http.StatusServiceUnavailable,
			message: "Dependency unavailable",
		},
		{
			name:    "internal",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, tc.message, body.Message)
			assert.Empty(t, body.Errors)
		})
	}
}

func TestWriteError_ValidationFields(t *testing.T) {
	verr := usecase.NewValidationError()
	verr.Add("email", "must be a valid email")
	verr.Add("password", "must be at least 8 characters")

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, verr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, []string{"must be a valid email"}, body.Errors["email"])
	assert.Equal(t, []string{"must be at least 8 characters"}, body.Errors["password"])
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, decodeEnvelope(t, rec).Message)
}
