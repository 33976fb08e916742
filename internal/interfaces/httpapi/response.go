package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

const internalErrorMessage = "Internal server error"

// errorEnvelope is the body of every non-2xx response.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Sentinel   error
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, data)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	body := errorEnvelope{Message: internalErrorMessage}
	if mapped.Sentinel != nil {
		body.Message = publicMessage(err, mapped.Sentinel)
	}

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) && !validationErr.Empty() {
		body.Message = "Validation failed"
		body.Errors = validationErr.Fields
	}

	writeJSON(ctx, w, mapped.HTTPStatus, body)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{Message: internalErrorMessage})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Sentinel: usecase.ErrInvalidInput}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Sentinel: usecase.ErrNotFound}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Sentinel: usecase.ErrUnauthorized}
	case errors.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusConflict, Sentinel: usecase.ErrConflict}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Sentinel: usecase.ErrDependencyUnavailable}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError}
	}
}

// publicMessage turns "conflict: email already exists" into
// "Email already exists". Errors wrapped with extra context before the
// sentinel keep only the part after it.
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error()
	if i := strings.LastIndex(msg, prefix+": "); i >= 0 {
		msg = msg[i+len(prefix)+2:]
	} else if strings.HasSuffix(msg, prefix) {
		msg = prefix
	}
	return capitalize(strings.TrimSpace(msg))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
