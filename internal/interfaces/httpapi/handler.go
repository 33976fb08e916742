package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
)

// SessionConfig controls the access token cookie set on login.
type SessionConfig struct {
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	userService         *usecase.UserService
	teamService         *usecase.TeamService
	championshipService *usecase.ChampionshipService
	matchService        *usecase.MatchService
	guessService        *usecase.GuessService
	session             SessionConfig
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	userService *usecase.UserService,
	teamService *usecase.TeamService,
	championshipService *usecase.ChampionshipService,
	matchService *usecase.MatchService,
	guessService *usecase.GuessService,
	session SessionConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:         userService,
		teamService:         teamService,
		championshipService: championshipService,
		matchService:        matchService,
		guessService:        guessService,
		session:             session,
		logger:              logger,
		validator:           newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t\r\n")
	})
	v.RegisterCustomTypeFunc(nullableStringValue, nullableString{})
	return v
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	out := usecase.NewValidationError()
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe), validationMessage(fe))
	}
	return out
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	if err := h.decodeJSON(ctx, r, dst); err != nil {
		return err
	}
	return h.validateRequest(ctx, dst)
}

// fieldPath drops the root struct name: "updateUserRequest.data.email" -> "data.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	isText := kind == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "nospace":
		return "must not contain spaces"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be >= " + fe.Param()
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be <= " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "is invalid"
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		verr := usecase.NewValidationError()
		verr.Add(name, "must be a positive integer")
		return 0, verr
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr := usecase.NewValidationError()
		verr.Add(name, "must be an integer")
		return 0, verr
	}
	return v, nil
}

// fail logs client errors at warn and server errors at error, then writes
// the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
