package app

import (
	"context"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/riskibarqy/champions-tracker/internal/infrastructure/account/token"
	"github.com/riskibarqy/champions-tracker/internal/interfaces/httpapi"
	"github.com/riskibarqy/champions-tracker/internal/observability"
	idgen "github.com/riskibarqy/champions-tracker/internal/platform/id"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

// App is the assembled API process.
type App struct {
	Server *http.Server

	closePublisher func(context.Context) error
	closeRepos     func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	repos, closeRepos, err := buildRepositories(ctx, cfg, metrics)
	if err != nil {
		return nil, crerr.Wrap(err, "build repositories")
	}

	publisher, closePublisher, err := buildPublisher(ctx, cfg, metrics, logger)
	if err != nil {
		_ = closeRepos()
		return nil, crerr.Wrap(err, "build event publisher")
	}

	jwtService, err := token.NewJWTService(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.ServiceName,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		_ = closePublisher(ctx)
		_ = closeRepos()
		return nil, err
	}

	emitter := usecase.NewEventEmitter(publisher, idgen.NewUUIDGenerator(), logger)
	matchSvc := usecase.NewMatchService(repos.championships, repos.memberships, repos.teams, repos.matches, emitter, logger)
	if metrics != nil {
		matchSvc.WithSettlementRecorder(metrics)
	}

	handler := httpapi.NewHandler(
		usecase.NewUserService(repos.users, repos.guesses, token.NewBcryptHasher(bcrypt.DefaultCost), jwtService, emitter, cfg.UserInitialBalance),
		usecase.NewTeamService(repos.teams, repos.users),
		usecase.NewChampionshipService(repos.championships, repos.memberships, repos.teams, repos.users, repos.matches, emitter),
		matchSvc,
		usecase.NewGuessService(repos.guesses, repos.matches, repos.teams, repos.users, emitter),
		httpapi.SessionConfig{TTL: cfg.JWTTTL, Secure: cfg.AppEnv == config.EnvProd},
		logger,
	)

	routerCfg := httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if metrics != nil {
		routerCfg.Metrics = metrics
		routerCfg.MetricsHandler = metrics.Handler()
	}

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      httpapi.NewRouter(handler, jwtService, logger, routerCfg),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		closePublisher: closePublisher,
		closeRepos:     closeRepos,
	}, nil
}

// Shutdown stops accepting requests, drains queued events and closes the
// database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown http server"))
	}
	if err := a.closePublisher(ctx); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "close event publisher"))
	}
	if err := a.closeRepos(); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "close repositories"))
	}
	return errs
}
