package httpapi

import (
	"net/http"

	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// RouterConfig holds the optional surfaces of the router.
type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	Metrics            RequestRecorder
	MetricsHandler     http.Handler
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier)

	return RequestTracing(
		RequestLogging(logger,
			CORS(cfg.CORSAllowedOrigins,
				recoverPanic(logger,
					RequestMetrics(cfg.Metrics, mux)))))
}
